package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"

	// Width of the zero-padded account number in display labels
	AccountNumberWidth = 9
)

const (
	// Savings accounts cap user-entered transactions per day and per month.
	SavingsDailyLimit   = 2
	SavingsMonthlyLimit = 5
)
