package ledger

import (
	"fmt"

	"github.com/lkeller19/bankledger/internal/utils"
	"github.com/shopspring/decimal"
)

// Transaction is a single dated balance adjustment. System transactions come
// from the monthly trigger (interest accrual and fees); everything else is
// user-entered. A transaction is never mutated after creation.
type Transaction struct {
	Date   string
	Amount decimal.Decimal
	System bool
}

func NewTransaction(date string, amount decimal.Decimal, system bool) Transaction {
	return Transaction{Date: date, Amount: amount, System: system}
}

// String renders the transaction as a statement line, e.g.
// "2024-03-01, $1,234.50".
func (t Transaction) String() string {
	return fmt.Sprintf("%s, $%s", t.Date, utils.FormatMoney(t.Amount))
}

func (t Transaction) sameDay(date string) bool {
	return t.Date == date
}

// sameMonth compares the YYYY-MM prefix of both dates.
func (t Transaction) sameMonth(date string) bool {
	return len(t.Date) >= 7 && len(date) >= 7 && t.Date[:7] == date[:7]
}
