package prompts

import (
	"github.com/lkeller19/bankledger/internal/validation"
)

// PromptAccountKind asks for the account type to open.
func PromptAccountKind() (string, error) {
	return PromptSelect("Type of account?", []string{"checking", "savings"}, "checking")
}

// PromptAmount asks for a currency amount, validated as numeric.
func PromptAmount(message string) (string, error) {
	return PromptInput(message, "", func(s string) error {
		_, err := validation.ParseAmount(s)
		return err
	})
}

// PromptDate asks for a transaction date; enter keeps the default.
func PromptDate(defaultDate string) (string, error) {
	return PromptInput("Date? (YYYY-MM-DD)", defaultDate, validation.ValidateDate)
}

// PromptAccountNumber asks for an account identifier.
func PromptAccountNumber() (string, error) {
	return PromptInput("Enter account number", "", func(s string) error {
		_, err := validation.ParseAccountNumber(s)
		return err
	})
}
