// Package validation checks raw shell input before it reaches the ledger.
// Failures here are workflow faults surfaced to the caller, unlike the
// ledger's silent business-rule rejections.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts raw input into an exact decimal currency value.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: must be a number", raw)
	}
	return d, nil
}

// ParseAccountNumber converts raw input into an account identifier.
func ParseAccountNumber(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid account number %q: must be an integer", raw)
	}
	return n, nil
}

// ValidateDate checks the YYYY-MM-DD shape only. Calendar correctness is
// deliberately not enforced; the ledger compares dates by slicing the year
// and month components.
func ValidateDate(raw string) error {
	if len(raw) != 10 || raw[4] != '-' || raw[7] != '-' {
		return fmt.Errorf("invalid date %q: must be YYYY-MM-DD", raw)
	}
	for i, r := range raw {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid date %q: must be YYYY-MM-DD", raw)
		}
	}
	return nil
}
