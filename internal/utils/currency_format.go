package utils

import (
	"fmt"
	"strings"

	"github.com/lkeller19/bankledger/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimal places and comma-grouped
// thousands, e.g. 1234.5 -> "1,234.50". The sign stays in front of the
// digits, so -10 renders as "-10.00".
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}

	b.WriteString(fracPart)
	return b.String()
}

// FormatAccountLabel renders the account header line used in the summary
// and the menu: "Checking#000000001,	balance: $1,234.56".
func FormatAccountLabel(kind string, id int, balance decimal.Decimal) string {
	return fmt.Sprintf("%s#%0*d,\tbalance: $%s", kind, constants.AccountNumberWidth, id, FormatMoney(balance))
}
