package ledger

import (
	"strings"

	"github.com/lkeller19/bankledger/internal/constants"
	"github.com/shopspring/decimal"
)

// Kind identifies the account variant; the variant decides the
// deposit/withdrawal policy and the interest rate.
type Kind string

const (
	Checking Kind = "Checking"
	Savings  Kind = "Savings"
)

var (
	checkingRate = decimal.RequireFromString("0.001")
	savingsRate  = decimal.RequireFromString("0.02")

	lowBalanceFloor = decimal.NewFromInt(100)
	lowBalanceFee   = decimal.NewFromInt(10)
)

// ParseKind maps raw shell input to an account kind. The bool result is false
// for anything unknown; opening an account with an unknown kind is a no-op.
func ParseKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "checking":
		return Checking, true
	case "savings":
		return Savings, true
	}
	return "", false
}

// Rate returns the fixed monthly interest rate for the kind.
func (k Kind) Rate() decimal.Decimal {
	if k == Savings {
		return savingsRate
	}
	return checkingRate
}

// Account holds a balance and the full ordered history of transactions that
// produced it. The balance always equals the sum of the history; both are
// only ever changed together.
type Account struct {
	id      int
	kind    Kind
	balance decimal.Decimal
	history []Transaction
}

func newAccount(kind Kind, id int, initial decimal.Decimal, today string) *Account {
	return &Account{
		id:      id,
		kind:    kind,
		balance: initial,
		history: []Transaction{NewTransaction(today, initial, false)},
	}
}

// RestoreAccount rebuilds an account from persisted state. Balance and
// history are trusted as stored so a reloaded ledger matches the saved one
// exactly.
func RestoreAccount(kind Kind, id int, balance decimal.Decimal, history []Transaction) *Account {
	h := make([]Transaction, len(history))
	copy(h, history)
	return &Account{id: id, kind: kind, balance: balance, history: h}
}

func (a *Account) ID() int {
	return a.id
}

func (a *Account) Kind() Kind {
	return a.kind
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Transactions returns a copy of the history; callers cannot reach the
// account's own slice.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// Apply runs the kind-specific policy for a user transaction and reports
// whether it was accepted. A rejection leaves the account untouched and is
// not an error.
func (a *Account) Apply(date string, amount decimal.Decimal) bool {
	candidate := a.balance.Add(amount)
	if candidate.IsNegative() {
		return false
	}
	if a.kind == Savings && !a.withinSavingsLimits(date) {
		return false
	}
	a.balance = candidate
	a.history = append(a.history, NewTransaction(date, amount, false))
	return true
}

// withinSavingsLimits counts prior user transactions against the daily and
// monthly caps. System transactions never count, and the counts run over the
// history as it stands before the new transaction is inserted.
func (a *Account) withinSavingsLimits(date string) bool {
	daily, monthly := 0, 0
	for _, t := range a.history {
		if t.System {
			continue
		}
		if t.sameDay(date) {
			daily++
		}
		if t.sameMonth(date) {
			monthly++
		}
	}
	return daily < constants.SavingsDailyLimit && monthly < constants.SavingsMonthlyLimit
}

// accrueInterest appends one system transaction for balance*rate. It always
// succeeds; there is no floor check on the interest itself.
func (a *Account) accrueInterest(today string) {
	interest := a.balance.Mul(a.kind.Rate())
	a.balance = a.balance.Add(interest)
	a.history = append(a.history, NewTransaction(today, interest, true))
}

// applyLowBalanceFee charges checking accounts 10 when the balance sits under
// 100 after interest accrual. The fee has no floor check and can push the
// balance negative.
func (a *Account) applyLowBalanceFee(today string) {
	if a.kind != Checking {
		return
	}
	if a.balance.GreaterThanOrEqual(lowBalanceFloor) {
		return
	}
	a.balance = a.balance.Sub(lowBalanceFee)
	a.history = append(a.history, NewTransaction(today, lowBalanceFee.Neg(), true))
}
