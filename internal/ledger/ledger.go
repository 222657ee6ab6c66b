// Package ledger implements the core account model: opening checking and
// savings accounts, applying transactions under the per-kind policy, and
// running the monthly interest/fee triggers. It holds no persistence or
// terminal concerns; the shell drives it through the service layer.
package ledger

import "github.com/shopspring/decimal"

// Ledger owns every account and the selection cursor. The cursor is kept as
// an identifier and re-resolved by lookup on each use, so it can never
// dangle.
type Ledger struct {
	accounts   []*Account
	nextID     int
	selectedID int
}

// New returns an empty ledger. Identifiers start at 1.
func New() *Ledger {
	return &Ledger{nextID: 1}
}

// Restore rebuilds a ledger from persisted state.
func Restore(accounts []*Account, nextID, selectedID int) *Ledger {
	accts := make([]*Account, len(accounts))
	copy(accts, accounts)
	return &Ledger{accounts: accts, nextID: nextID, selectedID: selectedID}
}

// OpenAccount creates an account of the given kind, seeded with one user
// transaction for the initial deposit. The initial amount is accepted as
// given; no sign check is performed.
func (l *Ledger) OpenAccount(kind Kind, initial decimal.Decimal, today string) *Account {
	a := newAccount(kind, l.nextID, initial, today)
	l.nextID++
	l.accounts = append(l.accounts, a)
	return a
}

// Accounts returns the accounts in creation order.
func (l *Ledger) Accounts() []*Account {
	out := make([]*Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

func (l *Ledger) NextID() int {
	return l.nextID
}

func (l *Ledger) SelectedID() int {
	return l.selectedID
}

// Select moves the cursor to the given account. An unknown identifier leaves
// the current selection in place.
func (l *Ledger) Select(id int) {
	for _, a := range l.accounts {
		if a.id == id {
			l.selectedID = id
			return
		}
	}
}

// Selected resolves the cursor to an account, or nil when nothing is
// selected.
func (l *Ledger) Selected() *Account {
	if l.selectedID == 0 {
		return nil
	}
	for _, a := range l.accounts {
		if a.id == l.selectedID {
			return a
		}
	}
	return nil
}

// SummaryRow is one display line of the ledger summary.
type SummaryRow struct {
	Kind    Kind
	ID      int
	Balance decimal.Decimal
}

// Summary lists every account in creation order.
func (l *Ledger) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(l.accounts))
	for _, a := range l.accounts {
		rows = append(rows, SummaryRow{Kind: a.kind, ID: a.id, Balance: a.balance})
	}
	return rows
}

// Transactions lists the selected account's history.
func (l *Ledger) Transactions() ([]Transaction, error) {
	a := l.Selected()
	if a == nil {
		return nil, ErrNoAccountSelected
	}
	return a.Transactions(), nil
}

// AddTransaction forwards to the selected account's policy. The bool reports
// whether the transaction was accepted; rejections are silent by design.
func (l *Ledger) AddTransaction(date string, amount decimal.Decimal) (bool, error) {
	a := l.Selected()
	if a == nil {
		return false, ErrNoAccountSelected
	}
	return a.Apply(date, amount), nil
}

// RunMonthlyTriggers accrues interest on every account in creation order,
// then charges the low-balance fee where it applies (checking only).
func (l *Ledger) RunMonthlyTriggers(today string) {
	for _, a := range l.accounts {
		a.accrueInterest(today)
		a.applyLowBalanceFee(today)
	}
}
