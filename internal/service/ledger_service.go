// Package service sits between the shell and the core ledger. Every
// operation takes raw string input, loads the last saved snapshot, runs the
// domain operation and saves the result, so state survives across one-shot
// CLI invocations.
package service

import (
	"errors"
	"time"

	"github.com/lkeller19/bankledger/internal/constants"
	"github.com/lkeller19/bankledger/internal/ledger"
	"github.com/lkeller19/bankledger/internal/store"
	"github.com/lkeller19/bankledger/internal/validation"
)

type Service struct {
	repo store.Repository
}

func NewService(repo store.Repository) *Service {
	return &Service{repo: repo}
}

// OpenOutcome reports the result of opening an account. Applied is false
// when the kind was unknown; that is a business no-op, not an error.
type OpenOutcome struct {
	Applied bool
	Row     ledger.SummaryRow
}

// OpenAccount opens a checking or savings account with the given initial
// deposit. A non-numeric amount is an error; an unknown kind is a silent
// no-op.
func (s *Service) OpenAccount(kindRaw, amountRaw string) (OpenOutcome, error) {
	amount, err := validation.ParseAmount(amountRaw)
	if err != nil {
		return OpenOutcome{}, err
	}

	kind, ok := ledger.ParseKind(kindRaw)
	if !ok {
		return OpenOutcome{}, nil
	}

	l, err := s.LoadLedgerOrNew()
	if err != nil {
		return OpenOutcome{}, err
	}

	a := l.OpenAccount(kind, amount, today())

	if err := s.SaveLedger(l); err != nil {
		return OpenOutcome{}, err
	}

	return OpenOutcome{
		Applied: true,
		Row:     ledger.SummaryRow{Kind: a.Kind(), ID: a.ID(), Balance: a.Balance()},
	}, nil
}

// Summary lists every account in creation order.
func (s *Service) Summary() ([]ledger.SummaryRow, error) {
	l, err := s.LoadLedgerOrNew()
	if err != nil {
		return nil, err
	}
	return l.Summary(), nil
}

// SelectAccount moves the selection cursor. A non-numeric account number is
// an error; a number that matches no account leaves the selection unchanged.
func (s *Service) SelectAccount(numberRaw string) error {
	id, err := validation.ParseAccountNumber(numberRaw)
	if err != nil {
		return err
	}

	l, err := s.LoadLedgerOrNew()
	if err != nil {
		return err
	}

	l.Select(id)

	return s.SaveLedger(l)
}

// SelectedRow returns the selected account's summary row, or nil when
// nothing is selected.
func (s *Service) SelectedRow() (*ledger.SummaryRow, error) {
	l, err := s.LoadLedgerOrNew()
	if err != nil {
		return nil, err
	}

	a := l.Selected()
	if a == nil {
		return nil, nil
	}
	return &ledger.SummaryRow{Kind: a.Kind(), ID: a.ID(), Balance: a.Balance()}, nil
}

// Transactions lists the selected account's history. With no selection it
// returns ledger.ErrNoAccountSelected.
func (s *Service) Transactions() ([]ledger.Transaction, error) {
	l, err := s.LoadLedgerOrNew()
	if err != nil {
		return nil, err
	}
	return l.Transactions()
}

// AddTransaction applies a user transaction to the selected account. The
// bool reports whether the account's policy accepted it. Malformed input and
// a missing selection are errors.
func (s *Service) AddTransaction(dateRaw, amountRaw string) (bool, error) {
	if err := validation.ValidateDate(dateRaw); err != nil {
		return false, err
	}
	amount, err := validation.ParseAmount(amountRaw)
	if err != nil {
		return false, err
	}

	l, err := s.LoadLedgerOrNew()
	if err != nil {
		return false, err
	}

	applied, err := l.AddTransaction(dateRaw, amount)
	if err != nil {
		return false, err
	}

	if err := s.SaveLedger(l); err != nil {
		return false, err
	}
	return applied, nil
}

// RunMonthlyTriggers accrues interest on every account and charges the
// checking low-balance fee.
func (s *Service) RunMonthlyTriggers() error {
	l, err := s.LoadLedgerOrNew()
	if err != nil {
		return err
	}

	l.RunMonthlyTriggers(today())

	return s.SaveLedger(l)
}

// LoadLedgerOrNew returns the persisted ledger, or a fresh empty one when
// nothing has been saved yet.
func (s *Service) LoadLedgerOrNew() (*ledger.Ledger, error) {
	l, err := s.LoadLedger()
	if errors.Is(err, store.ErrNoSnapshot) {
		return ledger.New(), nil
	}
	return l, err
}

// LoadLedger returns the persisted ledger, passing store.ErrNoSnapshot
// through when nothing has been saved. The menu surfaces that case to the
// user instead of silently starting fresh.
func (s *Service) LoadLedger() (*ledger.Ledger, error) {
	snap, err := s.repo.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	return FromSnapshot(snap)
}

// SaveLedger persists the whole ledger as one snapshot.
func (s *Service) SaveLedger(l *ledger.Ledger) error {
	return s.repo.SaveSnapshot(ToSnapshot(l))
}

func today() string {
	return time.Now().Format(constants.DateFormat)
}
