package service

import (
	"fmt"

	"github.com/lkeller19/bankledger/internal/ledger"
	"github.com/lkeller19/bankledger/internal/store"
	"github.com/shopspring/decimal"
)

// ToSnapshot flattens a ledger into its persisted form.
func ToSnapshot(l *ledger.Ledger) *store.Snapshot {
	snap := &store.Snapshot{
		NextID:     l.NextID(),
		SelectedID: l.SelectedID(),
	}

	for _, a := range l.Accounts() {
		rec := store.AccountRecord{
			ID:      a.ID(),
			Kind:    string(a.Kind()),
			Balance: a.Balance().String(),
		}
		for _, t := range a.Transactions() {
			rec.History = append(rec.History, store.TransactionRecord{
				Date:   t.Date,
				Amount: t.Amount.String(),
				System: t.System,
			})
		}
		snap.Accounts = append(snap.Accounts, rec)
	}

	return snap
}

// FromSnapshot rebuilds the domain ledger from a persisted snapshot.
func FromSnapshot(snap *store.Snapshot) (*ledger.Ledger, error) {
	accounts := make([]*ledger.Account, 0, len(snap.Accounts))

	for _, rec := range snap.Accounts {
		kind, ok := ledger.ParseKind(rec.Kind)
		if !ok {
			return nil, fmt.Errorf("snapshot holds unknown account kind %q", rec.Kind)
		}

		balance, err := decimal.NewFromString(rec.Balance)
		if err != nil {
			return nil, fmt.Errorf("snapshot holds bad balance for account %d: %w", rec.ID, err)
		}

		history := make([]ledger.Transaction, 0, len(rec.History))
		for _, tx := range rec.History {
			amount, err := decimal.NewFromString(tx.Amount)
			if err != nil {
				return nil, fmt.Errorf("snapshot holds bad amount for account %d: %w", rec.ID, err)
			}
			history = append(history, ledger.NewTransaction(tx.Date, amount, tx.System))
		}

		accounts = append(accounts, ledger.RestoreAccount(kind, rec.ID, balance, history))
	}

	return ledger.Restore(accounts, snap.NextID, snap.SelectedID), nil
}
