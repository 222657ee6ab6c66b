package ledger_test

import (
	"testing"

	"github.com/lkeller19/bankledger/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAccountAssignsSequentialIDs(t *testing.T) {
	l := ledger.New()

	a1 := l.OpenAccount(ledger.Checking, dec(t, "100"), "2024-03-01")
	a2 := l.OpenAccount(ledger.Savings, dec(t, "200"), "2024-03-01")
	a3 := l.OpenAccount(ledger.Checking, dec(t, "300"), "2024-03-02")

	assert.Equal(t, 1, a1.ID())
	assert.Equal(t, 2, a2.ID())
	assert.Equal(t, 3, a3.ID())
	assert.Equal(t, 4, l.NextID())
}

func TestSummaryListsAccountsInCreationOrder(t *testing.T) {
	l := ledger.New()
	l.OpenAccount(ledger.Savings, dec(t, "200"), "2024-03-01")
	l.OpenAccount(ledger.Checking, dec(t, "100"), "2024-03-01")

	rows := l.Summary()
	require.Len(t, rows, 2)

	assert.Equal(t, ledger.Savings, rows[0].Kind)
	assert.Equal(t, 1, rows[0].ID)
	assert.True(t, rows[0].Balance.Equal(dec(t, "200")))

	assert.Equal(t, ledger.Checking, rows[1].Kind)
	assert.Equal(t, 2, rows[1].ID)
	assert.True(t, rows[1].Balance.Equal(dec(t, "100")))
}

func TestSelectUnknownLeavesSelectionUnchanged(t *testing.T) {
	l := ledger.New()
	l.OpenAccount(ledger.Checking, dec(t, "100"), "2024-03-01")

	// Nothing selected yet; selecting a missing id keeps it that way.
	l.Select(99)
	assert.Nil(t, l.Selected())

	l.Select(1)
	require.NotNil(t, l.Selected())

	l.Select(99)
	require.NotNil(t, l.Selected())
	assert.Equal(t, 1, l.Selected().ID())
}

func TestTransactionsWithoutSelection(t *testing.T) {
	l := ledger.New()
	l.OpenAccount(ledger.Checking, dec(t, "100"), "2024-03-01")

	_, err := l.Transactions()
	assert.ErrorIs(t, err, ledger.ErrNoAccountSelected)
}

func TestAddTransactionWithoutSelection(t *testing.T) {
	l := ledger.New()

	_, err := l.AddTransaction("2024-03-01", dec(t, "10"))
	assert.ErrorIs(t, err, ledger.ErrNoAccountSelected)
}

func TestAddTransactionForwardsToSelectedAccount(t *testing.T) {
	l := ledger.New()
	l.OpenAccount(ledger.Checking, dec(t, "500"), "2024-03-01")
	l.OpenAccount(ledger.Checking, dec(t, "10"), "2024-03-01")
	l.Select(1)

	applied, err := l.AddTransaction("2024-03-02", dec(t, "-200"))
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = l.AddTransaction("2024-03-02", dec(t, "-600"))
	require.NoError(t, err)
	assert.False(t, applied)

	txs, err := l.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)

	// The other account is untouched.
	l.Select(2)
	txs, err = l.Transactions()
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestRestoreRebuildsLedgerExactly(t *testing.T) {
	history := []ledger.Transaction{
		ledger.NewTransaction("2024-03-01", dec(t, "500"), false),
		ledger.NewTransaction("2024-04-01", dec(t, "0.5"), true),
	}
	a := ledger.RestoreAccount(ledger.Checking, 7, dec(t, "500.5"), history)

	l := ledger.Restore([]*ledger.Account{a}, 8, 7)

	assert.Equal(t, 8, l.NextID())
	require.NotNil(t, l.Selected())
	assert.Equal(t, 7, l.Selected().ID())
	assert.True(t, l.Selected().Balance().Equal(dec(t, "500.5")))

	txs, err := l.Transactions()
	require.NoError(t, err)
	assert.Equal(t, history, txs)

	// The next opened account continues the identifier sequence.
	b := l.OpenAccount(ledger.Savings, dec(t, "1"), "2024-05-01")
	assert.Equal(t, 8, b.ID())
}

func TestNegativeInitialDepositAccepted(t *testing.T) {
	// Opening performs no sign check on the initial amount; this is preserved
	// legacy behavior.
	l := ledger.New()
	a := l.OpenAccount(ledger.Checking, dec(t, "-50"), "2024-03-01")

	assert.True(t, a.Balance().Equal(dec(t, "-50")))
	assert.Len(t, a.Transactions(), 1)
}
