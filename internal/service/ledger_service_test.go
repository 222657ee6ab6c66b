package service_test

import (
	"testing"
	"time"

	"github.com/lkeller19/bankledger/internal/constants"
	"github.com/lkeller19/bankledger/internal/ledger"
	"github.com/lkeller19/bankledger/internal/service"
	"github.com/lkeller19/bankledger/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo keeps the last saved snapshot in memory.
type fakeRepo struct {
	snap *store.Snapshot
}

func (f *fakeRepo) SaveSnapshot(snap *store.Snapshot) error {
	f.snap = snap
	return nil
}

func (f *fakeRepo) LoadSnapshot() (*store.Snapshot, error) {
	if f.snap == nil {
		return nil, store.ErrNoSnapshot
	}
	return f.snap, nil
}

func (f *fakeRepo) Close() error { return nil }

func newTestService() (*service.Service, *fakeRepo) {
	repo := &fakeRepo{}
	return service.NewService(repo), repo
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestOpenAccountRejectsNonNumericAmount(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.OpenAccount("checking", "abc")
	assert.Error(t, err)
	assert.Nil(t, repo.snap, "nothing must be saved on a parse fault")
}

func TestOpenAccountUnknownKindIsNoOp(t *testing.T) {
	svc, repo := newTestService()

	outcome, err := svc.OpenAccount("credit", "100")
	require.NoError(t, err, "an unknown kind is a business no-op, not an error")
	assert.False(t, outcome.Applied)
	assert.Nil(t, repo.snap)

	rows, err := svc.Summary()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOpenSelectListFlow(t *testing.T) {
	svc, _ := newTestService()

	outcome, err := svc.OpenAccount("checking", "500")
	require.NoError(t, err)
	require.True(t, outcome.Applied)
	assert.Equal(t, 1, outcome.Row.ID)

	require.NoError(t, svc.SelectAccount("1"))

	txs, err := svc.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, time.Now().Format(constants.DateFormat), txs[0].Date)
	assert.True(t, txs[0].Amount.Equal(dec(t, "500")))
	assert.False(t, txs[0].System)
}

func TestSelectAccountFaultsOnNonNumericInput(t *testing.T) {
	svc, _ := newTestService()

	assert.Error(t, svc.SelectAccount("one"))
}

func TestSelectUnknownAccountKeepsSelection(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.OpenAccount("savings", "100")
	require.NoError(t, err)
	require.NoError(t, svc.SelectAccount("1"))

	require.NoError(t, svc.SelectAccount("99"))

	row, err := svc.SelectedRow()
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 1, row.ID)
}

func TestTransactionsWithoutSelection(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.OpenAccount("checking", "100")
	require.NoError(t, err)

	_, err = svc.Transactions()
	assert.ErrorIs(t, err, ledger.ErrNoAccountSelected)
}

func TestAddTransactionWithoutSelection(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddTransaction("2024-03-01", "10")
	assert.ErrorIs(t, err, ledger.ErrNoAccountSelected)
}

func TestAddTransactionValidatesInput(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.OpenAccount("checking", "100")
	require.NoError(t, err)
	require.NoError(t, svc.SelectAccount("1"))

	_, err = svc.AddTransaction("03-01-2024", "10")
	assert.Error(t, err, "malformed date must fault")

	_, err = svc.AddTransaction("2024-03-01", "ten")
	assert.Error(t, err, "non-numeric amount must fault")
}

func TestAddTransactionAppliesAndPersists(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.OpenAccount("checking", "500")
	require.NoError(t, err)
	require.NoError(t, svc.SelectAccount("1"))

	applied, err := svc.AddTransaction("2024-03-05", "-200")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = svc.AddTransaction("2024-03-06", "-600")
	require.NoError(t, err)
	assert.False(t, applied, "overdraft is rejected, not an error")

	rows, err := svc.Summary()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Balance.Equal(dec(t, "300")))

	txs, err := svc.Transactions()
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestRunMonthlyTriggersPersists(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.OpenAccount("checking", "50")
	require.NoError(t, err)

	require.NoError(t, svc.RunMonthlyTriggers())

	rows, err := svc.Summary()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Balance.Equal(dec(t, "40.05")), "balance = %s", rows[0].Balance)
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := ledger.New()
	l.OpenAccount(ledger.Checking, dec(t, "50"), "2024-03-01")
	l.OpenAccount(ledger.Savings, dec(t, "1000"), "2024-03-01")
	l.RunMonthlyTriggers("2024-04-01")
	l.Select(2)

	restored, err := service.FromSnapshot(service.ToSnapshot(l))
	require.NoError(t, err)

	assert.Equal(t, l.NextID(), restored.NextID())
	assert.Equal(t, l.SelectedID(), restored.SelectedID())

	want := l.Accounts()
	got := restored.Accounts()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID(), got[i].ID())
		assert.Equal(t, want[i].Kind(), got[i].Kind())
		assert.True(t, want[i].Balance().Equal(got[i].Balance()))

		wantTxs := want[i].Transactions()
		gotTxs := got[i].Transactions()
		require.Len(t, gotTxs, len(wantTxs))
		for j := range wantTxs {
			assert.Equal(t, wantTxs[j].Date, gotTxs[j].Date)
			assert.True(t, wantTxs[j].Amount.Equal(gotTxs[j].Amount))
			assert.Equal(t, wantTxs[j].System, gotTxs[j].System)
		}
	}
}

func TestFromSnapshotRejectsCorruptRecords(t *testing.T) {
	_, err := service.FromSnapshot(&store.Snapshot{
		NextID:   2,
		Accounts: []store.AccountRecord{{ID: 1, Kind: "credit", Balance: "10"}},
	})
	assert.Error(t, err)

	_, err = service.FromSnapshot(&store.Snapshot{
		NextID:   2,
		Accounts: []store.AccountRecord{{ID: 1, Kind: "Checking", Balance: "not-a-number"}},
	})
	assert.Error(t, err)
}
