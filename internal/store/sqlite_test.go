package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lkeller19/bankledger/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "ledger.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func sampleSnapshot() *store.Snapshot {
	return &store.Snapshot{
		NextID:     3,
		SelectedID: 2,
		Accounts: []store.AccountRecord{
			{
				ID:      1,
				Kind:    "Checking",
				Balance: "40.05",
				History: []store.TransactionRecord{
					{Date: "2024-03-01", Amount: "50", System: false},
					{Date: "2024-04-01", Amount: "0.05", System: true},
					{Date: "2024-04-01", Amount: "-10", System: true},
				},
			},
			{
				ID:      2,
				Kind:    "Savings",
				Balance: "1020",
				History: []store.TransactionRecord{
					{Date: "2024-03-01", Amount: "1000", System: false},
					{Date: "2024-04-01", Amount: "20", System: true},
				},
			},
		},
	}
}

func TestLoadSnapshotWithoutSave(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LoadSnapshot()
	assert.ErrorIs(t, err, store.ErrNoSnapshot)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	snap := sampleSnapshot()

	require.NoError(t, s.SaveSnapshot(snap))

	loaded, err := s.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestSaveSnapshotReplacesPreviousState(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot(sampleSnapshot()))

	second := &store.Snapshot{
		NextID:     2,
		SelectedID: 0,
		Accounts: []store.AccountRecord{
			{
				ID:      1,
				Kind:    "Savings",
				Balance: "7",
				History: []store.TransactionRecord{
					{Date: "2024-05-01", Amount: "7", System: false},
				},
			},
		},
	}
	require.NoError(t, s.SaveSnapshot(second))

	loaded, err := s.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestSaveSnapshotEmptyLedger(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot(&store.Snapshot{NextID: 1}))

	loaded, err := s.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.NextID)
	assert.Equal(t, 0, loaded.SelectedID)
	assert.Empty(t, loaded.Accounts)
}
