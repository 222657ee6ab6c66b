package store

// Repository is the snapshot boundary the shell saves and loads the whole
// ledger through. A snapshot is all-or-nothing: saving replaces everything
// previously stored, loading reconstructs everything that was saved.
type Repository interface {
	SaveSnapshot(snap *Snapshot) error
	LoadSnapshot() (*Snapshot, error)
	Close() error
}
