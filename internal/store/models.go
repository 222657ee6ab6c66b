package store

// Snapshot is the persisted form of the whole ledger. It is decoupled from
// the domain types so the on-disk shape can evolve independently of the
// in-memory representation.
type Snapshot struct {
	NextID     int
	SelectedID int
	Accounts   []AccountRecord
}

// AccountRecord is one account in its persisted form. History order is the
// order of application.
type AccountRecord struct {
	ID      int
	Kind    string
	Balance string
	History []TransactionRecord
}

// TransactionRecord keeps the amount as a decimal string so a reloaded
// ledger matches the saved one exactly, with no precision loss.
type TransactionRecord struct {
	Date   string
	Amount string
	System bool
}
