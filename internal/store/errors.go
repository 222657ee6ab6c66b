package store

import "errors"

var (
	// ErrNoSnapshot means nothing has been saved yet.
	ErrNoSnapshot = errors.New("no saved ledger snapshot")
)
