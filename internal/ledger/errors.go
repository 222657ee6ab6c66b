package ledger

import "errors"

var (
	// ErrNoAccountSelected signals that a selection-dependent operation was
	// called before any account was selected. This is a workflow error in the
	// caller, not a business-rule rejection.
	ErrNoAccountSelected = errors.New("no account selected")
)
