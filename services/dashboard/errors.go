package dashboard

import (
	"errors"
	"fmt"
)

// ErrBusy signals that another submission is still outstanding; the caller
// must retry after it completes, requests are never queued.
var ErrBusy = errors.New("another request is already in progress")

// ErrConfirmationRequired signals that a deletion was attempted without the
// explicit user confirmation step.
var ErrConfirmationRequired = errors.New("deletion requires confirmation")

// ErrNoEditSession signals an edit-mode operation while no record is under
// edit.
var ErrNoEditSession = errors.New("no editing session is open")

// ValidationError reports field-keyed messages for a rejected candidate. It
// never reaches the remote API and leaves committed state untouched.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// StateError reports an operation on a record whose identifier is no longer
// present locally. Non-fatal.
type StateError struct {
	Op string
	ID string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: no time off entry with id %q", e.Op, e.ID)
}
