package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/flashqual/internal/model"
)

var (
	// ErrRootScopeLive is returned when a root scope is requested while
	// another one still holds the liveness token.
	ErrRootScopeLive = errors.New("a root write protect scope is already live")
	// ErrScopeBorrowed is returned when a scope with a live child is used.
	ErrScopeBorrowed = errors.New("write protect scope is borrowed by a live child")
	// ErrScopeClosed is returned when a closed scope is used.
	ErrScopeClosed = errors.New("write protect scope is closed")
	// ErrLeakedScope is returned when a case returns with scopes still open.
	ErrLeakedScope = errors.New("test case leaked write protect scopes")
)

// FatalRestoreError means write protect could not be returned to its
// initial state. The chip protection is unknown and the run must stop.
type FatalRestoreError struct {
	Step    string
	Initial m.WriteProtectBits
	Err     error
}

func (e *FatalRestoreError) Error() string {
	return fmt.Sprintf("failed to restore write protect (%s) to %s: %v", e.Step, e.Initial, e.Err)
}

func (e *FatalRestoreError) Unwrap() error {
	return e.Err
}

// CasePanicError is the result of a case body that panicked.
type CasePanicError struct {
	Case  string
	Value any
	Stack []byte
}

func (e *CasePanicError) Error() string {
	return fmt.Sprintf("test case %s panicked: %v", e.Case, e.Value)
}
