// Package errors provides structured error handling for the vx registry.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for matching with errors.Is. Registry operations
// return *RefError values that report themselves as one of these.
var (
	// ErrInvalidHandle indicates a handle naming a removed or
	// never-existent node.
	ErrInvalidHandle = errors.New("invalid handle")
	// ErrNodeInUse indicates a checkout request on a node that is
	// already checked out incompatibly.
	ErrNodeInUse = errors.New("node in use")
	// ErrKindMismatch indicates a typed handle dereferenced against a
	// node storing a different component kind.
	ErrKindMismatch = errors.New("component kind mismatch")
)

// Kind identifies the category of a RefError.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidHandle indicates a stale or never-valid handle.
	KindInvalidHandle
	// KindNodeInUse indicates a conflicting checkout.
	KindNodeInUse
	// KindMismatch indicates a typed dereference against the wrong kind.
	KindMismatch
)

func (k Kind) String() string {
	switch k {
	case KindInvalidHandle:
		return "invalid-handle"
	case KindNodeInUse:
		return "node-in-use"
	case KindMismatch:
		return "kind-mismatch"
	default:
		return "unknown"
	}
}

// RefError represents a failed registry operation on a handle.
type RefError struct {
	// Op is the operation that failed (e.g., "vx.BorrowMut").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Ref is the string form of the offending handle.
	Ref string
	// Expected is the component kind named by the typed handle, for
	// KindMismatch errors.
	Expected string
	// Actual is the component kind stored in the node, for
	// KindMismatch errors.
	Actual string
}

func (e *RefError) Error() string {
	if e.Kind == KindMismatch && e.Expected != "" {
		return fmt.Sprintf("%s %s [%s]: expected %s, node holds %s", e.Op, e.Ref, e.Kind, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s %s [%s]", e.Op, e.Ref, e.Kind)
}

// Is reports whether the error matches one of the package sentinels.
func (e *RefError) Is(target error) bool {
	switch target {
	case ErrInvalidHandle:
		return e.Kind == KindInvalidHandle
	case ErrNodeInUse:
		return e.Kind == KindNodeInUse
	case ErrKindMismatch:
		return e.Kind == KindMismatch
	}
	return false
}

// PanicError represents a panic recovered inside a listener callback
// or an update hook.
type PanicError struct {
	// Op is the operation that panicked (e.g., "vx.Emit").
	Op string
	// Slot is the event slot being dispatched, if applicable.
	Slot string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("panic in %s slot=%s: %v", e.Op, e.Slot, e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// ErrorHandler receives panics recovered by the vx registry.
type ErrorHandler interface {
	// HandlePanic is called when a listener or hook panic is recovered.
	HandlePanic(err *PanicError)
}
