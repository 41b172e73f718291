package vx

import "fmt"

// AnyRef is an untyped handle naming a node in a Registry. It is a
// (slot index, generation) pair: a relation, never an owner. The zero
// value is the nil handle.
//
// Handles remain valid values after the node they name is removed;
// only dereferencing a stale handle fails, with ErrInvalidHandle.
type AnyRef struct {
	index uint32
	gen   uint32
}

// IsNil reports whether the handle is the nil handle.
func (r AnyRef) IsNil() bool {
	return r.gen == 0
}

func (r AnyRef) String() string {
	if r.IsNil() {
		return "vx.Ref(nil)"
	}
	return fmt.Sprintf("vx.Ref(%d@%d)", r.index, r.gen)
}

// Ref is a typed handle naming a node holding a component of kind T.
// It adds a compile-time kind to AnyRef; the registry additionally
// validates the stored kind tag on every dereference, so a wrongly
// typed handle fails with ErrKindMismatch instead of misreading data.
type Ref[T Component] struct {
	any AnyRef
}

// AsAny erases the type, returning the underlying untyped handle.
func (r Ref[T]) AsAny() AnyRef {
	return r.any
}

// IsNil reports whether the handle is the nil handle.
func (r Ref[T]) IsNil() bool {
	return r.any.IsNil()
}

func (r Ref[T]) String() string {
	return r.any.String()
}

// ToTyped attaches a component kind to an untyped handle. The cast
// itself never fails; every subsequent dereference through the typed
// handle checks the stored kind tag and fails with ErrKindMismatch if
// T does not match the node's actual kind.
func ToTyped[T Component](h AnyRef) Ref[T] {
	return Ref[T]{any: h}
}
