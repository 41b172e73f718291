package vx

import (
	"reflect"

	"github.com/jazzfool/vx/pkg/errors"
)

// Borrow checks out shared, read-only access to the component behind a
// typed handle for the duration of fn. Any number of shared checkouts
// of one node may nest; a shared checkout never coexists with an
// exclusive one. The registry is passed back into fn so nested
// operations on other nodes remain possible.
//
// The checkout is returned on every exit path, including panics.
func Borrow[T Component](g *Registry, ref Ref[T], fn func(g *Registry, c T) error) error {
	const op = "vx.Borrow"
	if err := g.checkKind(ref.any, op, reflect.TypeOf((*T)(nil)).Elem()); err != nil {
		return err
	}
	data, err := g.checkoutShared(ref.any, op)
	if err != nil {
		return err
	}
	defer g.checkinShared(ref.any.index)
	return fn(g, data.(T))
}

// BorrowMut checks out exclusive, mutable access to the component
// behind a typed handle for the duration of fn. The data is moved out
// of the registry while fn runs: a nested checkout of the same node —
// the classic re-entrant failure mode, e.g. a listener checking out
// its own owner from inside that owner's update — fails with
// ErrNodeInUse rather than deadlocking.
//
// The checkout is returned on every exit path, including panics.
func BorrowMut[T Component](g *Registry, ref Ref[T], fn func(g *Registry, c T) error) error {
	const op = "vx.BorrowMut"
	if err := g.checkKind(ref.any, op, reflect.TypeOf((*T)(nil)).Elem()); err != nil {
		return err
	}
	data, err := g.checkoutExclusive(ref.any, op)
	if err != nil {
		return err
	}
	defer g.checkinExclusive(ref.any.index, data)
	return fn(g, data.(T))
}

// BorrowAny is Borrow for untyped handles, as produced by traversal.
// fn receives the component as the Component interface.
func (g *Registry) BorrowAny(h AnyRef, fn func(g *Registry, c Component) error) error {
	data, err := g.checkoutShared(h, "vx.BorrowAny")
	if err != nil {
		return err
	}
	defer g.checkinShared(h.index)
	return fn(g, data)
}

// BorrowAnyMut is BorrowMut for untyped handles.
func (g *Registry) BorrowAnyMut(h AnyRef, fn func(g *Registry, c Component) error) error {
	data, err := g.checkoutExclusive(h, "vx.BorrowAnyMut")
	if err != nil {
		return err
	}
	defer g.checkinExclusive(h.index, data)
	return fn(g, data)
}

func (g *Registry) checkoutShared(h AnyRef, op string) (Component, error) {
	n, err := g.resolve(h, op)
	if err != nil {
		return nil, err
	}
	if n.exclusive {
		if g.observer != nil {
			g.observer.BorrowConflict(h)
		}
		return nil, refErr(op, errors.KindNodeInUse, h)
	}
	n.readers++
	if g.observer != nil {
		g.observer.Borrowed(h, false)
	}
	return n.data, nil
}

func (g *Registry) checkinShared(idx uint32) {
	g.nodes[idx].readers--
}

func (g *Registry) checkoutExclusive(h AnyRef, op string) (Component, error) {
	n, err := g.resolve(h, op)
	if err != nil {
		return nil, err
	}
	if n.exclusive || n.readers > 0 {
		if g.observer != nil {
			g.observer.BorrowConflict(h)
		}
		return nil, refErr(op, errors.KindNodeInUse, h)
	}
	data := n.data
	n.data = nil
	n.exclusive = true
	if g.observer != nil {
		g.observer.Borrowed(h, true)
	}
	return data, nil
}

func (g *Registry) checkinExclusive(idx uint32, data Component) {
	n := &g.nodes[idx]
	n.data = data
	n.exclusive = false
}
