package vx

import (
	"reflect"

	"github.com/jazzfool/vx/pkg/errors"
)

// node is one arena slot: the stored component instance plus the
// parent/children/listener metadata for it. Topology is metadata
// separate from component data and is readable without a checkout.
type node struct {
	data     Component
	kind     reflect.Type
	parent   AnyRef
	children []AnyRef
	slots    []*slotRecord
	depth    int

	// gen is the generation currently accepted by handles naming this
	// slot. It is bumped on free so stale handles stop resolving.
	gen  uint32
	live bool

	// mounting is set while the factory runs: the slot is reserved and
	// linkable but holds no data yet.
	mounting bool

	// Checkout accounting. One logical thread of control, so these are
	// plain counters checked synchronously — the "lock" is this flag.
	readers   int
	exclusive bool
}

// inUse reports whether any checkout (shared or exclusive) is live.
func (n *node) inUse() bool {
	return n.exclusive || n.readers > 0 || n.mounting
}

func (n *node) kindName() string {
	if n.kind == nil {
		return ""
	}
	return n.kind.String()
}

// alloc reserves a slot and returns its index, reusing freed slots
// before growing the arena. The returned slot is live with its current
// generation and otherwise zeroed.
func (g *Registry) alloc() uint32 {
	if len(g.free) > 0 {
		idx := g.free[len(g.free)-1]
		g.free = g.free[:len(g.free)-1]
		n := &g.nodes[idx]
		n.live = true
		return idx
	}
	g.nodes = append(g.nodes, node{gen: 1, live: true})
	return uint32(len(g.nodes) - 1)
}

// release erases a slot and invalidates every handle naming it.
func (g *Registry) release(idx uint32) {
	n := &g.nodes[idx]
	n.data = nil
	n.kind = nil
	n.parent = AnyRef{}
	n.children = nil
	n.slots = nil
	n.depth = 0
	n.live = false
	n.mounting = false
	n.readers = 0
	n.exclusive = false
	n.gen++
	g.live--
	g.free = append(g.free, idx)
}

// resolve maps a handle to its live node, failing with ErrInvalidHandle
// for nil, stale, or mounting handles.
func (g *Registry) resolve(h AnyRef, op string) (*node, error) {
	n, err := g.resolveReserved(h, op)
	if err != nil {
		return nil, err
	}
	if n.mounting {
		return nil, refErr(op, errors.KindInvalidHandle, h)
	}
	return n, nil
}

// resolveReserved is resolve but also accepts nodes still mounting,
// for operations legal from inside a factory (child linkage, slot
// declaration, listener registration).
func (g *Registry) resolveReserved(h AnyRef, op string) (*node, error) {
	if h.IsNil() || int(h.index) >= len(g.nodes) {
		return nil, refErr(op, errors.KindInvalidHandle, h)
	}
	n := &g.nodes[h.index]
	if !n.live || n.gen != h.gen {
		return nil, refErr(op, errors.KindInvalidHandle, h)
	}
	return n, nil
}

// checkKind validates a typed handle's kind against the stored tag.
func (g *Registry) checkKind(h AnyRef, op string, want reflect.Type) error {
	n, err := g.resolveReserved(h, op)
	if err != nil {
		return err
	}
	if n.kind != want {
		return &errors.RefError{
			Op:       op,
			Kind:     errors.KindMismatch,
			Ref:      h.String(),
			Expected: want.String(),
			Actual:   n.kindName(),
		}
	}
	return nil
}

func refErr(op string, kind errors.Kind, h AnyRef) error {
	return &errors.RefError{Op: op, Kind: kind, Ref: h.String()}
}
