package vx

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/jazzfool/vx/pkg/errors"
)

// Registry is the central mediator of a component tree. It exclusively
// owns every component instance; all cross-component access is a
// checkout through it. A Registry is an explicit value passed into
// factories, listeners, and update hooks — never ambient state — so
// multiple independent trees coexist in one process.
//
// A Registry is not safe for concurrent use. All mutation and event
// dispatch happens synchronously on one logical thread driven by a
// host event loop.
type Registry struct {
	nodes []node
	free  []uint32
	root  AnyRef
	live  int

	nextListener uint64
	frames       FrameScheduler
	observer     Observer
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// SetObserver installs an observer notified of registry operations.
// Pass nil to detach. Used by instrumentation; the registry itself
// never depends on it.
func (g *Registry) SetObserver(o Observer) {
	g.observer = o
}

// Frames returns the frame scheduler accumulating repaint requests.
func (g *Registry) Frames() *FrameScheduler {
	return &g.frames
}

// Root returns the root handle, or the nil handle before the first
// mount.
func (g *Registry) Root() AnyRef {
	return g.root
}

// Len returns the number of live nodes.
func (g *Registry) Len() int {
	return g.live
}

// Alive reports whether the handle names a live, fully mounted node.
func (g *Registry) Alive(h AnyRef) bool {
	_, err := g.resolve(h, "vx.Alive")
	return err == nil
}

// Mount instantiates a component by running its factory and storing
// the result. With a nil parent it mounts the tree root (at most one
// per registry); otherwise the new node is appended to the parent's
// children in mount order. The factory receives the component's own
// handle before the node holds data: it may create children under it,
// declare slots, and register listeners, but dereferencing it or
// calling Update on it fails until Mount returns.
func Mount[T Component](g *Registry, parent AnyRef, factory Factory[T]) (Ref[T], error) {
	const op = "vx.Mount"

	depth := 0
	if !parent.IsNil() {
		pn, err := g.resolveReserved(parent, op)
		if err != nil {
			return Ref[T]{}, err
		}
		depth = pn.depth + 1
	} else if !g.root.IsNil() {
		return Ref[T]{}, fmt.Errorf("%s: registry already has a root %v", op, g.root)
	}

	idx := g.alloc()
	n := &g.nodes[idx]
	n.kind = reflect.TypeOf((*T)(nil)).Elem()
	n.parent = parent
	n.depth = depth
	n.mounting = true
	cref := Ref[T]{any: AnyRef{index: idx, gen: n.gen}}
	g.live++

	if !parent.IsNil() {
		pn := &g.nodes[parent.index]
		pn.children = append(pn.children, cref.any)
	}

	data, err := factory(g, cref)
	if err != nil {
		g.abortMount(cref.any, parent)
		return Ref[T]{}, fmt.Errorf("%s: factory: %w", op, err)
	}

	// The factory may have grown the arena; re-fetch the slot.
	n = &g.nodes[idx]
	n.data = data
	n.mounting = false
	if parent.IsNil() {
		g.root = cref.any
	}
	if g.observer != nil {
		g.observer.Mounted(cref.any, n.kindName())
	}
	return cref, nil
}

// Child is Mount restricted to non-root nodes: insert composed with
// parent linkage.
func Child[T Component](g *Registry, parent AnyRef, factory Factory[T]) (Ref[T], error) {
	if parent.IsNil() {
		return Ref[T]{}, refErr("vx.Child", errors.KindInvalidHandle, parent)
	}
	return Mount(g, parent, factory)
}

// abortMount unwinds a reserved slot after a failed factory: children
// already mounted under it are torn down (their hooks run), and the
// reservation is detached from the parent and released.
func (g *Registry) abortMount(h AnyRef, parent AnyRef) {
	n := &g.nodes[h.index]
	for _, child := range slices.Clone(n.children) {
		g.removeNodeFirst(child)
	}
	if !parent.IsNil() {
		pn := &g.nodes[parent.index]
		pn.children = slices.DeleteFunc(pn.children, func(c AnyRef) bool { return c == h })
	}
	g.release(h.index)
}

// Parent returns the handle of the node's parent. The root returns the
// nil handle.
func (g *Registry) Parent(h AnyRef) (AnyRef, error) {
	n, err := g.resolve(h, "vx.Parent")
	if err != nil {
		return AnyRef{}, err
	}
	return n.parent, nil
}

// Children returns the node's child handles in order. The returned
// slice is a copy; mutating it does not affect the tree.
func (g *Registry) Children(h AnyRef) ([]AnyRef, error) {
	n, err := g.resolve(h, "vx.Children")
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// NodeView is a read-only snapshot of one node's topology metadata.
type NodeView struct {
	Parent   AnyRef
	Children []AnyRef
	Depth    int
	Kind     string
}

// Node returns a topology snapshot for the handle. No checkout is
// required: parent/child structure is always shared-readable.
func (g *Registry) Node(h AnyRef) (NodeView, error) {
	n, err := g.resolve(h, "vx.Node")
	if err != nil {
		return NodeView{}, err
	}
	return NodeView{
		Parent:   n.parent,
		Children: slices.Clone(n.children),
		Depth:    n.depth,
		Kind:     n.kindName(),
	}, nil
}

// Walk visits h and its descendants pre-order, children in order.
// Returning false from the visitor stops the walk.
func (g *Registry) Walk(h AnyRef, visit func(AnyRef) bool) error {
	if _, err := g.resolve(h, "vx.Walk"); err != nil {
		return err
	}
	g.walk(h, visit)
	return nil
}

func (g *Registry) walk(h AnyRef, visit func(AnyRef) bool) bool {
	if !visit(h) {
		return false
	}
	n := &g.nodes[h.index]
	for _, child := range slices.Clone(n.children) {
		if !g.walk(child, visit) {
			return false
		}
	}
	return true
}

// FindAncestor walks the parent chain from h (exclusive) toward the
// root and returns the first ancestor satisfying the predicate, or the
// nil handle.
func (g *Registry) FindAncestor(h AnyRef, pred func(AnyRef) bool) (AnyRef, error) {
	n, err := g.resolve(h, "vx.FindAncestor")
	if err != nil {
		return AnyRef{}, err
	}
	cur := n.parent
	for !cur.IsNil() {
		cn, err := g.resolve(cur, "vx.FindAncestor")
		if err != nil {
			return AnyRef{}, err
		}
		if pred(cur) {
			return cur, nil
		}
		cur = cn.parent
	}
	return AnyRef{}, nil
}
