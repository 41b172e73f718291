// Package vx provides the component registry at the heart of a
// retained-mode UI tree.
//
// No component ever holds a live reference to another component. All
// cross-component access goes through a single Registry that owns every
// component instance, its parent link, its ordered children, and its
// event-listener tables. Components name each other with handles —
// typed (Ref[T]) or untyped (AnyRef) — which are plain values that stay
// cheap to hold, copy, and compare even after the node they name has
// been removed. Only dereferencing a stale handle fails.
//
// # Checkout discipline
//
// Access to component data is scoped: Borrow and BorrowMut run a
// closure with the data checked out of the registry and always check it
// back in, on every exit path including panics. At most one exclusive
// checkout per node exists at any instant; shared checkouts may nest
// freely but never overlap an exclusive one. A conflicting checkout
// fails immediately with ErrNodeInUse — there is no blocking wait,
// because the whole registry runs on one logical thread driven by a
// host event loop.
//
// # Events and updates
//
// Components declare named event slots in their factory and any other
// component may listen on a (owner, slot) pair. Emit dispatches to the
// listener list snapshotted at fire time, in registration order, each
// callback receiving the registry for fresh checkouts. After mutating
// state, component logic calls Update with explicit repaint and
// propagate flags; propagation walks the parent chain invoking each
// ancestor's OnUpdate hook until the root or the first ancestor that
// declines to propagate further. Repaint requests accumulate in the
// FrameScheduler for an external rendering collaborator to drain.
//
// # Typical usage
//
//	root, err := vx.Mount(g, vx.AnyRef{}, func(g *vx.Registry, cref vx.Ref[*App]) (*App, error) {
//	    btn, err := kit.NewButton(g, cref.AsAny(), th)
//	    if err != nil {
//	        return nil, err
//	    }
//	    // ... listen on btn's click slot ...
//	    return &App{btn: btn}, nil
//	})
package vx
