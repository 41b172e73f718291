package vx

// Repaint signals whether a component's visual output is stale and
// must be redrawn before the next frame.
type Repaint uint8

const (
	// RepaintNo leaves the component's visual output as-is.
	RepaintNo Repaint = iota
	// RepaintYes marks the component paint-dirty in the FrameScheduler.
	RepaintYes
)

func (r Repaint) String() string {
	if r == RepaintYes {
		return "repaint"
	}
	return "no-repaint"
}

// Propagate signals whether a component's parent should also be
// considered stale and have its own update hook re-invoked.
type Propagate uint8

const (
	// PropagateNo stops the update at this component.
	PropagateNo Propagate = iota
	// PropagateYes walks the parent chain invoking ancestor hooks.
	PropagateYes
)

func (p Propagate) String() string {
	if p == PropagateYes {
		return "propagate"
	}
	return "no-propagate"
}

// Component is implemented by all distinct elements of a UI tree.
// Component kinds are registered under their concrete type, which is
// almost always a pointer type so hooks can mutate state in place.
type Component interface {
	// OnUpdate is invoked by the update engine when a descendant's
	// change propagates to this component. The returned flags decide
	// whether this component is repainted and whether propagation
	// continues to its own parent.
	OnUpdate(g *Registry) (Repaint, Propagate)

	// Unmount is invoked right before the component is removed.
	//
	// Which neighbors still exist depends on the removal order used:
	// Remove runs the hook before erasing children, RemoveChildrenFirst
	// after, and RemoveLate runs every hook over the intact subtree
	// before erasing anything.
	Unmount(g *Registry)
}

// ComponentBase provides no-op defaults for the Component interface.
// Embed it in component structs to only override the hooks you need.
type ComponentBase struct{}

// OnUpdate does nothing and stops propagation.
func (ComponentBase) OnUpdate(*Registry) (Repaint, Propagate) {
	return RepaintNo, PropagateNo
}

// Unmount does nothing.
func (ComponentBase) Unmount(*Registry) {}

// Factory constructs a component instance during Mount. It receives
// the registry and the component's own not-yet-stored handle (cref),
// which it may hand to children and listener registrations but must
// not dereference or Update — the node holds no data until the
// factory returns.
type Factory[T Component] func(g *Registry, cref Ref[T]) (T, error)
