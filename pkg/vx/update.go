package vx

import "github.com/jazzfool/vx/pkg/errors"

// Update is called by component logic after mutating state through a
// checkout. repaint marks the node paint-dirty in the FrameScheduler
// for the rendering collaborator. propagate walks the parent chain in
// strict child-to-root order, invoking each ancestor's OnUpdate hook
// under an exclusive checkout; the hook's returned flags feed that
// ancestor's repaint and decide whether the walk continues. The walk
// terminates at the root or at the first ancestor that declines —
// bounded by tree depth, since the parent chain is finite and acyclic.
//
// Update does not re-invoke the hook of h itself: its own logic has
// just run, and h is typically still checked out by the caller.
//
// Fails with ErrInvalidHandle for a stale or still-mounting handle and
// with ErrNodeInUse if a propagated-to ancestor is checked out.
func (g *Registry) Update(h AnyRef, repaint Repaint, propagate Propagate) error {
	n, err := g.resolve(h, "vx.Update")
	if err != nil {
		return err
	}
	if g.observer != nil {
		g.observer.Updated(h, repaint, propagate)
	}
	if repaint == RepaintYes {
		g.frames.scheduleRepaint(h, n.depth)
	}
	if propagate != PropagateYes {
		return nil
	}

	cur := n.parent
	for !cur.IsNil() {
		cn, err := g.resolve(cur, "vx.Update")
		if err != nil {
			return err
		}
		depth := cn.depth
		next := cn.parent

		rp, pg, err := g.invokeUpdateHook(cur)
		if err != nil {
			return err
		}
		if rp == RepaintYes {
			g.frames.scheduleRepaint(cur, depth)
		}
		if pg != PropagateYes {
			break
		}
		cur = next
	}
	return nil
}

// invokeUpdateHook runs a component's OnUpdate under an exclusive
// checkout. A hook panic is recovered and reported, and dampens the
// propagation as if the hook had returned (RepaintNo, PropagateNo).
func (g *Registry) invokeUpdateHook(h AnyRef) (Repaint, Propagate, error) {
	rp, pg := RepaintNo, PropagateNo
	err := g.BorrowAnyMut(h, func(g *Registry, c Component) error {
		defer func() {
			if r := recover(); r != nil {
				errors.ReportPanic(&errors.PanicError{
					Op:         "vx.Update",
					Value:      r,
					StackTrace: errors.CaptureStack(),
				})
			}
		}()
		rp, pg = c.OnUpdate(g)
		return nil
	})
	return rp, pg, err
}
