package vx

import (
	"slices"

	"github.com/jazzfool/vx/pkg/errors"
)

// Remove deletes a node and all of its descendants (no node may
// outlive its parent) and invalidates every handle naming them. The
// node's Unmount hook runs and the node is erased before its children
// are removed, so hooks in this mode see their parent but not their
// children's ancestors.
//
// Fails with ErrInvalidHandle for a stale handle (including a second
// Remove of the same handle) and with ErrNodeInUse if any node in the
// subtree is currently checked out. On failure nothing is removed.
func (g *Registry) Remove(h AnyRef) error {
	if err := g.beginRemove(h, "vx.Remove"); err != nil {
		return err
	}
	g.detachFromParent(h)
	g.removeNodeFirst(h)
	return nil
}

// RemoveChildrenFirst is Remove with depth-first order: descendants
// are removed before the node itself, so the node's own hook sees its
// parent but no children.
func (g *Registry) RemoveChildrenFirst(h AnyRef) error {
	if err := g.beginRemove(h, "vx.RemoveChildrenFirst"); err != nil {
		return err
	}
	g.detachFromParent(h)
	g.removeChildrenFirst(h)
	return nil
}

// RemoveLate is Remove with deferred erasure: every Unmount hook in
// the subtree runs over the still-intact tree (hooks see both parent
// and children), then the whole subtree is erased in one sweep. The
// most flexible and the slowest order — two passes over the subtree.
func (g *Registry) RemoveLate(h AnyRef) error {
	if err := g.beginRemove(h, "vx.RemoveLate"); err != nil {
		return err
	}
	var doomed []AnyRef
	g.runLateHooks(h, &doomed)
	g.detachFromParent(h)
	for _, d := range doomed {
		// A hook may have already removed this node through the
		// registry; releasing the slot twice would corrupt the arena.
		if _, err := g.resolveReserved(d, "vx.RemoveLate"); err != nil {
			continue
		}
		kind := g.nodes[d.index].kindName()
		g.release(d.index)
		if g.observer != nil {
			g.observer.Removed(d, kind)
		}
	}
	return nil
}

// beginRemove validates the whole subtree up front so that removal
// either proceeds in full or not at all.
func (g *Registry) beginRemove(h AnyRef, op string) error {
	if _, err := g.resolve(h, op); err != nil {
		return err
	}
	var busy bool
	g.walk(h, func(c AnyRef) bool {
		if g.nodes[c.index].inUse() {
			busy = true
			return false
		}
		return true
	})
	if busy {
		return refErr(op, errors.KindNodeInUse, h)
	}
	if h == g.root {
		g.root = AnyRef{}
	}
	return nil
}

func (g *Registry) detachFromParent(h AnyRef) {
	parent := g.nodes[h.index].parent
	if parent.IsNil() {
		return
	}
	if pn, err := g.resolveReserved(parent, "vx.Remove"); err == nil {
		pn.children = slices.DeleteFunc(pn.children, func(c AnyRef) bool { return c == h })
	}
}

// removeNodeFirst runs the node's hook, erases it, then recurses into
// its children.
//
// A hook may itself remove nodes deeper in the subtree through the
// registry, so every handle is re-validated before its slot is touched
// again; handles gone stale mid-removal are skipped, never re-freed.
func (g *Registry) removeNodeFirst(h AnyRef) {
	if _, err := g.resolveReserved(h, "vx.Remove"); err != nil {
		return
	}
	children := slices.Clone(g.nodes[h.index].children)
	g.runUnmountHook(h)
	kind := g.nodes[h.index].kindName()
	g.release(h.index)
	if g.observer != nil {
		g.observer.Removed(h, kind)
	}
	for _, child := range children {
		g.removeNodeFirst(child)
	}
}

// removeChildrenFirst recurses into children, then runs the node's
// hook and erases it. Handles gone stale mid-removal are skipped.
func (g *Registry) removeChildrenFirst(h AnyRef) {
	if _, err := g.resolveReserved(h, "vx.RemoveChildrenFirst"); err != nil {
		return
	}
	for _, child := range slices.Clone(g.nodes[h.index].children) {
		g.removeChildrenFirst(child)
	}
	g.runUnmountHook(h)
	kind := g.nodes[h.index].kindName()
	g.release(h.index)
	if g.observer != nil {
		g.observer.Removed(h, kind)
	}
}

// runLateHooks runs hooks pre-order over the intact subtree, recording
// every visited handle for the later erasure sweep. Nodes a prior hook
// already removed are skipped.
func (g *Registry) runLateHooks(h AnyRef, doomed *[]AnyRef) {
	if _, err := g.resolveReserved(h, "vx.RemoveLate"); err != nil {
		return
	}
	*doomed = append(*doomed, h)
	g.runUnmountHook(h)
	for _, child := range slices.Clone(g.nodes[h.index].children) {
		g.runLateHooks(child, doomed)
	}
}

// runUnmountHook invokes the component's Unmount with its data moved
// out, so the hook can use the registry freely; a checkout of the
// node's own handle from inside the hook fails with ErrNodeInUse.
// Hook panics are recovered and reported; removal continues.
func (g *Registry) runUnmountHook(h AnyRef) {
	n := &g.nodes[h.index]
	data := n.data
	if data == nil {
		return
	}
	n.data = nil
	n.exclusive = true
	defer func() {
		nn := &g.nodes[h.index]
		nn.data = data
		nn.exclusive = false
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "vx.Remove",
				Value:      r,
				StackTrace: errors.CaptureStack(),
			})
		}
	}()
	data.Unmount(g)
}
