package vx_test

import (
	"errors"
	"testing"

	vxerrors "github.com/jazzfool/vx/pkg/errors"
	"github.com/jazzfool/vx/pkg/vx"
	"github.com/jazzfool/vx/pkg/vxtest"
)

func hookedFactory(name string, log *[]string, hook func(*vx.Registry) (vx.Repaint, vx.Propagate)) vx.Factory[*probe] {
	return func(g *vx.Registry, cref vx.Ref[*probe]) (*probe, error) {
		return &probe{name: name, log: log, onUpdate: hook}, nil
	}
}

func propagating(name string, log *[]string) vx.Factory[*probe] {
	return hookedFactory(name, log, func(*vx.Registry) (vx.Repaint, vx.Propagate) {
		return vx.RepaintNo, vx.PropagateYes
	})
}

func TestUpdate_PropagatesChildToRoot(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()

	var log []string
	root := vxtest.MountRoot(ts, propagating("root", &log))
	p2 := vxtest.MountChild(ts, root.AsAny(), propagating("p2", &log))
	p1 := vxtest.MountChild(ts, p2.AsAny(), propagating("p1", &log))
	leaf := vxtest.MountChild(ts, p1.AsAny(), probeFactory("leaf", &log))

	if err := g.Update(leaf.AsAny(), vx.RepaintNo, vx.PropagateYes); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// Strict child-to-root order, the updated node's own hook excluded.
	assertStrings(t, log, []string{"update:p1", "update:p2", "update:root"})
}

func TestUpdate_DampeningStopsWalk(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()

	var log []string
	root := vxtest.MountRoot(ts, propagating("root", &log))
	p2 := vxtest.MountChild(ts, root.AsAny(), propagating("p2", &log))
	// p1 declines: the walk must not reach p2 or root.
	p1 := vxtest.MountChild(ts, p2.AsAny(), probeFactory("p1", &log))
	leaf := vxtest.MountChild(ts, p1.AsAny(), probeFactory("leaf", &log))

	if err := g.Update(leaf.AsAny(), vx.RepaintNo, vx.PropagateYes); err != nil {
		t.Fatalf("Update: %v", err)
	}
	assertStrings(t, log, []string{"update:p1"})
}

func TestUpdate_NoPropagateSkipsHooks(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()

	var log []string
	root := vxtest.MountRoot(ts, propagating("root", &log))
	leaf := vxtest.MountChild(ts, root.AsAny(), probeFactory("leaf", &log))

	if err := g.Update(leaf.AsAny(), vx.RepaintYes, vx.PropagateNo); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(log) != 0 {
		t.Fatalf("hooks ran without propagation: %v", log)
	}
}

func TestUpdate_RepaintMarksDirtyAndRequestsFrame(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()
	root := vxtest.MountRoot(ts, probeFactory("root", nil))

	if err := g.Update(root.AsAny(), vx.RepaintYes, vx.PropagateNo); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !g.Frames().NeedsFrame() {
		t.Fatal("NeedsFrame() = false after repaint update")
	}
	if ts.FramesRequested() != 1 {
		t.Fatalf("FramesRequested() = %d, want 1", ts.FramesRequested())
	}

	// Re-marking a dirty node neither duplicates nor re-signals.
	if err := g.Update(root.AsAny(), vx.RepaintYes, vx.PropagateNo); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.Frames().Dirty() != 1 {
		t.Fatalf("Dirty() = %d, want 1", g.Frames().Dirty())
	}
	if ts.FramesRequested() != 1 {
		t.Fatalf("FramesRequested() = %d after re-mark, want 1", ts.FramesRequested())
	}

	dirty := ts.Pump()
	if len(dirty) != 1 || dirty[0] != root.AsAny() {
		t.Fatalf("TakeDirty() = %v, want [%v]", dirty, root)
	}
	if g.Frames().NeedsFrame() {
		t.Fatal("NeedsFrame() = true after drain")
	}

	// A fresh mark after draining signals again.
	if err := g.Update(root.AsAny(), vx.RepaintYes, vx.PropagateNo); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ts.FramesRequested() != 2 {
		t.Fatalf("FramesRequested() = %d after drain, want 2", ts.FramesRequested())
	}
}

func TestUpdate_TakeDirtyOrdersParentsFirst(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()
	root := vxtest.MountRoot(ts, probeFactory("root", nil))
	a := vxtest.MountChild(ts, root.AsAny(), probeFactory("a", nil))
	aa := vxtest.MountChild(ts, a.AsAny(), probeFactory("aa", nil))

	// Mark deepest-first; the drain still yields parents first.
	for _, h := range []vx.AnyRef{aa.AsAny(), a.AsAny(), root.AsAny()} {
		if err := g.Update(h, vx.RepaintYes, vx.PropagateNo); err != nil {
			t.Fatalf("Update(%v): %v", h, err)
		}
	}

	dirty := ts.Pump()
	want := []vx.AnyRef{root.AsAny(), a.AsAny(), aa.AsAny()}
	if len(dirty) != len(want) {
		t.Fatalf("TakeDirty() = %v, want %v", dirty, want)
	}
	for i := range want {
		if dirty[i] != want[i] {
			t.Fatalf("TakeDirty() = %v, want %v", dirty, want)
		}
	}
}

func TestUpdate_AncestorHookRepaintFeedsScheduler(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()

	root := vxtest.MountRoot(ts, probeFactory("root", nil))
	p1 := vxtest.MountChild(ts, root.AsAny(), hookedFactory("p1", nil,
		func(*vx.Registry) (vx.Repaint, vx.Propagate) {
			return vx.RepaintYes, vx.PropagateNo
		}))
	leaf := vxtest.MountChild(ts, p1.AsAny(), probeFactory("leaf", nil))

	if err := g.Update(leaf.AsAny(), vx.RepaintNo, vx.PropagateYes); err != nil {
		t.Fatalf("Update: %v", err)
	}

	dirty := ts.Pump()
	if len(dirty) != 1 || dirty[0] != p1.AsAny() {
		t.Fatalf("TakeDirty() = %v, want [%v]", dirty, p1)
	}
}

func TestUpdate_HookPanicDampensPropagation(t *testing.T) {
	prev := vxerrors.DefaultHandler
	captured := &capturingHandler{}
	vxerrors.SetHandler(captured)
	defer vxerrors.SetHandler(prev)

	ts := vxtest.New(t)
	g := ts.Registry()

	var log []string
	root := vxtest.MountRoot(ts, propagating("root", &log))
	p1 := vxtest.MountChild(ts, root.AsAny(), hookedFactory("p1", &log,
		func(*vx.Registry) (vx.Repaint, vx.Propagate) {
			panic("hook exploded")
		}))
	leaf := vxtest.MountChild(ts, p1.AsAny(), probeFactory("leaf", &log))

	if err := g.Update(leaf.AsAny(), vx.RepaintNo, vx.PropagateYes); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// p1's hook ran and panicked; the walk stops there.
	assertStrings(t, log, []string{"update:p1"})
	if len(captured.panics) != 1 || captured.panics[0].Value != "hook exploded" {
		t.Fatalf("captured panics = %+v", captured.panics)
	}

	// p1 was checked back in on the panic path.
	if err := vx.BorrowMut(g, p1, func(*vx.Registry, *probe) error { return nil }); err != nil {
		t.Fatalf("BorrowMut(p1) after hook panic: %v", err)
	}
}

func TestUpdate_BorrowedAncestorFails(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()
	root := vxtest.MountRoot(ts, probeFactory("root", nil))
	leaf := vxtest.MountChild(ts, root.AsAny(), probeFactory("leaf", nil))

	err := vx.BorrowMut(g, root, func(g *vx.Registry, _ *probe) error {
		return g.Update(leaf.AsAny(), vx.RepaintNo, vx.PropagateYes)
	})
	if !errors.Is(err, vxerrors.ErrNodeInUse) {
		t.Fatalf("propagation into borrowed ancestor = %v, want ErrNodeInUse", err)
	}
}

func TestUpdate_StaleHandleFails(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()
	root := vxtest.MountRoot(ts, probeFactory("root", nil))
	a := vxtest.MountChild(ts, root.AsAny(), probeFactory("a", nil))

	if err := g.Remove(a.AsAny()); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := g.Update(a.AsAny(), vx.RepaintYes, vx.PropagateNo); !errors.Is(err, vxerrors.ErrInvalidHandle) {
		t.Fatalf("Update on removed node = %v, want ErrInvalidHandle", err)
	}
}

// counterRoot mirrors the counter pattern: state mutated by a listener
// on a child's slot, followed by an explicit update.
type counterRoot struct {
	vx.ComponentBase

	count int
	click vx.Slot
}

func TestUpdate_ClickIncrementsOnceAndUpdatesOnce(t *testing.T) {
	ts := vxtest.New(t)
	g := ts.Registry()

	root, err := vx.Mount(g, vx.AnyRef{}, func(g *vx.Registry, cref vx.Ref[*counterRoot]) (*counterRoot, error) {
		btn, err := vx.Child(g, cref.AsAny(), emitterFactory())
		if err != nil {
			return nil, err
		}
		var click vx.Slot
		if err := vx.Borrow(g, btn, func(_ *vx.Registry, e *emitter) error {
			click = e.slot
			return nil
		}); err != nil {
			return nil, err
		}
		if _, err := g.Listen(click, cref.AsAny(), func(g *vx.Registry, _ any) {
			if err := vx.BorrowMut(g, cref, func(g *vx.Registry, c *counterRoot) error {
				c.count++
				return nil
			}); err != nil {
				t.Errorf("listener checkout: %v", err)
				return
			}
			if err := g.Update(cref.AsAny(), vx.RepaintNo, vx.PropagateNo); err != nil {
				t.Errorf("listener update: %v", err)
			}
		}); err != nil {
			return nil, err
		}
		return &counterRoot{click: click}, nil
	})
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	var click vx.Slot
	if err := vx.Borrow(g, root, func(_ *vx.Registry, c *counterRoot) error {
		click = c.click
		return nil
	}); err != nil {
		t.Fatalf("Borrow: %v", err)
	}

	ts.Fire(click, nil)

	if err := vx.Borrow(g, root, func(_ *vx.Registry, c *counterRoot) error {
		if c.count != 1 {
			t.Fatalf("count = %d after one click, want 1", c.count)
		}
		return nil
	}); err != nil {
		t.Fatalf("Borrow: %v", err)
	}

	updates := ts.Recorder().Updates
	if len(updates) != 1 {
		t.Fatalf("recorded %d updates, want 1", len(updates))
	}
	u := updates[0]
	if u.Ref != root.AsAny() || u.Repaint != vx.RepaintNo || u.Propagate != vx.PropagateNo {
		t.Fatalf("update record = %+v", u)
	}
}
