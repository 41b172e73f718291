// Package vxtest provides an isolated harness for testing component
// trees without a rendering backend or host event loop. It drives the
// same mount, event, and update paths as a real host but records the
// operation streams for assertions.
package vxtest

import (
	"testing"

	"github.com/jazzfool/vx/pkg/vx"
)

// Tester owns a registry wired to a Recorder and a frame-request
// counter. Create one per test with New; cleanup is automatic.
type Tester struct {
	t      *testing.T
	g      *vx.Registry
	rec    *Recorder
	frames int
}

// New creates a tester registered for cleanup via t.Cleanup.
func New(t *testing.T) *Tester {
	t.Helper()
	ts := &Tester{t: t, g: vx.New(), rec: &Recorder{}}
	ts.g.SetObserver(ts.rec)
	ts.g.Frames().OnNeedsFrame = func() { ts.frames++ }
	t.Cleanup(func() {
		if root := ts.g.Root(); !root.IsNil() {
			_ = ts.g.RemoveChildrenFirst(root)
		}
	})
	return ts
}

// Registry returns the registry under test.
func (ts *Tester) Registry() *vx.Registry { return ts.g }

// Recorder returns the operation recorder.
func (ts *Tester) Recorder() *Recorder { return ts.rec }

// FramesRequested returns how many times the scheduler signalled
// OnNeedsFrame.
func (ts *Tester) FramesRequested() int { return ts.frames }

// Fire emits an event on a slot, failing the test on error.
func (ts *Tester) Fire(slot vx.Slot, event any) {
	ts.t.Helper()
	if err := ts.g.Emit(slot, event); err != nil {
		ts.t.Fatalf("Emit(%v): %v", slot, err)
	}
}

// Pump drains the frame scheduler as a render loop would, returning
// the paint-dirty handles parents-first.
func (ts *Tester) Pump() []vx.AnyRef {
	return ts.g.Frames().TakeDirty()
}

// MountRoot mounts the tree root, failing the test on error.
func MountRoot[T vx.Component](ts *Tester, factory vx.Factory[T]) vx.Ref[T] {
	ts.t.Helper()
	ref, err := vx.Mount(ts.g, vx.AnyRef{}, factory)
	if err != nil {
		ts.t.Fatalf("Mount root: %v", err)
	}
	return ref
}

// MountChild mounts a component under parent, failing the test on
// error.
func MountChild[T vx.Component](ts *Tester, parent vx.AnyRef, factory vx.Factory[T]) vx.Ref[T] {
	ts.t.Helper()
	ref, err := vx.Child(ts.g, parent, factory)
	if err != nil {
		ts.t.Fatalf("Child: %v", err)
	}
	return ref
}

// RequireConsistent verifies the tree invariants: every live node is
// reachable from the root, every child's parent link points back at
// its parent, and no child appears twice.
func (ts *Tester) RequireConsistent() {
	ts.t.Helper()
	root := ts.g.Root()
	if root.IsNil() {
		if n := ts.g.Len(); n != 0 {
			ts.t.Fatalf("no root but %d live nodes", n)
		}
		return
	}
	visited := make(map[vx.AnyRef]bool)
	err := ts.g.Walk(root, func(h vx.AnyRef) bool {
		if visited[h] {
			ts.t.Fatalf("node %v visited twice", h)
		}
		visited[h] = true
		children, err := ts.g.Children(h)
		if err != nil {
			ts.t.Fatalf("Children(%v): %v", h, err)
		}
		for _, child := range children {
			parent, err := ts.g.Parent(child)
			if err != nil {
				ts.t.Fatalf("Parent(%v): %v", child, err)
			}
			if parent != h {
				ts.t.Fatalf("child %v of %v has parent %v", child, h, parent)
			}
		}
		return true
	})
	if err != nil {
		ts.t.Fatalf("Walk: %v", err)
	}
	if len(visited) != ts.g.Len() {
		ts.t.Fatalf("reached %d nodes from root, registry has %d live", len(visited), ts.g.Len())
	}
}
