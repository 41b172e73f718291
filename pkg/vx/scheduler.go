package vx

import "slices"

// FrameScheduler accumulates repaint requests between frames. It is
// the registry's interface to the external rendering collaborator: a
// host render loop drains the dirty set once per frame with TakeDirty
// and redraws those nodes.
type FrameScheduler struct {
	dirty    []dirtyEntry
	dirtySet map[AnyRef]bool

	// OnNeedsFrame is called when a node is newly marked dirty,
	// signalling the host that a frame should be scheduled. This is
	// necessary for on-demand rendering where the host loop sleeps
	// until work arrives.
	OnNeedsFrame func()
}

type dirtyEntry struct {
	ref   AnyRef
	depth int
}

func (s *FrameScheduler) scheduleRepaint(h AnyRef, depth int) {
	if s.dirtySet[h] {
		return
	}
	if s.dirtySet == nil {
		s.dirtySet = make(map[AnyRef]bool)
	}
	s.dirtySet[h] = true
	s.dirty = append(s.dirty, dirtyEntry{ref: h, depth: depth})
	if s.OnNeedsFrame != nil {
		s.OnNeedsFrame()
	}
}

// NeedsFrame reports whether any node is paint-dirty.
func (s *FrameScheduler) NeedsFrame() bool {
	return len(s.dirty) > 0
}

// Dirty returns the number of paint-dirty nodes.
func (s *FrameScheduler) Dirty() int {
	return len(s.dirty)
}

// TakeDirty drains the dirty set, returning the dirty handles ordered
// parents-before-children (ascending depth). Handles of nodes removed
// after being marked may be stale; renderers should skip those.
func (s *FrameScheduler) TakeDirty() []AnyRef {
	if len(s.dirty) == 0 {
		return nil
	}
	slices.SortStableFunc(s.dirty, func(a, b dirtyEntry) int {
		return a.depth - b.depth
	})
	out := make([]AnyRef, len(s.dirty))
	for i, e := range s.dirty {
		out[i] = e.ref
	}
	s.dirty = s.dirty[:0]
	clear(s.dirtySet)
	return out
}
