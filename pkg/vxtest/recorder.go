package vxtest

import "github.com/jazzfool/vx/pkg/vx"

// UpdateRecord captures one explicit Update call.
type UpdateRecord struct {
	Ref       vx.AnyRef
	Repaint   vx.Repaint
	Propagate vx.Propagate
}

// EmitRecord captures one slot fire.
type EmitRecord struct {
	Slot      vx.Slot
	Listeners int
}

// Recorder is a vx.Observer that appends every notification to a
// slice, for order-sensitive assertions.
type Recorder struct {
	vx.BaseObserver

	Mounts    []vx.AnyRef
	Removals  []vx.AnyRef
	Updates   []UpdateRecord
	Emits     []EmitRecord
	Conflicts []vx.AnyRef
}

func (r *Recorder) Mounted(h vx.AnyRef, kind string) {
	r.Mounts = append(r.Mounts, h)
}

func (r *Recorder) Removed(h vx.AnyRef, kind string) {
	r.Removals = append(r.Removals, h)
}

func (r *Recorder) Updated(h vx.AnyRef, repaint vx.Repaint, propagate vx.Propagate) {
	r.Updates = append(r.Updates, UpdateRecord{Ref: h, Repaint: repaint, Propagate: propagate})
}

func (r *Recorder) Emitted(slot vx.Slot, listeners int) {
	r.Emits = append(r.Emits, EmitRecord{Slot: slot, Listeners: listeners})
}

func (r *Recorder) BorrowConflict(h vx.AnyRef) {
	r.Conflicts = append(r.Conflicts, h)
}

// Reset clears all recorded streams.
func (r *Recorder) Reset() {
	r.Mounts = nil
	r.Removals = nil
	r.Updates = nil
	r.Emits = nil
	r.Conflicts = nil
}
