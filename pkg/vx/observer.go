package vx

// Observer is notified of registry operations as they happen, on the
// registry's own thread. Implementations must not call back into the
// registry from a notification. Used by instrumentation such as the
// inspect package.
type Observer interface {
	// Mounted is called after a component is stored.
	Mounted(h AnyRef, kind string)
	// Removed is called after a node is erased.
	Removed(h AnyRef, kind string)
	// Borrowed is called when a checkout succeeds.
	Borrowed(h AnyRef, exclusive bool)
	// BorrowConflict is called when a checkout fails with ErrNodeInUse.
	BorrowConflict(h AnyRef)
	// Emitted is called when a slot fires, before dispatch.
	Emitted(slot Slot, listeners int)
	// Updated is called for every explicit Update call.
	Updated(h AnyRef, repaint Repaint, propagate Propagate)
}

// BaseObserver provides no-op defaults for Observer. Embed it to only
// override the notifications you need.
type BaseObserver struct{}

func (BaseObserver) Mounted(AnyRef, string) {}
func (BaseObserver) Removed(AnyRef, string) {}
func (BaseObserver) Borrowed(AnyRef, bool) {}
func (BaseObserver) BorrowConflict(AnyRef) {}
func (BaseObserver) Emitted(Slot, int) {}
func (BaseObserver) Updated(AnyRef, Repaint, Propagate) {}
