package vx

import (
	"fmt"
	"slices"

	"github.com/jazzfool/vx/pkg/errors"
)

// Slot is the identity of one named event output on one component
// instance. Slots are opaque values: dispatch keys on the value, never
// on the name, so two components (or two slots of one component) can
// share a name without colliding. The zero value is the nil slot.
type Slot struct {
	owner AnyRef
	id    uint32
	name  string
}

// Owner returns the handle of the component exposing the slot.
func (s Slot) Owner() AnyRef { return s.owner }

// Name returns the slot's declared name. Informational only.
func (s Slot) Name() string { return s.name }

// IsNil reports whether the slot is the nil slot.
func (s Slot) IsNil() bool { return s.owner.IsNil() }

func (s Slot) String() string {
	if s.IsNil() {
		return "vx.Slot(nil)"
	}
	return fmt.Sprintf("vx.Slot(%s:%s)", s.owner, s.name)
}

// ListenerFunc is a stored listener callback. It is invoked with the
// registry, for fresh checkouts, and the emitted event value.
type ListenerFunc func(g *Registry, event any)

// ListenerRef identifies one listener registration, for Unlisten.
type ListenerRef struct {
	slot Slot
	id   uint64
}

// slotRecord lives on the owner node, so removing the owner drops its
// registrations wholesale.
type slotRecord struct {
	name      string
	listeners []listenerEntry
	firing    int
}

type listenerEntry struct {
	id         uint64
	subscriber AnyRef
	fn         ListenerFunc
}

// DeclareSlot declares a named event output on a component. Typically
// called from the component's factory with its own cref; legal on a
// still-mounting handle.
func (g *Registry) DeclareSlot(owner AnyRef, name string) (Slot, error) {
	n, err := g.resolveReserved(owner, "vx.DeclareSlot")
	if err != nil {
		return Slot{}, err
	}
	id := uint32(len(n.slots))
	n.slots = append(n.slots, &slotRecord{name: name})
	return Slot{owner: owner, id: id, name: name}, nil
}

// Listen registers a callback to run whenever the slot fires. There is
// no immediate side effect. Listeners for one slot fire in
// registration order. Both the slot's owner and the subscriber may
// still be mounting.
//
// Registrations are pruned with their owner; a registration whose
// subscriber has since been removed is skipped at dispatch.
func (g *Registry) Listen(slot Slot, subscriber AnyRef, fn ListenerFunc) (ListenerRef, error) {
	const op = "vx.Listen"
	rec, err := g.slotRecord(slot, op)
	if err != nil {
		return ListenerRef{}, err
	}
	if _, err := g.resolveReserved(subscriber, op); err != nil {
		return ListenerRef{}, err
	}
	g.nextListener++
	rec.listeners = append(rec.listeners, listenerEntry{
		id:         g.nextListener,
		subscriber: subscriber,
		fn:         fn,
	})
	return ListenerRef{slot: slot, id: g.nextListener}, nil
}

// Unlisten removes a listener registration. Removing a registration
// that is already gone (or whose owner has been removed) is a no-op.
func (g *Registry) Unlisten(lr ListenerRef) {
	rec, err := g.slotRecord(lr.slot, "vx.Unlisten")
	if err != nil {
		return
	}
	rec.listeners = slices.DeleteFunc(rec.listeners, func(e listenerEntry) bool {
		return e.id == lr.id
	})
}

// Emit fires a slot: the listener list is snapshotted at fire time —
// a listener registered during the dispatch does not join it — and
// each callback runs in registration order with the registry.
// Re-entrant emits from inside a callback are dispatched depth-first.
// A callback panic is recovered and reported through the errors
// handler; dispatch continues with the next listener.
func (g *Registry) Emit(slot Slot, event any) error {
	const op = "vx.Emit"
	if _, err := g.resolve(slot.owner, op); err != nil {
		return err
	}
	rec, err := g.slotRecord(slot, op)
	if err != nil {
		return err
	}
	snapshot := slices.Clone(rec.listeners)
	rec.firing++
	defer func() { rec.firing-- }()
	if g.observer != nil {
		g.observer.Emitted(slot, len(snapshot))
	}
	for _, entry := range snapshot {
		if !g.Alive(entry.subscriber) {
			continue
		}
		g.dispatch(slot, entry, event)
	}
	return nil
}

func (g *Registry) dispatch(slot Slot, entry listenerEntry, event any) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "vx.Emit",
				Slot:       slot.name,
				Value:      r,
				StackTrace: errors.CaptureStack(),
			})
		}
	}()
	entry.fn(g, event)
}

// SlotInfo describes one declared slot for introspection.
type SlotInfo struct {
	Name      string
	Listeners int
	Firing    bool
}

// Slots returns introspection records for every slot declared on the
// node, in declaration order.
func (g *Registry) Slots(h AnyRef) ([]SlotInfo, error) {
	n, err := g.resolve(h, "vx.Slots")
	if err != nil {
		return nil, err
	}
	infos := make([]SlotInfo, len(n.slots))
	for i, rec := range n.slots {
		infos[i] = SlotInfo{
			Name:      rec.name,
			Listeners: len(rec.listeners),
			Firing:    rec.firing > 0,
		}
	}
	return infos, nil
}

func (g *Registry) slotRecord(slot Slot, op string) (*slotRecord, error) {
	n, err := g.resolveReserved(slot.owner, op)
	if err != nil {
		return nil, err
	}
	if slot.IsNil() || int(slot.id) >= len(n.slots) {
		return nil, refErr(op, errors.KindInvalidHandle, slot.owner)
	}
	return n.slots[slot.id], nil
}
