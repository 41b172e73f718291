package inspect

import "github.com/jazzfool/vx/pkg/vx"

// Instrument is a vx.Observer forwarding registry operations to
// Prometheus metrics and, optionally, a WebSocket hub. Install it with
// Registry.SetObserver.
type Instrument struct {
	metrics *Metrics
	hub     *Hub
}

// NewInstrument creates an observer over the given sinks. Either may
// be nil.
func NewInstrument(metrics *Metrics, hub *Hub) *Instrument {
	return &Instrument{metrics: metrics, hub: hub}
}

func (i *Instrument) Mounted(h vx.AnyRef, kind string) {
	if i.metrics != nil {
		i.metrics.mounts.Inc()
	}
	if i.hub != nil {
		i.hub.Broadcast(Event{Type: "mount", Ref: h.String(), Kind: kind})
	}
}

func (i *Instrument) Removed(h vx.AnyRef, kind string) {
	if i.metrics != nil {
		i.metrics.removals.Inc()
	}
	if i.hub != nil {
		i.hub.Broadcast(Event{Type: "remove", Ref: h.String(), Kind: kind})
	}
}

func (i *Instrument) Borrowed(h vx.AnyRef, exclusive bool) {
	if i.metrics != nil {
		mode := "shared"
		if exclusive {
			mode = "exclusive"
		}
		i.metrics.borrows.WithLabelValues(mode).Inc()
	}
}

func (i *Instrument) BorrowConflict(h vx.AnyRef) {
	if i.metrics != nil {
		i.metrics.borrowConflicts.Inc()
	}
	if i.hub != nil {
		i.hub.Broadcast(Event{Type: "borrow-conflict", Ref: h.String()})
	}
}

func (i *Instrument) Emitted(slot vx.Slot, listeners int) {
	if i.metrics != nil {
		i.metrics.emits.Inc()
		i.metrics.listeners.Add(float64(listeners))
	}
	if i.hub != nil {
		i.hub.Broadcast(Event{
			Type:      "emit",
			Ref:       slot.Owner().String(),
			Slot:      slot.Name(),
			Listeners: listeners,
		})
	}
}

func (i *Instrument) Updated(h vx.AnyRef, repaint vx.Repaint, propagate vx.Propagate) {
	if i.metrics != nil {
		i.metrics.updates.Inc()
	}
	if i.hub != nil {
		i.hub.Broadcast(Event{
			Type:      "update",
			Ref:       h.String(),
			Repaint:   repaint == vx.RepaintYes,
			Propagate: propagate == vx.PropagateYes,
		})
	}
}
