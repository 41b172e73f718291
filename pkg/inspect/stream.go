package inspect

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one registry notification as streamed to inspector clients.
type Event struct {
	Type      string `json:"type"`
	Ref       string `json:"ref,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Slot      string `json:"slot,omitempty"`
	Listeners int    `json:"listeners,omitempty"`
	Repaint   bool   `json:"repaint,omitempty"`
	Propagate bool   `json:"propagate,omitempty"`
	Exclusive bool   `json:"exclusive,omitempty"`
}

// clientBuffer bounds the per-client event queue. Slow clients drop
// events rather than stalling the registry thread.
const clientBuffer = 64

// Hub fans registry events out to WebSocket clients. Broadcast is safe
// to call from the registry thread; it never blocks.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[chan Event]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[chan Event]bool),
	}
}

// Broadcast queues an event for every connected client, dropping it
// for clients whose buffers are full.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// HandleWS upgrades the request and streams events until the client
// disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	ch := make(chan Event, clientBuffer)
	h.mu.Lock()
	h.clients[ch] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, ch)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain reads so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-ch:
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
