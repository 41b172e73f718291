package inspect

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the inspector HTTP surface: tree snapshots, the event
// stream, and Prometheus metrics.
type Server struct {
	hub      *Hub
	snapshot atomic.Pointer[TreeNode]
	router   chi.Router
}

// NewServer creates a server over the given hub. A nil hub disables
// the event stream endpoint.
func NewServer(hub *Hub) *Server {
	s := &Server{hub: hub}
	r := chi.NewRouter()
	r.Get("/tree", s.handleTree)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	if hub != nil {
		r.Get("/events", hub.HandleWS)
	}
	s.router = r
	return s
}

// Publish stores a tree snapshot for handlers to serve. Call it from
// the registry thread, typically once per frame.
func (s *Server) Publish(t TreeNode) {
	s.snapshot.Store(&t)
}

// Handler returns the inspector's HTTP handler, for mounting into a
// larger router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves the inspector on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	t := s.snapshot.Load()
	if t == nil {
		w.Write([]byte("{}"))
		return
	}
	json.NewEncoder(w).Encode(t)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
