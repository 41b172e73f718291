// Package inspect provides runtime introspection for a vx registry:
// an HTTP endpoint serving JSON snapshots of the component tree, a
// WebSocket stream of registry events, and Prometheus metrics for
// registry operations.
//
// The registry is single-threaded, so the inspector never reads it
// directly from HTTP handlers. Instead the host publishes tree
// snapshots from the registry thread (typically once per frame), and
// the Instrument observer forwards events as they happen. Handlers
// only ever touch published copies.
package inspect
