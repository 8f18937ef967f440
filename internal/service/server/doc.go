// Package server wires the face-sentinel server process together:
// configuration, logging, the single-instance guard, the event emitter
// and its sinks, the session manager, and the gRPC and websocket
// listeners.
package server
