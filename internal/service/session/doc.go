// Package session implements the session manager: the business core
// that owns every live detection session, its frame queue, its driver
// loop, and its statistics.
//
// Each session is processed by exactly one goroutine, so the temporal
// state machine never sees concurrent frames. Feeding is non-blocking:
// a producer that outruns the driver loop loses the oldest queued
// frames, never the freshest one.
package session
