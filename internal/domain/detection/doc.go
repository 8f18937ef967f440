// Package detection holds the domain model of the drowsiness detector:
// landmark points, per-frame metrics, behavioral events, the tunable
// detection settings, and the per-session temporal state the state
// machine accumulates into.
package detection
