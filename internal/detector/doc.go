// Package detector implements the temporal detection state machine: the
// per-frame conversion of threshold comparisons into duration-debounced,
// cooldown-gated DROWSY and YAWN events. The machine is a pure function
// of (metrics, settings, now, state); all wall-clock reads happen in the
// caller, which makes the detection logic fully testable with synthetic
// timestamps.
package detector
