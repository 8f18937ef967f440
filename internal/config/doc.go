// Package config loads, validates, and saves the YAML settings shared by
// the face-sentinel binaries: transport addresses, the event pipe path,
// the statistics file, logging options, and the default detection
// thresholds handed to new sessions. Detection invariant violations
// (negative durations, non-positive thresholds) are rejected at load or
// save time rather than silently clamped.
package config
