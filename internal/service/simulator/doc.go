// Package simulator replays recorded landmark frames against a running
// detection server. It feeds a JSONL capture file over the frame stream
// at a configurable rate and logs the events the server emits, which
// makes threshold tuning reproducible without a camera.
package simulator
