// Package emitter fans detection events out to the configured sinks: the
// status FIFO consumed by the listener, the structured log, the websocket
// hub, and optionally an MQTT broker. Sinks are isolated from each other
// and from the detection loop: every sink runs behind its own bounded
// queue, and a slow or dead sink drops events instead of stalling frame
// processing.
package emitter
