// Package listener implements the alert side of the status pipe: it
// reads event tokens ("DROWSY", "YAWN") from the named pipe the server
// writes to and reacts with configurable alert commands. Running it as
// a separate process keeps audio and notification concerns out of the
// detection server.
package listener
