// Package ws implements the websocket event feed: a hub that fans
// detection events out to every connected dashboard client. Clients are
// read-mostly; anything they send is discarded. A client that cannot
// keep up loses messages, never stalls the hub.
package ws
