package ws

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/oshokin/face-sentinel/internal/logger"
)

// upgrader accepts any origin: the feed is bound to loopback and
// carries no secrets, only the same events the status pipe does.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// Hub owns the set of connected clients and serializes all membership
// changes and broadcasts through its run loop.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub returns a hub; call Run to start it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 16),
		done:       make(chan struct{}),
	}
}

// Run processes membership and broadcast traffic until the context is
// canceled, then closes every client connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}

			return
		case c := <-h.register:
			h.clients[c] = struct{}{}

			logger.DebugKV(ctx, "websocket client connected",
				"remote_addr", c.conn.RemoteAddr().String(),
				"clients_total", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

			logger.DebugKV(ctx, "websocket client disconnected",
				"clients_total", len(h.clients))
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// The client's buffer is full. Dropping this
					// message beats stalling every other client.
				}
			}
		}
	}
}

// Broadcast queues a message for every connected client. It never
// blocks: if the hub has stopped or its intake is saturated, the
// message is dropped.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	case <-h.done:
	default:
	}
}

// ServeHTTP upgrades the request and attaches the client to the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WarnKV(r.Context(), "websocket upgrade failed", "error", err)

		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, clientSendBuffer),
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()

		return
	}

	go c.writePump()
	go c.readPump()
}
