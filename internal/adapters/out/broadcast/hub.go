// Package broadcast implements the in-process fan-out hub behind the
// EventPublisher port. Connections register with the hub, join named
// channels, and receive lifecycle events over buffered Go channels.
package broadcast

import (
	"log/slog"
	"sync"

	"barpos/internal/core/domain/services"
)

// Envelope is what a connection receives: the event name plus its payload,
// ready for wire serialization by the transport adapter.
type Envelope struct {
	Event   services.EventName `json:"event"`
	Payload any                `json:"payload"`
}

// connection is one subscriber with its channel memberships.
type connection struct {
	events   chan Envelope
	channels map[services.Channel]struct{}
}

const defaultBufferSize = 64

// Hub routes publications to connections by channel membership.
//
// Delivery is at-most-once and best-effort: Publish never blocks, and a
// connection whose buffer is full simply misses the event. The hub holds no
// history; a client that needs the current state re-reads it over HTTP.
//
// The hub is constructed once by the composition root and shared by
// reference; all methods are safe for concurrent use.
type Hub struct {
	mu         sync.RWMutex
	conns      map[string]*connection
	bufferSize int
	logger     *slog.Logger
	closed     bool
}

// NewHub creates a hub with the default per-connection buffer.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		conns:      make(map[string]*connection),
		bufferSize: defaultBufferSize,
		logger:     logger.With("component", "broadcast-hub"),
	}
}

// Connect registers a connection under id and returns its event stream.
// A second Connect with the same id replaces the first; the old stream is
// closed.
func (h *Hub) Connect(id string) <-chan Envelope {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		closed := make(chan Envelope)
		close(closed)
		return closed
	}

	if old, ok := h.conns[id]; ok {
		close(old.events)
	}

	conn := &connection{
		events:   make(chan Envelope, h.bufferSize),
		channels: make(map[services.Channel]struct{}),
	}
	h.conns[id] = conn

	return conn.events
}

// Disconnect removes the connection and closes its stream. Disconnecting
// an unknown id is a no-op.
func (h *Hub) Disconnect(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.conns[id]
	if !ok {
		return
	}

	delete(h.conns, id)
	close(conn.events)
}

// Join adds the connection to a channel. Joining twice is idempotent, and
// joining an unknown id is a no-op.
func (h *Hub) Join(id string, channel services.Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.conns[id]; ok {
		conn.channels[channel] = struct{}{}
	}
}

// Leave removes the connection from a channel.
func (h *Hub) Leave(id string, channel services.Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.conns[id]; ok {
		delete(conn.channels, channel)
	}
}

// Publish delivers the publication to every connection in its channel.
// The global channel reaches all connections regardless of joins. Sends
// are non-blocking; a full buffer drops the event for that connection.
func (h *Hub) Publish(publication services.Publication) {
	envelope := Envelope{
		Event:   publication.Event,
		Payload: publication.Payload,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for id, conn := range h.conns {
		if publication.Channel != services.ChannelGlobal {
			if _, member := conn.channels[publication.Channel]; !member {
				continue
			}
		}

		select {
		case conn.events <- envelope:
		default:
			h.logger.Warn("dropping event for slow connection",
				"connection", id,
				"channel", string(publication.Channel),
				"event", string(publication.Event))
		}
	}
}

// Close disconnects everyone and rejects further connects. Used on
// shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, conn := range h.conns {
		delete(h.conns, id)
		close(conn.events)
	}
}
