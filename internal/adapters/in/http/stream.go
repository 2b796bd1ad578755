package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"barpos/internal/adapters/out/broadcast"
	"barpos/internal/core/domain/services"
)

const heartbeatInterval = 25 * time.Second

// StreamHandler exposes the broadcast hub as a Server-Sent Events endpoint.
// Clients pick their channels with a query parameter:
//
//	GET /api/events?channels=kitchen,table-3
//
// No channels means global-only: the client still receives everything
// published to the global audience.
type StreamHandler struct {
	hub *broadcast.Hub
}

// NewStreamHandler creates the SSE endpoint over the given hub.
func NewStreamHandler(hub *broadcast.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// Subscribe handles GET /api/events. It blocks for the lifetime of the
// connection, forwarding hub envelopes as SSE events named after the
// lifecycle event, with a comment heartbeat to keep intermediaries from
// closing an idle stream.
func (h *StreamHandler) Subscribe(c echo.Context) error {
	// Guests subscribe without a session; staff connections carry the
	// user in the connection id for the hub's logs.
	subject := "guest"
	if claims, ok := requestClaims(c); ok {
		subject = claims.UserID
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream; charset=utf-8")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	connID := fmt.Sprintf("%s-%s", subject, uuid.NewString())
	events := h.hub.Connect(connID)
	defer h.hub.Disconnect(connID)

	for _, name := range strings.Split(c.QueryParam("channels"), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		h.hub.Join(connID, services.Channel(name))
	}

	if _, err := fmt.Fprint(res, ": connected\n\n"); err != nil {
		return nil
	}
	res.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": heartbeat\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case envelope, open := <-events:
			if !open {
				return nil
			}

			payload, err := json.Marshal(envelope.Payload)
			if err != nil {
				continue
			}

			if _, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", envelope.Event, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
