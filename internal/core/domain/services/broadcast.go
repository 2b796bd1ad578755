package services

import (
	"fmt"
	"time"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
)

// Channel is a named broadcast group that zero or more live connections
// belong to. Channel names are derived deterministically: fixed literals for
// the staff audiences, "table-<number>" for tables, and the empty
// ChannelGlobal which reaches every connected client.
type Channel string

const (
	// ChannelGlobal addresses every connected client regardless of joins.
	ChannelGlobal Channel = ""

	// ChannelKitchen is joined by kitchen screens.
	ChannelKitchen Channel = "kitchen"

	// ChannelWaiters is joined by waiter handhelds.
	ChannelWaiters Channel = "waiters"

	// ChannelAdmin is joined by back-office dashboards.
	ChannelAdmin Channel = "admin"
)

// TableChannel returns the broadcast channel for a table, "table-<number>".
func TableChannel(table kernel.TableNumber) Channel {
	return Channel(fmt.Sprintf("table-%d", table.Value()))
}

// EventName identifies the payload shape of a broadcast event. The set is
// closed; connected clients recognize exactly these five names.
type EventName string

const (
	EventOrderCreated       EventName = "order:created"
	EventOrderUpdated       EventName = "order:updated"
	EventOrderCompleted     EventName = "order:completed"
	EventOrderCancelled     EventName = "order:cancelled"
	EventOrderStatusChanged EventName = "order:status-changed"
)

// ItemPayload is the wire form of a single order line.
type ItemPayload struct {
	Product  string `json:"product"`
	Quantity int    `json:"qty"`
}

// OrderPayload is the JSON-serializable view of an order carried by
// order:created, order:updated, order:completed and order:cancelled events.
type OrderPayload struct {
	ID          string        `json:"id"`
	TableNumber int           `json:"table_number"`
	Items       []ItemPayload `json:"products"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// StatusChangePayload is carried by order:status-changed events. It wraps
// the updated order together with the transition endpoints.
type StatusChangePayload struct {
	Order          OrderPayload `json:"order"`
	PreviousStatus string       `json:"previousStatus"`
	NewStatus      string       `json:"newStatus"`
}

// NewOrderPayload builds the wire view of an order.
func NewOrderPayload(o *order.Order) OrderPayload {
	items := make([]ItemPayload, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemPayload{
			Product:  item.ProductRef(),
			Quantity: item.Quantity(),
		})
	}

	return OrderPayload{
		ID:          o.ID().String(),
		TableNumber: o.TableNumber().Value(),
		Items:       items,
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}
}

// Publication is a single instruction to the broadcast hub: deliver Event
// with Payload to every connection currently joined to Channel.
type Publication struct {
	Channel Channel
	Event   EventName
	Payload any
}

// AudienceRouter decides which audiences are told about each order
// lifecycle event. It is the single place where the fan-out contract lives;
// the lifecycle command handlers publish exactly what it returns, in order.
//
// Delivery itself is best-effort and at-most-once per connected client; the
// router only decides addressing, never reliability.
type AudienceRouter struct{}

// NewAudienceRouter creates an AudienceRouter.
func NewAudienceRouter() AudienceRouter {
	return AudienceRouter{}
}

// RouteCreated returns the publications for a newly placed order. Every
// audience is informed immediately since any of them may need to act:
// global, the order's table, kitchen, waiters, and admin.
func (AudienceRouter) RouteCreated(o *order.Order) []Publication {
	payload := NewOrderPayload(o)
	return []Publication{
		{Channel: ChannelGlobal, Event: EventOrderCreated, Payload: payload},
		{Channel: TableChannel(o.TableNumber()), Event: EventOrderCreated, Payload: payload},
		{Channel: ChannelKitchen, Event: EventOrderCreated, Payload: payload},
		{Channel: ChannelWaiters, Event: EventOrderCreated, Payload: payload},
		{Channel: ChannelAdmin, Event: EventOrderCreated, Payload: payload},
	}
}

// RouteStatusChanged returns the publications for a status transition.
//
// The full audit trail always goes to the global channel and the order's
// table channel as order:status-changed. On top of that, exactly one
// status-specific notification targets the role that has to act next:
//
//	preparing -> kitchen   (order:updated)
//	ready     -> waiters   (order:updated)
//	delivered -> table     (order:completed)
//	cancelled -> global    (order:cancelled)
//
// This keeps each role's client subscribed only to what it acts on while
// table and global observers still see every transition.
func (AudienceRouter) RouteStatusChanged(o *order.Order, previous order.Status) []Publication {
	orderPayload := NewOrderPayload(o)
	changePayload := StatusChangePayload{
		Order:          orderPayload,
		PreviousStatus: previous.String(),
		NewStatus:      o.Status().String(),
	}

	publications := []Publication{
		{Channel: ChannelGlobal, Event: EventOrderStatusChanged, Payload: changePayload},
		{Channel: TableChannel(o.TableNumber()), Event: EventOrderStatusChanged, Payload: changePayload},
	}

	switch o.Status() {
	case order.Preparing:
		publications = append(publications,
			Publication{Channel: ChannelKitchen, Event: EventOrderUpdated, Payload: orderPayload})
	case order.Ready:
		publications = append(publications,
			Publication{Channel: ChannelWaiters, Event: EventOrderUpdated, Payload: orderPayload})
	case order.Delivered:
		publications = append(publications,
			Publication{Channel: TableChannel(o.TableNumber()), Event: EventOrderCompleted, Payload: orderPayload})
	case order.Cancelled:
		publications = append(publications,
			Publication{Channel: ChannelGlobal, Event: EventOrderCancelled, Payload: orderPayload})
	case order.Unknown, order.Pending:
		// pending has no role-specific audience; nothing beyond the audit trail
	}

	return publications
}

// RouteRemoved returns the publications for a removed order. Removal is an
// implicit cancellation for every observer, since any role may have already
// begun acting on the order: global, table, kitchen, waiters, and admin all
// receive order:cancelled.
func (AudienceRouter) RouteRemoved(o *order.Order) []Publication {
	payload := NewOrderPayload(o)
	return []Publication{
		{Channel: ChannelGlobal, Event: EventOrderCancelled, Payload: payload},
		{Channel: TableChannel(o.TableNumber()), Event: EventOrderCancelled, Payload: payload},
		{Channel: ChannelKitchen, Event: EventOrderCancelled, Payload: payload},
		{Channel: ChannelWaiters, Event: EventOrderCancelled, Payload: payload},
		{Channel: ChannelAdmin, Event: EventOrderCancelled, Payload: payload},
	}
}
