package ports

import "barpos/internal/core/domain/services"

// EventPublisher delivers lifecycle publications to connected clients.
//
// Delivery is fire-and-forget: Publish returns no error and makes no
// durability promise. A client that is connected and keeping up receives
// each publication at most once; a slow or absent client misses it. Command
// handlers publish only after their transaction commits, so clients never
// observe state that was rolled back.
type EventPublisher interface {
	Publish(publication services.Publication)
}
