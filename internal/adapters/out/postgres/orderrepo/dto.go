// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Items are stored as a jsonb document since order lines are
// only ever read back as part of their order.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableNumber int       `gorm:"index"`
	Items       []byte    `gorm:"type:jsonb"`
	Status      int       `gorm:"index"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

type itemDTO struct {
	Product string `json:"product"`
	Qty     int    `json:"qty"`
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			Product: item.ProductRef(),
			Qty:     item.Quantity(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		TableNumber: aggregate.TableNumber().Value(),
		Items:       rawItems,
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableNumber, err := kernel.NewTableNumber(dto.TableNumber)
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := order.NewItem(raw.Product, raw.Qty)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, tableNumber, items, order.Status(dto.Status), dto.CreatedAt)
}
