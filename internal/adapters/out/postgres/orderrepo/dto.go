// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and creation time.
type OrderDTO struct {
	ID      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Created time.Time      `gorm:"index"`
	Status  int            `gorm:"index"`
	Items   []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line in the database.
// Each row belongs to exactly one order and is removed together with it.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Product  int
	Size     int
	Quantity int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order attributes together with all of its lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			Product:  int(item.Product()),
			Size:     int(item.Size()),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:      aggregate.ID().Bytes(),
		Created: aggregate.Created(),
		Status:  int(aggregate.Status()),
		Items:   itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			itemID,
			order.Product(itemDTO.Product),
			order.Size(itemDTO.Size),
			itemDTO.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Created, order.Status(dto.Status), items)
}
