// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and rider assignment for the pool and rider dashboard
// reads. Money columns store minor currency units as bigint.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;index"`
	ProductName     string
	UnitPrice       int64
	Quantity        int
	TotalAmount     int64
	DeliveryAddress string
	CustomerPhone   string
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	RiderID         *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		ProductID:       aggregate.ProductID().Bytes(),
		ProductName:     aggregate.ProductName(),
		UnitPrice:       aggregate.UnitPrice().Amount(),
		Quantity:        aggregate.Quantity(),
		TotalAmount:     aggregate.Total().Amount(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CustomerPhone:   aggregate.CustomerPhone(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		RiderID:         riderID,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and rider assignment
// using RestoreOrder; the stored total is taken as-is, never recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}

		riderID = &rID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, productID,
		dto.ProductName, unitPrice, dto.Quantity, total,
		dto.DeliveryAddress, dto.CustomerPhone,
		order.Status(dto.Status), dto.CreatedAt, riderID,
	)
}
