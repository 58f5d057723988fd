package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// View is a role-and-state-dependent reduced representation of an order,
// produced by the visibility projection. Non-identifying fields are always
// present; DeliveryAddress and CustomerPhone are populated only when
// ContactDisclosed is true.
//
// A View is plain data: it carries no behavior and cannot be written back.
type View struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	Total       kernel.Money
	Status      Status
	CreatedAt   time.Time

	// ContactDisclosed reports whether the viewer is entitled to the
	// customer's delivery address and phone. When false both fields are empty.
	ContactDisclosed bool
	DeliveryAddress  string
	CustomerPhone    string
}
