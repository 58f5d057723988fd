package product

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than the product currently has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents an item a vendor offers for sale. It is an aggregate root
// owning the listing details and the available stock.
//
// Invariants:
//   - Stock is never negative; checkout reserves stock before an order is
//     created, and both happen in one transaction.
//   - The vendor owning the product never changes.
type Product struct {
	id          kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a Product with validation.
// Name must be non-empty and stock non-negative; description and category are
// optional.
func NewProduct(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
) (*Product, error) {
	p := &Product{
		description:   description,
		category:      category,
		price:         price,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setVendorID(vendorID),
		p.setName(name),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
	createdAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, vendorID, name, description, price, stock, category)
	if err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Product instance was properly constructed through one
// of the factory functions.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// VendorID returns the identifier of the vendor owning the product.
func (p *Product) VendorID() kernel.UUID {
	return p.vendorID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the number of units available.
func (p *Product) Stock() int {
	return p.stock
}

// Category returns the optional product category.
func (p *Product) Category() string {
	return p.category
}

// CreatedAt returns the listing creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// Reserve removes qty units from stock for an order being created.
// Returns ErrInsufficientStock if fewer than qty units are available; the
// stock is left unchanged in that case.
func (p *Product) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	if qty > p.stock {
		return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, qty, p.stock)
	}

	p.stock -= qty
	return nil
}

// Restock adds qty units back to stock.
func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}

	p.stock += qty
	return nil
}

// ChangePrice updates the unit price of the listing.
// Existing orders keep the total computed at their creation time.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendor ID", err)
	}
	p.vendorID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}
