package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrStockIsInvalid        = errors.New("stock must not be negative")
)

// CreateProductCommand represents a vendor listing a new product for sale.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to list a product.
// Validates identifiers, requires a name and a non-negative stock level;
// description and category are optional.
func NewCreateProductCommand(
	productID kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description: description,
		price:       price,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setVendorID(vendorID),
		productCommand.setName(name),
		productCommand.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// VendorID returns the identifier of the listing vendor.
func (c CreateProductCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product's description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the listed unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// Category returns the product's category, possibly empty.
func (c CreateProductCommand) Category() string {
	return c.category
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
