package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrCustomerPhoneIsRequired   = errors.New("customer phone is required")
	ErrQuantityIsInvalid         = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a checkout request: a customer buying a
// quantity of one product, delivered to an address. Price and product name
// are not part of the command; they are snapshotted from the product listing
// at checkout time so later vendor edits cannot change an existing order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, productID, 2, "12 Oak Lane", "+2348012345678")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, log)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	productID       kernel.UUID
	quantity        int
	deliveryAddress string
	customerPhone   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command.
// Validates that all identifiers are valid, quantity is positive, and the
// delivery address and contact phone are present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	deliveryAddress string,
	customerPhone string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setProductID(productID),
		orderCommand.setQuantity(quantity),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setCustomerPhone(customerPhone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the buying customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the purchased product.
func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units being purchased.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// CustomerPhone returns the customer's contact phone.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerPhone = phone
	return nil
}
