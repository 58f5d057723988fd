package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer purchase tracked through fulfillment. It is the
// aggregate root that manages the order lifecycle from checkout through claim
// to delivery.
//
// Order maintains these invariants:
//   - The identifier is immutable once created.
//   - Total equals unit price times quantity at creation time and is never
//     recomputed afterwards, even if the product's price changes.
//   - A rider is assigned if and only if the status is Accepted, InTransit or
//     Delivered; the assignment happens atomically with the Pending->Accepted
//     transition.
//   - Once assigned, the rider never changes for the lifetime of the order.
//   - Only the assigned rider may advance the order to InTransit or Delivered.
//
// The struct uses private fields so invariants can only be affected through
// validated methods.
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int
	total       kernel.Money

	// deliveryAddress and customerPhone are the PII fields the visibility
	// policy protects; they are stored in full here and reduced per viewer
	// by the projection service.
	deliveryAddress string
	customerPhone   string

	status    Status
	createdAt time.Time

	// riderID is the assigned rider (nil until the order is claimed)
	riderID *kernel.UUID

	isConstructed bool
}

// NewOrder creates an Order in Pending status with no rider assigned.
// The total is computed once from the unit price and quantity.
//
// Parameters:
//   - id: unique order identifier
//   - customerID: the customer placing the order
//   - productID: the purchased product
//   - productName: denormalized product name at purchase time
//   - unitPrice: product price at purchase time
//   - quantity: number of units (must be positive)
//   - deliveryAddress: where to deliver (required)
//   - customerPhone: customer contact for the assigned rider (required)
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
	deliveryAddress string,
	customerPhone string,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setProductID(productID),
		order.setProductName(productName),
		order.setQuantity(quantity),
		order.setDeliveryAddress(deliveryAddress),
		order.setCustomerPhone(customerPhone),
	); err != nil {
		return nil, err
	}

	total, err := unitPrice.MulQty(quantity)
	if err != nil {
		return nil, err
	}
	order.unitPrice = unitPrice
	order.total = total

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-deriving any
// values: the stored total is taken as-is, never recomputed. It re-checks the
// status/rider consistency invariant so corrupt rows cannot produce an order
// that is Accepted without a rider (or Pending with one).
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
	total kernel.Money,
	deliveryAddress string,
	customerPhone string,
	status Status,
	createdAt time.Time,
	riderID *kernel.UUID,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveRider(riderID != nil); err != nil {
		return nil, err
	}
	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
	}

	order := &Order{
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setProductID(productID),
		order.setProductName(productName),
		order.setQuantity(quantity),
		order.setDeliveryAddress(deliveryAddress),
		order.setCustomerPhone(customerPhone),
	); err != nil {
		return nil, err
	}

	order.unitPrice = unitPrice
	order.total = total
	order.riderID = riderID

	return order, nil
}

// Validate ensures the Order instance was properly constructed through one of
// the factory functions. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ProductID returns the identifier of the purchased product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// ProductName returns the product name captured at purchase time.
func (o *Order) ProductName() string {
	return o.productName
}

// UnitPrice returns the product price captured at purchase time.
func (o *Order) UnitPrice() kernel.Money {
	return o.unitPrice
}

// Quantity returns the number of units purchased.
func (o *Order) Quantity() int {
	return o.quantity
}

// Total returns the order total, fixed at creation time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryAddress returns the full delivery address.
// Disclosure to viewers is governed by the visibility projection, not here.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// CustomerPhone returns the customer contact phone.
// Disclosure to viewers is governed by the visibility projection, not here.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Rider returns the assigned rider's ID, or nil if the order is unclaimed.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// IsAssignedTo reports whether the order is assigned to the given rider.
func (o *Order) IsAssignedTo(riderID kernel.UUID) bool {
	return o.riderID != nil && o.riderID.IsEqual(riderID)
}

// Claim assigns the order to a rider and moves it to Accepted, in one step.
//
// Business rules:
//   - The rider ID must be valid.
//   - The order must be Pending with no rider assigned.
//   - Status change and rider assignment happen together; there is no state
//     where one is applied without the other.
//
// Returns ErrInvalidTransition if the order has left Pending. Note that this
// in-memory check is advisory only: under concurrent claims the authoritative
// arbitration is the conditional update at the storage boundary.
func (o *Order) Claim(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// StartDelivery moves the order from Accepted to InTransit.
// Only the assigned rider may start the delivery; any other caller gets
// ErrUnauthorizedActor and the order is left unchanged.
func (o *Order) StartDelivery(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if !o.IsAssignedTo(riderID) {
		return ErrUnauthorizedActor
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteDelivery moves the order from InTransit to Delivered.
// Only the assigned rider may complete the delivery; any other caller gets
// ErrUnauthorizedActor and the order is left unchanged. Delivered is terminal,
// so a replayed completion returns ErrInvalidTransition.
func (o *Order) CompleteDelivery(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if !o.IsAssignedTo(riderID) {
		return ErrUnauthorizedActor
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled from Pending or Accepted.
// The rider assignment, if any, is kept for the record; a cancelled order is
// terminal either way.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer ID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product ID", err)
	}
	o.productID = id
	return nil
}

func (o *Order) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	o.productName = name
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	o.customerPhone = phone
	return nil
}
