package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Transition and authorization sentinels. Both are terminal for the attempt
// that produced them: replaying the same request against an already-transitioned
// order yields the same error again, never a duplicate success.
var (
	// ErrInvalidTransition is returned when a status change is structurally
	// illegal (the target state is not adjacent to the current one).
	ErrInvalidTransition = errors.New("order status transition is not allowed")

	// ErrUnauthorizedActor is returned when the caller's role or identity does
	// not permit the requested transition, e.g. a rider advancing an order
	// assigned to somebody else.
	ErrUnauthorizedActor = errors.New("actor is not authorized for this order operation")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders follow
// the delivery workflow and never silently skip or repeat a step.
//
// State transitions:
//
//	Pending ──> Accepted ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Claiming is the only transition out of Pending toward fulfillment, and it
// must happen together with the rider assignment. Delivered and Cancelled are
// terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created at checkout.
	// Pending orders have no rider and are visible to the whole rider pool.
	Pending

	// Accepted indicates that exactly one rider has claimed the order.
	Accepted

	// InTransit indicates the assigned rider has started the delivery.
	InTransit

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before delivery. Terminal.
	// Legal from Pending and Accepted; an assigned rider stays on the record.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Accepted, InTransit, Delivered and Cancelled;
// Unknown (0) and any other values are invalid. Used to vet Status values
// coming from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status ("pending",
// "in_transit", ...). Implements fmt.Stringer and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the wire representation of a status.
// Returns an error for "unknown" and for any unrecognized input.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", value))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanHaveRider validates consistency between the status and the rider
// assignment. An order has a rider if and only if it has been claimed:
// Accepted, InTransit and Delivered orders must carry one, Pending orders must
// not. Cancelled orders may carry one, since a claim is never undone and an
// Accepted order can still be cancelled.
func (s Status) ValidateCanHaveRider(hasRider bool) error {
	claimed := s == Accepted || s == InTransit || s == Delivered

	if hasRider && !claimed && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()),
		)
	}

	if !hasRider && claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()),
		)
	}

	return nil
}

// Claim transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Any other source state returns ErrInvalidTransition. Callers must set the
// rider assignment in the same operation; there is no intermediate state where
// an order is Accepted without a rider.
func (s Status) Claim() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot claim order in status %s", ErrInvalidTransition, s)
	}

	return Accepted, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Accepted -> InTransit
//
// Any other source state returns ErrInvalidTransition.
func (s Status) StartTransit() (Status, error) {
	if s != Accepted {
		return 0, fmt.Errorf("%w: cannot start delivery of order in status %s", ErrInvalidTransition, s)
	}

	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Any other source state returns ErrInvalidTransition. Delivered is terminal.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: cannot deliver order in status %s", ErrInvalidTransition, s)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
//
// Any other source state returns ErrInvalidTransition. Cancelled is terminal.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, fmt.Errorf("%w: cannot cancel order in status %s", ErrInvalidTransition, s)
	}

	return Cancelled, nil
}
