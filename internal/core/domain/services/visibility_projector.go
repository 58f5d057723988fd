package services

import (
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/viewer"
)

// VisibilityProjector is a domain service that derives, for a given viewer and
// order state, the subset of order fields that may be disclosed.
//
// Disclosure policy:
//   - The customer who placed the order sees everything, in any state.
//   - The assigned rider sees everything once bound via a successful claim.
//   - Prospective riders browsing the pending pool see only non-identifying
//     fields: product, price, quantity, total, status and timestamp. The
//     delivery address and customer phone are withheld so customer PII is not
//     broadcast to an unbounded set of viewers before a binding claim exists.
//   - Vendors see only non-identifying fields regardless of state.
//
// The projection is the authoritative enforcement point at the data access
// boundary: every read path must route order rows through Project before
// exposing them, independent of any transport-level restriction.
//
// Example usage:
//
//	projector := services.NewVisibilityProjector()
//	view, err := projector.Project(o, viewerCtx)
//	if err != nil {
//	    return err
//	}
//	if view.ContactDisclosed {
//	    // render address and phone
//	}
type VisibilityProjector struct{}

// NewVisibilityProjector creates a new VisibilityProjector instance.
func NewVisibilityProjector() VisibilityProjector {
	return VisibilityProjector{}
}

// Project computes the reduced view of an order for a viewer.
//
// Returns a validation error if the order or the viewer context is invalid;
// otherwise projection always succeeds — an unauthorized combination yields a
// masked view, never an error, because seeing the non-identifying fields is
// legitimate for every role.
func (VisibilityProjector) Project(o *order.Order, v viewer.Context) (order.View, error) {
	if err := o.Validate(); err != nil {
		return order.View{}, err
	}
	if err := v.Validate(); err != nil {
		return order.View{}, err
	}

	view := order.View{
		ID:          o.ID(),
		ProductID:   o.ProductID(),
		ProductName: o.ProductName(),
		UnitPrice:   o.UnitPrice(),
		Quantity:    o.Quantity(),
		Total:       o.Total(),
		Status:      o.Status(),
		CreatedAt:   o.CreatedAt(),
	}

	if disclosesContact(o, v) {
		view.ContactDisclosed = true
		view.DeliveryAddress = o.DeliveryAddress()
		view.CustomerPhone = o.CustomerPhone()
	}

	return view, nil
}

// disclosesContact decides whether the viewer is entitled to the customer's
// delivery address and phone.
func disclosesContact(o *order.Order, v viewer.Context) bool {
	switch v.Role() {
	case viewer.RoleCustomer:
		return o.CustomerID().IsEqual(v.ID())
	case viewer.RoleRider:
		// Bound rider only: an unclaimed order has no rider, so prospective
		// riders never match.
		return o.IsAssignedTo(v.ID())
	default:
		return false
	}
}
