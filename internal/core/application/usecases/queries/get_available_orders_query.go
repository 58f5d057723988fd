package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the rider pool: all pending, unclaimed
// orders, projected for a prospective rider. The requesting rider has not
// claimed any of these orders, so delivery addresses and customer phones are
// withheld from every result.
//
// Example:
//
//	query, err := NewGetAvailableOrdersQuery(riderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetAvailableOrdersQueryHandler(db)
//	views, err := handler.Handle(ctx, query)
type GetAvailableOrdersQuery struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the pending order pool as
// seen by the given rider.
func NewGetAvailableOrdersQuery(riderID kernel.UUID) (GetAvailableOrdersQuery, error) {
	poolQuery := GetAvailableOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := poolQuery.setRiderID(riderID); err != nil {
		return GetAvailableOrdersQuery{}, err
	}

	return poolQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableOrdersQueryIsNotConstructed if validation fails.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// RiderID returns the identifier of the browsing rider.
func (q GetAvailableOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}

func (q *GetAvailableOrdersQuery) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	q.riderID = riderID
	return nil
}
