package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetRiderOrdersQueryIsNotConstructed = errors.New(
	"GetRiderOrdersQuery must be created via NewGetRiderOrdersQuery constructor",
)

// GetRiderOrdersQuery retrieves the active orders (accepted or in transit)
// assigned to one rider. The rider owns these deliveries, so delivery
// addresses and customer phones are disclosed in full.
type GetRiderOrdersQuery struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderOrdersQuery creates a query for a rider's assigned deliveries.
func NewGetRiderOrdersQuery(riderID kernel.UUID) (GetRiderOrdersQuery, error) {
	riderQuery := GetRiderOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := riderQuery.setRiderID(riderID); err != nil {
		return GetRiderOrdersQuery{}, err
	}

	return riderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRiderOrdersQueryIsNotConstructed if validation fails.
func (q GetRiderOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderOrdersQueryIsNotConstructed)
}

// RiderID returns the identifier of the assigned rider.
func (q GetRiderOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}

func (q *GetRiderOrdersQuery) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	q.riderID = riderID
	return nil
}
