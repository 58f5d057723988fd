package kernel

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in minor
// currency units (e.g. kobo, cents). Storing amounts as integers avoids
// floating-point rounding in price and total calculations.
//
// The zero value of Money is a valid zero amount, but arithmetic that would
// produce a negative amount or overflow is rejected.
//
// Money is immutable: every operation returns a new value.
//
// Example usage:
//
//	price, err := kernel.NewMoney(150000) // 1,500.00 in minor units
//	if err != nil {
//	    // handle error
//	}
//	total, err := price.MulQty(3)
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor currency units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// MulQty multiplies the amount by a positive quantity, guarding against
// overflow. Used once, at order creation, to compute the order total.
func (m Money) MulQty(qty int) (Money, error) {
	if qty <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	if m.amount != 0 && int64(qty) > math.MaxInt64/m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("total amount", m.amount, 0, math.MaxInt64)
	}
	return Money{amount: m.amount * int64(qty)}, nil
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted in major units with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
