package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type DeliveryContact struct {
		address string
		phone   string
		guard   guard.ConstructorGuard
	}

	var errContactNotConstructed = errors.New("DeliveryContact must be created via NewDeliveryContact")

	newDeliveryContact := func(address, phone string) (DeliveryContact, error) {
		if address == "" {
			return DeliveryContact{}, errors.New("delivery address is required")
		}
		if phone == "" {
			return DeliveryContact{}, errors.New("customer phone is required")
		}
		return DeliveryContact{
			address: address,
			phone:   phone,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	validateContact := func(c DeliveryContact) error {
		return c.guard.Validate(errContactNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		contact, err := newDeliveryContact("12 Via Roma", "+390612345678")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateContact(contact))
		assert.Equal(t, "12 Via Roma", contact.address)
		assert.Equal(t, "+390612345678", contact.phone)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var contact DeliveryContact // zero value

		// When
		err := validateContact(contact)

		// Then
		// Zero value contact has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errContactNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test missing address
		_, err := newDeliveryContact("", "+390612345678")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery address is required")

		// Test missing phone
		_, err = newDeliveryContact("12 Via Roma", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer phone is required")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errListingNotConstructed = errors.New("Listing must be created via NewListing")

	// Define a guard-aware base type
	type guardedListing struct {
		guard guard.ConstructorGuard
	}

	newGuardedListing := func() guardedListing {
		return guardedListing{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedListing := func(g guardedListing) error {
		return g.guard.Validate(errListingNotConstructed)
	}

	// Define the actual domain object
	type Listing struct {
		guardedListing
		id    string
		name  string
		stock int
	}

	newListing := func(id, name string, stock int) (Listing, error) {
		if id == "" {
			return Listing{}, errors.New("listing ID is required")
		}
		if name == "" {
			return Listing{}, errors.New("listing name is required")
		}
		if stock < 0 {
			return Listing{}, errors.New("listing stock cannot be negative")
		}
		return Listing{
			guardedListing: newGuardedListing(),
			id:             id,
			name:           name,
			stock:          stock,
		}, nil
	}

	t.Run("valid_listing_construction", func(t *testing.T) {
		// When
		listing, err := newListing("123", "Espresso Beans", 40)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedListing(listing.guardedListing))
		assert.Equal(t, "123", listing.id)
		assert.Equal(t, "Espresso Beans", listing.name)
		assert.Equal(t, 40, listing.stock)
	})

	t.Run("zero_value_listing_fails_validation", func(t *testing.T) {
		// Given
		var listing Listing // zero value

		// When
		err := validateGuardedListing(listing.guardedListing)

		// Then
		// Zero value has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errListingNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with different error types and messages.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "order_not_constructed_error",
			expectedError: errors.New("Order must be created via NewOrder"),
		},
		{
			name:          "product_not_constructed_error",
			expectedError: errors.New("Product must be created via NewProduct factory method"),
		},
		{
			name:          "viewer_context_not_constructed_error",
			expectedError: errors.New("viewer Context requires proper initialization through NewContext"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := guard.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the performance overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		guard := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var guard guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_fields_are_not_modifiable", func(t *testing.T) {
		// Given
		originalError := errors.New("original error")
		g := guard.NewConstructorGuard()

		// When
		// Try to create another guard
		anotherError := errors.New("another error")
		_ = guard.NewConstructorGuard()

		// Then
		// Original guard should still validate successfully
		require.NoError(t, g.Validate(originalError))
		require.NoError(t, g.Validate(anotherError))
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
