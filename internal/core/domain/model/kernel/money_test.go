package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(150000)

		require.NoError(t, err)
		assert.Equal(t, int64(150000), m.Amount())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_MulQty(t *testing.T) {
	t.Run("should multiply by positive quantity", func(t *testing.T) {
		price, err := kernel.NewMoney(2500)
		require.NoError(t, err)

		total, err := price.MulQty(4)

		require.NoError(t, err)
		assert.Equal(t, int64(10000), total.Amount())
	})

	t.Run("should reject zero and negative quantities", func(t *testing.T) {
		price, err := kernel.NewMoney(2500)
		require.NoError(t, err)

		for _, qty := range []int{0, -1, -100} {
			_, mulErr := price.MulQty(qty)
			require.Error(t, mulErr, "quantity %d should be rejected", qty)
			require.ErrorIs(t, mulErr, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should detect overflow", func(t *testing.T) {
		price, err := kernel.NewMoney(1 << 62)
		require.NoError(t, err)

		_, err = price.MulQty(4)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero price times any quantity is zero", func(t *testing.T) {
		free, err := kernel.NewMoney(0)
		require.NoError(t, err)

		total, err := free.MulQty(1000)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Amount())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	m1, err := kernel.NewMoney(500)
	require.NoError(t, err)
	m2, err := kernel.NewMoney(500)
	require.NoError(t, err)
	m3, err := kernel.NewMoney(501)
	require.NoError(t, err)

	assert.True(t, m1.IsEqual(m2))
	assert.False(t, m1.IsEqual(m3))
}

func TestMoney_String(t *testing.T) {
	m, err := kernel.NewMoney(123456)
	require.NoError(t, err)

	assert.Equal(t, "1234.56", m.String())
}
