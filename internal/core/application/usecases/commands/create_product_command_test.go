package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	price, err := kernel.NewMoney(250000)
	require.NoError(t, err)

	cmd, err := commands.NewCreateProductCommand(
		productID, vendorID, "Bluetooth Speaker", "portable, 12h battery", price, 15, "electronics")
	require.NoError(t, err)
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, vendorID, cmd.VendorID())
	assert.Equal(t, "Bluetooth Speaker", cmd.Name())
	assert.Equal(t, 15, cmd.Stock())
	assert.Equal(t, "electronics", cmd.Category())
}

func TestNewCreateProductCommand_EmptyName(t *testing.T) {
	price, _ := kernel.NewMoney(250000)
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "", price, 15, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
}

func TestNewCreateProductCommand_NegativeStock(t *testing.T) {
	price, _ := kernel.NewMoney(250000)
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Bluetooth Speaker", "", price, -1, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStockIsInvalid)
}
