package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	price, err := kernel.NewMoney(250000)
	require.NoError(t, err)
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), vendorID, "Bluetooth Speaker", "", price, 15, "electronics")
	require.NoError(t, err)

	var added *product.Product
	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*product.Product) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.NotNil(t, added)
	assert.Equal(t, vendorID, added.VendorID())
	assert.Equal(t, "Bluetooth Speaker", added.Name())
	assert.Equal(t, 15, added.Stock())
}

func TestCreateProductCommandHandler_Handle_ValidationError(t *testing.T) {
	var cmd commands.CreateProductCommand // not constructed properly
	h := commands.NewCreateProductCommandHandler(new(MockProductUoWFactory))
	err := h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
}
