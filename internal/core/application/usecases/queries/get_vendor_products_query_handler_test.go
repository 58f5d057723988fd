package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogProductRepository serves a fixed vendor catalog.
type catalogProductRepository struct {
	vendorID kernel.UUID
	listings []*product.Product
}

func (r catalogProductRepository) Add(_ context.Context, _ *product.Product) error    { return nil }
func (r catalogProductRepository) Update(_ context.Context, _ *product.Product) error { return nil }

func (r catalogProductRepository) Get(_ context.Context, _ kernel.UUID) (*product.Product, error) {
	return nil, nil
}

func (r catalogProductRepository) ReserveStock(_ context.Context, _ kernel.UUID, _ int) (int64, error) {
	return 0, nil
}

func (r catalogProductRepository) GetAllByVendor(_ context.Context, vendorID kernel.UUID) ([]*product.Product, error) {
	if !vendorID.IsEqual(r.vendorID) {
		return nil, nil
	}
	return r.listings, nil
}

type catalogUnitOfWork struct {
	products ports.ProductRepository
}

func (u catalogUnitOfWork) Begin(_ context.Context) error    { return nil }
func (u catalogUnitOfWork) Commit(_ context.Context) error   { return nil }
func (u catalogUnitOfWork) Rollback(_ context.Context) error { return nil }

func (u catalogUnitOfWork) OrderRepository() ports.OrderRepository { return nil }

func (u catalogUnitOfWork) ProductRepository() ports.ProductRepository { return u.products }

type catalogUnitOfWorkFactory struct {
	products ports.ProductRepository
}

func (f catalogUnitOfWorkFactory) Create() ports.UnitOfWork {
	return catalogUnitOfWork{products: f.products}
}

func catalogListing(t *testing.T, vendorID kernel.UUID, name string, stock int) *product.Product {
	t.Helper()

	price, err := kernel.NewMoney(250000)
	require.NoError(t, err)

	listing, err := product.NewProduct(
		kernel.NewUUID(), vendorID, name, "", price, stock, "groceries")
	require.NoError(t, err)
	return listing
}

func TestGetVendorProductsQueryHandler_Handle_ReturnsOwnCatalog(t *testing.T) {
	vendorID := kernel.NewUUID()
	listings := []*product.Product{
		catalogListing(t, vendorID, "Rice 5kg", 12),
		catalogListing(t, vendorID, "Palm Oil 1L", 0),
	}

	h := queries.NewGetVendorProductsQueryHandler(catalogUnitOfWorkFactory{
		products: catalogProductRepository{vendorID: vendorID, listings: listings},
	})

	query, err := queries.NewGetVendorProductsQuery(vendorID)
	require.NoError(t, err)

	got, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Rice 5kg", got[0].Name())
	// Sold-out listings stay visible to their owner.
	assert.Equal(t, 0, got[1].Stock())
}

func TestGetVendorProductsQueryHandler_Handle_OtherVendorCatalogNotReturned(t *testing.T) {
	vendorID := kernel.NewUUID()

	h := queries.NewGetVendorProductsQueryHandler(catalogUnitOfWorkFactory{
		products: catalogProductRepository{
			vendorID: vendorID,
			listings: []*product.Product{catalogListing(t, vendorID, "Rice 5kg", 12)},
		},
	})

	query, err := queries.NewGetVendorProductsQuery(kernel.NewUUID())
	require.NoError(t, err)

	got, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetVendorProductsQueryHandler_Handle_RejectsUnconstructedQuery(t *testing.T) {
	h := queries.NewGetVendorProductsQueryHandler(catalogUnitOfWorkFactory{})

	_, err := h.Handle(t.Context(), queries.GetVendorProductsQuery{})
	require.ErrorIs(t, err, queries.ErrGetVendorProductsQueryIsNotConstructed)
}
