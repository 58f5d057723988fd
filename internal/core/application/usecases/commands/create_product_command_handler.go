package commands

import (
	"context"

	"marketplace/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles vendor product listings.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product listing
// operations. Requires a ProductUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product listing command.
// Creates the product aggregate and persists it within a transaction.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	listing, err := product.NewProduct(
		cmd.ProductID(),
		cmd.VendorID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Stock(),
		cmd.Category(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, listing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
