package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler handles the checkout flow. Reserves product stock
// and creates the order in a single transaction, so an order is never created
// against stock that another checkout already consumed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, log)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, productID, 1, "12 Oak Lane", "+2348012345678")
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, product.ErrInsufficientStock):
//	    // not enough units left
//	case err != nil:
//	    // checkout failed
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.OrderNotifier
	log        *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires a cross-aggregate UoWFactory because checkout touches both the
// product (stock) and the order.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.OrderNotifier,
	log *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the checkout command.
// Snapshots the product's name and price into the order, reserves stock with
// a conditional decrement, and persists the order. All of it commits or rolls
// back together. Publishes a pool change notification after the commit so
// rider dashboards pick up the new pending order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	listing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	rows, err := productRepo.ReserveStock(ctx, cmd.ProductID(), cmd.Quantity())
	if err != nil {
		return err
	}
	if rows == 0 {
		return product.ErrInsufficientStock
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ProductID(),
		listing.Name(),
		listing.Price(),
		cmd.Quantity(),
		cmd.DeliveryAddress(),
		cmd.CustomerPhone(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderChanged(ctx, h.notifier, h.log, newOrder)
	return nil
}
