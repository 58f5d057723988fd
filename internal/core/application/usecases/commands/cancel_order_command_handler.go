package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/viewer"
	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order that is still Pending or
// Accepted. The buying customer may cancel their own order; the vendor may
// cancel orders for their products. Riders cannot cancel.
//
// Cancellation keeps an already-assigned rider on the record so their feed
// still receives the terminal notification.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.OrderNotifier
	log        *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
// Requires a cross-aggregate UoWFactory because vendor authorization is
// resolved through the ordered product.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.OrderNotifier,
	log *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the cancellation command.
// Authorizes the actor against the order (and, for vendors, the product),
// then cancels through a conditional update restricted to Pending and
// Accepted orders and returns the reserved units to the listing's stock.
// Returns order.ErrInvalidTransition for orders already in transit or
// finished.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.authorize(ctx, uow, current, cmd.Actor()); err != nil {
		return err
	}

	rows, err := orderRepo.CancelActive(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if rows == 0 {
		latest, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: order is %s and can no longer be cancelled",
			order.ErrInvalidTransition, latest.Status())
	}

	// Checkout reserved the units; cancellation returns them to the listing.
	// CancelActive flips the status at most once, so the restock cannot be
	// applied twice even under concurrent cancellations.
	if err = h.restock(ctx, uow, current); err != nil {
		return err
	}

	cancelled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderChanged(ctx, h.notifier, h.log, cancelled)
	return nil
}

func (h CancelOrderCommandHandler) restock(
	ctx context.Context,
	uow UoW,
	current *order.Order,
) error {
	productRepo := uow.ProductRepository()

	listing, err := productRepo.Get(ctx, current.ProductID())
	if err != nil {
		return err
	}

	if err = listing.Restock(current.Quantity()); err != nil {
		return err
	}

	return productRepo.Update(ctx, listing)
}

func (h CancelOrderCommandHandler) authorize(
	ctx context.Context,
	uow UoW,
	current *order.Order,
	actor viewer.Context,
) error {
	switch actor.Role() {
	case viewer.RoleCustomer:
		if !current.CustomerID().IsEqual(actor.ID()) {
			return order.ErrUnauthorizedActor
		}
		return nil
	case viewer.RoleVendor:
		listing, err := uow.ProductRepository().Get(ctx, current.ProductID())
		if err != nil {
			return err
		}
		if !listing.VendorID().IsEqual(actor.ID()) {
			return order.ErrUnauthorizedActor
		}
		return nil
	default:
		return order.ErrUnauthorizedActor
	}
}
