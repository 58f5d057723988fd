package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CompleteDeliveryCommandHandler finishes a delivery: InTransit becomes
// Delivered through a conditional update scoped to the assigned rider.
// A duplicate completion of an already-delivered order fails with
// order.ErrInvalidTransition rather than silently succeeding twice.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	log        *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	log *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the complete-delivery command.
// Returns order.ErrUnauthorizedActor if the order is assigned to a different
// rider and order.ErrInvalidTransition if it is not in transit.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	rows, err := orderRepo.AdvanceStatus(ctx, cmd.OrderID(), cmd.RiderID(), order.InTransit, order.Delivered)
	if err != nil {
		return err
	}

	if rows == 0 {
		return classifyAdvanceFailure(ctx, orderRepo, cmd.OrderID(), cmd.RiderID(), order.InTransit)
	}

	updated, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderChanged(ctx, h.notifier, h.log, updated)
	return nil
}
