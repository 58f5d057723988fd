package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// StartDeliveryCommandHandler moves an accepted order into transit.
//
// Like the claim, the transition is a conditional update: Accepted becomes
// InTransit only where the order is still Accepted and assigned to the acting
// rider. Zero rows affected is classified by a single re-read.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	log        *slog.Logger
}

// NewStartDeliveryCommandHandler creates a handler for pickup operations.
func NewStartDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	log *slog.Logger,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the start-delivery command.
// Returns order.ErrUnauthorizedActor if the order is assigned to a different
// rider, order.ErrInvalidTransition if it is not in Accepted status, and
// errs.ErrObjectNotFound if the order does not exist.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	rows, err := orderRepo.AdvanceStatus(ctx, cmd.OrderID(), cmd.RiderID(), order.Accepted, order.InTransit)
	if err != nil {
		return err
	}

	if rows == 0 {
		return classifyAdvanceFailure(ctx, orderRepo, cmd.OrderID(), cmd.RiderID(), order.Accepted)
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

// classifyAdvanceFailure re-reads an order once to explain a zero-row
// conditional status advance: the order is missing, belongs to another rider,
// or sits in a status the requested transition does not start from.
func classifyAdvanceFailure(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	orderID kernel.UUID,
	riderID kernel.UUID,
	from order.Status,
) error {
	current, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if !current.IsAssignedTo(riderID) {
		return order.ErrUnauthorizedActor
	}

	if current.Status() != from {
		return fmt.Errorf("%w: order is %s, expected %s",
			order.ErrInvalidTransition, current.Status(), from)
	}

	return ErrConcurrentModification
}
