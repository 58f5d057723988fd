package commands

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/ports"
)

var (
	ErrOrderAlreadyClaimed = errors.New("order has already been claimed by a rider")
	ErrOrderNotPending     = errors.New("order is no longer pending")

	// ErrConcurrentModification signals a lost race that could not be
	// attributed to a specific cause; the caller may safely retry.
	ErrConcurrentModification = errors.New("order was modified concurrently")
)

// ClaimOrderCommandHandler arbitrates rider claims on pending orders.
//
// The claim is a single conditional update evaluated atomically by the store:
// assign the rider and move to Accepted only where the order is still Pending
// and unassigned. When N riders race for one order, exactly one update
// matches a row; the rest match zero rows and lose. The handler never
// read-modify-writes the winner decision.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory, notifier, log)
//	cmd, _ := NewClaimOrderCommand(orderID, riderID)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderAlreadyClaimed):
//	    // another rider won; refresh the pool view
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case err != nil:
//	    // claim failed
//	}
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	log        *slog.Logger
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	log *slog.Logger,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log,
	}
}

// Handle processes the claim command.
// Issues the conditional claim update; on zero rows affected it re-reads the
// order once to classify the loss: missing order, already claimed, or no
// longer pending. A claim retried by the winning rider also fails with
// ErrOrderAlreadyClaimed — the transition happens at most once.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	rows, err := orderRepo.ClaimPending(ctx, cmd.OrderID(), cmd.RiderID())
	if err != nil {
		return err
	}

	if rows == 0 {
		lost, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		// Terminal wins over the rider column: a cancelled order may still
		// carry the rider that had claimed it, and "already claimed" would
		// misreport its fate.
		switch {
		case lost.Status().IsTerminal():
			return ErrOrderNotPending
		case lost.Rider() != nil:
			return ErrOrderAlreadyClaimed
		default:
			return ErrConcurrentModification
		}
	}

	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderChanged(ctx, h.notifier, h.log, claimed)
	return nil
}
