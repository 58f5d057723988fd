package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(orderID, riderID)

	delivered := pendingOrderFixture(t, orderID)
	require.NoError(t, delivered.Claim(riderID))
	require.NoError(t, delivered.StartDelivery(riderID))
	require.NoError(t, delivered.CompleteDelivery(riderID))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("AdvanceStatus", mock.Anything, orderID, riderID, order.InTransit, order.Delivered).
			Return(int64(1), nil).Once(),
		repo.On("Get", mock.Anything, orderID).Return(delivered, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockOrderNotifier)
	notifier.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(n ports.OrderNotification) bool {
		return n.Status == order.Delivered
	})).Return(nil).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, notifier, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(orderID, riderID)

	delivered := pendingOrderFixture(t, orderID)
	require.NoError(t, delivered.Claim(riderID))
	require.NoError(t, delivered.StartDelivery(riderID))
	require.NoError(t, delivered.CompleteDelivery(riderID))

	repo := new(MockOrderRepository)
	repo.On("AdvanceStatus", mock.Anything, orderID, riderID, order.InTransit, order.Delivered).
		Return(int64(0), nil).Once()
	repo.On("Get", mock.Anything, orderID).Return(delivered, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockOrderNotifier)

	h := commands.NewCompleteDeliveryCommandHandler(factory, notifier, discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	notifier.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_WrongRider(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	assignedTo := kernel.NewUUID()
	intruder := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(orderID, intruder)

	inTransit := pendingOrderFixture(t, orderID)
	require.NoError(t, inTransit.Claim(assignedTo))
	require.NoError(t, inTransit.StartDelivery(assignedTo))

	repo := new(MockOrderRepository)
	repo.On("AdvanceStatus", mock.Anything, orderID, intruder, order.InTransit, order.Delivered).
		Return(int64(0), nil).Once()
	repo.On("Get", mock.Anything, orderID).Return(inTransit, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, new(MockOrderNotifier), discardLogger())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrUnauthorizedActor)
}
