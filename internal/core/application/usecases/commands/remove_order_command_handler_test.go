package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barpos/internal/core/application/usecases/commands"
	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/services"
	"barpos/internal/pkg/errs"
)

func TestRemoveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t)
	cmd, err := commands.NewRemoveOrderCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Remove", mock.Anything, existing.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewRemoveOrderCommandHandler(factory, services.NewAudienceRouter(), publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, publisher.Publications, 5)
	for _, publication := range publisher.Publications {
		require.Equal(t, services.EventOrderCancelled, publication.Event)
	}

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRemoveOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRemoveOrderCommand(id)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewRemoveOrderCommandHandler(factory, services.NewAudienceRouter(), publisher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Empty(t, publisher.Publications)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPurgeClosedOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPurgeClosedOrdersCommand(7 * 24 * time.Hour)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("RemoveClosedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeClosedOrdersCommandHandler(factory)
	removed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewPurgeClosedOrdersCommand_RejectsNonPositiveRetention(t *testing.T) {
	_, err := commands.NewPurgeClosedOrdersCommand(0)
	require.ErrorIs(t, err, commands.ErrRetentionIsInvalid)
}
