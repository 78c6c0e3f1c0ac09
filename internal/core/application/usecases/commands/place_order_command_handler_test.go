package commands_test

import (
	"log/slog"
	"testing"

	"solarstore/internal/core/application/usecases/commands"
	"solarstore/internal/core/domain/model/order"
	"solarstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placeOrderCommand(t *testing.T) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(
		"Ada Obi", "ada@example.com", "+2348000000000", "1 Marina Rd",
		validCart(), decimal.NewFromInt(2000))
	require.NoError(t, err)
	return cmd
}

func newPlaceOrderHandler(
	factory commands.OrderUoWFactory,
	allocator *MockSequenceAllocator,
	notifier *MockOrderNotifier,
) commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(factory, allocator, notifier, slog.Default())
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	allocator := new(MockSequenceAllocator)
	allocator.On("Next", ctx, "orderNumber").Return(int64(42), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockOrderNotifier)
	notifier.On("OrderPlaced", ctx, mock.AnythingOfType("*order.Order")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newPlaceOrderHandler(factory, allocator, notifier)
	aggregate, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "000042", aggregate.Number())
	assert.Equal(t, order.Pending, aggregate.Status())
	assert.True(t, aggregate.TotalPrice().Equal(decimal.NewFromInt(2000)))

	allocator.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_TotalMismatch_NoSequenceConsumed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		"Ada Obi", "ada@example.com", "+2348000000000", "1 Marina Rd",
		validCart(), decimal.NewFromInt(1999))
	require.NoError(t, err)

	allocator := new(MockSequenceAllocator)
	notifier := new(MockOrderNotifier)
	factory := new(MockOrderUoWFactory)

	h := newPlaceOrderHandler(factory, allocator, notifier)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	// Neither the counter nor the store may be touched on a mismatch.
	allocator.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
	notifier.AssertNotCalled(t, "OrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	ctx := t.Context()
	h := newPlaceOrderHandler(new(MockOrderUoWFactory), new(MockSequenceAllocator), new(MockOrderNotifier))

	_, err := h.Handle(ctx, commands.PlaceOrderCommand{})

	require.Error(t, err)
	assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
}

func TestPlaceOrderCommandHandler_Handle_AllocatorError(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	allocator := new(MockSequenceAllocator)
	allocator.On("Next", ctx, "orderNumber").Return(int64(0), errStoreDown).Once()

	notifier := new(MockOrderNotifier)
	factory := new(MockOrderUoWFactory)

	h := newPlaceOrderHandler(factory, allocator, notifier)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)

	// No order may be persisted without a successfully allocated number.
	factory.AssertNotCalled(t, "Create")
	notifier.AssertNotCalled(t, "OrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_AddError_NoNotification(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	allocator := new(MockSequenceAllocator)
	allocator.On("Next", ctx, "orderNumber").Return(int64(7), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errStoreDown).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockOrderNotifier)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newPlaceOrderHandler(factory, allocator, notifier)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertNotCalled(t, "OrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_DuplicateNumber_SurfacedNotRetried(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	allocator := new(MockSequenceAllocator)
	allocator.On("Next", ctx, "orderNumber").Return(int64(42), nil).Once()

	duplicateErr := errs.NewObjectAlreadyExistsError("orderNumber", "000042")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(duplicateErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockOrderNotifier)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newPlaceOrderHandler(factory, allocator, notifier)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	// Exactly one allocation: the handler must not re-allocate on conflict.
	allocator.AssertNumberOfCalls(t, "Next", 1)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	allocator := new(MockSequenceAllocator)
	allocator.On("Next", ctx, "orderNumber").Return(int64(8), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errStoreDown).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockOrderNotifier)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newPlaceOrderHandler(factory, allocator, notifier)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	notifier.AssertNotCalled(t, "OrderPlaced", mock.Anything, mock.Anything)
}
