package commands_test

import (
	"context"
	"testing"

	"driverhub/internal/core/application/usecases/commands"
	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/domain/model/shop"
	"driverhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliverOrderRepository struct{ mock.Mock }

func (m *MockDeliverOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDeliverOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDeliverOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockDeliverOrderRepository) Claim(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDeliverOrderRepository) GetAllInFlight(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDeliverUoW struct{ mock.Mock }

func (m *MockDeliverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDeliverUoWFactory struct{ mock.Mock }

func (m *MockDeliverUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliverIdentityResolver struct{ mock.Mock }

func (m *MockDeliverIdentityResolver) ResolveDriver(ctx context.Context, actorID string) (*driver.Driver, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDeliverIdentityResolver) ResolveShop(ctx context.Context, actorID string) (*shop.Shop, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func deliverTestOrderClaimedBy(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()

	total, err := kernel.NewMoneyFromCents(10000)
	require.NoError(t, err)
	commission, err := kernel.NewMoneyFromCents(1500)
	require.NoError(t, err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), total, commission, "12 Harbor St")
	require.NoError(t, err)
	require.NoError(t, testOrder.Claim(driverID))
	return testOrder
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDriver, err := driver.NewDriver(kernel.NewUUID(), "driver-7", "John Doe")
	require.NoError(t, err)
	testOrder := deliverTestOrderClaimedBy(t, testDriver.ID())

	cmd, err := commands.NewMarkDeliveredCommand(testOrder.ID(), testDriver.IdentityKey())
	require.NoError(t, err)

	orderRepo := new(MockDeliverOrderRepository)
	uow := new(MockDeliverUoW)
	resolver := new(MockDeliverIdentityResolver)
	factory := new(MockDeliverUoWFactory)

	mock.InOrder(
		resolver.On("ResolveDriver", ctx, testDriver.IdentityKey()).Return(testDriver, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMarkDeliveredCommandHandler(factory, resolver)
	delivered, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, delivered)
	assert.Equal(t, order.Delivered, delivered.Status())
	assert.True(t, delivered.IsDelivered())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	resolver.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_NotClaimant(t *testing.T) {
	ctx := t.Context()

	otherDriverID := kernel.NewUUID()
	testOrder := deliverTestOrderClaimedBy(t, otherDriverID)

	testDriver, err := driver.NewDriver(kernel.NewUUID(), "driver-7", "John Doe")
	require.NoError(t, err)

	cmd, err := commands.NewMarkDeliveredCommand(testOrder.ID(), testDriver.IdentityKey())
	require.NoError(t, err)

	orderRepo := new(MockDeliverOrderRepository)
	uow := new(MockDeliverUoW)
	resolver := new(MockDeliverIdentityResolver)
	factory := new(MockDeliverUoWFactory)

	mock.InOrder(
		resolver.On("ResolveDriver", ctx, testDriver.IdentityKey()).Return(testDriver, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMarkDeliveredCommandHandler(factory, resolver)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrNotClaimant)
	assert.Equal(t, order.Claimed, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestMarkDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()

	testDriver, err := driver.NewDriver(kernel.NewUUID(), "driver-7", "John Doe")
	require.NoError(t, err)

	testOrder := deliverTestOrderClaimedBy(t, testDriver.ID())
	require.NoError(t, testOrder.Deliver(testDriver.ID()))

	cmd, err := commands.NewMarkDeliveredCommand(testOrder.ID(), testDriver.IdentityKey())
	require.NoError(t, err)

	orderRepo := new(MockDeliverOrderRepository)
	uow := new(MockDeliverUoW)
	resolver := new(MockDeliverIdentityResolver)
	factory := new(MockDeliverUoWFactory)

	mock.InOrder(
		resolver.On("ResolveDriver", ctx, testDriver.IdentityKey()).Return(testDriver, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMarkDeliveredCommandHandler(factory, resolver)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderAlreadyDelivered)
	assert.Equal(t, order.Delivered, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update")
}

func TestMarkDeliveredCommandHandler_Handle_UnclaimedOrder(t *testing.T) {
	ctx := t.Context()

	testDriver, err := driver.NewDriver(kernel.NewUUID(), "driver-7", "John Doe")
	require.NoError(t, err)

	total, err := kernel.NewMoneyFromCents(10000)
	require.NoError(t, err)
	commission, err := kernel.NewMoneyFromCents(1500)
	require.NoError(t, err)
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), total, commission, "12 Harbor St")
	require.NoError(t, err)

	cmd, err := commands.NewMarkDeliveredCommand(testOrder.ID(), testDriver.IdentityKey())
	require.NoError(t, err)

	orderRepo := new(MockDeliverOrderRepository)
	uow := new(MockDeliverUoW)
	resolver := new(MockDeliverIdentityResolver)
	factory := new(MockDeliverUoWFactory)

	mock.InOrder(
		resolver.On("ResolveDriver", ctx, testDriver.IdentityKey()).Return(testDriver, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMarkDeliveredCommandHandler(factory, resolver)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrNotClaimant)
	uow.AssertNotCalled(t, "Commit")
}
