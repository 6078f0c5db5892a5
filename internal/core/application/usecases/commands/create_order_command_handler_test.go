package commands_test

import (
	"context"
	"errors"
	"testing"

	"bottleworks/internal/core/application/usecases/commands"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/core/ports"
	"bottleworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByHumanUID(ctx context.Context, humanUID string) (*order.Order, error) {
	args := m.Called(ctx, humanUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithLapsedQuotes(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	subtotal, err := kernel.NewMoney(125000)
	require.NoError(t, err)
	deposit, err := kernel.NewMoney(50000)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand("BW-1042", subtotal, true, deposit)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	var capturedOrder *order.Order
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByHumanUID", ctx, "BW-1042").
			Return(nil, errs.NewObjectNotFoundError("order", "BW-1042")).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			capturedOrder = o
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedOrder)
	assert.Equal(t, cmd.OrderID(), capturedOrder.ID())
	assert.Equal(t, "BW-1042", capturedOrder.HumanUID())
	assert.Equal(t, order.StatusDraft, capturedOrder.Status())
	assert.Equal(t, order.DepositUnpaid, capturedOrder.DepositStatus())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateOrderCommand

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DuplicateHumanUID(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	subtotal, err := kernel.NewMoney(125000)
	require.NoError(t, err)
	deposit, err := kernel.NewMoney(50000)
	require.NoError(t, err)
	existing, err := order.NewOrder(kernel.NewUUID(), "BW-1042", "tok-old", subtotal, true, deposit)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByHumanUID", ctx, "BW-1042").Return(existing, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByHumanUID", ctx, "BW-1042").
			Return(nil, errs.NewObjectNotFoundError("order", "BW-1042")).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
