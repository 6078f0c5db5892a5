package commands_test

import (
	"context"
	"testing"

	"bottleworks/internal/core/application/usecases/commands"
	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/core/ports"
	"bottleworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderBatchUoW struct {
	mock.Mock
}

func (m *MockOrderBatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderBatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderBatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderBatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderBatchUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

type MockOrderBatchUoWFactory struct {
	mock.Mock
}

func (m *MockOrderBatchUoWFactory) Create() commands.OrderBatchUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderBatchUoW)
}

func TestCreateBatchCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderEntity := restoreOrderInStatus(t, order.StatusScheduled)

	var created *batch.Batch
	mockOrderRepo := new(MockOrderRepository)
	mockBatchRepo := new(MockBatchRepository)
	mockUoW := new(MockOrderBatchUoW)
	mockFactory := new(MockOrderBatchUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Rollback", mock.Anything).Return(nil)
	mockUoW.On("OrderRepository").Return(mockOrderRepo)
	mockUoW.On("BatchRepository").Return(mockBatchRepo)
	mockOrderRepo.On("Get", mock.Anything, orderEntity.ID()).Return(orderEntity, nil).Once()
	mockBatchRepo.On("Add", mock.Anything, mock.MatchedBy(func(b *batch.Batch) bool {
		created = b
		return true
	})).Return(nil).Once()
	mockUoW.On("Commit", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewCreateBatchCommand(orderEntity.ID(), "BW-1042-A", 500, 0)
	require.NoError(t, err)

	handler := commands.NewCreateBatchCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, cmd.BatchID(), created.ID())
	assert.Equal(t, cmd.UID(), created.UID())
	assert.Equal(t, 500, created.QtyPlanned())
	assert.Equal(t, batch.StatusQueued, created.Status())
	assert.Len(t, created.Steps(), 4)
	mockBatchRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestCreateBatchCommandHandler_Handle_UnknownOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderEntity := restoreOrderInStatus(t, order.StatusScheduled)

	mockOrderRepo := new(MockOrderRepository)
	mockBatchRepo := new(MockBatchRepository)
	mockUoW := new(MockOrderBatchUoW)
	mockFactory := new(MockOrderBatchUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Rollback", mock.Anything).Return(nil)
	mockUoW.On("OrderRepository").Return(mockOrderRepo)
	mockOrderRepo.On("Get", mock.Anything, orderEntity.ID()).
		Return(nil, errs.NewObjectNotFoundError("order", orderEntity.ID())).Once()

	cmd, err := commands.NewCreateBatchCommand(orderEntity.ID(), "BW-1042-A", 500, 0)
	require.NoError(t, err)

	handler := commands.NewCreateBatchCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockBatchRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewCreateBatchCommand_Validation(t *testing.T) {
	orderEntity := restoreOrderInStatus(t, order.StatusScheduled)

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := commands.NewCreateBatchCommand(orderEntity.ID(), "BW-1-A", 0, 0)

		require.ErrorIs(t, err, commands.ErrQtyPlannedIsInvalid)
	})

	t.Run("rejects negative priority", func(t *testing.T) {
		_, err := commands.NewCreateBatchCommand(orderEntity.ID(), "BW-1-A", 10, -1)

		require.ErrorIs(t, err, commands.ErrPriorityIndexIsInvalid)
	})

	t.Run("mints a scan code", func(t *testing.T) {
		cmd, err := commands.NewCreateBatchCommand(orderEntity.ID(), "BW-1-A", 10, 0)

		require.NoError(t, err)
		assert.NotEmpty(t, cmd.UID())
	})
}
