package commands_test

import (
	"testing"

	"bottleworks/internal/core/application/usecases/commands"
	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSplitBatchCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	b := newQueuedBatch(t) // planned 500

	var added []*batch.Batch
	mockRepo, mockUoW, mockFactory := batchUoWMocks(b)
	mock.InOrder(
		mockRepo.On("Delete", mock.Anything, b.ID()).Return(nil).Once(),
		mockRepo.On("Add", mock.Anything, mock.MatchedBy(func(child *batch.Batch) bool {
			added = append(added, child)
			return true
		})).Return(nil).Times(3),
		mockUoW.On("Commit", mock.Anything).Return(nil).Once(),
	)

	cmd, err := commands.NewSplitBatchCommand(b.ID(), []int{200, 200, 100})
	require.NoError(t, err)

	handler := commands.NewSplitBatchCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Len(t, added, 3)

	// Planned quantity is conserved across the split.
	total := 0
	for _, child := range added {
		total += child.QtyPlanned()
		assert.True(t, child.OrderID().IsEqual(b.OrderID()))
		assert.Equal(t, batch.StatusQueued, child.Status())
	}
	assert.Equal(t, 500, total)
	mockRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestSplitBatchCommandHandler_Handle_QuantityMismatch(t *testing.T) {
	// Arrange
	ctx := t.Context()
	b := newQueuedBatch(t) // planned 500

	mockRepo, _, mockFactory := batchUoWMocks(b)

	cmd, err := commands.NewSplitBatchCommand(b.ID(), []int{200, 200})
	require.NoError(t, err)

	handler := commands.NewSplitBatchCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrQuantityMismatch)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSplitBatchCommandHandler_Handle_BatchWithProgress(t *testing.T) {
	// Arrange
	ctx := t.Context()
	b := newQueuedBatch(t)
	produce, err := b.StepFor(batch.StepProduce)
	require.NoError(t, err)
	require.NoError(t, b.StartStep(produce.ID(), kernel.NewUUID(), nowUTC()))

	mockRepo, _, mockFactory := batchUoWMocks(b)

	cmd, err := commands.NewSplitBatchCommand(b.ID(), []int{250, 250})
	require.NoError(t, err)

	handler := commands.NewSplitBatchCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, batch.ErrBatchHasProgress)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMergeBatchesCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()

	target, err := batch.NewBatch(kernel.NewUUID(), orderID, batch.NewScanCode(), "BW-1-A", 200, 0)
	require.NoError(t, err)
	src1, err := batch.NewBatch(kernel.NewUUID(), orderID, batch.NewScanCode(), "BW-1-B", 150, 1)
	require.NoError(t, err)
	src2, err := batch.NewBatch(kernel.NewUUID(), orderID, batch.NewScanCode(), "BW-1-C", 50, 2)
	require.NoError(t, err)

	mockRepo, mockUoW, mockFactory := batchUoWMocks(target)
	mockRepo.On("Get", mock.Anything, src1.ID()).Return(src1, nil).Once()
	mockRepo.On("Get", mock.Anything, src2.ID()).Return(src2, nil).Once()
	mockRepo.On("Delete", mock.Anything, src1.ID()).Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, src2.ID()).Return(nil).Once()
	mockRepo.On("Update", mock.Anything, target).Return(nil).Once()
	mockUoW.On("Commit", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewMergeBatchesCommand(target.ID(), []kernel.UUID{src1.ID(), src2.ID()})
	require.NoError(t, err)

	handler := commands.NewMergeBatchesCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 400, target.QtyPlanned())
	mockRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestMergeBatchesCommandHandler_Handle_DifferentOrders(t *testing.T) {
	// Arrange
	ctx := t.Context()
	target := newQueuedBatch(t)
	foreign, err := batch.NewBatch(
		kernel.NewUUID(), kernel.NewUUID(), batch.NewScanCode(), "BW-9-A", 100, 0)
	require.NoError(t, err)

	mockRepo, _, mockFactory := batchUoWMocks(target)
	mockRepo.On("Get", mock.Anything, foreign.ID()).Return(foreign, nil).Once()

	cmd, err := commands.NewMergeBatchesCommand(target.ID(), []kernel.UUID{foreign.ID()})
	require.NoError(t, err)

	handler := commands.NewMergeBatchesCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, batch.ErrMergeDifferentOrders)
	assert.Equal(t, 500, target.QtyPlanned())
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
