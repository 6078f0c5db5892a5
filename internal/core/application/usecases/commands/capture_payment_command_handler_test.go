package commands_test

import (
	"context"
	"testing"
	"time"

	"bottleworks/internal/core/application/usecases/commands"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/core/domain/model/payment"
	"bottleworks/internal/core/ports"
	"bottleworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByCaptureID(ctx context.Context, captureID string) (*payment.Payment, error) {
	args := m.Called(ctx, captureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumForOrder(ctx context.Context, orderID kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockPaymentUoW struct {
	mock.Mock
}

func (m *MockPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockPaymentUoWFactory struct {
	mock.Mock
}

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Capture(
	ctx context.Context,
	orderID kernel.UUID,
	paymentType payment.Type,
	amount kernel.Money,
) (payment.Capture, error) {
	args := m.Called(ctx, orderID, paymentType, amount)
	return args.Get(0).(payment.Capture), args.Error(1)
}

func money(t *testing.T, cents int64) kernel.Money {
	t.Helper()

	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestCapturePaymentCommandHandler_Handle_DepositPaid(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderEntity := restoreOrderInStatusWithDeposit(t, order.StatusDepositPending, order.DepositUnpaid)

	capture := payment.Capture{
		CaptureID:  "pp-7f3a",
		Amount:     money(t, 50000),
		CapturedAt: time.Now().UTC(),
	}

	mockRepo := new(MockOrderRepository)
	mockPayRepo := new(MockPaymentRepository)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)
	mockGateway := new(MockPaymentGateway)
	mockAudit := new(MockAuditSink)

	mockGateway.On("Capture", mock.Anything, orderEntity.ID(), payment.TypePayPal, money(t, 50000)).
		Return(capture, nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Rollback", mock.Anything).Return(nil)
	mockUoW.On("PaymentRepository").Return(mockPayRepo)
	mockUoW.On("OrderRepository").Return(mockRepo)
	mockPayRepo.On("GetByCaptureID", mock.Anything, "pp-7f3a").
		Return(nil, errs.NewObjectNotFoundError("payment", "pp-7f3a")).Once()
	mockRepo.On("Get", mock.Anything, orderEntity.ID()).Return(orderEntity, nil).Once()

	var recorded *payment.Payment
	mockPayRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *payment.Payment) bool {
		recorded = p
		return true
	})).Return(nil).Once()
	mockPayRepo.On("SumForOrder", mock.Anything, orderEntity.ID()).
		Return(money(t, 50000), nil).Once()
	mockRepo.On("Update", mock.Anything, orderEntity).Return(nil).Once()
	mockUoW.On("Commit", mock.Anything).Return(nil).Once()
	mockAudit.On("Record", mock.Anything, mock.Anything).Once()

	cmd, err := commands.NewCapturePaymentCommand(
		orderEntity.ID(), payment.TypePayPal, money(t, 50000), nil)
	require.NoError(t, err)

	handler := commands.NewCapturePaymentCommandHandler(mockFactory, mockGateway, mockAudit)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.DepositPaid, orderEntity.DepositStatus())
	require.NotNil(t, recorded)
	assert.Equal(t, "pp-7f3a", recorded.CaptureID())
	assert.Equal(t, payment.TypePayPal, recorded.PaymentType())
	mockGateway.AssertExpectations(t)
	mockPayRepo.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockAudit.AssertExpectations(t)
}

func TestCapturePaymentCommandHandler_Handle_PartialDeposit(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderEntity := restoreOrderInStatusWithDeposit(t, order.StatusDepositPending, order.DepositUnpaid)

	capture := payment.Capture{
		CaptureID:  "ca-11",
		Amount:     money(t, 20000),
		CapturedAt: time.Now().UTC(),
	}

	mockRepo := new(MockOrderRepository)
	mockPayRepo := new(MockPaymentRepository)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)
	mockGateway := new(MockPaymentGateway)
	mockAudit := new(MockAuditSink)

	mockGateway.On("Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(capture, nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Rollback", mock.Anything).Return(nil)
	mockUoW.On("PaymentRepository").Return(mockPayRepo)
	mockUoW.On("OrderRepository").Return(mockRepo)
	mockPayRepo.On("GetByCaptureID", mock.Anything, "ca-11").
		Return(nil, errs.NewObjectNotFoundError("payment", "ca-11")).Once()
	mockRepo.On("Get", mock.Anything, orderEntity.ID()).Return(orderEntity, nil).Once()
	mockPayRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	mockPayRepo.On("SumForOrder", mock.Anything, orderEntity.ID()).
		Return(money(t, 20000), nil).Once()
	mockRepo.On("Update", mock.Anything, orderEntity).Return(nil).Once()
	mockUoW.On("Commit", mock.Anything).Return(nil).Once()
	mockAudit.On("Record", mock.Anything, mock.Anything).Once()

	cmd, err := commands.NewCapturePaymentCommand(
		orderEntity.ID(), payment.TypeCashApp, money(t, 20000), nil)
	require.NoError(t, err)

	handler := commands.NewCapturePaymentCommandHandler(mockFactory, mockGateway, mockAudit)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.DepositPartial, orderEntity.DepositStatus())
}

func TestCapturePaymentCommandHandler_Handle_ReplayedCaptureIsNoOp(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderEntity := restoreOrderInStatusWithDeposit(t, order.StatusDepositPending, order.DepositPaid)

	capture := payment.Capture{
		CaptureID:  "pp-7f3a",
		Amount:     money(t, 50000),
		CapturedAt: time.Now().UTC(),
	}
	existing, err := payment.NewPayment(
		kernel.NewUUID(), orderEntity.ID(), "pp-7f3a",
		payment.TypePayPal, capture.Amount, capture.CapturedAt)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockPayRepo := new(MockPaymentRepository)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)
	mockGateway := new(MockPaymentGateway)
	mockAudit := new(MockAuditSink)

	mockGateway.On("Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(capture, nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Rollback", mock.Anything).Return(nil)
	mockUoW.On("PaymentRepository").Return(mockPayRepo)
	mockUoW.On("OrderRepository").Return(mockRepo)
	mockPayRepo.On("GetByCaptureID", mock.Anything, "pp-7f3a").Return(existing, nil).Once()

	cmd, err := commands.NewCapturePaymentCommand(
		orderEntity.ID(), payment.TypePayPal, money(t, 50000), nil)
	require.NoError(t, err)

	handler := commands.NewCapturePaymentCommandHandler(mockFactory, mockGateway, mockAudit)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockPayRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockAudit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestCapturePaymentCommandHandler_Handle_GatewayOutage(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderEntity := restoreOrderInStatusWithDeposit(t, order.StatusDepositPending, order.DepositUnpaid)

	mockFactory := new(MockPaymentUoWFactory)
	mockGateway := new(MockPaymentGateway)
	mockAudit := new(MockAuditSink)

	mockGateway.On("Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(payment.Capture{}, errs.NewUpstreamUnavailableError("paypal", nil)).Once()

	cmd, err := commands.NewCapturePaymentCommand(
		orderEntity.ID(), payment.TypePayPal, money(t, 50000), nil)
	require.NoError(t, err)

	handler := commands.NewCapturePaymentCommandHandler(mockFactory, mockGateway, mockAudit)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	// No transaction is ever opened when the provider is down.
	require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	mockFactory.AssertNotCalled(t, "Create")
}
