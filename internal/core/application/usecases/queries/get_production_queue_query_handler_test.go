package queries_test

import (
	"context"
	"testing"
	"time"

	"bottleworks/internal/adapters/out/postgres/batchrepo"
	"bottleworks/internal/adapters/out/postgres/orderrepo"
	"bottleworks/internal/core/application/usecases/queries"
	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetProductionQueueQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetProductionQueueQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	batchRepo *batchrepo.GormBatchRepository
}

func (suite *GetProductionQueueQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &batchrepo.BatchDTO{}, &batchrepo.WorkflowStepDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetProductionQueueQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.batchRepo = batchrepo.NewGormBatchRepository(db, &mockAggregateTracker{})
}

func (suite *GetProductionQueueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProductionQueueQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, batches, workflow_steps").Error
	suite.Require().NoError(err)
}

func (suite *GetProductionQueueQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetProductionQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProductionQueueQueryHandlerTestSuite) TestHandle_OrdersByPriorityAcrossOrders() {
	orderA := suite.seedOrder("BW-5001")
	orderB := suite.seedOrder("BW-5002")

	suite.seedBatch(orderA.ID(), "BW-5001-A", 500, 2)
	suite.seedBatch(orderB.ID(), "BW-5002-A", 300, 0)
	suite.seedBatch(orderA.ID(), "BW-5001-B", 200, 1)

	query := queries.NewGetProductionQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("BW-5002-A", result[0].HumanUID)
	suite.Equal("BW-5002", result[0].OrderHumanUID)
	suite.Equal("BW-5001-B", result[1].HumanUID)
	suite.Equal("BW-5001-A", result[2].HumanUID)
}

func (suite *GetProductionQueueQueryHandlerTestSuite) TestHandle_CompletedBatchDropsOut() {
	testOrder := suite.seedOrder("BW-5003")

	finished := suite.seedBatch(testOrder.ID(), "BW-5003-A", 500, 0)
	suite.completeAllQueueSteps(finished)
	suite.Require().NoError(suite.batchRepo.Update(context.Background(), finished))

	remaining := suite.seedBatch(testOrder.ID(), "BW-5003-B", 300, 1)

	query := queries.NewGetProductionQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(remaining.ID(), result[0].BatchID)
	suite.Equal("queued", result[0].Status)
}

func (suite *GetProductionQueueQueryHandlerTestSuite) TestHandle_ReportsStepProgressAndStatus() {
	testOrder := suite.seedOrder("BW-5004")

	wip := suite.seedBatch(testOrder.ID(), "BW-5004-A", 500, 0)
	produce, err := wip.StepFor(batch.StepProduce)
	suite.Require().NoError(err)
	suite.Require().NoError(wip.StartStep(produce.ID(), kernel.NewUUID(), time.Now().UTC()))
	suite.Require().NoError(wip.CompleteStep(produce.ID(), time.Now().UTC()))
	suite.Require().NoError(suite.batchRepo.Update(context.Background(), wip))

	held := suite.seedBatch(testOrder.ID(), "BW-5004-B", 300, 1)
	suite.Require().NoError(held.Hold())
	suite.Require().NoError(suite.batchRepo.Update(context.Background(), held))

	query := queries.NewGetProductionQueueQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("wip", result[0].Status)
	suite.Equal(1, result[0].StepsDone)
	suite.Equal(4, result[0].StepsTotal)
	suite.Equal("hold", result[1].Status)
}

func (suite *GetProductionQueueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProductionQueueQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetProductionQueueQuery constructor")
}

func (suite *GetProductionQueueQueryHandlerTestSuite) seedOrder(humanUID string) *order.Order {
	subtotal, err := kernel.NewMoney(150000)
	suite.Require().NoError(err)
	deposit, err := kernel.NewMoney(45000)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), humanUID, kernel.NewUUID().String(), subtotal, true, deposit)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func (suite *GetProductionQueueQueryHandlerTestSuite) seedBatch(
	orderID kernel.UUID,
	humanUID string,
	qtyPlanned, priorityIndex int,
) *batch.Batch {
	testBatch, err := batch.NewBatch(
		kernel.NewUUID(), orderID, batch.NewScanCode(), humanUID, qtyPlanned, priorityIndex)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.batchRepo.Add(context.Background(), testBatch))
	return testBatch
}

func (suite *GetProductionQueueQueryHandlerTestSuite) completeAllQueueSteps(b *batch.Batch) {
	operatorID := kernel.NewUUID()
	for _, stage := range []batch.Step{batch.StepProduce, batch.StepBottleCap, batch.StepLabel, batch.StepPack} {
		step, err := b.StepFor(stage)
		suite.Require().NoError(err)
		suite.Require().NoError(b.StartStep(step.ID(), operatorID, time.Now().UTC()))
		suite.Require().NoError(b.CompleteStep(step.ID(), time.Now().UTC()))
	}
}

func TestGetProductionQueueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductionQueueQueryHandlerTestSuite))
}
