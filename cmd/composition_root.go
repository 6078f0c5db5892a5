package cmd

import (
	"log/slog"

	httpin "bottleworks/internal/adapters/in/http"
	"bottleworks/internal/adapters/out/notify"
	"bottleworks/internal/adapters/out/paygate"
	"bottleworks/internal/adapters/out/postgres"
	"bottleworks/internal/adapters/out/postgres/auditlog"
	"bottleworks/internal/adapters/out/postgres/procvalidator"
	"bottleworks/internal/core/application/usecases/commands"
	"bottleworks/internal/core/application/usecases/queries"
	"bottleworks/internal/core/ports"
	"bottleworks/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into handlers. Each Create method hands
// out a fully wired handler; shared collaborators (validator, audit sink,
// notifier, gateway) are built once.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	validator ports.TransitionValidator
	auditSink ports.AuditSink
	notifier  ports.Notifier
	gateway   ports.PaymentGateway
}

// NewCompositionRoot builds the application graph on top of one database
// connection and one logger.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		validator:  procvalidator.NewProcTransitionValidator(gormDB),
		auditSink:  auditlog.NewGormAuditSink(gormDB, logger),
		notifier:   notify.NewSlogNotifier(logger),
		gateway:    paygate.NewManualCaptureGateway(logger),
	}
}

// TransitionValidator exposes the validator so the bootstrap can install
// its database function before serving traffic.
func (c *CompositionRoot) TransitionValidator() *procvalidator.ProcTransitionValidator {
	return c.validator.(*procvalidator.ProcTransitionValidator)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestOrderTransitionCommandHandler() commands.RequestOrderTransitionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestOrderTransitionCommandHandler(f, c.validator, c.auditSink, c.notifier)
}

func (c *CompositionRoot) CreateCapturePaymentCommandHandler() commands.CapturePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCapturePaymentCommandHandler(f, c.gateway, c.auditSink)
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	var f commands.OrderBatchUoWFactory = FuncOrderBatchUoWFactory(func() commands.OrderBatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateStartStepCommandHandler() commands.StartStepCommandHandler {
	return commands.NewStartStepCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateCompleteStepCommandHandler() commands.CompleteStepCommandHandler {
	return commands.NewCompleteStepCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateRecordQuantitiesCommandHandler() commands.RecordQuantitiesCommandHandler {
	return commands.NewRecordQuantitiesCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateHoldBatchCommandHandler() commands.HoldBatchCommandHandler {
	return commands.NewHoldBatchCommandHandler(c.batchUoWFactory(), c.auditSink)
}

func (c *CompositionRoot) CreateResumeBatchCommandHandler() commands.ResumeBatchCommandHandler {
	return commands.NewResumeBatchCommandHandler(c.batchUoWFactory(), c.auditSink)
}

func (c *CompositionRoot) CreateSplitBatchCommandHandler() commands.SplitBatchCommandHandler {
	return commands.NewSplitBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateMergeBatchesCommandHandler() commands.MergeBatchesCommandHandler {
	return commands.NewMergeBatchesCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderProgressQueryHandler() queries.GetOrderProgressQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderProgressQueryHandler(
		uow.OrderRepository(),
		uow.BatchRepository(),
		uow.PaymentRepository(),
	)
}

func (c *CompositionRoot) CreateGetBatchByScanQueryHandler() queries.GetBatchByScanQueryHandler {
	return queries.NewGetBatchByScanQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionQueueQueryHandler() queries.GetProductionQueueQueryHandler {
	return queries.NewGetProductionQueueQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.CreateRequestOrderTransitionCommandHandler(), c.logger)
}

// CreateServer wires the HTTP server with every handler.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateRequestOrderTransitionCommandHandler(),
		c.CreateCapturePaymentCommandHandler(),
		c.CreateCreateBatchCommandHandler(),
		c.CreateStartStepCommandHandler(),
		c.CreateCompleteStepCommandHandler(),
		c.CreateRecordQuantitiesCommandHandler(),
		c.CreateHoldBatchCommandHandler(),
		c.CreateResumeBatchCommandHandler(),
		c.CreateSplitBatchCommandHandler(),
		c.CreateMergeBatchesCommandHandler(),
		c.CreateGetOrderProgressQueryHandler(),
		c.CreateGetBatchByScanQueryHandler(),
		c.CreateGetProductionQueueQueryHandler(),
	)
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncOrderBatchUoWFactory func() commands.OrderBatchUoW

func (f FuncOrderBatchUoWFactory) Create() commands.OrderBatchUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
