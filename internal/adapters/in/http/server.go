// Package http exposes the back office API over echo. Handlers translate
// request payloads into commands and queries; all business decisions stay
// in the application layer.
package http

import (
	"net/http"

	"bottleworks/internal/core/application/usecases/commands"
	"bottleworks/internal/core/application/usecases/queries"
	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/core/domain/model/payment"
	"bottleworks/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	orderTransitionHandler  commands.RequestOrderTransitionCommandHandler
	capturePaymentHandler   commands.CapturePaymentCommandHandler
	createBatchHandler      commands.CreateBatchCommandHandler
	startStepHandler        commands.StartStepCommandHandler
	completeStepHandler     commands.CompleteStepCommandHandler
	recordQuantitiesHandler commands.RecordQuantitiesCommandHandler
	holdBatchHandler        commands.HoldBatchCommandHandler
	resumeBatchHandler      commands.ResumeBatchCommandHandler
	splitBatchHandler       commands.SplitBatchCommandHandler
	mergeBatchesHandler     commands.MergeBatchesCommandHandler

	// Query handlers
	orderProgressHandler   queries.GetOrderProgressQueryHandler
	batchByScanHandler     queries.GetBatchByScanQueryHandler
	productionQueueHandler queries.GetProductionQueueQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	orderTransitionHandler commands.RequestOrderTransitionCommandHandler,
	capturePaymentHandler commands.CapturePaymentCommandHandler,
	createBatchHandler commands.CreateBatchCommandHandler,
	startStepHandler commands.StartStepCommandHandler,
	completeStepHandler commands.CompleteStepCommandHandler,
	recordQuantitiesHandler commands.RecordQuantitiesCommandHandler,
	holdBatchHandler commands.HoldBatchCommandHandler,
	resumeBatchHandler commands.ResumeBatchCommandHandler,
	splitBatchHandler commands.SplitBatchCommandHandler,
	mergeBatchesHandler commands.MergeBatchesCommandHandler,
	orderProgressHandler queries.GetOrderProgressQueryHandler,
	batchByScanHandler queries.GetBatchByScanQueryHandler,
	productionQueueHandler queries.GetProductionQueueQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		orderTransitionHandler:  orderTransitionHandler,
		capturePaymentHandler:   capturePaymentHandler,
		createBatchHandler:      createBatchHandler,
		startStepHandler:        startStepHandler,
		completeStepHandler:     completeStepHandler,
		recordQuantitiesHandler: recordQuantitiesHandler,
		holdBatchHandler:        holdBatchHandler,
		resumeBatchHandler:      resumeBatchHandler,
		splitBatchHandler:       splitBatchHandler,
		mergeBatchesHandler:     mergeBatchesHandler,
		orderProgressHandler:    orderProgressHandler,
		batchByScanHandler:      batchByScanHandler,
		productionQueueHandler:  productionQueueHandler,
	}
}

// RegisterRoutes binds all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/transitions", s.RequestOrderTransition)
	api.POST("/orders/:orderID/payments", s.CapturePayment)
	api.POST("/orders/:orderID/batches", s.CreateBatch)
	api.GET("/orders/:orderID/progress", s.GetOrderProgress)

	api.GET("/batches/scan/:uid", s.GetBatchByScan)
	api.POST("/batches/:batchID/steps/:step/start", s.StartStep)
	api.POST("/batches/:batchID/steps/:step/complete", s.CompleteStep)
	api.POST("/batches/:batchID/quantities", s.RecordQuantities)
	api.POST("/batches/:batchID/hold", s.HoldBatch)
	api.POST("/batches/:batchID/resume", s.ResumeBatch)
	api.POST("/batches/:batchID/split", s.SplitBatch)
	api.POST("/batches/:batchID/merge", s.MergeBatches)

	api.GET("/production/queue", s.GetProductionQueue)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	subtotal, err := kernel.NewMoney(req.SubtotalCents)
	if err != nil {
		return errorJSON(ctx, err)
	}

	depositAmount, err := kernel.NewMoney(req.DepositAmountCents)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(req.HumanUID, subtotal, req.DepositRequired, depositAmount)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:             cmd.OrderID().String(),
		HumanUID:       cmd.HumanUID(),
		QuoteLinkToken: cmd.QuoteLinkToken(),
	})
}

// RequestOrderTransition handles POST /api/v1/orders/:orderID/transitions.
func (s *Server) RequestOrderTransition(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(req.NewStatus)
	if err != nil {
		return errorJSON(ctx, err)
	}

	actorID, err := parseOptionalUUID(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID")
	}

	cmd, err := commands.NewRequestOrderTransitionCommand(orderID, newStatus, req.OverrideNote, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.orderTransitionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CapturePayment handles POST /api/v1/orders/:orderID/payments.
func (s *Server) CapturePayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req CapturePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentType, err := payment.TypeFromString(req.PaymentType)
	if err != nil {
		return errorJSON(ctx, err)
	}

	amount, err := kernel.NewMoney(req.AmountCents)
	if err != nil {
		return errorJSON(ctx, err)
	}

	actorID, err := parseOptionalUUID(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID")
	}

	cmd, err := commands.NewCapturePaymentCommand(orderID, paymentType, amount, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.capturePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateBatch handles POST /api/v1/orders/:orderID/batches.
func (s *Server) CreateBatch(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req CreateBatchRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateBatchCommand(orderID, req.HumanUID, req.QtyPlanned, req.PriorityIndex)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateBatchResponse{
		ID:       cmd.BatchID().String(),
		UID:      cmd.UID(),
		HumanUID: cmd.HumanUID(),
	})
}

// GetOrderProgress handles GET /api/v1/orders/:orderID/progress.
func (s *Server) GetOrderProgress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderProgressQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	progress, err := s.orderProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	batches := make([]BatchProgressResponse, len(progress.Batches))
	for i, bp := range progress.Batches {
		batches[i] = BatchProgressResponse{
			BatchID:    bp.BatchID.String(),
			HumanUID:   bp.HumanUID,
			Status:     bp.Status,
			QtyPlanned: bp.QtyPlanned,
			QtyGood:    bp.QtyGood,
			QtyScrap:   bp.QtyScrap,
			StepsDone:  bp.StepsDone,
			StepsTotal: bp.StepsTotal,
		}
	}

	payments := make([]PaymentEntryResponse, len(progress.Payments))
	for i, pc := range progress.Payments {
		payments[i] = PaymentEntryResponse{
			CaptureID:   pc.CaptureID,
			PaymentType: pc.PaymentType,
			AmountCents: pc.AmountCents,
			CapturedAt:  pc.CapturedAt,
		}
	}

	return ctx.JSON(http.StatusOK, OrderProgressResponse{
		OrderID:            progress.OrderID.String(),
		HumanUID:           progress.HumanUID,
		Status:             progress.Status,
		DepositStatus:      progress.DepositStatus,
		QtyPlanned:         progress.QtyPlanned,
		QtyGood:            progress.QtyGood,
		QtyScrap:           progress.QtyScrap,
		StepProgress:       progress.StepProgress,
		AllBatchesComplete: progress.AllBatchesComplete,
		AmountPaidCents:    progress.AmountPaidCents,
		Batches:            batches,
		Payments:           payments,
	})
}

// GetBatchByScan handles GET /api/v1/batches/scan/:uid.
func (s *Server) GetBatchByScan(ctx echo.Context) error {
	query, err := queries.NewGetBatchByScanQuery(ctx.Param("uid"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	detail, err := s.batchByScanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	steps := make([]StepResponse, len(detail.Steps))
	for i, sp := range detail.Steps {
		var operatorID *string
		if sp.OperatorID != nil {
			id := sp.OperatorID.String()
			operatorID = &id
		}

		steps[i] = StepResponse{
			StepID:     sp.StepID.String(),
			Step:       sp.Step,
			Status:     sp.Status,
			StartedAt:  sp.StartedAt,
			FinishedAt: sp.FinishedAt,
			OperatorID: operatorID,
		}
	}

	return ctx.JSON(http.StatusOK, BatchDetailResponse{
		BatchID:       detail.BatchID.String(),
		UID:           detail.UID,
		HumanUID:      detail.HumanUID,
		OrderID:       detail.OrderID.String(),
		OrderHumanUID: detail.OrderHumanUID,
		Status:        detail.Status,
		OnHold:        detail.OnHold,
		QtyPlanned:    detail.QtyPlanned,
		QtyGood:       detail.QtyGood,
		QtyScrap:      detail.QtyScrap,
		PriorityIndex: detail.PriorityIndex,
		Steps:         steps,
	})
}

// StartStep handles POST /api/v1/batches/:batchID/steps/:step/start.
func (s *Server) StartStep(ctx echo.Context) error {
	batchID, step, err := parseBatchStep(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req StartStepRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return badRequest(ctx, "Invalid operator ID")
	}

	cmd, err := commands.NewStartStepCommand(batchID, step, operatorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.startStepHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteStep handles POST /api/v1/batches/:batchID/steps/:step/complete.
func (s *Server) CompleteStep(ctx echo.Context) error {
	batchID, step, err := parseBatchStep(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCompleteStepCommand(batchID, step)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.completeStepHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordQuantities handles POST /api/v1/batches/:batchID/quantities.
func (s *Server) RecordQuantities(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("batchID"))
	if err != nil {
		return badRequest(ctx, "Invalid batch ID")
	}

	var req RecordQuantitiesRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordQuantitiesCommand(batchID, req.QtyGood, req.QtyScrap)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.recordQuantitiesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HoldBatch handles POST /api/v1/batches/:batchID/hold.
func (s *Server) HoldBatch(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("batchID"))
	if err != nil {
		return badRequest(ctx, "Invalid batch ID")
	}

	var req HoldBatchRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := parseOptionalUUID(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID")
	}

	cmd, err := commands.NewHoldBatchCommand(batchID, req.Note, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.holdBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeBatch handles POST /api/v1/batches/:batchID/resume.
func (s *Server) ResumeBatch(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("batchID"))
	if err != nil {
		return badRequest(ctx, "Invalid batch ID")
	}

	var req ResumeBatchRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := parseOptionalUUID(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID")
	}

	cmd, err := commands.NewResumeBatchCommand(batchID, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.resumeBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SplitBatch handles POST /api/v1/batches/:batchID/split.
func (s *Server) SplitBatch(ctx echo.Context) error {
	batchID, err := kernel.UUIDFromString(ctx.Param("batchID"))
	if err != nil {
		return badRequest(ctx, "Invalid batch ID")
	}

	var req SplitBatchRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSplitBatchCommand(batchID, req.Quantities)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.splitBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MergeBatches handles POST /api/v1/batches/:batchID/merge.
func (s *Server) MergeBatches(ctx echo.Context) error {
	targetID, err := kernel.UUIDFromString(ctx.Param("batchID"))
	if err != nil {
		return badRequest(ctx, "Invalid batch ID")
	}

	var req MergeBatchesRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sourceIDs := make([]kernel.UUID, 0, len(req.SourceIDs))
	for _, raw := range req.SourceIDs {
		sourceID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid source batch ID")
		}
		sourceIDs = append(sourceIDs, sourceID)
	}

	cmd, err := commands.NewMergeBatchesCommand(targetID, sourceIDs)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.mergeBatchesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductionQueue handles GET /api/v1/production/queue.
func (s *Server) GetProductionQueue(ctx echo.Context) error {
	query := queries.NewGetProductionQueueQuery()

	entries, err := s.productionQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]QueueEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = QueueEntryResponse{
			BatchID:       entry.BatchID.String(),
			UID:           entry.UID,
			HumanUID:      entry.HumanUID,
			OrderID:       entry.OrderID.String(),
			OrderHumanUID: entry.OrderHumanUID,
			Status:        entry.Status,
			QtyPlanned:    entry.QtyPlanned,
			StepsDone:     entry.StepsDone,
			StepsTotal:    entry.StepsTotal,
			PriorityIndex: entry.PriorityIndex,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseBatchStep(ctx echo.Context) (kernel.UUID, batch.Step, error) {
	batchID, err := kernel.UUIDFromString(ctx.Param("batchID"))
	if err != nil {
		return kernel.UUID{}, batch.StepUnknown, errs.NewValueIsInvalidErrorWithCause("batchID", err)
	}

	step, err := batch.StepFromString(ctx.Param("step"))
	if err != nil {
		return kernel.UUID{}, batch.StepUnknown, err
	}

	return batchID, step, nil
}

func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
