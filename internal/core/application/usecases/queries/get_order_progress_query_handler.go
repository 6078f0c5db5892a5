package queries

import (
	"context"

	"bottleworks/internal/core/domain/services"
	"bottleworks/internal/core/ports"
)

// GetOrderProgressQueryHandler builds the order progress read model from
// the aggregates: batches are loaded through the repository and summed by
// the quantity ledger, so the view cannot disagree with the rules the
// write path enforces.
type GetOrderProgressQueryHandler struct {
	orderRepo   ports.OrderRepository
	batchRepo   ports.BatchRepository
	paymentRepo ports.PaymentRepository
	ledger      services.QuantityLedger
}

// NewGetOrderProgressQueryHandler creates a handler for order progress
// queries. Requires the order, batch, and payment repositories.
func NewGetOrderProgressQueryHandler(
	orderRepo ports.OrderRepository,
	batchRepo ports.BatchRepository,
	paymentRepo ports.PaymentRepository,
) GetOrderProgressQueryHandler {
	return GetOrderProgressQueryHandler{
		orderRepo:   orderRepo,
		batchRepo:   batchRepo,
		paymentRepo: paymentRepo,
		ledger:      services.NewQuantityLedger(),
	}
}

// Handle executes the order progress query.
func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (GetOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	orderEntity, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	batches, err := h.batchRepo.GetAllByOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	payments, err := h.paymentRepo.GetAllByOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	response := GetOrderProgressQueryResponse{
		OrderID:            orderEntity.ID(),
		HumanUID:           orderEntity.HumanUID(),
		Status:             orderEntity.Status().String(),
		DepositStatus:      orderEntity.DepositStatus().String(),
		QtyPlanned:         h.ledger.TotalPlanned(batches),
		QtyGood:            h.ledger.TotalGood(batches),
		QtyScrap:           h.ledger.TotalScrap(batches),
		StepProgress:       h.ledger.StepProgress(batches),
		AllBatchesComplete: h.ledger.AllComplete(batches),
		Batches:            make([]BatchProgressResponse, 0, len(batches)),
		Payments:           make([]PaymentCaptureResponse, 0, len(payments)),
	}

	for _, b := range batches {
		done := 0
		for _, s := range b.Steps() {
			if s.IsDone() {
				done++
			}
		}

		response.Batches = append(response.Batches, BatchProgressResponse{
			BatchID:    b.ID(),
			HumanUID:   b.HumanUID(),
			Status:     b.Status().String(),
			QtyPlanned: b.QtyPlanned(),
			QtyGood:    b.QtyGood(),
			QtyScrap:   b.QtyScrap(),
			StepsDone:  done,
			StepsTotal: len(b.Steps()),
		})
	}

	for _, p := range payments {
		response.AmountPaidCents += p.Amount().Cents()
		response.Payments = append(response.Payments, PaymentCaptureResponse{
			CaptureID:   p.CaptureID(),
			PaymentType: p.PaymentType().String(),
			AmountCents: p.Amount().Cents(),
			CapturedAt:  p.CapturedAt(),
		})
	}

	return response, nil
}
