package http

import (
	"errors"
	"net/http"
	"time"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the payload for registering a new order.
type CreateOrderRequest struct {
	HumanUID           string `json:"human_uid"`
	SubtotalCents      int64  `json:"subtotal_cents"`
	DepositRequired    bool   `json:"deposit_required"`
	DepositAmountCents int64  `json:"deposit_amount_cents"`
}

// CreateOrderResponse returns the identifiers minted for the new order.
type CreateOrderResponse struct {
	ID             string `json:"id"`
	HumanUID       string `json:"human_uid"`
	QuoteLinkToken string `json:"quote_link_token"`
}

// TransitionRequest is the payload for moving an order to a new status.
type TransitionRequest struct {
	NewStatus    string  `json:"new_status"`
	OverrideNote string  `json:"override_note,omitempty"`
	ActorID      *string `json:"actor_id,omitempty"`
}

// CapturePaymentRequest is the payload for capturing a deposit payment.
type CapturePaymentRequest struct {
	PaymentType string  `json:"payment_type"`
	AmountCents int64   `json:"amount_cents"`
	ActorID     *string `json:"actor_id,omitempty"`
}

// CreateBatchRequest is the payload for planning a new production batch.
type CreateBatchRequest struct {
	HumanUID      string `json:"human_uid"`
	QtyPlanned    int    `json:"qty_planned"`
	PriorityIndex int    `json:"priority_index"`
}

// CreateBatchResponse returns the identifiers minted for the new batch.
type CreateBatchResponse struct {
	ID       string `json:"id"`
	UID      string `json:"uid"`
	HumanUID string `json:"human_uid"`
}

// StartStepRequest is the payload for starting a pipeline step.
type StartStepRequest struct {
	OperatorID string `json:"operator_id"`
}

// RecordQuantitiesRequest is the payload for reporting batch output.
type RecordQuantitiesRequest struct {
	QtyGood  int `json:"qty_good"`
	QtyScrap int `json:"qty_scrap"`
}

// HoldBatchRequest is the payload for pausing a batch.
type HoldBatchRequest struct {
	Note    string  `json:"note,omitempty"`
	ActorID *string `json:"actor_id,omitempty"`
}

// ResumeBatchRequest is the payload for resuming a held batch.
type ResumeBatchRequest struct {
	ActorID *string `json:"actor_id,omitempty"`
}

// SplitBatchRequest is the payload for splitting a batch into parts.
type SplitBatchRequest struct {
	Quantities []int `json:"quantities"`
}

// MergeBatchesRequest is the payload for merging batches into a target.
type MergeBatchesRequest struct {
	SourceIDs []string `json:"source_ids"`
}

// OrderProgressResponse is the order progress view.
type OrderProgressResponse struct {
	OrderID            string                  `json:"order_id"`
	HumanUID           string                  `json:"human_uid"`
	Status             string                  `json:"status"`
	DepositStatus      string                  `json:"deposit_status"`
	QtyPlanned         int                     `json:"qty_planned"`
	QtyGood            int                     `json:"qty_good"`
	QtyScrap           int                     `json:"qty_scrap"`
	StepProgress       float64                 `json:"step_progress"`
	AllBatchesComplete bool                    `json:"all_batches_complete"`
	AmountPaidCents    int64                   `json:"amount_paid_cents"`
	Batches            []BatchProgressResponse `json:"batches"`
	Payments           []PaymentEntryResponse  `json:"payments"`
}

// PaymentEntryResponse is one recorded capture in the progress view.
type PaymentEntryResponse struct {
	CaptureID   string    `json:"capture_id"`
	PaymentType string    `json:"payment_type"`
	AmountCents int64     `json:"amount_cents"`
	CapturedAt  time.Time `json:"captured_at"`
}

// BatchProgressResponse is one batch's slice of the order progress view.
type BatchProgressResponse struct {
	BatchID    string `json:"batch_id"`
	HumanUID   string `json:"human_uid"`
	Status     string `json:"status"`
	QtyPlanned int    `json:"qty_planned"`
	QtyGood    int    `json:"qty_good"`
	QtyScrap   int    `json:"qty_scrap"`
	StepsDone  int    `json:"steps_done"`
	StepsTotal int    `json:"steps_total"`
}

// BatchDetailResponse is the scanned batch view for the shop floor terminal.
type BatchDetailResponse struct {
	BatchID       string         `json:"batch_id"`
	UID           string         `json:"uid"`
	HumanUID      string         `json:"human_uid"`
	OrderID       string         `json:"order_id"`
	OrderHumanUID string         `json:"order_human_uid"`
	Status        string         `json:"status"`
	OnHold        bool           `json:"on_hold"`
	QtyPlanned    int            `json:"qty_planned"`
	QtyGood       int            `json:"qty_good"`
	QtyScrap      int            `json:"qty_scrap"`
	PriorityIndex int            `json:"priority_index"`
	Steps         []StepResponse `json:"steps"`
}

// StepResponse is one pipeline stage of the scanned batch.
type StepResponse struct {
	StepID     string     `json:"step_id"`
	Step       string     `json:"step"`
	Status     string     `json:"status"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	OperatorID *string    `json:"operator_id,omitempty"`
}

// QueueEntryResponse is one row of the production queue.
type QueueEntryResponse struct {
	BatchID       string `json:"batch_id"`
	UID           string `json:"uid"`
	HumanUID      string `json:"human_uid"`
	OrderID       string `json:"order_id"`
	OrderHumanUID string `json:"order_human_uid"`
	Status        string `json:"status"`
	QtyPlanned    int    `json:"qty_planned"`
	StepsDone     int    `json:"steps_done"`
	StepsTotal    int    `json:"steps_total"`
	PriorityIndex int    `json:"priority_index"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorJSON maps domain errors to HTTP status codes and renders the
// uniform error payload.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrTransitionBlocked),
		errors.Is(err, errs.ErrOverrideRequired),
		errors.Is(err, errs.ErrQuantityMismatch),
		errors.Is(err, errs.ErrQuantityOverrun):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidStepState),
		errors.Is(err, errs.ErrConflictingUpdate),
		errors.Is(err, batch.ErrBatchOnHold),
		errors.Is(err, batch.ErrBatchNotOnHold),
		errors.Is(err, batch.ErrBatchAlreadyComplete),
		errors.Is(err, batch.ErrBatchHasProgress),
		errors.Is(err, batch.ErrMergeDifferentOrders):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
