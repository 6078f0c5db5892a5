package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBatchByScanQueryHandler resolves traveler scan codes with direct SQL.
type GetBatchByScanQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchByScanQueryHandler creates a handler for scan lookups.
// Requires a GORM database connection for query execution.
func NewGetBatchByScanQueryHandler(db *gorm.DB) GetBatchByScanQueryHandler {
	return GetBatchByScanQueryHandler{db: db}
}

// Handle executes the scan lookup query.
func (h GetBatchByScanQueryHandler) Handle(
	ctx context.Context,
	query GetBatchByScanQuery,
) (GetBatchByScanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBatchByScanQueryResponse{}, err
	}

	response, err := h.loadBatch(ctx, query.UID())
	if err != nil {
		return GetBatchByScanQueryResponse{}, err
	}

	if err = h.loadSteps(ctx, &response); err != nil {
		return GetBatchByScanQueryResponse{}, err
	}

	return response, nil
}

func (h GetBatchByScanQueryHandler) loadBatch(
	ctx context.Context,
	uid string,
) (GetBatchByScanQueryResponse, error) {
	var response GetBatchByScanQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.uid,
			b.human_uid,
			b.order_id,
			o.human_uid AS order_human_uid,
			b.on_hold,
			b.qty_planned,
			b.qty_good,
			b.qty_scrap,
			b.priority_index
		FROM batches b
		JOIN orders o ON o.id = b.order_id
		WHERE b.uid = ?
	`, uid).Row()

	var id, orderID uuid.UUID

	err := row.Scan(
		&id,
		&response.UID,
		&response.HumanUID,
		&orderID,
		&response.OrderHumanUID,
		&response.OnHold,
		&response.QtyPlanned,
		&response.QtyGood,
		&response.QtyScrap,
		&response.PriorityIndex,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetBatchByScanQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"batch", uid, err)
		}
		return GetBatchByScanQueryResponse{}, errs.NewUpstreamUnavailableError(
			"batch lookup", err)
	}

	batchID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetBatchByScanQueryResponse{}, err
	}
	response.BatchID = batchID

	respOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetBatchByScanQueryResponse{}, err
	}
	response.OrderID = respOrderID

	return response, nil
}

func (h GetBatchByScanQueryHandler) loadSteps(
	ctx context.Context,
	response *GetBatchByScanQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			step,
			status,
			started_at,
			finished_at,
			operator_id
		FROM workflow_steps
		WHERE batch_id = ?
		ORDER BY step
	`, response.BatchID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	response.Steps = make([]StepProgressResponse, 0, 4)
	done, started := 0, 0

	for rows.Next() {
		var sp StepProgressResponse
		var id uuid.UUID
		var step, status int
		var startedAt, finishedAt *time.Time
		var operatorID *uuid.UUID

		err = rows.Scan(&id, &step, &status, &startedAt, &finishedAt, &operatorID)
		if err != nil {
			return err
		}

		stepID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		sp.StepID = stepID
		sp.Step = batch.Step(step).String()
		sp.Status = batch.StepStatus(status).String()
		sp.StartedAt = startedAt
		sp.FinishedAt = finishedAt

		if operatorID != nil {
			opID, opErr := kernel.UUIDFromBytes(operatorID[:])
			if opErr != nil {
				return opErr
			}
			sp.OperatorID = &opID
		}

		switch batch.StepStatus(status) {
		case batch.StepDone:
			done++
			started++
		case batch.StepWIP:
			started++
		case batch.StepStatusUnknown, batch.StepPending:
		}

		response.Steps = append(response.Steps, sp)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	response.Status = deriveBatchStatus(len(response.Steps), done, started, response.OnHold)
	return nil
}
