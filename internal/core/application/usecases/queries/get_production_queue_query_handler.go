package queries

import (
	"context"

	"bottleworks/internal/core/domain/model/batch"
	"bottleworks/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductionQueueQueryHandler retrieves the floor worklist with direct
// SQL. Batches whose four steps are all done drop out of the queue.
type GetProductionQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionQueueQueryHandler creates a handler for production queue queries.
// Requires a GORM database connection for query execution.
func NewGetProductionQueueQueryHandler(db *gorm.DB) GetProductionQueueQueryHandler {
	return GetProductionQueueQueryHandler{db: db}
}

// Handle executes the production queue query.
// Returns unfinished batches sorted by priority index, then display code.
func (h GetProductionQueueQueryHandler) Handle(
	ctx context.Context,
	query GetProductionQueueQuery,
) ([]GetProductionQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetProductionQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.uid,
			b.human_uid,
			b.order_id,
			o.human_uid AS order_human_uid,
			b.on_hold,
			b.qty_planned,
			b.priority_index,
			COUNT(s.id) AS steps_total,
			COALESCE(SUM(CASE WHEN s.status = ? THEN 1 ELSE 0 END), 0) AS steps_done,
			COALESCE(SUM(CASE WHEN s.status <> ? THEN 1 ELSE 0 END), 0) AS steps_started
		FROM batches b
		JOIN orders o ON o.id = b.order_id
		LEFT JOIN workflow_steps s ON s.batch_id = b.id
		GROUP BY b.id, b.uid, b.human_uid, b.order_id, o.human_uid, b.on_hold, b.qty_planned, b.priority_index
		HAVING COUNT(s.id) = 0
			OR COALESCE(SUM(CASE WHEN s.status = ? THEN 1 ELSE 0 END), 0) < COUNT(s.id)
		ORDER BY b.priority_index, b.human_uid
	`, int(batch.StepDone), int(batch.StepPending), int(batch.StepDone)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetProductionQueueQueryResponse
		var id, orderID uuid.UUID
		var onHold bool
		var stepsStarted int

		err = rows.Scan(
			&id,
			&item.UID,
			&item.HumanUID,
			&orderID,
			&item.OrderHumanUID,
			&onHold,
			&item.QtyPlanned,
			&item.PriorityIndex,
			&item.StepsTotal,
			&item.StepsDone,
			&stepsStarted,
		)
		if err != nil {
			return nil, err
		}

		batchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.BatchID = batchID

		ordID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.OrderID = ordID

		item.Status = deriveBatchStatus(item.StepsTotal, item.StepsDone, stepsStarted, onHold)
		queue = append(queue, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}

// deriveBatchStatus mirrors the aggregate's status derivation from step
// counts: complete beats hold, hold beats wip, wip beats queued.
func deriveBatchStatus(total, done, started int, onHold bool) string {
	switch {
	case total > 0 && done == total:
		return batch.StatusComplete.String()
	case onHold:
		return batch.StatusHold.String()
	case started > 0:
		return batch.StatusWIP.String()
	default:
		return batch.StatusQueued.String()
	}
}
