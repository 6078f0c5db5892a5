package queries

import (
	"errors"
	"strings"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/errs"
	"bottleworks/internal/pkg/guard"
)

var ErrGetBatchByScanQueryIsNotConstructed = errors.New(
	"GetBatchByScanQuery must be created via NewGetBatchByScanQuery constructor",
)

// GetBatchByScanQuery resolves a traveler scan code to its batch: the shop
// floor terminal scans the code on the traveler sheet and gets back the
// batch with its pipeline state.
type GetBatchByScanQuery struct { //nolint:recvcheck //using for validation
	uid string

	guard guard.ConstructorGuard
}

// NewGetBatchByScanQuery creates a query for one scanned batch.
func NewGetBatchByScanQuery(uid string) (GetBatchByScanQuery, error) {
	query := GetBatchByScanQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUID(uid); err != nil {
		return GetBatchByScanQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBatchByScanQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchByScanQueryIsNotConstructed)
}

// UID returns the scanned traveler code.
func (q GetBatchByScanQuery) UID() string {
	return q.uid
}

func (q *GetBatchByScanQuery) setUID(uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return errs.NewValueIsRequiredError("uid")
	}

	q.uid = uid
	return nil
}

// StepProgressResponse is one pipeline stage of the scanned batch.
type StepProgressResponse struct {
	StepID     kernel.UUID
	Step       string
	Status     string
	StartedAt  *time.Time
	FinishedAt *time.Time
	OperatorID *kernel.UUID
}

// GetBatchByScanQueryResponse is the scanned batch read model.
type GetBatchByScanQueryResponse struct {
	BatchID       kernel.UUID
	UID           string
	HumanUID      string
	OrderID       kernel.UUID
	OrderHumanUID string
	Status        string
	OnHold        bool
	QtyPlanned    int
	QtyGood       int
	QtyScrap      int
	PriorityIndex int
	Steps         []StepProgressResponse
}
