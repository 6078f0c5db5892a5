package services

import (
	"bottleworks/internal/core/domain/model/batch"
)

// QuantityLedger aggregates bottle counts across the batches of one
// order. It answers display questions (totals, progress) and gating
// questions (are all batches done) without persisting anything itself.
//
// The ledger works on whatever batch set the caller loads; callers are
// expected to pass all non-deleted batches of a single order.
type QuantityLedger struct{}

// NewQuantityLedger creates a QuantityLedger instance.
func NewQuantityLedger() QuantityLedger {
	return QuantityLedger{}
}

// TotalPlanned sums the planned bottle quantity across the batches.
func (QuantityLedger) TotalPlanned(batches []*batch.Batch) int {
	total := 0
	for _, b := range batches {
		total += b.QtyPlanned()
	}
	return total
}

// TotalGood sums the recorded good bottle quantity across the batches.
func (QuantityLedger) TotalGood(batches []*batch.Batch) int {
	total := 0
	for _, b := range batches {
		total += b.QtyGood()
	}
	return total
}

// TotalScrap sums the recorded scrap bottle quantity across the batches.
func (QuantityLedger) TotalScrap(batches []*batch.Batch) int {
	total := 0
	for _, b := range batches {
		total += b.QtyScrap()
	}
	return total
}

// AllComplete reports whether every batch has finished its pipeline.
// An order with no batches is not considered complete: production was
// never scheduled.
func (QuantityLedger) AllComplete(batches []*batch.Batch) bool {
	if len(batches) == 0 {
		return false
	}
	for _, b := range batches {
		if !b.IsComplete() {
			return false
		}
	}
	return true
}

// StepProgress returns the mean step-progress fraction across the
// batches. This is step progress, not bottle progress; the two measures
// are tracked independently and never reconciled.
func (QuantityLedger) StepProgress(batches []*batch.Batch) float64 {
	if len(batches) == 0 {
		return 0
	}

	sum := 0.0
	for _, b := range batches {
		sum += b.ProgressFraction()
	}
	return sum / float64(len(batches))
}
