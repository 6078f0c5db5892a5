package batch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/errs"
	"bottleworks/internal/pkg/guard"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through NewBatch or RestoreBatch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrBatchOnHold is returned when attempting to work a step of a held
	// batch. Resume the batch first.
	ErrBatchOnHold = errors.New("batch is on hold")

	// ErrBatchNotOnHold is returned when resuming a batch that is not held.
	ErrBatchNotOnHold = errors.New("batch is not on hold")

	// ErrBatchAlreadyComplete is returned when holding a finished batch.
	ErrBatchAlreadyComplete = errors.New("batch is already complete")

	// ErrBatchHasProgress is returned when splitting or merging a batch
	// that already has started steps or recorded quantities. Split and
	// merge would silently discard that progress.
	ErrBatchHasProgress = errors.New("batch has recorded progress")

	// ErrSplitNeedsTwoParts is returned when a split plan has fewer than
	// two quantities.
	ErrSplitNeedsTwoParts = errors.New("split requires at least two quantities")

	// ErrMergeNeedsSource is returned when a merge lists no source batches.
	ErrMergeNeedsSource = errors.New("merge requires at least one source batch")

	// ErrMergeDifferentOrders is returned when merging batches that do not
	// belong to the same order.
	ErrMergeDifferentOrders = errors.New("merged batches must belong to the same order")
)

// Batch is the aggregate root for one production run. It owns the planned,
// good, and scrap bottle quantities, the hold flag, and the four workflow
// steps.
//
// Batch invariants:
//   - Exactly the four pipeline steps exist, in fixed order
//   - Steps are worked strictly in order: a step cannot start until every
//     prior step is done
//   - qty_good + qty_scrap never exceeds qty_planned
//   - Status is recomputed from step statuses on every read; hold is the
//     only stored state the steps cannot derive
//   - actual_start is stamped when the first step starts, actual_finish
//     when the last step completes
type Batch struct {
	id       kernel.UUID
	uid      string
	humanUID string
	orderID  kernel.UUID

	onHold     bool
	qtyPlanned int
	qtyGood    int
	qtyScrap   int

	actualStart   *time.Time
	actualFinish  *time.Time
	priorityIndex int

	// version is the optimistic concurrency token, incremented by the
	// repository on every successful conditional update.
	version int

	steps []*WorkflowStep

	guard guard.ConstructorGuard
}

// NewBatch creates a queued batch for an order with all four workflow
// steps pending.
//
// Parameters:
//   - id: unique identifier for the batch
//   - orderID: the owning order
//   - uid: scan code printed on the batch traveler
//   - humanUID: display code shown to staff
//   - qtyPlanned: planned bottle count (must be positive)
//   - priorityIndex: position in the production queue (non-negative)
func NewBatch(
	id kernel.UUID,
	orderID kernel.UUID,
	uid string,
	humanUID string,
	qtyPlanned int,
	priorityIndex int,
) (*Batch, error) {
	b := &Batch{
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setUID(uid),
		b.setHumanUID(humanUID),
		b.setQtyPlanned(qtyPlanned),
		b.setPriorityIndex(priorityIndex),
	); err != nil {
		return nil, err
	}

	for _, step := range OrderedSteps() {
		ws, err := NewWorkflowStep(kernel.NewUUID(), step)
		if err != nil {
			return nil, err
		}
		b.steps = append(b.steps, ws)
	}

	return b, nil
}

// RestoreBatch reconstructs a batch from persistence, preserving its
// quantities, hold state, timestamps, version, and steps.
func RestoreBatch(
	id kernel.UUID,
	orderID kernel.UUID,
	uid string,
	humanUID string,
	onHold bool,
	qtyPlanned int,
	qtyGood int,
	qtyScrap int,
	actualStart *time.Time,
	actualFinish *time.Time,
	priorityIndex int,
	version int,
	steps []*WorkflowStep,
) (*Batch, error) {
	b := &Batch{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setUID(uid),
		b.setHumanUID(humanUID),
		b.setQtyPlanned(qtyPlanned),
		b.setPriorityIndex(priorityIndex),
		b.setVersion(version),
		b.setSteps(steps),
	); err != nil {
		return nil, err
	}

	if err := b.setQuantities(qtyGood, qtyScrap); err != nil {
		return nil, err
	}

	b.onHold = onHold
	b.actualStart = actualStart
	b.actualFinish = actualFinish

	return b, nil
}

// Validate ensures the Batch was created through a constructor.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}
	return b.guard.Validate(ErrBatchIsNotConstructed)
}

// IsEqual compares two batches by their unique identifiers.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// UID returns the scan code printed on the batch traveler.
func (b *Batch) UID() string {
	return b.uid
}

// HumanUID returns the batch's display code.
func (b *Batch) HumanUID() string {
	return b.humanUID
}

// OrderID returns the owning order's identifier.
func (b *Batch) OrderID() kernel.UUID {
	return b.orderID
}

// OnHold reports whether staff paused the batch.
func (b *Batch) OnHold() bool {
	return b.onHold
}

// QtyPlanned returns the planned bottle count.
func (b *Batch) QtyPlanned() int {
	return b.qtyPlanned
}

// QtyGood returns the recorded good bottle count.
func (b *Batch) QtyGood() int {
	return b.qtyGood
}

// QtyScrap returns the recorded scrap bottle count.
func (b *Batch) QtyScrap() int {
	return b.qtyScrap
}

// ActualStart returns when the first step started, nil while queued.
func (b *Batch) ActualStart() *time.Time {
	return b.actualStart
}

// ActualFinish returns when the last step completed, nil until then.
func (b *Batch) ActualFinish() *time.Time {
	return b.actualFinish
}

// PriorityIndex returns the batch's position in the production queue.
func (b *Batch) PriorityIndex() int {
	return b.priorityIndex
}

// Version returns the optimistic concurrency token.
func (b *Batch) Version() int {
	return b.version
}

// Steps returns the workflow steps in pipeline order.
func (b *Batch) Steps() []*WorkflowStep {
	return append([]*WorkflowStep(nil), b.steps...)
}

// StepByID finds a workflow step by its identifier.
func (b *Batch) StepByID(stepID kernel.UUID) (*WorkflowStep, error) {
	for _, s := range b.steps {
		if s.ID().IsEqual(stepID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("step", stepID.String())
}

// StepFor finds the workflow step for a pipeline stage. Scan stations
// address steps by stage name, not by entity identifier.
func (b *Batch) StepFor(step Step) (*WorkflowStep, error) {
	for _, s := range b.steps {
		if s.StepName() == step {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("step", step.String())
}

// Status derives the batch status from its steps and hold flag. The
// stored status column is a projection of this; this method is the source
// of truth.
func (b *Batch) Status() Status {
	done := 0
	started := 0
	for _, s := range b.steps {
		if s.IsDone() {
			done++
		}
		if s.Status() != StepPending {
			started++
		}
	}

	switch {
	case len(b.steps) > 0 && done == len(b.steps):
		return StatusComplete
	case b.onHold:
		return StatusHold
	case started > 0:
		return StatusWIP
	default:
		return StatusQueued
	}
}

// IsComplete reports whether every step is done.
func (b *Batch) IsComplete() bool {
	return b.Status() == StatusComplete
}

// ProgressFraction returns completed steps over total steps. This measure
// is independent from bottle-quantity progress (good over planned); the
// two are not reconciled.
func (b *Batch) ProgressFraction() float64 {
	if len(b.steps) == 0 {
		return 0
	}

	done := 0
	for _, s := range b.steps {
		if s.IsDone() {
			done++
		}
	}
	return float64(done) / float64(len(b.steps))
}

// StartStep moves a pending step to wip with operator attribution.
//
// Rules:
//   - The batch must not be on hold
//   - Every step before this one in the pipeline order must be done
//   - The step itself must be pending
//
// Side effect: the first step to start stamps the batch's actual_start.
func (b *Batch) StartStep(stepID kernel.UUID, operatorID kernel.UUID, now time.Time) error {
	if err := b.Validate(); err != nil {
		return err
	}

	step, err := b.StepByID(stepID)
	if err != nil {
		return err
	}

	if b.onHold {
		return ErrBatchOnHold
	}

	for _, prior := range b.steps {
		if prior.StepName() == step.StepName() {
			break
		}
		if !prior.IsDone() {
			return errs.NewInvalidStepStateError(
				prior.StepName().String(), prior.Status().String(), StepDone.String())
		}
	}

	if err = step.start(operatorID, now); err != nil {
		return err
	}

	if b.actualStart == nil {
		b.actualStart = &now
	}

	return nil
}

// CompleteStep moves a wip step to done.
//
// Side effect: when the last step completes, the batch's actual_finish is
// stamped. Batch status flips to complete via derivation, not by writing
// a trusted status field.
func (b *Batch) CompleteStep(stepID kernel.UUID, now time.Time) error {
	if err := b.Validate(); err != nil {
		return err
	}

	step, err := b.StepByID(stepID)
	if err != nil {
		return err
	}

	if err = step.complete(now); err != nil {
		return err
	}

	if b.IsComplete() && b.actualFinish == nil {
		b.actualFinish = &now
	}

	return nil
}

// RecordQuantities overwrites the good and scrap bottle counts.
// good + scrap must not exceed the planned quantity; overruns are a hard
// precondition failure, not a warning.
func (b *Batch) RecordQuantities(good, scrap int) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return b.setQuantities(good, scrap)
}

// Hold pauses the batch for materials or quality issues. Completed
// batches cannot be held.
func (b *Batch) Hold() error {
	if err := b.Validate(); err != nil {
		return err
	}

	if b.IsComplete() {
		return ErrBatchAlreadyComplete
	}

	b.onHold = true
	return nil
}

// Resume clears the hold flag so work can continue.
func (b *Batch) Resume() error {
	if err := b.Validate(); err != nil {
		return err
	}

	if !b.onHold {
		return ErrBatchNotOnHold
	}

	b.onHold = false
	return nil
}

// Split divides the batch's planned quantity into fresh batches, one per
// quantity, each inheriting the order and priority and starting with all
// steps pending.
//
// Rules:
//   - At least two quantities, each positive
//   - The quantities must sum exactly to the planned quantity
//     (QuantityMismatchError otherwise)
//   - The batch must have no progress: all steps pending, no good or
//     scrap recorded
//
// The source batch itself is not mutated; the caller deletes it and
// persists the returned children in one transaction, conserving the total
// planned quantity.
func (b *Batch) Split(quantities []int) ([]*Batch, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if len(quantities) < 2 {
		return nil, ErrSplitNeedsTwoParts
	}

	if b.hasProgress() {
		return nil, ErrBatchHasProgress
	}

	sum := 0
	for _, q := range quantities {
		if q <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("splitQuantity",
				fmt.Errorf("%d is not greater than 0", q))
		}
		sum += q
	}

	if sum != b.qtyPlanned {
		return nil, errs.NewQuantityMismatchError(b.qtyPlanned, sum)
	}

	children := make([]*Batch, 0, len(quantities))
	for i, q := range quantities {
		child, err := NewBatch(
			kernel.NewUUID(),
			b.orderID,
			NewScanCode(),
			fmt.Sprintf("%s-%d", b.humanUID, i+1),
			q,
			b.priorityIndex,
		)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, nil
}

// Absorb merges the planned quantities of the source batches into this
// batch. Sources must belong to the same order, and neither the target
// nor any source may have progress. The caller deletes the sources after
// a successful absorb; the planned total across the merge set is
// conserved on the target.
func (b *Batch) Absorb(sources []*Batch) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if len(sources) == 0 {
		return ErrMergeNeedsSource
	}

	if b.hasProgress() {
		return ErrBatchHasProgress
	}

	total := 0
	for _, src := range sources {
		if err := src.Validate(); err != nil {
			return err
		}
		if src.IsEqual(b) {
			return errs.NewValueIsInvalidErrorWithCause("mergeSources",
				fmt.Errorf("batch %s cannot absorb itself", b.humanUID))
		}
		if !src.OrderID().IsEqual(b.orderID) {
			return ErrMergeDifferentOrders
		}
		if src.hasProgress() {
			return ErrBatchHasProgress
		}
		total += src.QtyPlanned()
	}

	b.qtyPlanned += total
	return nil
}

// NewScanCode mints a short scan code for batch travelers.
func NewScanCode() string {
	return "bx-" + strings.SplitN(kernel.NewUUID().String(), "-", 2)[0]
}

// hasProgress reports whether any step has left pending or any bottle
// counts were recorded. Split and merge are only safe before this point.
func (b *Batch) hasProgress() bool {
	if b.qtyGood != 0 || b.qtyScrap != 0 {
		return true
	}
	for _, s := range b.steps {
		if s.Status() != StepPending {
			return true
		}
	}
	return false
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	b.orderID = orderID
	return nil
}

func (b *Batch) setUID(uid string) error {
	if strings.TrimSpace(uid) == "" {
		return errs.NewValueIsRequiredError("uid")
	}
	b.uid = uid
	return nil
}

func (b *Batch) setHumanUID(humanUID string) error {
	if strings.TrimSpace(humanUID) == "" {
		return errs.NewValueIsRequiredError("humanUID")
	}
	b.humanUID = humanUID
	return nil
}

func (b *Batch) setQtyPlanned(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qtyPlanned",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	b.qtyPlanned = qty
	return nil
}

func (b *Batch) setQuantities(good, scrap int) error {
	if good < 0 {
		return errs.NewValueIsInvalidErrorWithCause("qtyGood",
			fmt.Errorf("%d is negative", good))
	}
	if scrap < 0 {
		return errs.NewValueIsInvalidErrorWithCause("qtyScrap",
			fmt.Errorf("%d is negative", scrap))
	}
	if good+scrap > b.qtyPlanned {
		return errs.NewQuantityOverrunError(b.qtyPlanned, good, scrap)
	}

	b.qtyGood = good
	b.qtyScrap = scrap
	return nil
}

func (b *Batch) setPriorityIndex(priorityIndex int) error {
	if priorityIndex < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priorityIndex",
			fmt.Errorf("%d is negative", priorityIndex))
	}
	b.priorityIndex = priorityIndex
	return nil
}

func (b *Batch) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidError("version")
	}
	b.version = version
	return nil
}

func (b *Batch) setSteps(steps []*WorkflowStep) error {
	if len(steps) == 0 {
		return errs.NewValueIsRequiredError("steps")
	}
	for _, s := range steps {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	b.steps = append([]*WorkflowStep(nil), steps...)
	return nil
}
