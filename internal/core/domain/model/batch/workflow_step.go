package batch

import (
	"errors"
	"time"

	"bottleworks/internal/core/domain/model/kernel"
	"bottleworks/internal/pkg/errs"
	"bottleworks/internal/pkg/guard"
)

// ErrWorkflowStepIsNotConstructed is returned when a WorkflowStep was not
// created through NewWorkflowStep or RestoreWorkflowStep.
var ErrWorkflowStepIsNotConstructed = errors.New(
	"WorkflowStep must be created via NewWorkflowStep constructor")

// WorkflowStep is one stage of a batch's production pipeline. It is an
// entity owned by the Batch aggregate; all mutations go through the batch
// so batch-level state stays consistent.
//
// A step records who started it and when, and when it finished:
//   - Start requires pending, stamps startedAt and the operator
//   - Complete requires wip, stamps finishedAt
type WorkflowStep struct {
	id         kernel.UUID
	step       Step
	status     StepStatus
	startedAt  *time.Time
	finishedAt *time.Time
	operatorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewWorkflowStep creates a pending step for the given pipeline stage.
func NewWorkflowStep(id kernel.UUID, step Step) (*WorkflowStep, error) {
	s := &WorkflowStep{
		status: StepPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setStep(step),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreWorkflowStep reconstructs a step from persistence, preserving its
// status, timestamps, and operator attribution.
func RestoreWorkflowStep(
	id kernel.UUID,
	step Step,
	status StepStatus,
	startedAt *time.Time,
	finishedAt *time.Time,
	operatorID *kernel.UUID,
) (*WorkflowStep, error) {
	s := &WorkflowStep{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setStep(step),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	s.startedAt = startedAt
	s.finishedAt = finishedAt
	s.operatorID = operatorID

	return s, nil
}

// Validate ensures the step was created through a constructor.
func (s *WorkflowStep) Validate() error {
	if s == nil {
		return ErrWorkflowStepIsNotConstructed
	}
	return s.guard.Validate(ErrWorkflowStepIsNotConstructed)
}

// ID returns the step's unique identifier.
func (s *WorkflowStep) ID() kernel.UUID {
	return s.id
}

// StepName returns which pipeline stage this step is.
func (s *WorkflowStep) StepName() Step {
	return s.step
}

// Status returns the current step status.
func (s *WorkflowStep) Status() StepStatus {
	return s.status
}

// StartedAt returns when the step was started, nil if pending.
func (s *WorkflowStep) StartedAt() *time.Time {
	return s.startedAt
}

// FinishedAt returns when the step finished, nil until done.
func (s *WorkflowStep) FinishedAt() *time.Time {
	return s.finishedAt
}

// OperatorID returns who started the step, nil if pending.
func (s *WorkflowStep) OperatorID() *kernel.UUID {
	return s.operatorID
}

// IsDone reports whether the step is finished.
func (s *WorkflowStep) IsDone() bool {
	return s.status == StepDone
}

// start moves the step to wip with operator attribution. Only callable
// through Batch.StartStep so ordering and hold rules are enforced first.
func (s *WorkflowStep) start(operatorID kernel.UUID, now time.Time) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	if s.status != StepPending {
		return errs.NewInvalidStepStateError(s.step.String(), s.status.String(), StepPending.String())
	}

	s.status = StepWIP
	s.startedAt = &now
	s.operatorID = &operatorID
	return nil
}

// complete moves the step to done. Only callable through
// Batch.CompleteStep so batch status is recomputed afterwards.
func (s *WorkflowStep) complete(now time.Time) error {
	if s.status != StepWIP {
		return errs.NewInvalidStepStateError(s.step.String(), s.status.String(), StepWIP.String())
	}

	s.status = StepDone
	s.finishedAt = &now
	return nil
}

func (s *WorkflowStep) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *WorkflowStep) setStep(step Step) error {
	if err := step.Validate(); err != nil {
		return err
	}
	s.step = step
	return nil
}

func (s *WorkflowStep) setStatus(status StepStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
