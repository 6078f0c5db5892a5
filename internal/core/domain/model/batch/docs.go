// Package batch provides the production batch aggregate and its workflow
// engine. A batch is one production run of a fixed planned bottle
// quantity, tied to exactly one order, progressing through the fixed step
// sequence produce -> bottle_cap -> label -> pack.
//
// The package includes:
//   - Batch: the aggregate root owning quantities, hold state, and steps
//   - WorkflowStep: one step of the pipeline (pending -> wip -> done)
//   - Step: the fixed ordered step enum
//   - StepStatus and Status: the step- and batch-level state enums
//
// Batch status is a projection of step statuses: it is recomputed from the
// steps on every mutation and never trusted as stored input. Hold is the
// one exception, a sticky staff-set flag that cannot be derived from data.
package batch
