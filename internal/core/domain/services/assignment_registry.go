package services

import (
	"fulfillment/internal/core/domain/model/kernel"
)

// Worker is the capability an aggregate must expose to be claimable by the
// assignment registry. Both staff.Employee and staff.Courier satisfy it.
type Worker interface {
	Validate() error
	ID() kernel.UUID
	IsActive() bool
	MarkBusy() error
	MarkFree()
}

// Task is the capability a unit of work must expose to be assignable. Both
// preparing.PreparingOrder and delivery.Delivery satisfy it: Assign moves a
// waiting task to in-process, Complete moves an in-process task to done and
// enforces that only the assigned worker may finish it.
type Task interface {
	Validate() error
	ID() kernel.UUID
	Assignee() *kernel.UUID
	Assign(workerID kernel.UUID) error
	Complete(workerID kernel.UUID) error
}

// AssignmentRegistry binds exactly one available worker to exactly one task,
// enforcing single-active-assignment per worker and the linear task status
// progression waiting -> in-process -> done. The same service drives both the
// employee/preparing-order and courier/delivery flows; only the post-finish
// hook differs between the two instantiations.
//
// The registry mutates aggregates in memory; persisting the changes (and
// rolling them back on failure) is the enclosing use case's concern. Because
// each use case runs in a single transaction over freshly loaded aggregates,
// two concurrent appointments of the same worker cannot both commit.
type AssignmentRegistry[W Worker, T Task] struct {
	onFinish func(T) error
}

// NewAssignmentRegistry creates a registry. onFinish, when non-nil, runs
// after a task successfully completes — the delivery instantiation uses it
// to mark the parent order DeliveryFinished.
func NewAssignmentRegistry[W Worker, T Task](onFinish func(T) error) AssignmentRegistry[W, T] {
	return AssignmentRegistry[W, T]{onFinish: onFinish}
}

// Appoint claims the worker for the task. It fails when the worker already
// holds an in-process task or the task is not waiting; on success the task is
// in-process, bound to the worker, and the worker is no longer available.
func (r AssignmentRegistry[W, T]) Appoint(worker W, task T) error {
	if err := worker.Validate(); err != nil {
		return err
	}

	if err := task.Validate(); err != nil {
		return err
	}

	if err := worker.MarkBusy(); err != nil {
		return err
	}

	if err := task.Assign(worker.ID()); err != nil {
		return err
	}

	return nil
}

// Finish completes the task on behalf of the worker. It fails when the task
// is assigned to someone else or is not in process; on success the task is
// done, the worker is available again, and the post-finish hook has run.
func (r AssignmentRegistry[W, T]) Finish(worker W, task T) error {
	if err := worker.Validate(); err != nil {
		return err
	}

	if err := task.Validate(); err != nil {
		return err
	}

	if err := task.Complete(worker.ID()); err != nil {
		return err
	}

	worker.MarkFree()

	if r.onFinish != nil {
		return r.onFinish(task)
	}

	return nil
}
