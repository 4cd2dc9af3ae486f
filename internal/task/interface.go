package task

import (
	"context"

	"smart-task-api/internal/interpreter"
	"smart-task-api/internal/worker"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// ProcessCommand interprets a natural-language command, persists the
	// resulting task, expands recurrence, and dispatches background work.
	ProcessCommand(ctx context.Context, input ProcessCommandInput) (ProcessCommandOutput, error)

	// Task CRUD
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) (DetailOutput, error)

	// JobStatus looks up the state of a dispatched background job.
	JobStatus(ctx context.Context, jobID string) (JobStatusOutput, error)
}

// Interpreter is the command-interpretation dependency of the use case.
// Implemented by internal/interpreter; faked in tests.
type Interpreter interface {
	Interpret(ctx context.Context, command string) (interpreter.Interpreted, error)
}

// Dispatcher queues background work for tasks and reports job state.
// Implemented by internal/worker.Pool; faked in tests.
type Dispatcher interface {
	Enqueue(taskID string) (string, error)
	Status(jobID string) (worker.Job, bool)
}
