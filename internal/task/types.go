package task

import (
	"time"

	"smart-task-api/internal/model"
	"smart-task-api/internal/worker"
)

// --- UseCase Inputs ---

// ProcessCommandInput carries the raw natural-language command from the user.
type ProcessCommandInput struct {
	Command string
}

// ListInput holds filter, pagination and sort parameters for listing tasks.
// Soft-deleted tasks are always excluded.
type ListInput struct {
	Status    string
	Priority  *int
	DueFrom   *time.Time
	DueTo     *time.Time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// UpdateInput holds a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Description *string
	Status      *string
	Priority    *int
	DueDate     *time.Time
}

// --- UseCase Outputs ---

// ProcessCommandOutput is the result of interpreting and persisting a command.
type ProcessCommandOutput struct {
	Task model.Task

	// JobID is set when the command requested background processing.
	JobID string

	// Recurring-task expansion bookkeeping. Created < Requested means the
	// expansion was partial; Warning explains why.
	OccurrencesRequested int
	OccurrencesCreated   int
	Warning              string
}

type ListOutput struct {
	Tasks    []model.Task
	Total    int
	Page     int
	PageSize int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

type JobStatusOutput struct {
	Job worker.Job
}
