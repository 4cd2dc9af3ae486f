package repository

import (
	"time"

	"smart-task-api/internal/model"
)

// CreateTaskOptions carries the full row to insert. The ID is generated by
// the caller so that recurring occurrences can be linked before persistence.
type CreateTaskOptions struct {
	ID              string
	Description     string
	DueDate         *time.Time
	Status          model.Status
	Priority        int
	Recurrence      model.Recurrence
	BackgroundJobID string
}

type GetOneTaskOptions struct {
	ID             string
	IncludeDeleted bool
}

type ListTasksOptions struct {
	Status         string
	Priority       *int
	DueFrom        *time.Time
	DueTo          *time.Time
	IncludeDeleted bool
	Limit          int
	Offset         int
	SortBy         string
	SortOrder      string
}

// UpdateTaskOptions carries the coalesced full row. The use case layer reads
// the current task and merges partial input before calling UpdateTask.
type UpdateTaskOptions struct {
	ID              string
	Description     string
	DueDate         *time.Time
	Status          model.Status
	Priority        int
	Recurrence      model.Recurrence
	BackgroundJobID string
}
