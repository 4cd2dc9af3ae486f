package repository

import (
	"context"

	"smart-task-api/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
//
// GetOneTask returns a zero-value Task (ID == "") when not found; not-found
// is not an error at this layer.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	SetTaskStatus(ctx context.Context, id string, status model.Status) (model.Task, error)
	LinkBackgroundJob(ctx context.Context, id, jobID string) (model.Task, error)
	SoftDeleteTask(ctx context.Context, id string) error
	RestoreTask(ctx context.Context, id string) (model.Task, error)
}
