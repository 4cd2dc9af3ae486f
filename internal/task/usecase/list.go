package usecase

import (
	"context"

	"smart-task-api/internal/task"
	repo "smart-task-api/internal/task/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// List returns a paginated list of tasks. Soft-deleted tasks are excluded.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	page := input.Page
	if page <= 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:    input.Status,
		Priority:  input.Priority,
		DueFrom:   input.DueFrom,
		DueTo:     input.DueTo,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:    tasks,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
