package usecase

import (
	"context"

	"smart-task-api/internal/model"
	"smart-task-api/internal/task"
	repo "smart-task-api/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when missing
// or soft-deleted.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update to a task; nil input fields keep their
// current values. Returns ErrTaskNotFound when missing or soft-deleted.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:              existing.ID,
		Description:     existing.Description,
		DueDate:         existing.DueDate,
		Status:          existing.Status,
		Priority:        existing.Priority,
		Recurrence:      existing.Recurrence,
		BackgroundJobID: existing.BackgroundJobID,
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.Status != nil {
		opt.Status = model.Status(*input.Status)
	}
	if input.Priority != nil {
		opt.Priority = *input.Priority
	}
	if input.DueDate != nil {
		opt.DueDate = input.DueDate
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if t.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete soft-deletes a task by ID. Returns ErrTaskNotFound when missing or
// already deleted.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.SoftDeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete SoftDeleteTask: %v", err)
		return err
	}
	return nil
}

// Restore brings back a soft-deleted task. Returns ErrTaskNotFound for
// unknown IDs and ErrTaskNotDeleted when the task is active.
func (uc *implUseCase) Restore(ctx context.Context, id string) (task.DetailOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, IncludeDeleted: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Restore GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if existing.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	if !existing.Deleted() {
		return task.DetailOutput{}, task.ErrTaskNotDeleted
	}

	t, err := uc.repo.RestoreTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Restore RestoreTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}
