package usecase

import (
	"context"

	"smart-task-api/internal/task"
)

// JobStatus looks up a background job by ID. Returns ErrJobNotFound when the
// job is unknown or its record has expired.
func (uc *implUseCase) JobStatus(ctx context.Context, jobID string) (task.JobStatusOutput, error) {
	job, ok := uc.jobs.Status(jobID)
	if !ok {
		return task.JobStatusOutput{}, task.ErrJobNotFound
	}
	return task.JobStatusOutput{Job: job}, nil
}
