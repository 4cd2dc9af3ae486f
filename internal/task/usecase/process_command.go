package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"smart-task-api/internal/model"
	"smart-task-api/internal/task"
	repo "smart-task-api/internal/task/repository"
)

// ProcessCommand runs the full command pipeline: interpret the text, persist
// the task, expand recurrence into future occurrences, and dispatch
// background work when requested.
//
// Interpretation errors abort the pipeline and are returned to the caller
// unchanged. Expansion and dispatch failures after the primary task is stored
// do not fail the request; they are reported through the output's Warning and
// occurrence counters.
func (uc *implUseCase) ProcessCommand(ctx context.Context, input task.ProcessCommandInput) (task.ProcessCommandOutput, error) {
	command := strings.TrimSpace(input.Command)
	if command == "" {
		return task.ProcessCommandOutput{}, task.ErrEmptyCommand
	}

	interpreted, err := uc.interp.Interpret(ctx, command)
	if err != nil {
		return task.ProcessCommandOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:          uuid.NewString(),
		Description: interpreted.Description,
		DueDate:     interpreted.DueDate,
		Status:      model.StatusPending,
		Priority:    interpreted.Priority,
		Recurrence:  interpreted.Recurrence,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCommand CreateTask: %v", err)
		return task.ProcessCommandOutput{}, err
	}

	output := task.ProcessCommandOutput{Task: created}

	if interpreted.Recurrence != model.RecurrenceNone {
		uc.expandRecurrence(ctx, created, interpreted.Recurrence, &output)
	}

	if interpreted.Background {
		uc.dispatchBackground(ctx, &output)
	}

	return output, nil
}

// expandRecurrence persists the future occurrences of a recurring task.
// Best-effort: a partial series is reported, never rolled back.
func (uc *implUseCase) expandRecurrence(ctx context.Context, created model.Task, rule model.Recurrence, output *task.ProcessCommandOutput) {
	occurrences, err := task.Expand(created, rule, uc.occurrenceCount)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ProcessCommand Expand task %s: %v", created.ID, err)
		output.Warning = "recurrence could not be expanded: " + err.Error()
		return
	}

	output.OccurrencesRequested = len(occurrences)
	for _, occ := range occurrences {
		_, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
			ID:          occ.ID,
			Description: occ.Description,
			DueDate:     occ.DueDate,
			Status:      occ.Status,
			Priority:    occ.Priority,
			Recurrence:  occ.Recurrence,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.ProcessCommand CreateTask occurrence for %s: %v", created.ID, err)
			output.Warning = "some recurring occurrences could not be stored"
			continue
		}
		output.OccurrencesCreated++
	}
}

// dispatchBackground queues a job for the stored task and links the job ID
// back onto the task row. The link write is scoped to the job ID column:
// a worker may already be rewriting the task's status by the time it runs.
func (uc *implUseCase) dispatchBackground(ctx context.Context, output *task.ProcessCommandOutput) {
	jobID, err := uc.jobs.Enqueue(output.Task.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCommand Enqueue task %s: %v", output.Task.ID, err)
		output.Warning = "task stored but background processing could not be scheduled"
		return
	}

	updated, err := uc.repo.LinkBackgroundJob(ctx, output.Task.ID, jobID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCommand LinkBackgroundJob %s: %v", output.Task.ID, err)
	} else if updated.ID != "" {
		output.Task = updated
	}
	output.JobID = jobID
}
