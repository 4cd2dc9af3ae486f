package usecase

import (
	"context"
	"errors"
	"fmt"

	"smart-task-api/internal/interpreter"
	"smart-task-api/internal/model"
	"smart-task-api/internal/task/repository"
	"smart-task-api/internal/worker"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// fakeRepo is an in-memory repository. failCreateAfter > 0 makes CreateTask
// fail once that many inserts have succeeded.
type fakeRepo struct {
	tasks           map[string]model.Task
	createOrder     []string
	failCreateAfter int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: make(map[string]model.Task)}
}

func (r *fakeRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if r.failCreateAfter > 0 && len(r.createOrder) >= r.failCreateAfter {
		return model.Task{}, repository.ErrFailedToInsertTask
	}
	t := model.Task{
		ID:              opt.ID,
		Description:     opt.Description,
		DueDate:         opt.DueDate,
		Status:          opt.Status,
		Priority:        opt.Priority,
		Recurrence:      opt.Recurrence,
		BackgroundJobID: opt.BackgroundJobID,
	}
	r.tasks[t.ID] = t
	r.createOrder = append(r.createOrder, t.ID)
	return t, nil
}

func (r *fakeRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	t := r.tasks[opt.ID]
	if t.Deleted() && !opt.IncludeDeleted {
		return model.Task{}, nil
	}
	return t, nil
}

func (r *fakeRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, id := range r.createOrder {
		t := r.tasks[id]
		if t.Deleted() && !opt.IncludeDeleted {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, ok := r.tasks[opt.ID]
	if !ok || t.Deleted() {
		return model.Task{}, nil
	}
	t.Description = opt.Description
	t.DueDate = opt.DueDate
	t.Status = opt.Status
	t.Priority = opt.Priority
	t.Recurrence = opt.Recurrence
	t.BackgroundJobID = opt.BackgroundJobID
	r.tasks[opt.ID] = t
	return t, nil
}

func (r *fakeRepo) SetTaskStatus(ctx context.Context, id string, status model.Status) (model.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.Deleted() {
		return model.Task{}, nil
	}
	t.Status = status
	r.tasks[id] = t
	return t, nil
}

func (r *fakeRepo) LinkBackgroundJob(ctx context.Context, id, jobID string) (model.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.Deleted() {
		return model.Task{}, nil
	}
	t.BackgroundJobID = jobID
	r.tasks[id] = t
	return t, nil
}

func (r *fakeRepo) SoftDeleteTask(ctx context.Context, id string) error {
	t, ok := r.tasks[id]
	if !ok {
		return nil
	}
	now := t.CreatedAt
	t.DeletedAt = &now
	r.tasks[id] = t
	return nil
}

func (r *fakeRepo) RestoreTask(ctx context.Context, id string) (model.Task, error) {
	t, ok := r.tasks[id]
	if !ok || !t.Deleted() {
		return model.Task{}, nil
	}
	t.DeletedAt = nil
	r.tasks[id] = t
	return t, nil
}

type fakeInterpreter struct {
	result interpreter.Interpreted
	err    error
}

func (f *fakeInterpreter) Interpret(ctx context.Context, command string) (interpreter.Interpreted, error) {
	return f.result, f.err
}

// fakeDispatcher records enqueued task IDs. onEnqueue, when set, runs after
// the job is registered, standing in for a worker that picks the job up
// before the caller gets around to linking it.
type fakeDispatcher struct {
	jobs      map[string]worker.Job
	enqueued  []string
	err       error
	onEnqueue func(taskID string)
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{jobs: make(map[string]worker.Job)}
}

func (d *fakeDispatcher) Enqueue(taskID string) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	jobID := fmt.Sprintf("job-%d", len(d.enqueued)+1)
	d.enqueued = append(d.enqueued, taskID)
	d.jobs[jobID] = worker.Job{ID: jobID, TaskID: taskID, Status: worker.StatusPending}
	if d.onEnqueue != nil {
		d.onEnqueue(taskID)
	}
	return jobID, nil
}

func (d *fakeDispatcher) Status(jobID string) (worker.Job, bool) {
	job, ok := d.jobs[jobID]
	return job, ok
}

var errQueueDown = errors.New("queue unavailable")
