package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"smart-task-api/internal/model"
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

type fakeStore struct {
	mu       sync.Mutex
	tasks    map[string]model.Task
	statuses map[string][]model.Status
}

func newFakeStore(tasks ...model.Task) *fakeStore {
	s := &fakeStore{
		tasks:    make(map[string]model.Task),
		statuses: make(map[string][]model.Status),
	}
	for _, t := range tasks {
		s.tasks[t.ID] = t
	}
	return s
}

func (s *fakeStore) SetTaskStatus(ctx context.Context, id string, status model.Status) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, nil
	}
	t.Status = status
	s.tasks[id] = t
	s.statuses[id] = append(s.statuses[id], status)
	return t, nil
}

func (s *fakeStore) history(id string) []model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Status, len(s.statuses[id]))
	copy(out, s.statuses[id])
	return out
}

func waitForJob(t *testing.T, p *Pool, jobID string, want Status) Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if job, ok := p.Status(jobID); ok && job.Status == want {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	job, _ := p.Status(jobID)
	t.Fatalf("job %s never reached %s, last seen %+v", jobID, want, job)
	return Job{}
}

func TestPoolProcessesJob(t *testing.T) {
	store := newFakeStore(model.Task{ID: "task-1", Description: "run report", Status: model.StatusPending})
	p := New(nopLogger{}, store, Config{Workers: 1, ProcessDelay: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	jobID, err := p.Enqueue("task-1")
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	job := waitForJob(t, p, jobID, StatusCompleted)
	if job.TaskID != "task-1" {
		t.Errorf("job.TaskID = %q, want task-1", job.TaskID)
	}
	if job.StartedAt == nil || job.FinishedAt == nil {
		t.Errorf("expected start and finish timestamps, got %+v", job)
	}

	history := store.history("task-1")
	want := []model.Status{model.StatusInProgress, model.StatusCompleted}
	if len(history) != len(want) {
		t.Fatalf("status history = %v, want %v", history, want)
	}
	for i := range want {
		if history[i] != want[i] {
			t.Errorf("status history[%d] = %s, want %s", i, history[i], want[i])
		}
	}
}

func TestPoolEnqueueQueueFull(t *testing.T) {
	store := newFakeStore()
	// Never started, so the single queue slot fills immediately.
	p := New(nopLogger{}, store, Config{Workers: 1, QueueSize: 1})

	if _, err := p.Enqueue("task-1"); err != nil {
		t.Fatalf("first Enqueue: %v", err)
	}
	if _, err := p.Enqueue("task-2"); err != ErrQueueFull {
		t.Fatalf("second Enqueue err = %v, want ErrQueueFull", err)
	}
}

func TestPoolStatusUnknownJob(t *testing.T) {
	p := New(nopLogger{}, newFakeStore(), Config{})
	if _, ok := p.Status("missing"); ok {
		t.Error("expected unknown job to report not found")
	}
}

func TestPoolProcessDeletedTask(t *testing.T) {
	// Task absent from the store: the job still completes without updates.
	store := newFakeStore()
	p := New(nopLogger{}, store, Config{Workers: 1})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	jobID, err := p.Enqueue("gone")
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	waitForJob(t, p, jobID, StatusCompleted)
	if got := store.history("gone"); len(got) != 0 {
		t.Errorf("expected no status updates, got %v", got)
	}
}
