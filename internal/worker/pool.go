package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-task-api/internal/model"
	"smart-task-api/pkg/log"
)

// TaskStore is the subset of the task repository the pool needs to advance
// a task through its background lifecycle. The write is scoped to the status
// column so it cannot clobber fields written concurrently by other callers.
type TaskStore interface {
	SetTaskStatus(ctx context.Context, id string, status model.Status) (model.Task, error)
}

type Config struct {
	Workers      int
	QueueSize    int
	HistorySize  int
	JobRetention time.Duration
	ProcessDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 2
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 64
	}
	if c.HistorySize <= 0 {
		c.HistorySize = 1024
	}
	if c.JobRetention <= 0 {
		c.JobRetention = time.Hour
	}
	return c
}

// Pool runs background jobs for tasks flagged as background work. Job state
// is kept in an in-memory expiring cache, so status lookups only work for
// the lifetime of the process.
type Pool struct {
	l     log.Logger
	store TaskStore
	cfg   Config

	queue chan string
	jobs  *expirable.LRU[string, Job]
}

// New creates a Pool. Start must be called before Enqueue will make progress.
func New(l log.Logger, store TaskStore, cfg Config) *Pool {
	cfg = cfg.withDefaults()
	return &Pool{
		l:     l,
		store: store,
		cfg:   cfg,
		queue: make(chan string, cfg.QueueSize),
		jobs:  expirable.NewLRU[string, Job](cfg.HistorySize, nil, cfg.JobRetention),
	}
}

// Start launches the worker goroutines. They drain the queue until ctx is
// cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		go p.run(ctx)
	}
}

// Enqueue registers a new pending job for the given task and queues it.
// Returns ErrQueueFull when the queue has no room.
func (p *Pool) Enqueue(taskID string) (string, error) {
	job := Job{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		Status:     StatusPending,
		EnqueuedAt: time.Now(),
	}
	p.jobs.Add(job.ID, job)

	select {
	case p.queue <- job.ID:
		return job.ID, nil
	default:
		p.jobs.Remove(job.ID)
		return "", ErrQueueFull
	}
}

// Status returns the job by ID. The second return is false when the job is
// unknown or its record has expired.
func (p *Pool) Status(jobID string) (Job, bool) {
	return p.jobs.Get(jobID)
}

func (p *Pool) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case jobID := <-p.queue:
			p.process(ctx, jobID)
		}
	}
}

func (p *Pool) process(ctx context.Context, jobID string) {
	job, ok := p.jobs.Get(jobID)
	if !ok {
		return
	}

	now := time.Now()
	job.Status = StatusRunning
	job.StartedAt = &now
	p.jobs.Add(job.ID, job)
	p.l.Infof(ctx, "worker: job %s started for task %s", job.ID, job.TaskID)

	if err := p.setTaskStatus(ctx, job.TaskID, model.StatusInProgress); err != nil {
		p.fail(ctx, job, err)
		return
	}

	// Simulated work before completion; real handlers would go here.
	if p.cfg.ProcessDelay > 0 {
		select {
		case <-ctx.Done():
			p.fail(ctx, job, ctx.Err())
			return
		case <-time.After(p.cfg.ProcessDelay):
		}
	}

	if err := p.setTaskStatus(ctx, job.TaskID, model.StatusCompleted); err != nil {
		p.fail(ctx, job, err)
		return
	}

	finished := time.Now()
	job.Status = StatusCompleted
	job.FinishedAt = &finished
	p.jobs.Add(job.ID, job)
	p.l.Infof(ctx, "worker: job %s completed for task %s", job.ID, job.TaskID)
}

func (p *Pool) fail(ctx context.Context, job Job, err error) {
	finished := time.Now()
	job.Status = StatusFailed
	job.Error = err.Error()
	job.FinishedAt = &finished
	p.jobs.Add(job.ID, job)
	p.l.Errorf(ctx, "worker: job %s failed for task %s: %v", job.ID, job.TaskID, err)
}

func (p *Pool) setTaskStatus(ctx context.Context, taskID string, status model.Status) error {
	// A zero-value result means the task was deleted while queued; nothing
	// to advance, and that is not a job failure.
	_, err := p.store.SetTaskStatus(ctx, taskID, status)
	return err
}
