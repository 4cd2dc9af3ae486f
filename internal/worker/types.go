package worker

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a background job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job is a single unit of background work tied to a task.
type Job struct {
	ID         string     `json:"id"`
	TaskID     string     `json:"task_id"`
	Status     Status     `json:"status"`
	Error      string     `json:"error,omitempty"`
	EnqueuedAt time.Time  `json:"enqueued_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

var ErrQueueFull = errors.New("worker: job queue is full")
