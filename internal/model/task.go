package model

import "time"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Recurrence is a named repetition interval used to generate future occurrences.
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Valid reports whether r is a known recurrence rule. RecurrenceNone is valid
// (non-recurring task).
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Task is the central entity: one unit of work extracted from a user command.
type Task struct {
	ID              string
	Description     string
	DueDate         *time.Time // nil means no due date
	Status          Status
	Priority        int // 0-5, 0 is default
	Recurrence      Recurrence
	BackgroundJobID string     // id of the async execution unit, if dispatched
	DeletedAt       *time.Time // soft-delete marker; nil means active
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Deleted reports whether the task is soft-deleted.
func (t Task) Deleted() bool {
	return t.DeletedAt != nil
}
