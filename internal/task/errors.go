package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyCommand          = errors.New("command text is empty")
	ErrTaskNotFound          = errors.New("task not found")
	ErrTaskNotDeleted        = errors.New("task is not deleted")
	ErrJobNotFound           = errors.New("background job not found")
	ErrExpandWithoutDueDate  = errors.New("recurring task has no due date")
	ErrUnsupportedRecurrence = errors.New("unsupported recurrence rule")
)
