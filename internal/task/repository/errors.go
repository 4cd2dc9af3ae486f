package repository

import "errors"

var (
	ErrFailedToInsertTask = errors.New("failed to insert task")
	ErrFailedToGetTask    = errors.New("failed to get task")
	ErrFailedToListTasks  = errors.New("failed to list tasks")
	ErrFailedToUpdateTask = errors.New("failed to update task")
	ErrFailedToDeleteTask = errors.New("failed to delete task")
)
