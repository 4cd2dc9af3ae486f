package usecase

import (
	"smart-task-api/internal/task"
	"smart-task-api/internal/task/repository"
	"smart-task-api/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	interp task.Interpreter
	jobs   task.Dispatcher

	// occurrenceCount is the total series length for recurring tasks.
	occurrenceCount int
}

// New creates a new task UseCase implementation.
func New(l log.Logger, repo repository.Repository, interp task.Interpreter, jobs task.Dispatcher, occurrenceCount int) *implUseCase {
	if occurrenceCount <= 0 {
		occurrenceCount = task.DefaultOccurrenceCount
	}
	return &implUseCase{
		l:               l,
		repo:            repo,
		interp:          interp,
		jobs:            jobs,
		occurrenceCount: occurrenceCount,
	}
}
