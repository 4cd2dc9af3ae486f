package http

import (
	"smart-task-api/internal/task"
	"smart-task-api/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	ProcessCommand(c interface{})
	List(c interface{})
	Detail(c interface{})
	Update(c interface{})
	Delete(c interface{})
	Restore(c interface{})
	JobStatus(c interface{})
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
