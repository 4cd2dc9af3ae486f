package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-api/internal/task"
	"smart-task-api/internal/task/repository"
	"smart-task-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task domain
	taskRepo        repository.Repository
	interpreter     task.Interpreter
	dispatcher      task.Dispatcher
	occurrenceCount int

	// Rate limiting
	rateLimitPerSec float64
	rateLimitBurst  int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Task domain
	TaskRepo        repository.Repository
	Interpreter     task.Interpreter
	Dispatcher      task.Dispatcher
	OccurrenceCount int

	// Rate limiting
	RateLimitPerSec float64
	RateLimitBurst  int
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		taskRepo:        cfg.TaskRepo,
		interpreter:     cfg.Interpreter,
		dispatcher:      cfg.Dispatcher,
		occurrenceCount: cfg.OccurrenceCount,
		rateLimitPerSec: cfg.RateLimitPerSec,
		rateLimitBurst:  cfg.RateLimitBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskRepo == nil {
		return errors.New("task repository is required")
	}
	if srv.interpreter == nil {
		return errors.New("interpreter is required")
	}
	if srv.dispatcher == nil {
		return errors.New("dispatcher is required")
	}
	return nil
}
