package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-task-api/internal/middleware"
	taskHTTP "smart-task-api/internal/task/delivery/http"
	taskUC "smart-task-api/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := taskUC.New(srv.l, srv.taskRepo, srv.interpreter, srv.dispatcher, srv.occurrenceCount)

	// 2. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/tasks and /api/v1/jobs
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
