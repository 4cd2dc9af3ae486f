package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-api/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes share the global rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.ProcessCommand)
		tasks.GET("", mw.RateLimit(), h.List)
		tasks.GET("/:id", mw.RateLimit(), h.Detail)
		tasks.PUT("/:id", mw.RateLimit(), h.Update)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
		tasks.POST("/:id/restore", mw.RateLimit(), h.Restore)
	}

	jobs := rg.Group("/jobs")
	{
		jobs.GET("/:id", mw.RateLimit(), h.JobStatus)
	}
}
