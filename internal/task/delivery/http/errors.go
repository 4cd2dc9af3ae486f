package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-api/internal/interpreter"
	"smart-task-api/internal/task"
	pkgErrors "smart-task-api/pkg/errors"
	"smart-task-api/pkg/response"
)

// commandErrDetails is the error payload for failed command interpretation.
type commandErrDetails struct {
	Kind        string            `json:"kind"`
	Fields      []string          `json:"fields,omitempty"`
	Suggestions map[string]string `json:"suggestions,omitempty"`
}

// respondError translates domain and interpretation errors into HTTP
// responses. Unknown errors become a generic 500; nothing panics here.
func (h *handler) respondError(c *gin.Context, err error) {
	var cmdErr *interpreter.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Kind == interpreter.KindUpstreamUnavailable {
			// Hide upstream detail from clients.
			response.Error(c, pkgErrors.NewHTTPError(http.StatusBadGateway, "could not process command"))
			return
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, cmdErr.Message, commandErrDetails{
			Kind:        string(cmdErr.Kind),
			Fields:      cmdErr.Fields,
			Suggestions: cmdErr.Suggestions,
		})
		return
	}

	switch {
	case errors.Is(err, task.ErrEmptyCommand):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "command is required"))
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, "task not found")
	case errors.Is(err, task.ErrJobNotFound):
		response.NotFound(c, "background job not found")
	case errors.Is(err, task.ErrTaskNotDeleted):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusConflict, "task is not deleted"))
	default:
		response.InternalError(c, err)
	}
}
