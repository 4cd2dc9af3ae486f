package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-api/pkg/response"
)

// ProcessCommand godoc
// @Summary     Create tasks from a natural-language command
// @Description Interprets the command text, stores the resulting task, expands recurrence, and optionally dispatches background work.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body processCommandReq true "Command text"
// @Success     200 {object} processCommandResp
// @Failure     400 {object} response.Resp "Bad Request - command could not be interpreted or validated"
// @Failure     502 {object} response.Resp "Bad Gateway - language model unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) ProcessCommand(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReqOf(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessCommand(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessCommand: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProcessCommandResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of tasks with optional filters.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       status     query string false "Filter by status (pending/in-progress/completed)"
// @Param       priority   query int    false "Filter by priority (0-5)"
// @Param       due_from   query string false "Due date lower bound (RFC3339 or YYYY-MM-DD)"
// @Param       due_to     query string false "Due date upper bound (RFC3339 or YYYY-MM-DD)"
// @Param       page       query int    false "Page number (default: 1)"
// @Param       page_size  query int    false "Page size (default: 20, max: 100)"
// @Param       sort_by    query string false "Sort column (default: created_at)"
// @Param       sort_order query string false "Sort order (asc/desc, default: desc)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Updates an existing task. All fields are optional (partial update).
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Soft-deletes a task by ID. The task can be restored later.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Restore godoc
// @Summary     Restore a deleted task
// @Description Brings back a soft-deleted task.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - task is not deleted"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/restore [POST]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Restore(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Restore: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// JobStatus godoc
// @Summary     Get background job status
// @Description Returns the state of a background job dispatched for a task.
// @Tags        Job
// @Accept      json
// @Produce     json
// @Param       id path string true "Job ID"
// @Success     200 {object} jobResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/jobs/{id} [GET]
func (h *handler) JobStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.JobStatus(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.JobStatus: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newJobResp(output))
}
