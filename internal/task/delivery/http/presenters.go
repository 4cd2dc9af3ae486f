package http

import (
	"fmt"
	"time"

	"smart-task-api/internal/model"
	"smart-task-api/internal/task"
	"smart-task-api/internal/worker"
	"smart-task-api/pkg/response"
)

// dateLayouts are accepted for date filters and due date updates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", value)
}

// --- Request DTOs ---

type processCommandReq struct {
	Command string `json:"command" binding:"required,min=1,max=2000"`
}

func (r processCommandReq) validate() error { return nil }

func (r processCommandReq) toInput() task.ProcessCommandInput {
	return task.ProcessCommandInput{Command: r.Command}
}

// ---

type listReq struct {
	Status    string `form:"status"    binding:"omitempty,oneof=pending in-progress completed"`
	Priority  *int   `form:"priority"  binding:"omitempty,min=0,max=5"`
	DueFrom   string `form:"due_from"`
	DueTo     string `form:"due_to"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (r listReq) validate() error {
	if r.DueFrom != "" {
		if _, err := parseDate(r.DueFrom); err != nil {
			return err
		}
	}
	if r.DueTo != "" {
		if _, err := parseDate(r.DueTo); err != nil {
			return err
		}
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	input := task.ListInput{
		Status:    r.Status,
		Priority:  r.Priority,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
	if r.DueFrom != "" {
		if t, err := parseDate(r.DueFrom); err == nil {
			input.DueFrom = &t
		}
	}
	if r.DueTo != "" {
		if t, err := parseDate(r.DueTo); err == nil {
			input.DueTo = &t
		}
	}
	return input
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Description *string `json:"description" binding:"omitempty,min=1,max=1000"`
	Status      *string `json:"status"      binding:"omitempty,oneof=pending in-progress completed"`
	Priority    *int    `json:"priority"    binding:"omitempty,min=0,max=5"`
	DueDate     *string `json:"due_date"`
}

func (r updateReq) validate() error {
	if r.DueDate != nil {
		if _, err := parseDate(*r.DueDate); err != nil {
			return err
		}
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:          r.ID,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
	if r.DueDate != nil {
		if t, err := parseDate(*r.DueDate); err == nil {
			input.DueDate = &t
		}
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	Description     string     `json:"description"`
	DueDate         *time.Time `json:"due_date"`
	Status          string     `json:"status"`
	Priority        int        `json:"priority"`
	Recurrence      string     `json:"recurrence,omitempty"`
	BackgroundJobID string     `json:"background_job_id,omitempty"`

	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Description:     t.Description,
		DueDate:         t.DueDate,
		Status:          string(t.Status),
		Priority:        t.Priority,
		Recurrence:      string(t.Recurrence),
		BackgroundJobID: t.BackgroundJobID,
		CreatedAt:       response.DateTime(t.CreatedAt),
		UpdatedAt:       response.DateTime(t.UpdatedAt),
	}
}

type processCommandResp struct {
	Task                 taskResp `json:"task"`
	JobID                string   `json:"job_id,omitempty"`
	OccurrencesRequested int      `json:"occurrences_requested,omitempty"`
	OccurrencesCreated   int      `json:"occurrences_created,omitempty"`
	Warning              string   `json:"warning,omitempty"`
}

func (h *handler) newProcessCommandResp(out task.ProcessCommandOutput) processCommandResp {
	return processCommandResp{
		Task:                 newTaskResp(out.Task),
		JobID:                out.JobID,
		OccurrencesRequested: out.OccurrencesRequested,
		OccurrencesCreated:   out.OccurrencesCreated,
		Warning:              out.Warning,
	}
}

type listResp struct {
	Tasks    []taskResp `json:"tasks"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:    tasks,
		Total:    out.Total,
		Page:     out.Page,
		PageSize: out.PageSize,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type jobResp struct {
	Job worker.Job `json:"job"`
}

func (h *handler) newJobResp(out task.JobStatusOutput) jobResp {
	return jobResp{Job: out.Job}
}
