package postgre

import (
	"fmt"
	"strings"

	repo "smart-task-api/internal/task/repository"
)

// sortColumns whitelists the columns callers may order by. Anything outside
// this set falls back to created_at.
var sortColumns = map[string]string{
	"id":          "id",
	"description": "description",
	"due_date":    "due_date",
	"status":      "status",
	"priority":    "priority",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	conditions := []string{"id = $1"}
	args := []any{opt.ID}

	if !opt.IncludeDeleted {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	return strings.Join(conditions, " AND "), args
}

// buildFilters builds the shared filter conditions for list and count queries.
func (r *implRepository) buildFilters(opt repo.ListTasksOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, *opt.Priority)
		idx++
	}
	if opt.DueFrom != nil {
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d", idx))
		args = append(args, *opt.DueFrom)
		idx++
	}
	if opt.DueTo != nil {
		conditions = append(conditions, fmt.Sprintf("due_date <= $%d", idx))
		args = append(args, *opt.DueTo)
		idx++
	}
	if !opt.IncludeDeleted {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.buildFilters(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	conditions, args := r.buildFilters(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting
	column, ok := sortColumns[opt.SortBy]
	if !ok {
		column = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(opt.SortOrder, "asc") {
		order = "ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s %s", column, order))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
