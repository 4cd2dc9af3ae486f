package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smart-task-api/internal/model"
	repo "smart-task-api/internal/task/repository"
)

const taskColumns = `id, description, due_date, status, priority, recurrence, background_job_id, deleted_at, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.Description, &t.DueDate, &t.Status, &t.Priority,
		&t.Recurrence, &t.BackgroundJobID, &t.DeletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, description, due_date, status, priority, recurrence, background_job_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Description, opt.DueDate, opt.Status, opt.Priority, opt.Recurrence, opt.BackgroundJobID,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsertTask
	}
	return t, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGetTask
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToListTasks
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToListTasks
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToListTasks
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// UpdateTask updates a Task by ID and returns the updated entity.
// Soft-deleted rows are not updatable. Returns zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET description = $1, due_date = $2, status = $3, priority = $4, recurrence = $5, background_job_id = $6, updated_at = $7
		WHERE id = $8 AND deleted_at IS NULL
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Description, opt.DueDate, opt.Status, opt.Priority, opt.Recurrence, opt.BackgroundJobID, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdateTask
	}
	return t, nil
}

// SetTaskStatus updates only the status column. Keeping the write scoped to
// one column lets it interleave safely with other single-column updates on
// the same row. Returns zero-value Task when not found.
func (r *implRepository) SetTaskStatus(ctx context.Context, id string, status model.Status) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET status = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, status, time.Now(), id))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetTaskStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdateTask
	}
	return t, nil
}

// LinkBackgroundJob updates only the background_job_id column.
// Returns zero-value Task when not found.
func (r *implRepository) LinkBackgroundJob(ctx context.Context, id, jobID string) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET background_job_id = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, jobID, time.Now(), id))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LinkBackgroundJob"), err)
		return model.Task{}, repo.ErrFailedToUpdateTask
	}
	return t, nil
}

// SoftDeleteTask marks a Task as deleted without removing the row.
func (r *implRepository) SoftDeleteTask(ctx context.Context, id string) error {
	const query = `UPDATE tasks SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SoftDeleteTask"), err)
		return repo.ErrFailedToDeleteTask
	}
	return nil
}

// RestoreTask clears the deleted_at marker and returns the restored entity.
// Returns zero-value Task when the row does not exist or is not deleted.
func (r *implRepository) RestoreTask(ctx context.Context, id string) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RestoreTask"), err)
		return model.Task{}, repo.ErrFailedToUpdateTask
	}
	return t, nil
}
