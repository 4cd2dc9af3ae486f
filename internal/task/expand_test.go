package task_test

import (
	"errors"
	"testing"
	"time"

	"smart-task-api/internal/model"
	"smart-task-api/internal/task"
)

func newRecurringTask(rule model.Recurrence, due time.Time) model.Task {
	return model.Task{
		ID:          "src-id",
		Description: "Water plants",
		DueDate:     &due,
		Status:      model.StatusPending,
		Priority:    2,
		Recurrence:  rule,
	}
}

func TestExpand(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Weekly series of 3", func(t *testing.T) {
		src := newRecurringTask(model.RecurrenceWeekly, start)

		got, err := task.Expand(src, model.RecurrenceWeekly, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 occurrences, got %d", len(got))
		}

		wantDates := []time.Time{
			time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
		}
		for i, occ := range got {
			if !occ.DueDate.Equal(wantDates[i]) {
				t.Errorf("occurrence %d due = %v, want %v", i, occ.DueDate, wantDates[i])
			}
			if occ.ID == "" || occ.ID == src.ID {
				t.Errorf("occurrence %d must have its own identity, got %q", i, occ.ID)
			}
			if occ.Description != src.Description || occ.Priority != src.Priority ||
				occ.Status != src.Status || occ.Recurrence != src.Recurrence {
				t.Errorf("occurrence %d did not copy source fields: %+v", i, occ)
			}
		}
	})

	t.Run("Daily due dates strictly increase", func(t *testing.T) {
		src := newRecurringTask(model.RecurrenceDaily, start)

		got, err := task.Expand(src, model.RecurrenceDaily, task.DefaultOccurrenceCount)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != task.DefaultOccurrenceCount-1 {
			t.Fatalf("expected %d occurrences, got %d", task.DefaultOccurrenceCount-1, len(got))
		}

		prev := start
		for i, occ := range got {
			if !occ.DueDate.After(prev) {
				t.Errorf("occurrence %d due %v not after %v", i, occ.DueDate, prev)
			}
			prev = *occ.DueDate
		}
	})

	t.Run("Monthly steps by calendar month", func(t *testing.T) {
		jan31 := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
		src := newRecurringTask(model.RecurrenceMonthly, jan31)

		got, err := task.Expand(src, model.RecurrenceMonthly, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Jan 31 + 1 calendar month normalizes to Mar 3 (no Feb 31).
		want := jan31.AddDate(0, 1, 0)
		if !got[0].DueDate.Equal(want) {
			t.Errorf("due = %v, want %v", got[0].DueDate, want)
		}
	})

	t.Run("Zero count uses default", func(t *testing.T) {
		src := newRecurringTask(model.RecurrenceDaily, start)

		got, err := task.Expand(src, model.RecurrenceDaily, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != task.DefaultOccurrenceCount-1 {
			t.Errorf("expected %d occurrences, got %d", task.DefaultOccurrenceCount-1, len(got))
		}
	})

	t.Run("Unknown rule rejected", func(t *testing.T) {
		src := newRecurringTask(model.RecurrenceWeekly, start)

		_, err := task.Expand(src, model.Recurrence("yearly"), 3)
		if !errors.Is(err, task.ErrUnsupportedRecurrence) {
			t.Fatalf("expected ErrUnsupportedRecurrence, got %v", err)
		}
	})

	t.Run("Missing due date rejected", func(t *testing.T) {
		src := newRecurringTask(model.RecurrenceWeekly, start)
		src.DueDate = nil

		_, err := task.Expand(src, model.RecurrenceWeekly, 3)
		if !errors.Is(err, task.ErrExpandWithoutDueDate) {
			t.Fatalf("expected ErrExpandWithoutDueDate, got %v", err)
		}
	})
}
