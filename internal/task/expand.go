package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"smart-task-api/internal/model"
)

// DefaultOccurrenceCount is the total series length used when the caller does
// not specify one.
const DefaultOccurrenceCount = 10

// Expand generates the future occurrences of a recurring task.
//
// The series starts at the source task's due date and steps by calendar
// day/week/month. The source occurrence itself is excluded: for a total
// series length of occurrenceCount, exactly occurrenceCount-1 new tasks are
// returned. Each occurrence copies description, status, priority and
// recurrence from the source and gets its own identity.
//
// The rule is checked here independently of any earlier validation; callers
// must not rely on call order between the validator and the expander.
func Expand(src model.Task, rule model.Recurrence, occurrenceCount int) ([]model.Task, error) {
	switch rule {
	case model.RecurrenceDaily, model.RecurrenceWeekly, model.RecurrenceMonthly:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRecurrence, rule)
	}

	if src.DueDate == nil {
		return nil, ErrExpandWithoutDueDate
	}

	if occurrenceCount <= 0 {
		occurrenceCount = DefaultOccurrenceCount
	}

	start := *src.DueDate
	occurrences := make([]model.Task, 0, occurrenceCount-1)
	for n := 1; n < occurrenceCount; n++ {
		var due time.Time
		switch rule {
		case model.RecurrenceDaily:
			due = start.AddDate(0, 0, n)
		case model.RecurrenceWeekly:
			due = start.AddDate(0, 0, n*7)
		case model.RecurrenceMonthly:
			due = start.AddDate(0, n, 0)
		}

		occurrences = append(occurrences, model.Task{
			ID:          uuid.NewString(),
			Description: src.Description,
			DueDate:     &due,
			Status:      src.Status,
			Priority:    src.Priority,
			Recurrence:  src.Recurrence,
		})
	}

	return occurrences, nil
}
