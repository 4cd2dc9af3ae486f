package interpreter

import (
	"regexp"
	"strings"

	"smart-task-api/internal/model"
)

// fallbackDateRe captures the date expression after an "on" or "by" marker,
// e.g. "by 2025-01-01" or "on next friday".
var fallbackDateRe = regexp.MustCompile(`(?i)\b(?:on|by)\s+(.+)$`)

// extract recovers task fields from the raw command without the completion
// service: the command is split on commas, the first segment becomes the
// description, and the remaining segments are scanned for a date marker and
// a recurrence keyword. Returns ok=false when no description is recoverable.
func (i *Interpreter) extract(command string) (Interpreted, bool) {
	segments := strings.Split(command, ",")

	description := strings.TrimSpace(segments[0])
	if description == "" {
		return Interpreted{}, false
	}

	out := Interpreted{Description: description}
	for _, segment := range segments[1:] {
		lower := strings.ToLower(segment)

		switch {
		case strings.Contains(lower, string(model.RecurrenceDaily)):
			out.Recurrence = model.RecurrenceDaily
		case strings.Contains(lower, string(model.RecurrenceWeekly)):
			out.Recurrence = model.RecurrenceWeekly
		case strings.Contains(lower, string(model.RecurrenceMonthly)):
			out.Recurrence = model.RecurrenceMonthly
		}

		if out.DueDate == nil {
			if m := fallbackDateRe.FindStringSubmatch(segment); m != nil {
				if t, err := i.dateMath.Normalize(m[1], i.now()); err == nil {
					out.DueDate = &t
				}
			}
		}
	}

	return out, true
}

// suggestionPrompts are the user-facing prompts for recoverable fields.
var suggestionPrompts = map[string]string{
	"description": "What should the task be about?",
	"due_date":    "When is this task due?",
	"recurrence":  "How often should this task repeat: daily, weekly, or monthly?",
}

// Suggest produces a human-readable prompt for each missing or invalid field
// that has one. Fields without a prompt (e.g. priority) are skipped.
func Suggest(fields []string) map[string]string {
	suggestions := make(map[string]string)
	for _, field := range fields {
		if prompt, ok := suggestionPrompts[field]; ok {
			suggestions[field] = prompt
		}
	}
	return suggestions
}
