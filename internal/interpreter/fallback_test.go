package interpreter

import (
	"testing"
	"time"

	"smart-task-api/internal/model"
	"smart-task-api/pkg/datemath"
)

func newBareInterpreter() *Interpreter {
	parser, _ := datemath.NewParser("UTC")
	i := New(&mockLogger{}, &mockCompleter{}, parser)
	i.now = func() time.Time { return baseNow }
	return i
}

func TestExtract(t *testing.T) {
	i := newBareInterpreter()

	tests := []struct {
		name           string
		command        string
		wantOK         bool
		wantDesc       string
		wantDue        bool
		wantRecurrence model.Recurrence
	}{
		{
			name:     "Description only",
			command:  "Buy milk",
			wantOK:   true,
			wantDesc: "Buy milk",
		},
		{
			name:     "Description with date segment",
			command:  "Submit the report, by 2025-06-01",
			wantOK:   true,
			wantDesc: "Submit the report",
			wantDue:  true,
		},
		{
			name:           "Date and recurrence segments",
			command:        "Water plants, on tomorrow, daily",
			wantOK:         true,
			wantDesc:       "Water plants",
			wantDue:        true,
			wantRecurrence: model.RecurrenceDaily,
		},
		{
			name:           "Monthly keyword",
			command:        "Pay rent, monthly",
			wantOK:         true,
			wantDesc:       "Pay rent",
			wantRecurrence: model.RecurrenceMonthly,
		},
		{
			name:     "Unparsable date segment leaves due date empty",
			command:  "Clean garage, by whenever",
			wantOK:   true,
			wantDesc: "Clean garage",
		},
		{
			name:    "Empty first segment",
			command: " , by tomorrow",
			wantOK:  false,
		},
		{
			name:    "Empty command",
			command: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := i.extract(tt.command)
			if ok != tt.wantOK {
				t.Fatalf("extract() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Description != tt.wantDesc {
				t.Errorf("description = %q, want %q", got.Description, tt.wantDesc)
			}
			if (got.DueDate != nil) != tt.wantDue {
				t.Errorf("due date presence = %v, want %v", got.DueDate != nil, tt.wantDue)
			}
			if got.Recurrence != tt.wantRecurrence {
				t.Errorf("recurrence = %q, want %q", got.Recurrence, tt.wantRecurrence)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	got := Suggest([]string{"description", "due_date", "recurrence", "priority"})

	for _, field := range []string{"description", "due_date", "recurrence"} {
		if got[field] == "" {
			t.Errorf("expected suggestion for %q", field)
		}
	}
	if _, ok := got["priority"]; ok {
		t.Errorf("priority should not have a suggestion")
	}

	if len(Suggest(nil)) != 0 {
		t.Errorf("expected no suggestions for no fields")
	}
}
