package interpreter

import (
	"fmt"
	"strings"
	"time"

	"smart-task-api/internal/model"
)

// Interpreted is the structured result of interpreting a natural-language
// command. It lives for one request only and is never persisted.
type Interpreted struct {
	Description string
	DueDate     *time.Time // nil when the command carried no usable date
	Priority    int
	Recurrence  model.Recurrence
	Background  bool // caller should dispatch asynchronous post-processing
}

// ErrorKind classifies interpretation failures.
type ErrorKind string

const (
	// KindUpstreamUnavailable: the completion service could not be reached,
	// authenticated, or returned a transport-level error.
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"

	// KindUnparsableResponse: the completion output was neither valid JSON
	// nor recoverable via fallback extraction.
	KindUnparsableResponse ErrorKind = "unparsable_response"

	// KindValidationFailed: the completion output parsed but violated the
	// task schema.
	KindValidationFailed ErrorKind = "validation_failed"
)

// CommandError is the structured error result of interpretation. Every
// failure path of Interpret returns one of these; nothing else escapes.
type CommandError struct {
	Kind        ErrorKind
	Message     string
	Fields      []string          // missing/invalid field names, for KindValidationFailed
	Suggestions map[string]string // per-field prompts guiding the user
}

func (e *CommandError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (fields: %s)", e.Kind, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// llmPayload is the JSON shape requested from the completion service.
type llmPayload struct {
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Background  bool    `json:"background"`
	Recurrence  *string `json:"recurrence"`
	Priority    *int    `json:"priority"`
}
