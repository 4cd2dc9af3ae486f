package interpreter

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"smart-task-api/internal/model"
)

// Interpret sends the raw command to the completion service and produces a
// normalized task field set.
//
// Failure handling, in pipeline order:
//   - completion call fails           -> CommandError{KindUpstreamUnavailable}
//   - output is not JSON              -> fallback extraction on the original
//     command; if that finds no description -> CommandError{KindUnparsableResponse}
//   - output violates the task schema -> CommandError{KindValidationFailed}
//     with offending fields and per-field suggestions
//
// A due_date that cannot be normalized is preserved as null rather than
// failing the request. All errors returned are *CommandError; unexpected
// programming faults are the only thing allowed to panic through.
func (i *Interpreter) Interpret(ctx context.Context, command string) (Interpreted, error) {
	raw, err := i.llm.Complete(ctx, systemInstruction, command)
	if err != nil {
		i.l.Warnf(ctx, "interpreter: completion call failed: %v", err)
		return Interpreted{}, &CommandError{
			Kind:    KindUpstreamUnavailable,
			Message: "could not process command",
		}
	}

	cleaned := sanitizeJSONResponse(raw)
	if !looksLikeJSONObject(cleaned) {
		i.l.Infof(ctx, "interpreter: non-JSON completion output, falling back. raw=%q", raw)
		return i.fallback(ctx, command)
	}

	if fields := i.validateDocument(cleaned); len(fields) > 0 {
		return Interpreted{}, &CommandError{
			Kind:        KindValidationFailed,
			Message:     "command interpretation failed validation",
			Fields:      fields,
			Suggestions: Suggest(fields),
		}
	}

	var payload llmPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		// Schema passed but decoding failed: treat like malformed output.
		i.l.Warnf(ctx, "interpreter: failed to decode validated payload: %v", err)
		return i.fallback(ctx, command)
	}

	description := strings.TrimSpace(payload.Description)
	if description == "" {
		// The schema's minLength check passes on whitespace-only text.
		return Interpreted{}, &CommandError{
			Kind:        KindValidationFailed,
			Message:     "command interpretation failed validation",
			Fields:      []string{"description"},
			Suggestions: Suggest([]string{"description"}),
		}
	}

	out := Interpreted{
		Description: description,
		Background:  payload.Background,
	}
	if payload.Priority != nil {
		out.Priority = *payload.Priority
	}
	if payload.Recurrence != nil {
		out.Recurrence = model.Recurrence(strings.ToLower(*payload.Recurrence))
	}
	out.DueDate = i.normalizeDueDate(ctx, payload.DueDate)

	return out, nil
}

// normalizeDueDate resolves the raw due_date string to an instant. A missing
// or unparsable value yields nil; normalization never fails the request.
func (i *Interpreter) normalizeDueDate(ctx context.Context, raw *string) *time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}

	t, err := i.dateMath.Normalize(*raw, i.now())
	if err != nil {
		i.l.Infof(ctx, "interpreter: due date %q not normalizable, keeping null: %v", *raw, err)
		return nil
	}
	return &t
}

// fallback runs the regex extractor on the original command text.
func (i *Interpreter) fallback(ctx context.Context, command string) (Interpreted, error) {
	out, ok := i.extract(command)
	if !ok {
		return Interpreted{}, &CommandError{
			Kind:        KindUnparsableResponse,
			Message:     "could not determine a task description",
			Fields:      []string{"description"},
			Suggestions: Suggest([]string{"description"}),
		}
	}
	return out, nil
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse strips markdown code fences and surrounding prose
// that completion models often wrap around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// looksLikeJSONObject reports whether text is a parseable JSON object.
func looksLikeJSONObject(text string) bool {
	if !strings.HasPrefix(text, "{") {
		return false
	}
	var obj map[string]json.RawMessage
	return json.Unmarshal([]byte(text), &obj) == nil
}
