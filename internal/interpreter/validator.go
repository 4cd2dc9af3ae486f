package interpreter

import (
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// taskSchema is the JSON schema every parsed completion payload must satisfy.
// Priority bounds are 0-5; the upstream system never documented a range, so
// the clamp is enforced here.
const taskSchema = `{
	"type": "object",
	"required": ["description"],
	"properties": {
		"description": {"type": "string", "minLength": 1},
		"due_date":    {"type": ["string", "null"]},
		"background":  {"type": ["boolean", "null"]},
		"recurrence":  {"enum": ["daily", "weekly", "monthly", null]},
		"priority":    {"type": ["integer", "null"], "minimum": 0, "maximum": 5}
	}
}`

var taskSchemaCompiled = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(taskSchema))
	if err != nil {
		panic("interpreter: invalid task schema: " + err.Error())
	}
	return schema
}

// validateDocument checks a JSON document against the task schema and returns
// the offending field names, empty when valid. Pure: no I/O, no side effects.
func (i *Interpreter) validateDocument(doc string) []string {
	result, err := taskSchemaCompiled.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		// The document already parsed as JSON; a loader error here means
		// the payload is structurally unusable.
		return []string{"description"}
	}
	if result.Valid() {
		return nil
	}

	seen := make(map[string]bool)
	var fields []string
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" {
			// Required-property violations report against the root.
			if prop, ok := desc.Details()["property"].(string); ok {
				field = prop
			}
		}
		if !seen[field] {
			seen[field] = true
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return fields
}
