package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildStandardsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the extraction service as a structured output
// constraint and also use it locally to validate the response.
func BuildStandardsJSONSchema(subjects []string) map[string]any {
	subjectProp := map[string]any{"type": "string"}
	// Steer toward the canonical taxonomy when one is provided, but keep the
	// field open: state curricula carry components outside the federal list.
	if len(subjects) > 0 {
		subjectProp["examples"] = subjects
	}

	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"code":          map[string]any{"type": "string", "pattern": `^[A-Z0-9]{4,20}$`},
			"subject":       subjectProp,
			"description":   map[string]any{"type": "string"},
			"grade_level":   map[string]any{"type": "string"},
			"thematic_unit": map[string]any{"type": "string"},
		},
		"required": []string{"code"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"is_curriculum": map[string]any{"type": "boolean"},
			"items":         map[string]any{"type": "array", "items": item},
			"message":       map[string]any{"type": "string"},
		},
		"required": []string{"is_curriculum", "items"},
	}
}

// ValidateAgainstSchema checks data against a schema document in the shape
// BuildStandardsJSONSchema produces. The schema is compiled per call; response
// validation happens at most twice per extraction, so caching buys nothing.
func ValidateAgainstSchema(schemaDoc map[string]any, data []byte) error {
	raw, err := json.Marshal(schemaDoc)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("standards.json", bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("standards.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
