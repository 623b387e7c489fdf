package arrangement

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://arrangement.json"

// arrangementSchema is the JSON Schema for arrangement files.
var arrangementSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]any{
		"rows": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"tiles": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"rank":  map[string]any{"type": "integer", "minimum": 0},
								"name":  map[string]any{"type": "string", "minLength": 1},
								"color": map[string]any{"type": "string", "pattern": "^#?[0-9A-Fa-f]{6}$"},
							},
							"required": []any{"color"},
							"anyOf": []any{
								map[string]any{"required": []any{"rank"}},
								map[string]any{"required": []any{"name"}},
							},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"tiles"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"rows"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles arrangementSchema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go maps with
		// typed slices, so go through a marshal round.
		raw, err := json.Marshal(arrangementSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded JSON document against the schema.
func validateDocument(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile arrangement schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
