// Package contract validates and decodes the engine's JSON input and
// serializes its output envelope. It is the only place the wire format
// is known; the engine itself works on typed records.
package contract

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// inputSchemaName keys the compiled-schema cache.
const inputSchemaName = "simulation-input"

// inputSchema defines the JSON contract for a simulation input file.
var inputSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"problems": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"prompt": map[string]any{
						"type": "string",
					},
					"bloom_level": map[string]any{
						"type": "string",
						"enum": []any{"remember", "understand", "apply", "analyze", "evaluate", "create"},
					},
					"linguistic_complexity": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"estimated_minutes": map[string]any{
						"type":    "number",
						"minimum": 0,
					},
					"reasoning_steps": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"id", "bloom_level", "linguistic_complexity", "estimated_minutes", "reasoning_steps"},
				"additionalProperties": false,
			},
		},
		"context": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject": map[string]any{
					"type": "string",
				},
				"grade_band": map[string]any{
					"type": "string",
				},
				"time_target_minutes": map[string]any{
					"type":    "number",
					"minimum": 0,
				},
			},
			"required":             []any{"subject", "grade_band", "time_target_minutes"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"problems", "context"},
	"additionalProperties": false,
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateInput checks parsed JSON against the input schema.
func validateInput(parsed any) error {
	compiled, err := compiledSchema(inputSchemaName, inputSchema)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
