package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://amendments.json"

// catalogSchema describes the shape of the embedded catalog document.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"id", "year", "title", "definition"},
		"properties": map[string]any{
			"id": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"year": map[string]any{
				"type":    "integer",
				"minimum": 1789,
			},
			"title": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"definition": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validateDocument checks a decoded catalog document against catalogSchema.
// The document may come straight from a YAML decoder; it is normalized to
// plain JSON values first.
func validateDocument(doc any) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return err
	}

	parsed, err := normalize(doc)
	if err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects plain JSON values, not Go ints.
		defParsed, err := normalize(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// normalize round-trips v through encoding/json.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}
