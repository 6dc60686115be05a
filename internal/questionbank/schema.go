package questionbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema every question bank file must satisfy.
const bankSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["id", "topic", "difficulty", "prompt", "choices", "correct_index"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"topic": {"type": "string", "minLength": 1},
			"difficulty": {"enum": ["easy", "medium", "hard"]},
			"prompt": {"type": "string", "minLength": 1},
			"choices": {
				"type": "array",
				"minItems": 2,
				"maxItems": 4,
				"items": {"type": "string", "minLength": 1}
			},
			"correct_index": {"type": "integer", "minimum": 0, "maximum": 3},
			"explanation": {"type": "string"}
		},
		"additionalProperties": false
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateBank checks raw bank JSON against the schema.
func validateBank(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("question bank is not valid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("question bank failed schema validation: %w", err)
	}
	return nil
}

// getCompiledSchema compiles the bank schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://questionbank.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
