package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema encodes the structural rules for bank records: non-empty
// id, category, prompt and answer, exactly four distinct options.
const bankSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "category", "prompt", "options", "answer"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "category": {"type": "string", "minLength": 1},
      "prompt": {"type": "string", "minLength": 1},
      "options": {
        "type": "array",
        "items": {"type": "string", "minLength": 1},
        "minItems": 4,
        "maxItems": 4,
        "uniqueItems": true
      },
      "answer": {"type": "string", "minLength": 1},
      "explanation": {"type": "string"},
      "image": {"type": "string"}
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledBankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not raw bytes.
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://bank.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://bank.json")
	})
	return compiledSchema, compileErr
}

// validateBank checks raw bank JSON against the schema, then enforces
// the record rules the schema cannot express: the answer must be one of
// the question's own options and ids must be unique.
func validateBank(raw []byte, records []Record) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compiledBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if seen[rec.ID] {
			return fmt.Errorf("duplicate question id %q", rec.ID)
		}
		seen[rec.ID] = true

		found := false
		for _, opt := range rec.Options {
			if opt == rec.Answer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %q: answer %q is not one of its options", rec.ID, rec.Answer)
		}
	}
	return nil
}
