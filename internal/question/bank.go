package question

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data.json
var rawBank []byte

// Load parses and validates the bundled question bank.
func Load() (*Repository, error) {
	return parseBank(rawBank)
}

func parseBank(raw []byte) (*Repository, error) {
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if err := validateBank(raw, records); err != nil {
		return nil, fmt.Errorf("validate question bank: %w", err)
	}
	return NewRepository(records), nil
}
