package question

import (
	"strings"
)

// Record is a single multiple-choice question from the bank.
// Records are immutable once loaded; every Record carries exactly
// four options, one of which equals Answer.
type Record struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Image       string   `json:"image,omitempty"`
}

// Repository provides read-only access to the question bank.
type Repository struct {
	records []Record
	byID    map[string]int
}

// NewRepository creates a repository over the given records.
func NewRepository(records []Record) *Repository {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		if _, exists := byID[r.ID]; !exists {
			byID[r.ID] = i
		}
	}
	return &Repository{records: records, byID: byID}
}

// Categories returns all category names in first-occurrence order
// over the full record set.
func (r *Repository) Categories() []string {
	seen := make(map[string]bool)
	var result []string
	for _, rec := range r.records {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			result = append(result, rec.Category)
		}
	}
	return result
}

// ByCategory returns the questions for a category in repository order.
// It tries an exact match first and falls back to a trimmed,
// case-insensitive comparison. An unknown category yields nil.
func (r *Repository) ByCategory(category string) []Record {
	var exact []Record
	for _, rec := range r.records {
		if rec.Category == category {
			exact = append(exact, rec)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	normalized := strings.ToLower(strings.TrimSpace(category))
	var loose []Record
	for _, rec := range r.records {
		if strings.ToLower(strings.TrimSpace(rec.Category)) == normalized {
			loose = append(loose, rec)
		}
	}
	return loose
}

// All returns a copy of the full record set.
func (r *Repository) All() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// ByID looks up a single record by its id.
func (r *Repository) ByID(id string) (Record, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Record{}, false
	}
	return r.records[i], true
}

// Len returns the number of records in the bank.
func (r *Repository) Len() int {
	return len(r.records)
}

// ImageRef resolves a raw image reference to its final path segment.
// Empty input yields an empty string.
func ImageRef(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.Split(raw, "/")
	return parts[len(parts)-1]
}
