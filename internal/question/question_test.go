package question

import (
	"testing"
)

func testRecords() []Record {
	return []Record{
		{ID: "a-1", Category: "Alpha", Prompt: "q1", Options: []string{"1", "2", "3", "4"}, Answer: "1"},
		{ID: "b-1", Category: "Beta", Prompt: "q2", Options: []string{"1", "2", "3", "4"}, Answer: "2"},
		{ID: "a-2", Category: "Alpha", Prompt: "q3", Options: []string{"1", "2", "3", "4"}, Answer: "3"},
		{ID: "c-1", Category: "Gamma ", Prompt: "q4", Options: []string{"1", "2", "3", "4"}, Answer: "4"},
	}
}

func TestCategories_FirstOccurrenceOrder(t *testing.T) {
	repo := NewRepository(testRecords())

	got := repo.Categories()
	want := []string{"Alpha", "Beta", "Gamma "}
	if len(got) != len(want) {
		t.Fatalf("Categories() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestByCategory_ExactMatch(t *testing.T) {
	repo := NewRepository(testRecords())

	got := repo.ByCategory("Alpha")
	if len(got) != 2 {
		t.Fatalf("ByCategory(Alpha) length = %d, want 2", len(got))
	}
	if got[0].ID != "a-1" || got[1].ID != "a-2" {
		t.Errorf("ByCategory(Alpha) ids = %s, %s; want a-1, a-2", got[0].ID, got[1].ID)
	}
}

func TestByCategory_NormalizedFallback(t *testing.T) {
	repo := NewRepository(testRecords())

	got := repo.ByCategory("  gamma  ")
	if len(got) != 1 {
		t.Fatalf("ByCategory(gamma) length = %d, want 1", len(got))
	}
	if got[0].ID != "c-1" {
		t.Errorf("ByCategory(gamma)[0].ID = %q, want c-1", got[0].ID)
	}
}

func TestByCategory_Unknown(t *testing.T) {
	repo := NewRepository(testRecords())

	if got := repo.ByCategory("Nope"); len(got) != 0 {
		t.Errorf("ByCategory(Nope) length = %d, want 0", len(got))
	}
}

func TestByID(t *testing.T) {
	repo := NewRepository(testRecords())

	rec, ok := repo.ByID("b-1")
	if !ok {
		t.Fatal("ByID(b-1) not found")
	}
	if rec.Category != "Beta" {
		t.Errorf("ByID(b-1).Category = %q, want Beta", rec.Category)
	}

	if _, ok := repo.ByID("missing"); ok {
		t.Error("ByID(missing) found, want not found")
	}
}

func TestImageRef(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"diagram.png", "diagram.png"},
		{"assets/images/diagram.png", "diagram.png"},
		{"https://example.com/img/network.svg", "network.svg"},
		{"trailing/", ""},
	}
	for _, tt := range tests {
		if got := ImageRef(tt.raw); got != tt.want {
			t.Errorf("ImageRef(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseBank_RejectsWrongOptionCount(t *testing.T) {
	raw := []byte(`[{"id": "x-1", "category": "X", "prompt": "q",
		"options": ["a", "b", "c"], "answer": "a"}]`)

	if _, err := parseBank(raw); err == nil {
		t.Fatal("parseBank accepted a question with three options")
	}
}

func TestParseBank_RejectsMissingFields(t *testing.T) {
	raw := []byte(`[{"id": "x-1", "category": "X",
		"options": ["a", "b", "c", "d"], "answer": "a"}]`)

	if _, err := parseBank(raw); err == nil {
		t.Fatal("parseBank accepted a question without a prompt")
	}
}

func TestParseBank_RejectsAnswerNotInOptions(t *testing.T) {
	raw := []byte(`[{"id": "x-1", "category": "X", "prompt": "q",
		"options": ["a", "b", "c", "d"], "answer": "e"}]`)

	if _, err := parseBank(raw); err == nil {
		t.Fatal("parseBank accepted an answer outside the option set")
	}
}

func TestParseBank_RejectsDuplicateIDs(t *testing.T) {
	raw := []byte(`[
		{"id": "x-1", "category": "X", "prompt": "q1",
		 "options": ["a", "b", "c", "d"], "answer": "a"},
		{"id": "x-1", "category": "X", "prompt": "q2",
		 "options": ["a", "b", "c", "d"], "answer": "b"}
	]`)

	if _, err := parseBank(raw); err == nil {
		t.Fatal("parseBank accepted duplicate question ids")
	}
}

func TestParseBank_AcceptsValidBank(t *testing.T) {
	raw := []byte(`[{"id": "x-1", "category": "X", "prompt": "q",
		"options": ["a", "b", "c", "d"], "answer": "a",
		"explanation": "because", "image": "fig.png"}]`)

	repo, err := parseBank(raw)
	if err != nil {
		t.Fatalf("parseBank error: %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", repo.Len())
	}
}

func TestLoad_BundledBank(t *testing.T) {
	repo, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if repo.Len() == 0 {
		t.Fatal("expected non-empty bundled bank")
	}
	for _, rec := range repo.All() {
		if len(rec.Options) != 4 {
			t.Errorf("question %s has %d options, want 4", rec.ID, len(rec.Options))
		}
		found := false
		for _, opt := range rec.Options {
			if opt == rec.Answer {
				found = true
			}
		}
		if !found {
			t.Errorf("question %s: answer %q not among options", rec.ID, rec.Answer)
		}
	}
}
