package quiz

import (
	"strconv"
	"testing"

	"github.com/openmcq/openmcq/internal/question"
)

func testRepo() *question.Repository {
	var records []question.Record
	for i := 0; i < 3; i++ {
		records = append(records, question.Record{
			ID:       "net-" + strconv.Itoa(i),
			Category: "Networking",
			Prompt:   "networking question " + strconv.Itoa(i),
			Options:  []string{"w", "x", "y", "z"},
			Answer:   "x",
		})
	}
	for i := 0; i < 10; i++ {
		records = append(records, question.Record{
			ID:       "db-" + strconv.Itoa(i),
			Category: "Databases",
			Prompt:   "database question " + strconv.Itoa(i),
			Options:  []string{"w", "x", "y", "z"},
			Answer:   "y",
		})
	}
	return question.NewRepository(records)
}

func TestPractice_Flow(t *testing.T) {
	store := NewStore()
	p := NewPractice(store, testRepo())

	p.Start("Networking")

	state := store.Snapshot()
	if state.Mode != ModePractice || state.SelectedCategory != "Networking" {
		t.Fatalf("unexpected state after start: mode=%s category=%s", state.Mode, state.SelectedCategory)
	}

	// Answer question 0 correctly.
	p.Submit("x")
	// Navigate: next, next, previous lands on question 1.
	p.Next()
	p.Next()
	p.Prev()

	state = store.Snapshot()
	if state.QuestionIndex != "1" {
		t.Errorf("QuestionIndex = %q, want 1", state.QuestionIndex)
	}
	ans := state.Answers[Key("Networking", "0")]
	if !ans.Answered || !ans.Correct {
		t.Errorf("question 0 answer = %+v, want answered and correct", ans)
	}
}

func TestPractice_NavigationStopsAtBounds(t *testing.T) {
	store := NewStore()
	p := NewPractice(store, testRepo())
	p.Start("Networking")

	p.Prev()
	if got := store.Snapshot().QuestionIndex; got != "0" {
		t.Errorf("QuestionIndex = %q, want 0 at lower bound", got)
	}

	for i := 0; i < 10; i++ {
		p.Next()
	}
	if got := store.Snapshot().QuestionIndex; got != "2" {
		t.Errorf("QuestionIndex = %q, want 2 at upper bound", got)
	}
}

func TestPractice_ResubmitIsNoop(t *testing.T) {
	store := NewStore()
	p := NewPractice(store, testRepo())
	p.Start("Networking")

	p.Submit("w") // wrong
	p.Submit("x") // would be right, must not take effect

	ans := store.Snapshot().Answers[Key("Networking", "0")]
	if ans.Correct || ans.Selected != "w" {
		t.Errorf("answer changed on resubmit: %+v", ans)
	}
}

func TestPractice_FinishGatedOnCompleteness(t *testing.T) {
	store := NewStore()
	p := NewPractice(store, testRepo())
	p.Start("Networking")

	if p.CanFinish() {
		t.Error("CanFinish true with no answers")
	}
	p.Finish()
	if store.Snapshot().Mode != ModePractice {
		t.Error("Finish took effect before all questions answered")
	}

	for i := 0; i < 3; i++ {
		store.SetQuestionIndex(strconv.Itoa(i))
		p.Submit("x")
	}
	if !p.CanFinish() {
		t.Error("CanFinish false with all questions answered")
	}
	p.Finish()
	if store.Snapshot().Mode != ModeNone {
		t.Error("Finish did not reset the session")
	}
}

func TestPractice_QuitReturnsToCategorySelection(t *testing.T) {
	store := NewStore()
	p := NewPractice(store, testRepo())
	p.Start("Networking")
	store.SetQuestionIndex("2")

	p.Quit()

	state := store.Snapshot()
	if state.SelectedCategory != "" || state.QuestionIndex != "0" {
		t.Errorf("quit left category=%q index=%q", state.SelectedCategory, state.QuestionIndex)
	}
	if state.Mode != ModePractice {
		t.Error("quit should keep practice mode for re-selection")
	}
}

func TestPractice_SubmitKeysOffClampedIndex(t *testing.T) {
	store := NewStore()
	p := NewPractice(store, testRepo())

	p.Start("Networking")
	// A restored cursor can point past the end of the category, e.g.
	// when the bank shrank between runs. The displayed question is the
	// clamped one, so the answer must land on its key.
	store.SetQuestionIndex("9")

	_, idx, ok := p.Current()
	if !ok || idx != 2 {
		t.Fatalf("Current() index = %d, want clamped 2", idx)
	}

	p.Submit("x")

	state := store.Snapshot()
	if ans := state.Answers[Key("Networking", "2")]; !ans.Answered {
		t.Error("answer not recorded under the clamped key")
	}
	if ans := state.Answers[Key("Networking", "9")]; ans.Answered {
		t.Error("answer recorded under the raw out-of-range key")
	}
	if !p.Answer().Answered {
		t.Error("Answer() does not see the submission")
	}
}

func TestPractice_NoCategoryIsNoop(t *testing.T) {
	store := NewStore()
	p := NewPractice(store, testRepo())
	store.SetMode(ModePractice)

	p.Select("x")
	p.Submit("x")

	if len(store.Snapshot().Answers) != 0 {
		t.Error("submission with no category wrote to the ledger")
	}
}
