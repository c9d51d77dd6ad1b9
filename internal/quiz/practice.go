package quiz

import (
	"strconv"

	"github.com/openmcq/openmcq/internal/question"
)

// Practice drives practice mode: one category, questions in repository
// order, no scoring ledger.
type Practice struct {
	store *Store
	repo  *question.Repository
}

// NewPractice creates a practice controller over the store.
func NewPractice(store *Store, repo *question.Repository) *Practice {
	return &Practice{store: store, repo: repo}
}

// Start enters practice mode for the given category.
func (p *Practice) Start(category string) {
	p.store.SetMode(ModePractice)
	p.store.SetCategory(category)
	p.store.SetQuestionIndex("0")
}

// Questions returns the category's question list in repository order.
func (p *Practice) Questions() []question.Record {
	state := p.store.Snapshot()
	if state.SelectedCategory == "" {
		return nil
	}
	return p.repo.ByCategory(state.SelectedCategory)
}

// Current returns the question at the navigation cursor.
func (p *Practice) Current() (question.Record, int, bool) {
	questions := p.Questions()
	if len(questions) == 0 {
		return question.Record{}, 0, false
	}
	idx := p.store.Snapshot().Index(len(questions))
	return questions[idx], idx, true
}

// Select records a pre-submit option choice for the current question.
func (p *Practice) Select(option string) {
	state := p.store.Snapshot()
	_, idx, ok := p.Current()
	if !ok {
		return
	}
	p.store.SelectOption(Key(state.SelectedCategory, strconv.Itoa(idx)), option)
}

// Submit finalizes the answer for the current question. Re-answering an
// answered question is a no-op. The key comes from the clamped cursor
// so it always matches the displayed question.
func (p *Practice) Submit(option string) {
	state := p.store.Snapshot()
	current, idx, ok := p.Current()
	if !ok {
		return
	}
	key := Key(state.SelectedCategory, strconv.Itoa(idx))
	p.store.PutAnswer(key, AnswerState{
		Answered: true,
		Correct:  option == current.Answer,
		Selected: option,
	})
}

// Answer returns the ledger entry for the current question.
func (p *Practice) Answer() AnswerState {
	state := p.store.Snapshot()
	_, idx, ok := p.Current()
	if !ok {
		return AnswerState{}
	}
	return state.Answers[Key(state.SelectedCategory, strconv.Itoa(idx))]
}

// Next advances the cursor, stopping at the last question.
func (p *Practice) Next() {
	questions := p.Questions()
	state := p.store.Snapshot()
	idx := state.Index(len(questions))
	if idx < len(questions)-1 {
		p.store.SetQuestionIndex(strconv.Itoa(idx + 1))
	}
}

// Prev moves the cursor back, stopping at the first question.
func (p *Practice) Prev() {
	questions := p.Questions()
	idx := p.store.Snapshot().Index(len(questions))
	if idx > 0 {
		p.store.SetQuestionIndex(strconv.Itoa(idx - 1))
	}
}

// CanFinish reports whether every question in the category has been
// answered; finishing practice is gated on completeness.
func (p *Practice) CanFinish() bool {
	state := p.store.Snapshot()
	questions := p.Questions()
	if len(questions) == 0 {
		return false
	}
	for i := range questions {
		if !state.Answers[Key(state.SelectedCategory, strconv.Itoa(i))].Answered {
			return false
		}
	}
	return true
}

// Quit leaves the current category and returns to category selection.
// Always permitted.
func (p *Practice) Quit() {
	p.store.SetCategory("")
	p.store.SetQuestionIndex("0")
}

// Finish ends the session and returns to the menu. No-op unless every
// question is answered.
func (p *Practice) Finish() {
	if !p.CanFinish() {
		return
	}
	p.store.Reset()
}
