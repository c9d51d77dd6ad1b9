package quiz

import (
	"math/rand"
	"strconv"

	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/random"
)

// CategoryTest drives category-test mode: a random subset of one
// category's questions with a per-category score ledger.
type CategoryTest struct {
	store *Store
	repo  *question.Repository
	rng   *rand.Rand
}

// NewCategoryTest creates a category-test controller over the store.
func NewCategoryTest(store *Store, repo *question.Repository, rng *rand.Rand) *CategoryTest {
	return &CategoryTest{store: store, repo: repo, rng: rng}
}

// Start enters category-test mode, drawing a random subset of count
// questions. The draw happens once per category per session; a second
// Start for the same category reuses the existing subset. Count is
// clamped into [1, category size].
func (t *CategoryTest) Start(category string, count int) {
	available := t.repo.ByCategory(category)
	if len(available) == 0 {
		return
	}
	if count < 1 {
		count = 1
	}
	if count > len(available) {
		count = len(available)
	}

	drawn := random.Sample(t.rng, available, count)
	ids := make([]string, len(drawn))
	for i, q := range drawn {
		ids[i] = q.ID
	}
	t.store.SetTestSet(category, ids) // no-op when already drawn

	t.store.SetMode(ModeCategoryTest)
	t.store.SetCategory(category)
	t.store.SetQuestionIndex("0")
	t.store.SetShowResults(false)
}

// Questions resolves the drawn subset for the active category, in drawn
// order.
func (t *CategoryTest) Questions() []question.Record {
	state := t.store.Snapshot()
	return t.questionsFor(state, state.SelectedCategory)
}

func (t *CategoryTest) questionsFor(state State, category string) []question.Record {
	ids := state.TestSets[category]
	out := make([]question.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := t.repo.ByID(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Current returns the question at the navigation cursor.
func (t *CategoryTest) Current() (question.Record, int, bool) {
	questions := t.Questions()
	if len(questions) == 0 {
		return question.Record{}, 0, false
	}
	idx := t.store.Snapshot().Index(len(questions))
	return questions[idx], idx, true
}

// Select records a pre-submit option choice for the current question.
// Disabled in review mode.
func (t *CategoryTest) Select(option string) {
	state := t.store.Snapshot()
	if state.Mode == ModeReview || state.SelectedCategory == "" {
		return
	}
	_, idx, ok := t.Current()
	if !ok {
		return
	}
	t.store.SelectOption(Key(state.SelectedCategory, strconv.Itoa(idx)), option)
}

// Submit finalizes the answer for the current question and updates the
// category score. No-ops: already answered, review mode, no category.
func (t *CategoryTest) Submit(option string) {
	state := t.store.Snapshot()
	if state.Mode == ModeReview || state.SelectedCategory == "" {
		return
	}
	current, idx, ok := t.Current()
	if !ok {
		return
	}
	// Key off the clamped cursor so it always matches the displayed
	// question.
	key := Key(state.SelectedCategory, strconv.Itoa(idx))
	if state.Answers[key].Answered {
		return
	}

	correct := option == current.Answer
	t.store.PutAnswer(key, AnswerState{
		Answered: true,
		Correct:  correct,
		Selected: option,
	})

	score := state.Scores[state.SelectedCategory]
	score.TotalAnswered++
	if correct {
		score.CorrectCount++
	} else {
		score.WrongQuestionIDs = append(score.WrongQuestionIDs, current.ID)
	}
	score.AvailableQuestions = len(state.TestSets[state.SelectedCategory])
	t.store.SetScore(state.SelectedCategory, score)
}

// Answer returns the ledger entry for the current question.
func (t *CategoryTest) Answer() AnswerState {
	state := t.store.Snapshot()
	_, idx, ok := t.Current()
	if !ok {
		return AnswerState{}
	}
	return state.Answers[Key(state.SelectedCategory, strconv.Itoa(idx))]
}

// Score returns the accumulated score for the active category.
func (t *CategoryTest) Score() CategoryScore {
	state := t.store.Snapshot()
	return state.Scores[state.SelectedCategory]
}

// Next advances the cursor, stopping at the last question.
func (t *CategoryTest) Next() {
	questions := t.Questions()
	idx := t.store.Snapshot().Index(len(questions))
	if idx < len(questions)-1 {
		t.store.SetQuestionIndex(strconv.Itoa(idx + 1))
	}
}

// Prev moves the cursor back, stopping at the first question.
func (t *CategoryTest) Prev() {
	questions := t.Questions()
	idx := t.store.Snapshot().Index(len(questions))
	if idx > 0 {
		t.store.SetQuestionIndex(strconv.Itoa(idx - 1))
	}
}

// Finish transitions to the results view. Unconditional: there is no
// completeness gate for tests.
func (t *CategoryTest) Finish() {
	t.store.SetShowResults(true)
}

// ReviewWrongAnswers re-enters the same drawn subset in review mode,
// positioned at the first wrong answer. Review allows navigation only;
// answered questions stay frozen and unanswered ones cannot be answered.
func (t *CategoryTest) ReviewWrongAnswers(category string, wrongIDs []string) {
	state := t.store.Snapshot()
	questions := t.questionsFor(state, category)

	first := 0
	for i, q := range questions {
		found := false
		for _, id := range wrongIDs {
			if q.ID == id {
				found = true
				break
			}
		}
		if found {
			first = i
			break
		}
	}

	t.store.SetShowResults(false)
	t.store.SetMode(ModeReview)
	t.store.SetCategory(category)
	t.store.SetQuestionIndex(strconv.Itoa(first))
}

// Restart discards the session entirely.
func (t *CategoryTest) Restart() {
	t.store.Reset()
}
