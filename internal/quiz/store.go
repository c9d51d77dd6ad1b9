package quiz

// Listener is notified with a fresh snapshot after every mutation.
type Listener func(State)

// Store owns the session state tree. All mutators are total: when a
// precondition is not met they do nothing instead of failing. Snapshot
// returns a deep copy, so the persistence gateway can treat state as an
// immutable value at each checkpoint.
//
// The store is driven exclusively from the UI event loop; no locking.
type Store struct {
	state     State
	listeners []Listener
}

// NewStore creates a store holding an empty session.
func NewStore() *Store {
	return &Store{state: emptyState()}
}

// Snapshot returns a deep copy of the current state tree.
func (s *Store) Snapshot() State {
	return s.state.clone()
}

// Subscribe registers a listener invoked after each mutation.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.state.clone()
	for _, fn := range s.listeners {
		fn(snap)
	}
}

// SetMode switches the active mode.
func (s *Store) SetMode(mode Mode) {
	s.state.Mode = mode
	s.notify()
}

// SetCategory sets the selected category. Pass "" to clear it.
func (s *Store) SetCategory(category string) {
	s.state.SelectedCategory = category
	s.notify()
}

// SetQuestionIndex moves the navigation cursor.
func (s *Store) SetQuestionIndex(index string) {
	s.state.QuestionIndex = index
	s.notify()
}

// SetShowResults toggles the results view.
func (s *Store) SetShowResults(show bool) {
	s.state.ShowResults = show
	s.notify()
}

// SelectOption records a pre-submit selection for key. Repeatable; the
// last write wins. No-op once the question is answered.
func (s *Store) SelectOption(key, option string) {
	existing := s.state.Answers[key]
	if existing.Answered {
		return
	}
	existing.Selected = option
	s.state.Answers[key] = existing
	s.notify()
}

// PutAnswer writes a final answer record for key. No-op if the key has
// already been answered: first submission wins, forever.
func (s *Store) PutAnswer(key string, answer AnswerState) {
	if s.state.Answers[key].Answered {
		return
	}
	s.state.Answers[key] = answer
	s.notify()
}

// SetScore replaces the category score record for category.
func (s *Store) SetScore(category string, score CategoryScore) {
	s.state.Scores[category] = score
	s.notify()
}

// SetTestSet records the drawn question subset for a category test.
// No-op if a subset was already drawn this session, so review passes
// reuse the original draw.
func (s *Store) SetTestSet(category string, ids []string) {
	if _, exists := s.state.TestSets[category]; exists {
		return
	}
	stored := make([]string, len(ids))
	copy(stored, ids)
	s.state.TestSets[category] = stored
	s.notify()
}

// SetExam installs a new exam sub-state (or removes it with nil).
func (s *Store) SetExam(exam *ExamSession) {
	s.state.Exam = exam
	s.notify()
}

// UpdateExam applies patch to the exam sub-state. No-op when no exam
// exists.
func (s *Store) UpdateExam(patch func(*ExamSession)) {
	if s.state.Exam == nil {
		return
	}
	patch(s.state.Exam)
	s.notify()
}

// Reset destroys the session and returns to an empty tree.
func (s *Store) Reset() {
	s.state = emptyState()
	s.notify()
}

// Restore replaces the state tree with a recovered snapshot. Nil maps in
// the snapshot are re-initialized so mutators stay total.
func (s *Store) Restore(state State) {
	if state.Answers == nil {
		state.Answers = make(map[string]AnswerState)
	}
	if state.Scores == nil {
		state.Scores = make(map[string]CategoryScore)
	}
	if state.TestSets == nil {
		state.TestSets = make(map[string][]string)
	}
	if state.QuestionIndex == "" {
		state.QuestionIndex = "0"
	}
	s.state = state.clone()
	s.notify()
}
