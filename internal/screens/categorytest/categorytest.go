package categorytest

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openmcq/openmcq/internal/persist"
	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/quiz"
	"github.com/openmcq/openmcq/internal/random"
	"github.com/openmcq/openmcq/internal/router"
	"github.com/openmcq/openmcq/internal/screen"
	"github.com/openmcq/openmcq/internal/store"
	"github.com/openmcq/openmcq/internal/ui/components"
	"github.com/openmcq/openmcq/internal/ui/layout"
	"github.com/openmcq/openmcq/internal/ui/theme"
)

// TestScreen drives a scored test over a random subset of one category.
type TestScreen struct {
	ctrl      *quiz.CategoryTest
	quizStore *quiz.Store
	gateway   *persist.Gateway
	events    store.EventRepo
	sessionID string

	options   components.OptionList
	shuffled  map[string][]string
	rng       *rand.Rand
	shownAt   time.Time
	lastIndex int
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)
var _ screen.EscHandler = (*TestScreen)(nil)

// New creates a test screen and draws the question subset.
func New(category string, count int, repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *TestScreen {
	t := newScreen(repo, quizStore, gateway, events, sessionID)
	t.ctrl.Start(category, count)
	return t
}

// Resume builds a test screen over already-restored session state,
// reusing the persisted question draw.
func Resume(repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *TestScreen {
	return newScreen(repo, quizStore, gateway, events, sessionID)
}

func newScreen(repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *TestScreen {
	rng := random.NewRand()
	return &TestScreen{
		ctrl:      quiz.NewCategoryTest(quizStore, repo, rng),
		quizStore: quizStore,
		gateway:   gateway,
		events:    events,
		sessionID: sessionID,
		shuffled:  make(map[string][]string),
		rng:       rng,
		lastIndex: -1,
	}
}

func (t *TestScreen) Init() tea.Cmd {
	t.syncQuestion()
	return nil
}

func (t *TestScreen) Title() string {
	if t.quizStore.Snapshot().Mode == quiz.ModeReview {
		return "Review"
	}
	return "Category Test"
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	state := t.quizStore.Snapshot()
	switch {
	case state.ShowResults:
		hints := []layout.KeyHint{}
		if len(t.ctrl.Score().WrongQuestionIDs) > 0 {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Review wrong answers"})
		}
		return append(hints,
			layout.KeyHint{Key: "Enter", Description: "New session"},
			layout.KeyHint{Key: "Esc", Description: "Menu"},
		)
	case state.Mode == quiz.ModeReview:
		return []layout.KeyHint{
			{Key: "←→", Description: "Prev/Next"},
			{Key: "Esc", Description: "Results"},
		}
	case t.ctrl.Answer().Answered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "F", Description: "Finish"},
			{Key: "Esc", Description: "Leave"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "F", Description: "Finish"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

// syncQuestion rebuilds the option list when the current question changes.
func (t *TestScreen) syncQuestion() {
	q, idx, ok := t.ctrl.Current()
	if !ok || idx == t.lastIndex {
		return
	}
	t.lastIndex = idx

	opts, cached := t.shuffled[q.ID]
	if !cached {
		opts = random.Shuffle(t.rng, q.Options)
		t.shuffled[q.ID] = opts
	}

	reviewing := t.quizStore.Snapshot().Mode == quiz.ModeReview
	t.options = components.NewOptionList(opts)
	// Review always marks the answer key, even on questions that were
	// never answered.
	if ans := t.ctrl.Answer(); ans.Answered || reviewing {
		t.options = t.options.SetResult(ans.Selected, q.Answer)
	}
	t.options.Locked = reviewing
	t.shownAt = time.Now()
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerLoggedMsg:
		return t, nil

	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	state := t.quizStore.Snapshot()
	if state.ShowResults {
		return t.handleResultsKey(msg)
	}

	q, _, ok := t.ctrl.Current()
	if !ok {
		return t, nil
	}

	switch msg.String() {
	case "right", "n":
		t.ctrl.Next()
		t.syncQuestion()
		return t, nil

	case "left":
		t.ctrl.Prev()
		t.syncQuestion()
		return t, nil

	case "f":
		if state.Mode != quiz.ModeReview {
			t.finish()
		}
		return t, nil

	case "enter":
		if state.Mode == quiz.ModeReview {
			t.ctrl.Next()
			t.syncQuestion()
			return t, nil
		}
		if t.ctrl.Answer().Answered {
			t.ctrl.Next()
			t.syncQuestion()
			return t, nil
		}
		selected := t.options.Current()
		t.ctrl.Select(selected)
		t.ctrl.Submit(selected)
		t.options = t.options.SetResult(selected, q.Answer)

		// The test concludes on its own once the whole subset is answered.
		score := t.ctrl.Score()
		if score.TotalAnswered == score.AvailableQuestions {
			t.finish()
		} else {
			t.gateway.Save(t.quizStore.Snapshot())
		}
		return t, t.logAnswer(q, selected)
	}

	var cmd tea.Cmd
	t.options, cmd = t.options.Update(msg)
	return t, cmd
}

func (t *TestScreen) handleResultsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		state := t.quizStore.Snapshot()
		wrong := t.ctrl.Score().WrongQuestionIDs
		if len(wrong) > 0 {
			t.ctrl.ReviewWrongAnswers(state.SelectedCategory, wrong)
			t.lastIndex = -1
			t.syncQuestion()
		}
		return t, nil

	case "enter":
		t.ctrl.Restart()
		return t, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return t, nil
}

// finish shows results and lets the persistence layer mark the
// category as concluded.
func (t *TestScreen) finish() {
	t.ctrl.Finish()
	t.gateway.Save(t.quizStore.Snapshot())
}

// HandleEsc returns from review to results, and otherwise leaves the
// screen to the router.
func (t *TestScreen) HandleEsc() (tea.Cmd, bool) {
	state := t.quizStore.Snapshot()
	if state.Mode == quiz.ModeReview {
		t.quizStore.SetMode(quiz.ModeCategoryTest)
		t.quizStore.SetShowResults(true)
		return nil, true
	}
	if state.ShowResults {
		t.ctrl.Restart()
		return func() tea.Msg { return router.PopToRootMsg{} }, true
	}
	t.gateway.Save(t.quizStore.Snapshot())
	return nil, false
}

func (t *TestScreen) logAnswer(q question.Record, selected string) tea.Cmd {
	if t.events == nil {
		return nil
	}
	elapsed := int(time.Since(t.shownAt).Milliseconds())
	data := store.AnswerEventData{
		SessionID:  t.sessionID,
		Mode:       string(quiz.ModeCategoryTest),
		Category:   q.Category,
		QuestionID: q.ID,
		Selected:   selected,
		Correct:    selected == q.Answer,
		TimeMs:     elapsed,
	}
	return func() tea.Msg {
		err := t.events.AppendAnswer(context.Background(), data)
		return answerLoggedMsg{Err: err}
	}
}

func (t *TestScreen) View(width, height int) string {
	state := t.quizStore.Snapshot()
	if state.ShowResults {
		return t.viewResults(width, height)
	}

	q, idx, ok := t.ctrl.Current()
	if !ok {
		return layout.Centered(theme.Hint.Render("No questions drawn."), width, height)
	}
	total := len(t.ctrl.Questions())

	mode := "Test"
	if state.Mode == quiz.ModeReview {
		mode = "Review"
	}
	position := theme.Subtitle.Render(fmt.Sprintf("%s %s  ·  Question %d of %d", q.Category, mode, idx+1, total))
	prompt := theme.Body.Bold(true).Width(contentWidth(width)).Render(q.Prompt)

	body := position + "\n\n" + prompt + "\n"
	if ref := question.ImageRef(q.Image); ref != "" {
		body += theme.Hint.Render("[figure: "+ref+"]") + "\n"
	}
	body += "\n" + t.options.View()

	ans := t.ctrl.Answer()
	switch {
	case state.Mode == quiz.ModeReview && !ans.Answered:
		body += "\n" + theme.Hint.Render("Not answered.")
	case ans.Answered && ans.Correct:
		body += "\n" + theme.Correct.Render("Correct!")
	case ans.Answered:
		body += "\n" + theme.Incorrect.Render("Incorrect.") +
			theme.Body.Render(" The answer is "+q.Answer+".")
	}
	if (ans.Answered || state.Mode == quiz.ModeReview) && q.Explanation != "" {
		body += "\n\n" + theme.Hint.Width(contentWidth(width)).Render(q.Explanation)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (t *TestScreen) viewResults(width, height int) string {
	state := t.quizStore.Snapshot()
	score := state.Scores[state.SelectedCategory]

	percent := 0.0
	if score.TotalAnswered > 0 {
		percent = float64(score.CorrectCount) / float64(score.TotalAnswered)
	}

	title := theme.Title.Render("Test Results")
	summary := theme.Body.Render(fmt.Sprintf(
		"%s: %d of %d correct", state.SelectedCategory, score.CorrectCount, score.TotalAnswered,
	))
	bar := components.NewProgressBar("", percent, true, contentWidth(width)).View()

	body := title + "\n\n" + summary + "\n\n" + bar
	if n := len(score.WrongQuestionIDs); n > 0 {
		body += "\n\n" + theme.Incorrect.Render(fmt.Sprintf("%d to review", n))
	} else {
		body += "\n\n" + theme.Correct.Render("Perfect score!")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func contentWidth(width int) int {
	w := width - 8
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}
