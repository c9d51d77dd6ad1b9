package exam

import (
	"context"
	"fmt"
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

// urgentThreshold switches the countdown to the urgent style.
const urgentThreshold = 5 * time.Minute

// ExamScreen drives a timed, cross-category exam attempt.
type ExamScreen struct {
	ctrl      *quiz.Exam
	quizStore *quiz.Store
	gateway   *persist.Gateway
	events    store.EventRepo
	sessionID string

	options     components.OptionList
	quitConfirm bool
	shownAt     time.Time
	lastIndex   int
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)
var _ screen.EscHandler = (*ExamScreen)(nil)

// New creates an exam screen and starts a fresh attempt.
func New(repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *ExamScreen {
	e := newScreen(repo, quizStore, gateway, events, sessionID)
	e.ctrl.Start()
	e.gateway.Save(quizStore.Snapshot())
	return e
}

// Resume builds an exam screen over already-restored session state.
// The countdown is rederived from the attempt's start time, so time
// away still counts against the time box.
func Resume(repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *ExamScreen {
	e := newScreen(repo, quizStore, gateway, events, sessionID)
	e.ctrl.RecomputeRemaining()
	return e
}

func newScreen(repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *ExamScreen {
	return &ExamScreen{
		ctrl:      quiz.NewExam(quizStore, repo, random.NewRand(), nil),
		quizStore: quizStore,
		gateway:   gateway,
		events:    events,
		sessionID: sessionID,
		lastIndex: -1,
	}
}

func (e *ExamScreen) Init() tea.Cmd {
	e.syncQuestion()
	return e.tickCmd()
}

func (e *ExamScreen) Title() string {
	if exam := e.ctrl.Session(); exam != nil && exam.Reviewing {
		return "Exam Review"
	}
	return "Exam"
}

// HeaderStatus renders the countdown in the header while the attempt runs.
func (e *ExamScreen) HeaderStatus() string {
	exam := e.ctrl.Session()
	if exam == nil || exam.Complete {
		return ""
	}
	remaining := time.Duration(exam.TimeRemaining) * time.Second
	text := fmt.Sprintf("⏱ %02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
	if remaining <= urgentThreshold {
		return theme.TimerUrgent.Render(text)
	}
	return theme.Timer.Render(text)
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	exam := e.ctrl.Session()
	state := e.quizStore.Snapshot()
	switch {
	case exam == nil:
		return nil
	case e.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End attempt"},
			{Key: "N", Description: "Keep going"},
		}
	case state.ShowResults:
		return []layout.KeyHint{
			{Key: "R", Description: "Review answers"},
			{Key: "Enter", Description: "Menu"},
		}
	case exam.Reviewing:
		return []layout.KeyHint{
			{Key: "←→", Description: "Prev/Next"},
			{Key: "Esc", Description: "Results"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Navigate"},
			{Key: "Space", Description: "Flag"},
			{Key: "Esc", Description: "End"},
		}
	}
}

func (e *ExamScreen) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// syncQuestion rebuilds the option list when the exam cursor moves.
// Exam options keep bank order so review matches what was shown.
func (e *ExamScreen) syncQuestion() {
	q, idx, ok := e.ctrl.Current()
	if !ok || idx == e.lastIndex {
		return
	}
	e.lastIndex = idx

	exam := e.ctrl.Session()
	reviewing := exam != nil && exam.Reviewing
	e.options = components.NewOptionList(q.Options)
	// Review always marks the answer key, even on questions that were
	// never answered.
	if ans := e.ctrl.Answer(); ans.Answered || reviewing {
		e.options = e.options.SetResult(ans.Selected, q.Answer)
	}
	e.options.Locked = reviewing || (exam != nil && exam.Complete)
	e.shownAt = time.Now()
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return e.handleTick()

	case answerLoggedMsg:
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

// handleTick advances the countdown. Completed attempts stop ticking.
func (e *ExamScreen) handleTick() (screen.Screen, tea.Cmd) {
	exam := e.ctrl.Session()
	if exam == nil || exam.Complete {
		return e, nil
	}

	e.ctrl.Tick()

	// Tick may have expired the attempt; persist the terminal state so
	// it is marked completed even if the process dies here.
	if after := e.ctrl.Session(); after != nil && after.Complete {
		e.gateway.Save(e.quizStore.Snapshot())
		return e, nil
	}
	return e, e.tickCmd()
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	exam := e.ctrl.Session()
	if exam == nil {
		return e, nil
	}
	state := e.quizStore.Snapshot()

	if e.quitConfirm {
		switch msg.String() {
		case "y":
			e.quitConfirm = false
			e.ctrl.Quit()
			e.gateway.Save(e.quizStore.Snapshot())
		case "n", "esc":
			e.quitConfirm = false
		}
		return e, nil
	}

	if state.ShowResults {
		switch msg.String() {
		case "r":
			e.ctrl.Review()
			e.lastIndex = -1
			e.syncQuestion()
		case "enter":
			e.ctrl.BackToMenu()
			return e, func() tea.Msg { return router.PopToRootMsg{} }
		}
		return e, nil
	}

	q, idx, ok := e.ctrl.Current()
	if !ok {
		return e, nil
	}

	switch msg.String() {
	case "right", "n":
		e.ctrl.Next()
		e.syncQuestion()
		return e, nil

	case "left", "p":
		e.ctrl.Prev()
		e.syncQuestion()
		return e, nil

	case "space":
		e.ctrl.ToggleFlag(idx)
		return e, nil

	case "g":
		// Jump to the first unanswered question.
		for i := range exam.Questions {
			if !state.Answers[quiz.ExamKey(i)].Answered {
				e.ctrl.Goto(i)
				e.syncQuestion()
				break
			}
		}
		return e, nil

	case "enter":
		if exam.Reviewing || e.ctrl.Answer().Answered {
			e.ctrl.Next()
			e.syncQuestion()
			return e, nil
		}
		if exam.IsFlagged(idx) {
			return e, nil
		}
		selected := e.options.Current()
		e.ctrl.Select(selected)
		e.ctrl.Submit(selected)
		e.options = e.options.SetResult(selected, q.Answer)
		e.gateway.Save(e.quizStore.Snapshot())
		return e, e.logAnswer(q, selected)
	}

	var cmd tea.Cmd
	e.options, cmd = e.options.Update(msg)
	return e, cmd
}

// HandleEsc asks for confirmation before ending a running attempt, and
// steps review back out to the results view.
func (e *ExamScreen) HandleEsc() (tea.Cmd, bool) {
	exam := e.ctrl.Session()
	state := e.quizStore.Snapshot()
	switch {
	case exam == nil:
		return nil, false
	case e.quitConfirm:
		e.quitConfirm = false
		return nil, true
	case exam.Reviewing:
		e.ctrl.BackToResults()
		return nil, true
	case state.ShowResults:
		e.ctrl.BackToMenu()
		return func() tea.Msg { return router.PopToRootMsg{} }, true
	default:
		e.quitConfirm = true
		return nil, true
	}
}

func (e *ExamScreen) logAnswer(q question.Record, selected string) tea.Cmd {
	if e.events == nil {
		return nil
	}
	elapsed := int(time.Since(e.shownAt).Milliseconds())
	data := store.AnswerEventData{
		SessionID:  e.sessionID,
		Mode:       string(quiz.ModeExam),
		QuestionID: q.ID,
		Selected:   selected,
		Correct:    selected == q.Answer,
		TimeMs:     elapsed,
	}
	return func() tea.Msg {
		err := e.events.AppendAnswer(context.Background(), data)
		return answerLoggedMsg{Err: err}
	}
}

func (e *ExamScreen) View(width, height int) string {
	exam := e.ctrl.Session()
	if exam == nil {
		return layout.Centered(theme.Hint.Render("No exam in progress."), width, height)
	}
	state := e.quizStore.Snapshot()

	if e.quitConfirm {
		confirm := theme.Body.Bold(true).Render("End the exam attempt?") + "\n\n" +
			theme.Hint.Render("The attempt is scored as-is and cannot be resumed.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, confirm)
	}

	if state.ShowResults {
		return e.viewResults(width, height)
	}

	q, idx, ok := e.ctrl.Current()
	if !ok {
		return layout.Centered(theme.Hint.Render("No exam in progress."), width, height)
	}

	position := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", idx+1, len(exam.Questions)))
	prompt := theme.Body.Bold(true).Width(contentWidth(width)).Render(q.Prompt)

	body := position + "\n\n" + prompt + "\n"
	if ref := question.ImageRef(q.Image); ref != "" {
		body += theme.Hint.Render("[figure: "+ref+"]") + "\n"
	}
	body += "\n" + e.options.View()

	if exam.IsFlagged(idx) {
		body += "\n" + theme.Flagged.Render("⚑ Flagged — unflag to answer")
	}
	if exam.Reviewing {
		ans := e.ctrl.Answer()
		if !ans.Answered {
			body += "\n" + theme.Hint.Render("Not answered.")
		}
		if q.Explanation != "" {
			body += "\n\n" + theme.Hint.Width(contentWidth(width)).Render(q.Explanation)
		}
	}

	body += "\n\n" + e.viewPalette(state, exam)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (e *ExamScreen) viewPalette(state quiz.State, exam *quiz.ExamSession) string {
	p := components.NewPalette(len(exam.Questions))
	p.Current = quiz.ClampIndex(exam.CurrentIndex, len(exam.Questions))
	for i := range exam.Questions {
		if state.Answers[quiz.ExamKey(i)].Answered {
			p.Answered[i] = true
		}
	}
	for _, i := range exam.Flagged {
		p.Flagged[i] = true
	}
	return p.View()
}

func (e *ExamScreen) viewResults(width, height int) string {
	results := e.ctrl.Results()

	verdict := theme.Correct.Render("PASSED")
	if !results.Passed {
		verdict = theme.Incorrect.Render("FAILED")
	}

	percent := 0.0
	if results.Total > 0 {
		percent = float64(results.Correct) / float64(results.Total)
	}

	title := theme.Title.Render("Exam Results")
	summary := theme.Body.Render(fmt.Sprintf(
		"%d of %d correct  ·  pass mark %d", results.Correct, results.Total, quiz.ExamPassMark,
	))
	taken := theme.Subtitle.Render(fmt.Sprintf(
		"Time taken: %02d:%02d",
		int(results.TimeTaken.Minutes()), int(results.TimeTaken.Seconds())%60,
	))
	bar := components.NewProgressBar("", percent, true, contentWidth(width)).View()

	body := title + "\n\n" + verdict + "\n\n" + summary + "\n" + taken + "\n\n" + bar

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
