package practice

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

// PracticeScreen drives a self-paced run through one category.
type PracticeScreen struct {
	ctrl      *quiz.Practice
	quizStore *quiz.Store
	gateway   *persist.Gateway
	events    store.EventRepo
	sessionID string

	options   components.OptionList
	rng       *rand.Rand
	shownAt   time.Time
	lastIndex int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscHandler = (*PracticeScreen)(nil)

// New creates a practice screen and starts the category session.
func New(category string, repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *PracticeScreen {
	p := newScreen(repo, quizStore, gateway, events, sessionID)
	p.ctrl.Start(category)
	return p
}

// Resume builds a practice screen over already-restored session state.
func Resume(repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *PracticeScreen {
	return newScreen(repo, quizStore, gateway, events, sessionID)
}

func newScreen(repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *PracticeScreen {
	return &PracticeScreen{
		ctrl:      quiz.NewPractice(quizStore, repo),
		quizStore: quizStore,
		gateway:   gateway,
		events:    events,
		sessionID: sessionID,
		rng:       random.NewRand(),
		lastIndex: -1,
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	p.syncQuestion()
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.ctrl.Answer().Answered {
		hints := []layout.KeyHint{
			{Key: "←→", Description: "Prev/Next"},
		}
		if p.ctrl.CanFinish() {
			hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Leave"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "Esc", Description: "Leave"},
	}
}

// syncQuestion rebuilds the option list when the current question
// changes. Options reshuffle on every visit; answer marks are keyed by
// option text, so order does not affect them.
func (p *PracticeScreen) syncQuestion() {
	q, idx, ok := p.ctrl.Current()
	if !ok || idx == p.lastIndex {
		return
	}
	p.lastIndex = idx

	opts := random.Shuffle(p.rng, q.Options)
	p.options = components.NewOptionList(opts)
	if ans := p.ctrl.Answer(); ans.Answered {
		p.options = p.options.SetResult(ans.Selected, q.Answer)
	}
	p.shownAt = time.Now()
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerLoggedMsg:
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q, _, ok := p.ctrl.Current()
	if !ok {
		return p, nil
	}

	switch msg.String() {
	case "right", "n":
		p.ctrl.Next()
		p.syncQuestion()
		return p, nil

	case "left":
		p.ctrl.Prev()
		p.syncQuestion()
		return p, nil

	case "f":
		if p.ctrl.CanFinish() {
			p.ctrl.Finish()
			p.gateway.Save(p.quizStore.Snapshot())
			return p, func() tea.Msg { return router.PopToRootMsg{} }
		}
		return p, nil

	case "enter":
		if p.ctrl.Answer().Answered {
			p.ctrl.Next()
			p.syncQuestion()
			return p, nil
		}
		selected := p.options.Current()
		p.ctrl.Select(selected)
		p.ctrl.Submit(selected)
		p.options = p.options.SetResult(selected, q.Answer)
		p.gateway.Save(p.quizStore.Snapshot())
		return p, p.logAnswer(q, selected)
	}

	var cmd tea.Cmd
	p.options, cmd = p.options.Update(msg)
	return p, cmd
}

// HandleEsc leaves practice, clearing the in-category position, then
// lets the router pop back to the category picker.
func (p *PracticeScreen) HandleEsc() (tea.Cmd, bool) {
	p.ctrl.Quit()
	p.gateway.Save(p.quizStore.Snapshot())
	return nil, false
}

func (p *PracticeScreen) logAnswer(q question.Record, selected string) tea.Cmd {
	if p.events == nil {
		return nil
	}
	elapsed := int(time.Since(p.shownAt).Milliseconds())
	data := store.AnswerEventData{
		SessionID:  p.sessionID,
		Mode:       string(quiz.ModePractice),
		Category:   q.Category,
		QuestionID: q.ID,
		Selected:   selected,
		Correct:    selected == q.Answer,
		TimeMs:     elapsed,
	}
	return func() tea.Msg {
		err := p.events.AppendAnswer(context.Background(), data)
		return answerLoggedMsg{Err: err}
	}
}

func (p *PracticeScreen) View(width, height int) string {
	q, idx, ok := p.ctrl.Current()
	if !ok {
		return layout.Centered(theme.Hint.Render("No questions in this category."), width, height)
	}
	total := len(p.ctrl.Questions())

	position := theme.Subtitle.Render(fmt.Sprintf("%s  ·  Question %d of %d", q.Category, idx+1, total))
	prompt := theme.Body.Bold(true).Width(contentWidth(width)).Render(q.Prompt)

	body := position + "\n\n" + prompt + "\n"
	if ref := question.ImageRef(q.Image); ref != "" {
		body += theme.Hint.Render("[figure: "+ref+"]") + "\n"
	}
	body += "\n" + p.options.View()

	if ans := p.ctrl.Answer(); ans.Answered {
		if ans.Correct {
			body += "\n" + theme.Correct.Render("Correct!")
		} else {
			body += "\n" + theme.Incorrect.Render("Incorrect.") +
				theme.Body.Render(" The answer is "+q.Answer+".")
		}
		if q.Explanation != "" {
			body += "\n\n" + theme.Hint.Width(contentWidth(width)).Render(q.Explanation)
		}
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
