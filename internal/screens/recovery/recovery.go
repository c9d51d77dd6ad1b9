package recovery

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openmcq/openmcq/internal/persist"
	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/quiz"
	"github.com/openmcq/openmcq/internal/router"
	"github.com/openmcq/openmcq/internal/screen"
	"github.com/openmcq/openmcq/internal/screens/categorytest"
	"github.com/openmcq/openmcq/internal/screens/exam"
	"github.com/openmcq/openmcq/internal/screens/home"
	"github.com/openmcq/openmcq/internal/screens/practice"
	"github.com/openmcq/openmcq/internal/store"
	"github.com/openmcq/openmcq/internal/ui/layout"
	"github.com/openmcq/openmcq/internal/ui/theme"
)

// RecoveryScreen offers to resume a recoverable session found at
// startup. Declining discards the saved session for good.
type RecoveryScreen struct {
	saved     quiz.State
	repo      *question.Repository
	quizStore *quiz.Store
	gateway   *persist.Gateway
	events    store.EventRepo
	sessionID string
}

var _ screen.Screen = (*RecoveryScreen)(nil)
var _ screen.KeyHintProvider = (*RecoveryScreen)(nil)

// New creates the recovery prompt for the given saved state.
func New(saved quiz.State, repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *RecoveryScreen {
	return &RecoveryScreen{
		saved:     saved,
		repo:      repo,
		quizStore: quizStore,
		gateway:   gateway,
		events:    events,
		sessionID: sessionID,
	}
}

func (r *RecoveryScreen) Init() tea.Cmd {
	return nil
}

func (r *RecoveryScreen) Title() string {
	return "Resume Session"
}

func (r *RecoveryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Y", Description: "Resume"},
		{Key: "N", Description: "Discard"},
	}
}

func (r *RecoveryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter", "y":
		return r, r.resume()
	case "n", "d", "esc":
		return r, r.discard()
	}
	return r, nil
}

// resume rehydrates the quiz store and swaps in the matching mode screen.
func (r *RecoveryScreen) resume() tea.Cmd {
	r.quizStore.Restore(r.saved)

	var target screen.Screen
	switch r.saved.Mode {
	case quiz.ModeExam:
		target = exam.Resume(r.repo, r.quizStore, r.gateway, r.events, r.sessionID)
	case quiz.ModeCategoryTest, quiz.ModeReview:
		target = categorytest.Resume(r.repo, r.quizStore, r.gateway, r.events, r.sessionID)
	default:
		target = practice.Resume(r.repo, r.quizStore, r.gateway, r.events, r.sessionID)
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: target}
	}
}

// discard drops the checkpoint permanently and goes to the menu.
func (r *RecoveryScreen) discard() tea.Cmd {
	r.gateway.Clear()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: home.New(r.repo, r.quizStore, r.gateway, r.events, r.sessionID),
		}
	}
}

func (r *RecoveryScreen) View(width, height int) string {
	var what string
	switch r.saved.Mode {
	case quiz.ModeExam:
		answered := 0
		if r.saved.Exam != nil {
			for i := range r.saved.Exam.Questions {
				if r.saved.Answers[quiz.ExamKey(i)].Answered {
					answered++
				}
			}
		}
		what = fmt.Sprintf("an exam attempt (%d answered)", answered)
	case quiz.ModeCategoryTest, quiz.ModeReview:
		what = fmt.Sprintf("a %s test", r.saved.SelectedCategory)
	default:
		what = fmt.Sprintf("a %s practice session", r.saved.SelectedCategory)
	}

	title := theme.Title.Render("Unfinished session found")
	body := theme.Body.Render("You have "+what+" in progress.") + "\n\n" +
		theme.Hint.Render("Resume it, or discard it permanently?")

	content := title + "\n\n" + body
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
