package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openmcq/openmcq/internal/persist"
	"github.com/openmcq/openmcq/internal/question"
	"github.com/openmcq/openmcq/internal/quiz"
	"github.com/openmcq/openmcq/internal/router"
	"github.com/openmcq/openmcq/internal/screen"
	"github.com/openmcq/openmcq/internal/screens/exam"
	"github.com/openmcq/openmcq/internal/screens/picker"
	"github.com/openmcq/openmcq/internal/store"
	"github.com/openmcq/openmcq/internal/ui/components"
	"github.com/openmcq/openmcq/internal/ui/theme"
)

// HomeScreen is the mode selection screen shown at startup.
type HomeScreen struct {
	menu      components.Menu
	repo      *question.Repository
	quizStore *quiz.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *HomeScreen {
	items := []components.MenuItem{
		{
			Label: "PRACTICE MODE",
			Hint:  "Work through a category at your own pace, answers marked instantly",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: picker.New(picker.ForPractice, repo, quizStore, gateway, events, sessionID),
					}
				}
			},
		},
		{
			Label: "CATEGORY TEST",
			Hint:  "A scored random subset from one category",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: picker.New(picker.ForTest, repo, quizStore, gateway, events, sessionID),
					}
				}
			},
		},
		{
			Label: "EXAM MODE",
			Hint: fmt.Sprintf("%d questions, %d minutes, pass mark %d",
				quiz.ExamQuestionCount, int(quiz.ExamDuration.Minutes()), quiz.ExamPassMark),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: exam.New(repo, quizStore, gateway, events, sessionID),
					}
				}
			},
		},
		{
			Label:  "QUIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		repo:      repo,
		quizStore: quizStore,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("OpenMCQ")
	subtitle := theme.Subtitle.Render(fmt.Sprintf(
		"%d questions across %d categories",
		h.repo.Len(), len(h.repo.Categories()),
	))

	content := title + "\n" + subtitle + "\n\n" + h.menu.View()

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
