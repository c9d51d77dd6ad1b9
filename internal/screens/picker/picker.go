package picker

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
	"github.com/openmcq/openmcq/internal/screens/practice"
	"github.com/openmcq/openmcq/internal/store"
	"github.com/openmcq/openmcq/internal/ui/components"
	"github.com/openmcq/openmcq/internal/ui/layout"
	"github.com/openmcq/openmcq/internal/ui/theme"
)

// Target selects which study mode the picker feeds into.
type Target int

const (
	ForPractice Target = iota
	ForTest
)

// PickerScreen lets the user choose a category, and for tests how many
// questions to draw from it.
type PickerScreen struct {
	target    Target
	repo      *question.Repository
	quizStore *quiz.Store
	gateway   *persist.Gateway
	events    store.EventRepo
	sessionID string

	menu     components.Menu
	chosen   string
	counting bool
	count    components.NumberInput
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a picker for the given mode.
func New(target Target, repo *question.Repository, quizStore *quiz.Store, gateway *persist.Gateway, events store.EventRepo, sessionID string) *PickerScreen {
	p := &PickerScreen{
		target:    target,
		repo:      repo,
		quizStore: quizStore,
		gateway:   gateway,
		events:    events,
		sessionID: sessionID,
	}

	items := make([]components.MenuItem, 0, len(repo.Categories()))
	for _, cat := range repo.Categories() {
		cat := cat
		n := len(repo.ByCategory(cat))
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  (%d questions)", cat, n),
			Action: func() tea.Cmd {
				return p.pick(cat)
			},
		})
	}
	p.menu = components.NewMenu(items)
	return p
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	if p.target == ForTest {
		return "Category Test"
	}
	return "Practice"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	if p.counting {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// pick handles a category selection. Practice starts right away; tests
// move to the question-count prompt first.
func (p *PickerScreen) pick(category string) tea.Cmd {
	if p.target == ForPractice {
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practice.New(category, p.repo, p.quizStore, p.gateway, p.events, p.sessionID),
			}
		}
	}

	p.chosen = category
	p.counting = true
	p.count = components.NewNumberInput(
		fmt.Sprintf("1-%d", len(p.repo.ByCategory(category))),
		len(p.repo.ByCategory(category)),
	)
	return p.count.Init()
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if p.counting {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter":
				n := p.count.Value()
				return p, func() tea.Msg {
					return router.ReplaceScreenMsg{
						Screen: categorytest.New(p.chosen, n, p.repo, p.quizStore, p.gateway, p.events, p.sessionID),
					}
				}
			}
		}
		var cmd tea.Cmd
		p.count, cmd = p.count.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

// HandleEsc consumes escape while the count prompt is open so the
// router does not pop the whole picker.
func (p *PickerScreen) HandleEsc() (tea.Cmd, bool) {
	if p.counting {
		p.counting = false
		p.chosen = ""
		return nil, true
	}
	return nil, false
}

func (p *PickerScreen) View(width, height int) string {
	if p.counting {
		max := len(p.repo.ByCategory(p.chosen))
		prompt := theme.Body.Bold(true).Render(p.chosen) + "\n\n" +
			theme.Body.Render(fmt.Sprintf("How many questions? (up to %d)", max)) + "\n\n" +
			p.count.View() + "\n\n" +
			theme.Hint.Render("Leave empty for the full category")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, prompt)
	}

	title := theme.Title.Render("Choose a category")
	content := title + "\n\n" + p.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
