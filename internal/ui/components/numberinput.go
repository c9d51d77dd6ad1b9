package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openmcq/openmcq/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for digit-only entry, used for
// the question-count prompt when starting a category test.
type NumberInput struct {
	Model     textinput.Model
	Max       int
	submitted bool
	valid     bool
}

// NewNumberInput creates a focused digit-only input.
func NewNumberInput(placeholder string, max int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 3
	ti.Focus()

	return NumberInput{
		Model: ti,
		Max:   max,
	}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages, dropping non-digit character keys.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input with a validation marker once submitted.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.submitted {
		if n.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the entered count clamped to [1, Max]. Empty or zero
// input falls back to Max, matching "take the whole category".
func (n NumberInput) Value() int {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil || v <= 0 {
		return n.Max
	}
	if n.Max > 0 && v > n.Max {
		return n.Max
	}
	return v
}

// Submit marks the input as submitted with a validation result.
func (n *NumberInput) Submit(valid bool) {
	n.submitted = true
	n.valid = valid
}
