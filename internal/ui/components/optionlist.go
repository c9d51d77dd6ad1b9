package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/openmcq/openmcq/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// OptionList renders the answer options for one question. Before the
// question is answered it is a cursor-driven selector; afterwards it
// shows the marked result with the answer key highlighted.
type OptionList struct {
	Options  []string
	Cursor   int
	Answered bool
	Selected string // option text the user chose
	Answer   string // correct option text
	Locked   bool   // navigation only, e.g. review mode
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// SetResult switches the list into answered rendering.
func (o OptionList) SetResult(selected, answer string) OptionList {
	o.Answered = true
	o.Selected = selected
	o.Answer = answer
	return o
}

// Update handles cursor movement. Answered and locked lists ignore keys.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Answered || o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "1", "2", "3", "4":
		i := int(kmsg.String()[0] - '1')
		if i < len(o.Options) {
			o.Cursor = i
		}
	case "a", "b", "c", "d":
		i := int(kmsg.String()[0] - 'a')
		if i < len(o.Options) {
			o.Cursor = i
		}
	}

	return o, nil
}

// Current returns the option text under the cursor, or "" for an empty list.
func (o OptionList) Current() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return o.Options[o.Cursor]
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if !o.Answered && !o.Locked && i == o.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Answered && opt == o.Answer:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case o.Answered && opt == o.Selected:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		case o.Answered:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor && !o.Locked:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
