package components

import (
	"fmt"
	"strings"

	"github.com/openmcq/openmcq/internal/ui/theme"
)

// Palette renders the exam question grid: one cell per question,
// coloured by answered and flagged status, with the current question
// underlined.
type Palette struct {
	Total    int
	Current  int
	Answered map[int]bool
	Flagged  map[int]bool
	PerRow   int
}

// NewPalette creates a palette with ten cells per row.
func NewPalette(total int) Palette {
	return Palette{
		Total:    total,
		Answered: make(map[int]bool),
		Flagged:  make(map[int]bool),
		PerRow:   10,
	}
}

// View renders the palette grid.
func (p Palette) View() string {
	perRow := p.PerRow
	if perRow <= 0 {
		perRow = 10
	}

	var rows []string
	var row []string
	for i := 0; i < p.Total; i++ {
		cell := fmt.Sprintf("%2d", i+1)
		switch {
		case i == p.Current:
			cell = theme.PaletteCurrent.Render(cell)
		case p.Flagged[i]:
			cell = theme.PaletteFlagged.Render(cell)
		case p.Answered[i]:
			cell = theme.PaletteAnswered.Render(cell)
		default:
			cell = theme.PaletteBlank.Render(cell)
		}
		row = append(row, cell)

		if len(row) == perRow {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	return strings.Join(rows, "\n")
}
