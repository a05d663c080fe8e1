package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// boxRow is one content row of a box; highlighted rows span the full width
type boxRow struct {
	text      string
	highlight bool
}

// renderBox draws a titled border of exactly width x height cells around rows
func (r *Renderer) renderBox(title string, rows []boxRow, width, height int) []string {
	b := lipgloss.NormalBorder()
	inner := width - 2
	if inner < 0 {
		inner = 0
	}

	title = ansi.Truncate(title, inner, "")
	top := r.styles.Border.Render(b.TopLeft) + r.styles.Title.Render(title) +
		r.styles.Border.Render(strings.Repeat(b.Top, inner-ansi.StringWidth(title))+b.TopRight)
	lines := []string{top}

	for i := 0; i < height-2; i++ {
		var cell string
		if i < len(rows) {
			cell = fit(rows[i].text, inner)
			if rows[i].highlight {
				cell = r.styles.Highlight.Render(cell)
			}
		} else {
			cell = strings.Repeat(" ", inner)
		}
		lines = append(lines, r.styles.Border.Render(b.Left)+cell+r.styles.Border.Render(b.Right))
	}

	bottom := b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight
	return append(lines, r.styles.Border.Render(bottom))
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
