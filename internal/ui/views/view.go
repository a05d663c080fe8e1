package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"dicbrowse/internal/ui/geometry"
	"dicbrowse/internal/ui/services/navigation"
)

const (
	margin         = 1
	wordBoxHeight  = 3
	dictBoxHeight  = 5
	indexPercent   = 30
	minWidth       = 24
	minHeight      = 16
	tooSmallNotice = "Terminal too small"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	HelpLine         string
	Query            string
	Dictionaries     []string
	ActiveDictionary int
	Words            []string
	Selection        int
	Definition       string
	StatusMessage    string
	StatusIsError    bool
}

// Layout is the position of every panel for a terminal size
type Layout struct {
	Width      int
	Height     int
	HelpY      int
	WordY      int
	DictY      int
	BodyY      int
	BodyHeight int
	IndexWidth int
	DefWidth   int
	StatusY    int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// ComputeLayout places the panels. ok is false when the terminal is too small.
func ComputeLayout(width, height int) (Layout, bool) {
	if width < minWidth || height < minHeight {
		return Layout{Width: width, Height: height}, false
	}
	inner := width - 2*margin
	l := Layout{
		Width:   width,
		Height:  height,
		HelpY:   margin,
		WordY:   margin + 1,
		DictY:   margin + 1 + wordBoxHeight,
		StatusY: height - margin - 1,
	}
	l.BodyY = l.DictY + dictBoxHeight
	l.BodyHeight = l.StatusY - l.BodyY
	l.IndexWidth = inner * indexPercent / 100
	l.DefWidth = inner - l.IndexWidth
	return l, true
}

// IndexRect returns the geometry of the index list rows: the left border
// column, the first row and the number of visible rows
func (l Layout) IndexRect() geometry.Rect {
	return geometry.Rect{
		X:      margin,
		Y:      l.BodyY + 1,
		Width:  l.IndexWidth - 1,
		Height: l.BodyHeight - 2,
	}
}

// Render produces the complete view and the index list geometry it used
func (r *Renderer) Render(state ViewState) (string, geometry.Rect) {
	layout, ok := ComputeLayout(state.Width, state.Height)
	if !ok {
		return tooSmallNotice, geometry.Rect{}
	}
	inner := state.Width - 2*margin
	list := layout.IndexRect()

	var lines []string
	lines = append(lines, "") // top margin
	lines = append(lines, r.styles.Help.Render(fit(state.HelpLine, inner)))

	query := r.styles.Query.Render(state.Query) + r.styles.Cursor.Render("█")
	lines = append(lines, r.renderBox("Word", []boxRow{{text: query}}, inner, wordBoxHeight)...)

	lines = append(lines, r.renderDictionaries(state, inner)...)

	index := r.renderIndex(state, layout.IndexWidth, layout.BodyHeight)
	definition := r.renderDefinition(state, layout.DefWidth, layout.BodyHeight)
	for i := range index {
		lines = append(lines, index[i]+definition[i])
	}

	lines = append(lines, r.renderStatus(state, inner))

	pad := strings.Repeat(" ", margin)
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n"), list
}

func (r *Renderer) renderDictionaries(state ViewState, width int) []string {
	visible := dictBoxHeight - 2
	offset := navigation.ScrollOffset(state.ActiveDictionary, visible)

	var rows []boxRow
	for i := offset; i < len(state.Dictionaries) && len(rows) < visible; i++ {
		rows = append(rows, boxRow{
			text:      state.Dictionaries[i],
			highlight: i == state.ActiveDictionary,
		})
	}
	return r.renderBox("Dictionaries", rows, width, dictBoxHeight)
}

// renderIndex draws the word list with a window that trails the selection
func (r *Renderer) renderIndex(state ViewState, width, height int) []string {
	visible := height - 2
	offset := navigation.ScrollOffset(state.Selection, visible)

	var rows []boxRow
	for i := offset; i < len(state.Words) && len(rows) < visible; i++ {
		rows = append(rows, boxRow{
			text:      state.Words[i],
			highlight: i == state.Selection,
		})
	}
	return r.renderBox("Index", rows, width, height)
}

func (r *Renderer) renderDefinition(state ViewState, width, height int) []string {
	wrapped := wordwrap.String(state.Definition, width-2)

	var rows []boxRow
	for _, line := range strings.Split(wrapped, "\n") {
		if len(rows) == height-2 {
			break
		}
		rows = append(rows, boxRow{text: line})
	}
	return r.renderBox("Definition", rows, width, height)
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	msg := fit(ansi.Strip(state.StatusMessage), width)
	switch {
	case state.StatusMessage == "":
		return msg
	case state.StatusIsError:
		return r.styles.StatusError.Render(msg)
	default:
		return r.styles.StatusSuccess.Render(msg)
	}
}
