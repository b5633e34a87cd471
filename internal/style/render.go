package style

import (
	"strings"

	"charm.land/lipgloss/v2"
	"pkt.systems/toterm/schema"
)

const (
	errorColor   = "#ff5f5f"
	infoColor    = "#5fd7ff"
	welcomeColor = "#ffffff"
)

// Renderer styles terminal output according to a descriptor.
type Renderer struct {
	classes map[schema.StyleClass]lipgloss.Style
	status  lipgloss.Style
	prompt  lipgloss.Style
}

// NewRenderer builds one lipgloss style per output class.
func NewRenderer(d Descriptor) *Renderer {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.Foreground)).
		Background(lipgloss.Color(d.Background))
	return &Renderer{
		classes: map[schema.StyleClass]lipgloss.Style{
			schema.StyleNormal:  base,
			schema.StyleOutput:  base,
			schema.StyleError:   base.Foreground(lipgloss.Color(errorColor)),
			schema.StyleInfo:    base.Foreground(lipgloss.Color(infoColor)),
			schema.StyleWelcome: base.Foreground(lipgloss.Color(welcomeColor)).Bold(true),
			schema.StyleCommand: base.Bold(true),
		},
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(d.Background)).
			Background(lipgloss.Color(d.Foreground)),
		prompt: base.Bold(true),
	}
}

// Line renders one output line padded to width columns. A width of zero
// disables padding.
func (r *Renderer) Line(line schema.OutputLine, width int) string {
	st, ok := r.classes[line.Style]
	if !ok {
		st = r.classes[schema.StyleNormal]
	}
	return st.Render(pad(line.Text, width))
}

// Prompt renders the prompt prefix.
func (r *Renderer) Prompt(text string) string {
	return r.prompt.Render(text)
}

// Plain renders text in the base style.
func (r *Renderer) Plain(text string, width int) string {
	return r.classes[schema.StyleNormal].Render(pad(text, width))
}

// StatusBar renders left and right segments across width columns.
func (r *Renderer) StatusBar(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return r.status.Render(left + strings.Repeat(" ", gap) + right)
}

func pad(text string, width int) string {
	if width <= 0 {
		return text
	}
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}
