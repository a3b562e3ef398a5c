package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OptionState is what an option renderer gets to decide how a row looks
type OptionState struct {
	Focused  bool
	Selected bool
	Disabled bool
}

// OptionRenderer draws one list row. Rows may span several lines; hit
// testing follows the rendered height.
type OptionRenderer interface {
	RenderOption(label string, st OptionState) string
}

// OptionRendererFunc adapts a plain function to OptionRenderer
type OptionRendererFunc func(label string, st OptionState) string

func (f OptionRendererFunc) RenderOption(label string, st OptionState) string {
	return f(label, st)
}

// DefaultOptionRenderer draws a cursor, a check mark for the selected value
// and dims disabled rows
type DefaultOptionRenderer struct {
	styles *Styles
}

func NewDefaultOptionRenderer(styles *Styles) *DefaultOptionRenderer {
	return &DefaultOptionRenderer{styles: styles}
}

func (r *DefaultOptionRenderer) RenderOption(label string, st OptionState) string {
	label = strings.ReplaceAll(label, "\n", " ")

	cursor := "  "
	if st.Focused {
		cursor = "› "
	}
	mark := "  "
	if st.Selected {
		mark = "✓ "
	}

	style := lipgloss.NewStyle()
	switch {
	case st.Disabled:
		style = r.styles.Disabled
	case st.Selected:
		style = r.styles.Selected
	}
	if st.Focused {
		style = style.Inherit(r.styles.Focused)
	}

	return cursor + style.Render(mark+label)
}
