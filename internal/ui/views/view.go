package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tuiselect/internal/ui/services/outside"
)

// OptionView is one registered option as the renderer sees it
type OptionView struct {
	Index int
	Label string
	State OptionState
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Prompt      string
	Placeholder string
	Open        bool
	ValueLabel  string
	HasValue    bool
	Options     []OptionView // the visible window only
	HiddenAbove int
	HiddenBelow int
	Query       string
	Status      string
	Help        string
}

// OptionHit maps an option index to the screen area of its row
type OptionHit struct {
	Index int
	Rect  outside.Rect
}

// Layout records where each part was drawn, relative to the top-left of the view
type Layout struct {
	Trigger outside.Rect
	List    *outside.Rect // nil while closed
	Options []OptionHit
}

// Offset returns the layout moved by x, y
func (l Layout) Offset(x, y int) Layout {
	out := Layout{Trigger: shift(l.Trigger, x, y)}
	if l.List != nil {
		r := shift(*l.List, x, y)
		out.List = &r
	}
	out.Options = make([]OptionHit, len(l.Options))
	for i, h := range l.Options {
		out.Options[i] = OptionHit{Index: h.Index, Rect: shift(h.Rect, x, y)}
	}
	return out
}

// OptionAt returns the option index drawn at x, y
func (l Layout) OptionAt(x, y int) (int, bool) {
	for _, h := range l.Options {
		if h.Rect.Contains(x, y) {
			return h.Index, true
		}
	}
	return 0, false
}

func shift(r outside.Rect, x, y int) outside.Rect {
	r.X += x
	r.Y += y
	return r
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	options OptionRenderer
}

// NewRenderer creates a renderer; a nil option renderer uses the default one
func NewRenderer(options OptionRenderer) *Renderer {
	styles := NewStyles()
	if options == nil {
		options = NewDefaultOptionRenderer(styles)
	}
	return &Renderer{styles: styles, options: options}
}

// Styles returns the styles in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view and the layout used for mouse hit testing
func (r *Renderer) Render(s ViewState) (string, Layout) {
	trigger := r.RenderTrigger(s)
	layout := Layout{Trigger: outside.Rect{W: lipgloss.Width(trigger), H: lipgloss.Height(trigger)}}
	parts := []string{trigger}

	if s.Open {
		list, listLayout := r.RenderList(s)
		layout.List = shiftPtr(listLayout.List, 0, layout.Trigger.H)
		for _, h := range listLayout.Options {
			layout.Options = append(layout.Options, OptionHit{Index: h.Index, Rect: shift(h.Rect, 0, layout.Trigger.H)})
		}
		parts = append(parts, list)
	}

	if s.Status != "" {
		parts = append(parts, r.styles.Status.Render(s.Status))
	}
	if s.Help != "" {
		parts = append(parts, r.styles.Help.Render(s.Help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...), layout
}

// RenderTrigger draws the prompt and the current value
func (r *Renderer) RenderTrigger(s ViewState) string {
	value := r.styles.Placeholder.Render(s.Placeholder)
	if s.HasValue {
		value = r.styles.Value.Render(s.ValueLabel)
	}

	arrow := "▾"
	style := r.styles.Trigger
	if s.Open {
		arrow = "▴"
		style = r.styles.TriggerOpen
	}

	box := style.Render(value + " " + arrow)
	if s.Prompt == "" {
		return box
	}
	return r.styles.Prompt.Render(s.Prompt) + " " + box
}

// RenderList draws the open list. The returned layout is relative to the list's own top-left.
func (r *Renderer) RenderList(s ViewState) (string, Layout) {
	if !s.Open {
		return "", Layout{}
	}

	var rows []string
	var hits []OptionHit
	y := 0

	if s.HiddenAbove > 0 {
		rows = append(rows, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", s.HiddenAbove)))
		y++
	}
	for _, o := range s.Options {
		row := r.options.RenderOption(o.Label, o.State)
		rows = append(rows, row)
		h := lipgloss.Height(row)
		hits = append(hits, OptionHit{Index: o.Index, Rect: outside.Rect{Y: y, H: h}})
		y += h
	}
	if s.HiddenBelow > 0 {
		rows = append(rows, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", s.HiddenBelow)))
	}
	if len(s.Options) == 0 {
		rows = append(rows, r.styles.Placeholder.Render("no options"))
	}
	if s.Query != "" {
		rows = append(rows, r.styles.Query.Render("/"+s.Query))
	}

	box := r.styles.List.Render(strings.Join(rows, "\n"))
	w, h := lipgloss.Width(box), lipgloss.Height(box)

	// Rows sit inside the border; each hit spans the full inner width
	for i := range hits {
		hits[i].Rect.X = 1
		hits[i].Rect.Y++
		hits[i].Rect.W = w - 2
	}

	return box, Layout{List: &outside.Rect{W: w, H: h}, Options: hits}
}

func shiftPtr(r *outside.Rect, x, y int) *outside.Rect {
	if r == nil {
		return nil
	}
	out := shift(*r, x, y)
	return &out
}
