package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"tuiselect/internal/ui/handlers"
)

// Picker hosts a single string select as a whole program. It quits once a
// value is chosen or the user backs out with the list closed.
type Picker struct {
	sel       *Model[string]
	events    *handlers.EventHandler
	value     string
	chosen    bool
	cancelled bool
}

func NewPicker(sel *Model[string]) *Picker {
	return &Picker{sel: sel, events: handlers.NewEventHandler()}
}

// Result returns the chosen value; ok is false when the user cancelled
func (p *Picker) Result() (string, bool) {
	return p.value, p.chosen
}

func (p *Picker) Init() tea.Cmd {
	return p.sel.Init()
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			p.cancelled = true
			return p, tea.Quit
		}
		cmd, consumed := p.sel.HandleKey(msg)
		if !consumed && !p.sel.IsOpen() {
			switch msg.String() {
			case "esc", "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
		return p, cmd

	case ChangedMsg[string]:
		p.value = msg.Value
		p.chosen = true
		log.Printf("picker: chose %q", msg.Value)
		return p, tea.Quit

	case EventMsg:
		if status, ok := p.events.HandleEvent(msg.Event); ok {
			p.sel.SetStatus(status)
		}
		return p, nil
	}

	_, cmd := p.sel.Update(msg)
	return p, cmd
}

func (p *Picker) View() string {
	if p.chosen || p.cancelled {
		return ""
	}
	return p.sel.View()
}
