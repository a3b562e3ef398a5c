package types

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings of a Select
type KeyMap struct {
	Toggle   key.Binding
	OpenNext key.Binding
	OpenPrev key.Binding
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Select   key.Binding
	Close    key.Binding
	Tab      key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		OpenNext: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "open")),
		OpenPrev: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "open at end")),
		Next:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Prev:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Tab:      key.NewBinding(key.WithKeys("tab", "shift+tab")),
	}
}

// Override rebinds the named action to keys
func (k *KeyMap) Override(name string, keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("no keys given for %q", name)
	}

	var b *key.Binding
	switch name {
	case "toggle":
		b = &k.Toggle
	case "open_next":
		b = &k.OpenNext
	case "open_prev":
		b = &k.OpenPrev
	case "next":
		b = &k.Next
	case "prev":
		b = &k.Prev
	case "first":
		b = &k.First
	case "last":
		b = &k.Last
	case "select":
		b = &k.Select
	case "close":
		b = &k.Close
	default:
		return fmt.Errorf("unknown key action %q", name)
	}

	help := b.Help()
	*b = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help.Desc))
	return nil
}

// ShortHelp implements help.KeyMap for an open list
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Select, k.Close}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.OpenNext, k.OpenPrev},
		{k.Next, k.Prev, k.First, k.Last},
		{k.Select, k.Close},
	}
}

// TriggerHelp returns the bindings that matter while the list is closed
func (k KeyMap) TriggerHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.OpenNext, k.OpenPrev}
}
