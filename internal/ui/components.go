package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"tuiselect/internal/domain"
	"tuiselect/internal/ui/services/navigation"
	"tuiselect/internal/ui/services/outside"
	"tuiselect/internal/ui/state"
	"tuiselect/internal/ui/views"
)

// Trigger is the button part of a Select
type Trigger[T comparable] struct {
	root *Model[T]
}

func NewTrigger[T comparable](root *Model[T]) (*Trigger[T], error) {
	if root == nil {
		return nil, ErrNoSelect
	}
	return &Trigger[T]{root: root}, nil
}

// View draws the trigger alone
func (t *Trigger[T]) View() string {
	return t.root.renderer.RenderTrigger(t.root.viewState())
}

// Rect returns where the trigger was drawn by the root's last View
func (t *Trigger[T]) Rect() outside.Rect {
	return t.root.layout.Trigger
}

// Expanded reports whether the list it controls is open
func (t *Trigger[T]) Expanded() bool {
	return t.root.IsOpen()
}

// Toggle behaves like a click on the trigger
func (t *Trigger[T]) Toggle() {
	t.root.exec.Toggle(state.SeedFirst)
}

// List is the popup part of a Select
type List[T comparable] struct {
	root *Model[T]
}

func NewList[T comparable](root *Model[T]) (*List[T], error) {
	if root == nil {
		return nil, ErrNoSelect
	}
	return &List[T]{root: root}, nil
}

// View draws the list alone; it is empty while closed
func (l *List[T]) View() string {
	out, _ := l.root.renderer.RenderList(l.root.viewState())
	return out
}

// Visible reports whether the list is open
func (l *List[T]) Visible() bool {
	return l.root.IsOpen()
}

// Rect returns where the list was drawn by the root's last View, or nil while closed
func (l *List[T]) Rect() *outside.Rect {
	return l.root.layout.List
}

// Option is one entry of a Select. It joins the list on Mount and leaves on Unmount.
type Option[T comparable] struct {
	root    *Model[T]
	opt     domain.Option[T]
	mounted bool
}

func NewOption[T comparable](root *Model[T], opt domain.Option[T]) (*Option[T], error) {
	if root == nil {
		return nil, ErrNoSelect
	}
	if opt.ID == "" {
		opt.ID = uuid.NewString()
	}
	return &Option[T]{root: root, opt: opt}, nil
}

func (o *Option[T]) ID() string {
	return o.opt.ID
}

func (o *Option[T]) Mount() {
	o.root.exec.Register(o.opt)
	o.mounted = true
}

func (o *Option[T]) Unmount() {
	if !o.mounted {
		return
	}
	o.root.exec.Unregister(o.opt.ID)
	o.mounted = false
}

// Update replaces the descriptor in place, keeping the option's position
func (o *Option[T]) Update(opt domain.Option[T]) {
	opt.ID = o.opt.ID
	o.opt = opt
	if o.mounted {
		o.root.exec.Register(opt)
	}
}

// Index returns the option's position in the list, or NoIndex while unmounted
func (o *Option[T]) Index() int {
	for i, opt := range o.root.ctrl.State().Options {
		if opt.ID == o.opt.ID {
			return i
		}
	}
	return navigation.NoIndex
}

// State returns what the renderer would draw for this option
func (o *Option[T]) State() views.OptionState {
	s := o.root.ctrl.State()
	i := o.Index()
	return views.OptionState{
		Focused:  i != navigation.NoIndex && i == s.Focused,
		Selected: s.IsSelected(o.opt),
		Disabled: o.opt.Disabled,
	}
}

// Focus behaves like the pointer entering the option
func (o *Option[T]) Focus() {
	o.root.exec.MoveTo(o.Index())
}

// Select behaves like a click on the option. The returned command carries the ChangedMsg.
func (o *Option[T]) Select() tea.Cmd {
	o.root.exec.SelectIndex(o.Index())
	return o.root.flushChanges()
}
