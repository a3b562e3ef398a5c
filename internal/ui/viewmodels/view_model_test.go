package viewmodels

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuiselect/internal/domain"
	inputtypes "tuiselect/internal/ui/input/types"
	"tuiselect/internal/ui/services/navigation"
	"tuiselect/internal/ui/state"
)

func snapshot(open bool, focused int, n int) state.State[int] {
	s := state.State[int]{Open: open, Focused: focused}
	for i := 0; i < n; i++ {
		s.Options = append(s.Options, domain.Option[int]{ID: string(rune('a' + i)), Value: i})
	}
	return s
}

func TestClosedStateHasNoRows(t *testing.T) {
	vm := NewViewModel[int]("Pick:", "none", 3, nil)

	vs := vm.BuildViewState(snapshot(false, navigation.NoIndex, 5), inputtypes.DefaultKeyMap(), "")

	assert.Equal(t, "Pick:", vs.Prompt)
	assert.Equal(t, "none", vs.Placeholder)
	assert.Empty(t, vs.Options)
	assert.Empty(t, vs.Help)
}

func TestOpenStateWindowsAroundFocus(t *testing.T) {
	vm := NewViewModel[int]("", "", 3, nil)
	s := snapshot(true, 4, 6)
	s.Value, s.HasValue = 4, true

	vs := vm.BuildViewState(s, inputtypes.DefaultKeyMap(), "q")

	require.Len(t, vs.Options, 3)
	assert.Equal(t, 2, vs.Options[0].Index)
	assert.Equal(t, 2, vs.HiddenAbove)
	assert.Equal(t, 1, vs.HiddenBelow)
	assert.True(t, vs.Options[2].State.Focused)
	assert.True(t, vs.Options[2].State.Selected)
	assert.Equal(t, "e", vs.ValueLabel)
	assert.Equal(t, "q", vs.Query)
}

func TestValueWithoutOptionUsesFormat(t *testing.T) {
	vm := NewViewModel("", "", 3, func(v int) string { return fmt.Sprintf("#%d", v) })
	s := snapshot(false, navigation.NoIndex, 0)
	s.Value, s.HasValue = 7, true

	vs := vm.BuildViewState(s, inputtypes.DefaultKeyMap(), "")

	assert.Equal(t, "#7", vs.ValueLabel)
}

func TestHelpFollowsOpenState(t *testing.T) {
	vm := NewViewModel[int]("", "", 3, nil)
	vm.SetShowHelp(true)
	keys := inputtypes.DefaultKeyMap()

	closed := vm.BuildViewState(snapshot(false, navigation.NoIndex, 2), keys, "")
	open := vm.BuildViewState(snapshot(true, 0, 2), keys, "")

	assert.Contains(t, closed.Help, "open")
	assert.Contains(t, open.Help, "select")
}
