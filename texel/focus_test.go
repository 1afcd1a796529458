// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestFocusFollowsParentChain(t *testing.T) {
	tree := NewFocusTree()
	pane := tree.NewHandle()
	item := tree.NewHandle()
	item.SetParent(pane)

	var changes [][2]*FocusHandle
	tree.Subscribe(FocusListenerFunc(func(prev, next *FocusHandle) {
		changes = append(changes, [2]*FocusHandle{prev, next})
	}))

	item.Focus()
	require.True(t, item.IsFocused())
	require.False(t, pane.IsFocused())
	require.True(t, pane.ContainsFocused())
	require.Len(t, changes, 1)

	item.Focus()
	require.Len(t, changes, 1)

	item.SetParent(nil)
	require.False(t, pane.ContainsFocused())
}

func TestFocusLostRunsHooks(t *testing.T) {
	tree := NewFocusTree()
	h := tree.NewHandle()
	lost := 0
	tree.OnFocusLost(func() { lost++ })

	h.Focus()
	tree.Blur()
	require.Equal(t, 1, lost)
	require.Nil(t, tree.Focused())
	tree.Blur()
	require.Equal(t, 1, lost)
}

func TestKeysBubbleToAncestors(t *testing.T) {
	tree := NewFocusTree()
	pane := tree.NewHandle()
	item := tree.NewHandle()
	item.SetParent(pane)

	var seen []string
	item.SetKeyHandler(func(ev *tcell.EventKey) bool {
		seen = append(seen, "item")
		return ev.Rune() == 'i'
	})
	pane.SetKeyHandler(func(ev *tcell.EventKey) bool {
		seen = append(seen, "pane")
		return true
	})
	item.Focus()

	require.True(t, tree.dispatchKey(tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone)))
	require.Equal(t, []string{"item"}, seen)

	seen = nil
	require.True(t, tree.dispatchKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	require.Equal(t, []string{"item", "pane"}, seen)
}
