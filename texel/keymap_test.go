// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		chord string
		key   tcell.Key
		r     rune
		mods  tcell.ModMask
	}{
		{"ctrl+p", tcell.KeyCtrlP, 0, tcell.ModCtrl},
		{"alt+1", tcell.KeyRune, '1', tcell.ModAlt},
		{"alt+shift+right", tcell.KeyRight, 0, tcell.ModAlt | tcell.ModShift},
		{"F2", tcell.KeyF2, 0, 0},
		{"esc", tcell.KeyEscape, 0, 0},
		{"alt+space", tcell.KeyRune, ' ', tcell.ModAlt},
	}
	for _, tt := range tests {
		t.Run(tt.chord, func(t *testing.T) {
			b, err := ParseChord(tt.chord)
			require.NoError(t, err)
			require.Equal(t, tt.key, b.Key)
			require.Equal(t, tt.r, b.Rune)
			require.Equal(t, tt.mods, b.Mods)
		})
	}

	for _, bad := range []string{"", "hyper+x", "ctrl+", "ctrl+nosuchkey"} {
		_, err := ParseChord(bad)
		require.Error(t, err, bad)
	}
}

func TestKeymapLookup(t *testing.T) {
	km := NewKeymap()
	km.Load(map[string]any{
		"ctrl+w":  "pane::CloseActiveItem",
		"alt+1":   "pane::ActivateItem 0",
		"ctrl+zz": "bogus::Binding",
		"alt+2":   42,
	})
	require.Len(t, km.Bindings(), 2)

	b, ok := km.Lookup(tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl))
	require.True(t, ok)
	require.Equal(t, "pane::CloseActiveItem", b.Action)

	b, ok = km.Lookup(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModAlt))
	require.True(t, ok)
	require.Equal(t, "pane::ActivateItem", b.Action)
	require.Equal(t, "0", b.Arg)

	_, ok = km.Lookup(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone))
	require.False(t, ok)
}

func TestKeymapBindReplacesChord(t *testing.T) {
	km := NewKeymap()
	require.NoError(t, km.Bind("ctrl+p", "tungsten::Patch"))
	require.NoError(t, km.Bind("ctrl+p", "tungsten::Cue"))
	require.Len(t, km.Bindings(), 1)
	require.Equal(t, "tungsten::Cue", km.Bindings()[0].Action)
	require.Error(t, km.Bind("ctrl+p", "  "))
}
