// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"testing"

	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestStyleCache(t *testing.T) {
	th := NewSet().Lookup(DefaultThemeName)
	a := th.Style(tcell.ColorRed, tcell.ColorBlack, true, false, false)
	b := th.Style(tcell.ColorRed, tcell.ColorBlack, true, false, false)
	require.Equal(t, a, b)
	require.Equal(t, 1, th.CachedStyles())

	fg, bg, attrs := a.Decompose()
	require.Equal(t, tcell.ColorRed, fg)
	require.Equal(t, tcell.ColorBlack, bg)
	require.NotZero(t, attrs&tcell.AttrBold)
}

func TestLookupFallsBack(t *testing.T) {
	set := NewSet()
	require.Equal(t, DefaultThemeName, set.Lookup("missing").Name)
	require.Equal(t, "tungsten-light", set.Lookup("tungsten-light").Name)
	require.Equal(t, []string{"tungsten-dark", "tungsten-light"}, set.Names())
}

func TestActiveFollowsSettings(t *testing.T) {
	store, err := settings.NewStore([]byte(`{"theme": "tungsten-dark", "ui_font_size": 14}`))
	require.NoError(t, err)
	app := texel.NewApp(store)
	require.NoError(t, Init(app))
	require.NoError(t, Init(app))

	require.Equal(t, "tungsten-dark", Active(app).Name)
	require.Equal(t, 14.0, settings.Get[Settings](store).UIFontSize)

	require.NoError(t, store.SetUserSettings([]byte(`{"theme": "tungsten-light"}`)))
	require.Equal(t, "tungsten-light", Active(app).Name)
}
