// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"strings"
	"testing"

	"github.com/framegrace/tungsten/defaults"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
	"github.com/stretchr/testify/require"
)

func TestHelpRendersSections(t *testing.T) {
	store, err := settings.NewStore(defaults.Settings())
	require.NoError(t, err)
	app := texel.NewApp(store)
	t.Cleanup(app.Executor().Shutdown)
	require.NoError(t, theme.Init(app))
	require.NoError(t, workspace.Init(app))
	ws := workspace.OpenNew(app, nil)

	sections := []Section{{Title: "Window", Entries: []Entry{{Key: "Alt+Z", Desc: "Zoom"}}}}
	view := Open(ws, "Tungsten Help", sections)
	again := Open(ws, "Tungsten Help", sections)
	require.Same(t, view, again)
	require.Equal(t, 1, ws.ActivePane().Len())

	buf := view.Render(theme.Active(app), texel.Bounds{W: 50, H: 12})
	var rows []string
	for y := range buf {
		rows = append(rows, texel.BufferText(buf, y))
	}
	all := strings.Join(rows, "\n")
	require.Contains(t, all, "Tungsten Help")
	require.Contains(t, all, "Window")
	require.Contains(t, all, "Alt+Z")
	require.Contains(t, all, "Zoom")
}
