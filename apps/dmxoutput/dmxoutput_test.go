// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dmxoutput

import (
	"strings"
	"testing"
	"time"

	"github.com/framegrace/tungsten/defaults"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *texel.App {
	t.Helper()
	store, err := settings.NewStore(defaults.Settings())
	require.NoError(t, err)
	app := texel.NewApp(store)
	t.Cleanup(app.Executor().Shutdown)
	require.NoError(t, theme.Init(app))
	require.NoError(t, workspace.Init(app))
	require.NoError(t, Init(app))
	return app
}

func text(cells []texel.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteRune(c.Ch)
	}
	return b.String()
}

func TestSettingsFollowUserLayer(t *testing.T) {
	app := newApp(t)
	require.Equal(t, Settings{}, settings.Get[Settings](app.Settings()))

	require.NoError(t, app.Settings().SetUserSettings([]byte(`{"dmx_output": {"enable_sacn": true, "enable_artnet": null}}`)))
	require.Equal(t, Settings{EnableSACN: true}, settings.Get[Settings](app.Settings()))
}

func TestIndicatorInstalledOnNewWorkspaces(t *testing.T) {
	app := newApp(t)
	ws := workspace.OpenNew(app, nil)

	right := ws.StatusBar().RightItems()
	require.Len(t, right, 1)
	ind, ok := right[0].(*Indicator)
	require.True(t, ok)

	th := theme.Active(app)
	require.Contains(t, text(ind.Render(th, 40)), "○ ArtNet")

	require.NoError(t, app.Settings().SetUserSettings([]byte(`{"dmx_output": {"enable_artnet": true}}`)))
	out := text(ind.Render(th, 40))
	require.Contains(t, out, "● ArtNet")
	require.Contains(t, out, "○ sACN")
}

func TestIndicatorStopsAfterWindowCloses(t *testing.T) {
	app := newApp(t)
	ws := workspace.OpenNew(app, nil)
	ind := ws.StatusBar().RightItems()[0]

	task := ws.CloseWindow()
	require.True(t, app.Executor().RunUntil(task, time.Second))
	require.Nil(t, ind.Render(theme.Active(app), 40))
}
