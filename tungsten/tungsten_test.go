// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tungsten

import (
	"strings"
	"testing"
	"time"

	"github.com/framegrace/tungsten/apps/dmxoutput"
	"github.com/framegrace/tungsten/apps/help"
	"github.com/framegrace/tungsten/apps/patchui"
	"github.com/framegrace/tungsten/apps/statusbar"
	"github.com/framegrace/tungsten/defaults"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/workspace"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *texel.App {
	t.Helper()
	store, err := settings.NewStore(defaults.Settings())
	require.NoError(t, err)
	app, err := New(store)
	require.NoError(t, err)
	t.Cleanup(app.Executor().Shutdown)
	return app
}

func ctrl(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModCtrl)
}

func TestNewWorkspaceIsDecorated(t *testing.T) {
	app := newApp(t)
	ws := OpenWorkspace(app)

	left := ws.StatusBar().LeftItems()
	require.Len(t, left, 1)
	require.IsType(t, &statusbar.ActiveItemIndicator{}, left[0])

	right := ws.StatusBar().RightItems()
	require.Len(t, right, 1)
	require.IsType(t, &dmxoutput.Indicator{}, right[0])
	require.Equal(t, workspace.EmptyTitle, ws.Window().Title())
}

func TestKeymapRoutesToFeatureActions(t *testing.T) {
	app := newApp(t)
	ws := OpenWorkspace(app)
	w := ws.Window()
	w.Render(100, 30)

	require.True(t, w.HandleKey(ctrl(tcell.KeyCtrlP)))
	_, ok := workspace.Downcast[*patchui.PatchView](ws.ActiveItem())
	require.True(t, ok)

	w.Render(100, 30)
	require.True(t, w.HandleKey(ctrl(tcell.KeyCtrlK)))
	require.Equal(t, 2, ws.ActivePane().Len())
	require.Equal(t, "Cues", w.Title())

	w.Render(100, 30)
	require.True(t, w.HandleKey(ctrl(tcell.KeyCtrlW)))
	app.RunUntilIdle()
	require.Equal(t, 1, ws.ActivePane().Len())
	require.Equal(t, "Patches", w.Title())
}

func TestQuitWithoutConfirmation(t *testing.T) {
	app := newApp(t)
	ws := OpenWorkspace(app)
	ws.Window().Render(80, 24)

	require.True(t, ws.Window().DispatchAction(Quit{}))
	require.True(t, app.Quitting())
}

func TestQuitAsksWhenConfigured(t *testing.T) {
	app := newApp(t)
	require.NoError(t, app.Settings().SetUserSettings([]byte(`{"confirm_quit": true}`)))
	ws := OpenWorkspace(app)
	w := ws.Window()
	w.Render(80, 24)

	require.True(t, w.DispatchAction(Quit{}))
	require.True(t, w.HasPrompt())
	require.False(t, app.Quitting())

	// Cancel first.
	require.True(t, w.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	require.Eventually(t, func() bool { return app.Executor().Pending() > 0 }, time.Second, time.Millisecond)
	app.RunUntilIdle()
	require.False(t, app.Quitting())

	w.Render(80, 24)
	require.True(t, w.DispatchAction(Quit{}))
	require.True(t, w.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	require.Eventually(t, func() bool {
		app.RunUntilIdle()
		return app.Quitting()
	}, time.Second, time.Millisecond)
}

func TestZoomAndAbout(t *testing.T) {
	app := newApp(t)
	ws := OpenWorkspace(app)
	w := ws.Window()
	w.Render(80, 24)

	require.True(t, w.DispatchAction(Zoom{}))
	require.True(t, w.Zoomed())
	require.True(t, w.DispatchAction(Minimize{}))

	require.True(t, w.DispatchAction(About{}))
	require.True(t, w.HasPrompt())
	frame := w.Render(80, 24)
	found := false
	for y := range frame.Cells {
		if strings.Contains(texel.BufferText(frame.Cells, y), "Tungsten "+Version) {
			found = true
		}
	}
	require.True(t, found)
}

func TestHelpListsBoundKeys(t *testing.T) {
	app := newApp(t)
	sections := HelpSections(app)
	require.Equal(t, "Tungsten", sections[0].Title)

	entries := map[string]string{}
	for _, s := range sections {
		for _, e := range s.Entries {
			entries[e.Desc] = e.Key
		}
	}
	require.Equal(t, "Ctrl+Q", entries["Quit"])
	require.Equal(t, "Ctrl+P", entries["Patches"])
	require.Equal(t, "F1", entries["About Tungsten"])

	ws := OpenWorkspace(app)
	ws.Window().Render(80, 24)
	require.True(t, ws.Window().DispatchAction(Help{}))
	_, ok := workspace.Downcast[*help.View](ws.ActiveItem())
	require.True(t, ok)
}

func TestKeymapFollowsSettings(t *testing.T) {
	app := newApp(t)
	ws := OpenWorkspace(app)
	w := ws.Window()

	require.NoError(t, app.Settings().SetUserSettings([]byte(`{"keymap": {"ctrl+p": "tungsten::Cue"}}`)))
	w.Render(80, 24)
	require.True(t, w.HandleKey(ctrl(tcell.KeyCtrlP)))
	require.Equal(t, "Cues", w.Title())
}

func TestRunExitsOnQuitKey(t *testing.T) {
	app := newApp(t)
	OpenWorkspace(app)

	sim := tcell.NewSimulationScreen("UTF-8")
	driver := texel.NewTcellScreenDriver(sim)
	app.Defer(func() { sim.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl) })

	done := make(chan error, 1)
	go func() { done <- app.Run(driver) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run loop did not exit")
	}
	require.True(t, app.Quitting())
}

func TestDisplayChord(t *testing.T) {
	require.Equal(t, "Ctrl+Alt+W", DisplayChord("ctrl+alt+w"))
	require.Equal(t, "Alt+-", DisplayChord("alt+-"))
}
