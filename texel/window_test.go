// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import (
	"strings"
	"testing"
	"time"

	"github.com/framegrace/tungsten/registry"
	"github.com/framegrace/tungsten/settings"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

type ping struct{ From string }

func (ping) ActionName() string { return "test::Ping" }

type pong struct{}

func (pong) ActionName() string { return "test::Pong" }

// listenerView attaches one ping listener per name, in order.
type listenerView struct {
	names []string
	got   *[]string
}

func (v *listenerView) Render(w *Window, b Bounds) *Frame {
	f := NewFrame(b.W, b.H, tcell.StyleDefault.Background(tcell.ColorNavy))
	DrawText(f.Cells, 0, 0, b.W, "root", tcell.StyleDefault)
	for _, name := range v.names {
		On(f, func(p ping) { *v.got = append(*v.got, name+":"+p.From) })
	}
	return f
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	store, err := settings.NewStore([]byte(`{"keymap": {"ctrl+p": "test::Ping"}}`))
	require.NoError(t, err)
	app := NewApp(store)
	t.Cleanup(app.Executor().Shutdown)
	app.Actions().Simple(ping{From: "key"}, "Ping", "")
	app.Actions().Simple(pong{}, "Pong", "")
	app.ReloadKeymap()
	return app
}

func TestDispatchPrefersFirstListenerThenGlobal(t *testing.T) {
	app := newTestApp(t)
	var got []string
	w := app.OpenWindow(func(w *Window) View {
		return &listenerView{names: []string{"first", "second"}, got: &got}
	})
	w.Render(20, 5)

	require.True(t, w.DispatchAction(ping{From: "direct"}))
	require.Equal(t, []string{"first:direct"}, got)

	require.False(t, w.DispatchAction(pong{}))
	globals := 0
	app.OnAction(pong{}.ActionName(), func(*Window, registry.Action) { globals++ })
	require.True(t, w.DispatchAction(pong{}))
	require.Equal(t, 1, globals)

	require.True(t, w.HandleKey(tcell.NewEventKey(tcell.KeyCtrlP, 0, tcell.ModCtrl)))
	require.Equal(t, []string{"first:direct", "first:key"}, got)
}

func TestPromptAnswers(t *testing.T) {
	app := newTestApp(t)
	w := app.OpenWindow(func(w *Window) View { return &listenerView{got: new([]string)} })
	w.SetPromptStyles(tcell.StyleDefault, tcell.StyleDefault.Bold(true), tcell.ColorBlack)

	first := w.Prompt("Replace me?", []string{"Yes", "No"})
	second := w.Prompt("Really quit?", []string{"Quit", "Cancel"})
	require.Equal(t, -1, <-first)

	frame := w.Render(40, 9)
	var text []string
	for y := range frame.Cells {
		text = append(text, BufferText(frame.Cells, y))
	}
	require.Contains(t, strings.Join(text, "\n"), "Really quit?")
	require.Contains(t, strings.Join(text, "\n"), "[ Cancel ]")

	// The window behind the prompt fades toward the backdrop.
	_, bg, _ := frame.Cells[0][0].Style.Decompose()
	require.NotEqual(t, tcell.ColorNavy, bg)

	require.True(t, w.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	require.True(t, w.HasPrompt())
	require.True(t, w.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	require.Equal(t, 1, <-second)
	require.False(t, w.HasPrompt())

	third := w.Prompt("Pick", []string{"Alpha", "Beta", "Gamma"})
	w.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	require.Equal(t, 2, <-third)

	fourth := w.Prompt("Pick", []string{"Alpha", "Beta"})
	w.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone))
	require.Equal(t, 0, <-fourth)
}

func TestRequestCloseHonoursVetoAndQuitsOnLastWindow(t *testing.T) {
	app := newTestApp(t)
	allow := false
	removed := 0
	w := app.OpenWindow(func(w *Window) View { return &listenerView{got: new([]string)} })
	w.OnShouldClose(func() bool { return allow })
	w.OnRemoved(func() { removed++ })

	task := w.RequestClose()
	require.True(t, task.IsDone())
	app.RunUntilIdle()
	require.False(t, w.Removed())

	allow = true
	pending := w.Prompt("Still here?", nil)
	task = w.RequestClose()
	require.False(t, task.IsDone())
	require.True(t, app.Executor().RunUntil(task, time.Second))
	require.True(t, w.Removed())
	require.Equal(t, 1, removed)
	require.Equal(t, -1, <-pending)
	require.True(t, app.Quitting())
	require.Nil(t, app.ActiveWindow())
	require.False(t, w.DispatchAction(ping{}))
}

func TestActiveWindowMovesOnRemoval(t *testing.T) {
	app := newTestApp(t)
	a := app.OpenWindow(func(w *Window) View { return nil })
	b := app.OpenWindow(func(w *Window) View { return nil })
	require.Same(t, b, app.ActiveWindow())
	require.True(t, b.IsActive())
	require.False(t, a.IsActive())

	app.ActivateNextWindow()
	require.Same(t, a, app.ActiveWindow())

	require.True(t, app.Executor().RunUntil(a.RequestClose(), time.Second))
	require.Same(t, b, app.ActiveWindow())
	require.False(t, app.Quitting())
}

func TestDrawOntoSimulationScreen(t *testing.T) {
	app := newTestApp(t)
	w := app.OpenWindow(func(w *Window) View { return &listenerView{got: new([]string)} })
	w.SetTitle("tungsten")

	driver, sim, err := NewSimulationDriver(10, 3)
	require.NoError(t, err)
	defer sim.Fini()
	w.Draw(driver)

	cells, width, _ := sim.GetContents()
	require.Equal(t, 10, width)
	require.Equal(t, 'r', cells[0].Runes[0])
	require.Equal(t, "tungsten", sim.GetTitle())
	require.False(t, w.NeedsDraw())
}

func TestWeakRefRelease(t *testing.T) {
	v := &struct{ n int }{n: 1}
	ref := MakeWeak(v)
	got, ok := ref.Upgrade()
	require.True(t, ok)
	require.Same(t, v, got)

	copyRef := ref
	ref.Release()
	_, ok = copyRef.Upgrade()
	require.False(t, ok)

	var zero WeakRef[int]
	_, ok = zero.Upgrade()
	require.False(t, ok)
}

func TestGlobals(t *testing.T) {
	app := newTestApp(t)
	_, ok := TryGlobal[*strings.Builder](app)
	require.False(t, ok)
	require.Panics(t, func() { Global[*strings.Builder](app) })

	sb := &strings.Builder{}
	SetGlobal(app, sb)
	require.Same(t, sb, Global[*strings.Builder](app))
}
