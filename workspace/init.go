// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: workspace/init.go
// Summary: Workspace settings, app-level registration and window opening.

package workspace

import (
	"github.com/framegrace/tungsten/registry"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
)

// Settings are the root-level workspace settings.
type Settings struct {
	ConfirmQuit        bool `mapstructure:"confirm_quit"`
	ClosePaneWhenEmpty bool `mapstructure:"close_pane_when_empty"`
	ShowTabBar         bool `mapstructure:"show_tab_bar"`
}

type newWorkspaceObservers struct {
	fns []func(ws *Workspace)
}

// Init registers the workspace settings and actions with app, plus the
// app-level handlers for closing and opening windows. Calling it again is
// harmless.
func Init(app *texel.App) error {
	if _, err := settings.RegisterSection[Settings](app.Settings(), ""); err != nil {
		return err
	}
	registerActions(app.Actions())
	if _, ok := texel.TryGlobal[*newWorkspaceObservers](app); !ok {
		texel.SetGlobal(app, &newWorkspaceObservers{})
	}

	// Closing always targets the window holding input focus, whichever
	// window dispatched the action.
	app.OnAction(CloseWindow{}.ActionName(), func(_ *texel.Window, _ registry.Action) {
		target := app.ActiveWindow()
		if target == nil {
			return
		}
		if ws, ok := target.Root().(*Workspace); ok {
			ws.CloseWindow().DetachAndLogErr("Workspace: close window")
			return
		}
		target.RequestClose().DetachAndLogErr("Workspace: close window")
	})
	app.OnAction(NewWindow{}.ActionName(), func(_ *texel.Window, _ registry.Action) {
		OpenNew(app, nil)
	})
	return nil
}

// ObserveNew runs fn for every workspace created after the call. Features
// use it to register their per-workspace actions.
func ObserveNew(app *texel.App, fn func(ws *Workspace)) {
	obs, ok := texel.TryGlobal[*newWorkspaceObservers](app)
	if !ok {
		obs = &newWorkspaceObservers{}
		texel.SetGlobal(app, obs)
	}
	obs.fns = append(obs.fns, fn)
}

// OpenNew opens a window hosting a new workspace and runs init on it.
func OpenNew(app *texel.App, init func(ws *Workspace)) *Workspace {
	s, _ := settings.TryGet[Settings](app.Settings())
	var ws *Workspace
	app.OpenWindow(func(w *texel.Window) texel.View {
		ws = New(w, Options{ClosePaneWhenEmpty: s.ClosePaneWhenEmpty})
		if init != nil {
			init(ws)
		}
		return ws
	})
	return ws
}
