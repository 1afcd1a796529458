// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tungsten/app.go
// Summary: Builds the tungsten application in its initialization order.
// Usage: The binary calls New with a loaded store, then OpenWorkspace and
// App.Run. Tests use the same path with a simulation screen.

package tungsten

import (
	"fmt"
	"log"

	"github.com/framegrace/tungsten/apps/cueui"
	"github.com/framegrace/tungsten/apps/dmxoutput"
	"github.com/framegrace/tungsten/apps/patchui"
	"github.com/framegrace/tungsten/apps/statusbar"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
)

// New creates the application around store and runs every feature's
// initialization. Order matters: features register per-workspace actions
// through observers, and frame listeners attach in registration order.
func New(store *settings.Store) (*texel.App, error) {
	app := texel.NewApp(store)

	if err := theme.Init(app); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	if err := workspace.Init(app); err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}
	if err := dmxoutput.Init(app); err != nil {
		return nil, fmt.Errorf("dmx output: %w", err)
	}
	Init(app)
	initializeWorkspace(app)
	patchui.Init(app)
	if err := cueui.Init(app); err != nil {
		return nil, fmt.Errorf("cue list: %w", err)
	}

	app.ReloadKeymap()
	store.Observe(func() {
		app.ReloadKeymap()
		for _, w := range app.Windows() {
			w.Refresh()
		}
	})
	log.Printf("Tungsten: Initialized with %d actions", app.Actions().Count())
	return app, nil
}

// initializeWorkspace decorates every new workspace with the active item
// indicator.
func initializeWorkspace(app *texel.App) {
	workspace.ObserveNew(app, func(ws *workspace.Workspace) {
		statusbar.Install(ws)
	})
}

// OpenWorkspace opens the first window.
func OpenWorkspace(app *texel.App) *workspace.Workspace {
	return workspace.OpenNew(app, nil)
}
