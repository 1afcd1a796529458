// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tungsten/actions.go
// Summary: Application-level actions and their handlers.
// Usage: Quit, About, Minimize and Zoom are app handlers; Help is registered
// on every workspace.

package tungsten

import (
	"context"
	"log"

	"github.com/framegrace/tungsten/apps/help"
	"github.com/framegrace/tungsten/registry"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/workspace"
)

// Version is stamped at build time with -ldflags "-X ...tungsten.Version=...".
var Version = "dev"

const quitMessage = "Are you sure you want to quit?"

type (
	About    struct{}
	Quit     struct{}
	Minimize struct{}
	Zoom     struct{}
	Help     struct{}
)

func (About) ActionName() string    { return "tungsten::About" }
func (Quit) ActionName() string     { return "tungsten::Quit" }
func (Minimize) ActionName() string { return "tungsten::Minimize" }
func (Zoom) ActionName() string     { return "tungsten::Zoom" }
func (Help) ActionName() string     { return "tungsten::Help" }

// Init registers the application actions with app.
func Init(app *texel.App) {
	r := app.Actions()
	r.Simple(About{}, "About Tungsten", "Show version information")
	r.Simple(Quit{}, "Quit", "Quit Tungsten")
	r.Simple(Minimize{}, "Minimize", "Minimize the window")
	r.Simple(Zoom{}, "Zoom", "Show only the active pane")
	r.Simple(Help{}, "Help", "Show key bindings")

	app.OnAction(Quit{}.ActionName(), func(w *texel.Window, _ registry.Action) {
		quit(app, w)
	})
	app.OnAction(About{}.ActionName(), func(w *texel.Window, _ registry.Action) {
		about(w)
	})
	app.OnAction(Minimize{}.ActionName(), func(w *texel.Window, _ registry.Action) {
		w.Minimize()
	})
	app.OnAction(Zoom{}.ActionName(), func(w *texel.Window, _ registry.Action) {
		w.ToggleZoom()
	})

	workspace.ObserveNew(app, func(ws *workspace.Workspace) {
		workspace.RegisterAction(ws, func(ws *workspace.Workspace, _ Help) {
			help.Open(ws, "Tungsten Help", HelpSections(ws.App()))
		})
	})
}

// quit exits right away unless confirm_quit is set, in which case the
// window asks first.
func quit(app *texel.App, w *texel.Window) {
	prefs, _ := settings.TryGet[workspace.Settings](app.Settings())
	if !prefs.ConfirmQuit || w == nil {
		app.Quit()
		return
	}
	answer := w.Prompt(quitMessage, []string{"Quit", "Cancel"})
	texel.Spawn(app.Executor(), func(ctx context.Context) (int, error) {
		select {
		case ix := <-answer:
			return ix, nil
		case <-ctx.Done():
			return -1, ctx.Err()
		}
	}, func(ix int, err error) {
		if err == nil && ix == 0 {
			app.Quit()
		}
	}).DetachAndLogErr("Tungsten: quit")
}

func about(w *texel.Window) {
	if w == nil {
		return
	}
	log.Printf("Tungsten: version %s", Version)
	w.Prompt("Tungsten "+Version, []string{"OK"})
}
