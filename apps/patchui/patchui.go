// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/patchui/patchui.go
// Summary: The patch panel and the action that opens it.

package patchui

import (
	"github.com/framegrace/tungsten/registry"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
)

// Patch opens the patch panel, or brings the open one to the front.
type Patch struct{}

func (Patch) ActionName() string { return "tungsten::Patch" }

// Init registers the Patch action for every new workspace.
func Init(app *texel.App) {
	app.Actions().Simple(Patch{}, "Patch", "Show the patch list")
	workspace.ObserveNew(app, func(ws *workspace.Workspace) {
		workspace.RegisterAction(ws, func(ws *workspace.Workspace, _ Patch) {
			Open(ws)
		})
	})
}

// Open activates the active pane's patch view, adding one if there is none.
func Open(ws *workspace.Workspace) *workspace.View[*PatchView] {
	for _, item := range ws.ActivePane().Items() {
		if existing, ok := workspace.Downcast[*PatchView](item); ok {
			ws.ActivateItem(existing)
			return existing
		}
	}
	view := workspace.NewView(NewPatchView(ws))
	ws.AddItemToActivePane(view, -1)
	return view
}

// PatchView lists the patched fixtures.
type PatchView struct {
	workspace texel.WeakRef[workspace.Workspace]
	focus     *texel.FocusHandle
}

// NewPatchView creates a patch view for ws.
func NewPatchView(ws *workspace.Workspace) *PatchView {
	return &PatchView{
		workspace: ws.WeakRef(),
		focus:     ws.Window().Focus().NewHandle(),
	}
}

func (v *PatchView) FocusHandle() *texel.FocusHandle { return v.focus }

func (v *PatchView) TabContent(params workspace.TabContentParams) theme.Label {
	if params.Selected {
		return theme.Label{Text: "Patches"}
	}
	return theme.Label{Text: "Patches", Color: theme.LabelMuted}
}

func (v *PatchView) Render(th *theme.Theme, bounds texel.Bounds) [][]texel.Cell {
	bg := th.Colors.TabActive
	buf := texel.NewBuffer(bounds.W, bounds.H, th.Style(th.Colors.Foreground, bg, false, false, false))
	title := "Patch List"
	x := (bounds.W - texel.TextWidth(title)) / 2
	texel.DrawText(buf, max(x, 0), min(1, bounds.H-1), bounds.W, title, th.LabelStyle(theme.LabelDefault, bg))
	return buf
}

var _ registry.Action = Patch{}
