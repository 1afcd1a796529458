// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/cueui/cueui.go
// Summary: The cue list panel and the action that opens it.
// Usage: Bound to tungsten::Cue; an existing list is activated and focused
// rather than opened twice.

package cueui

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
	"github.com/gdamore/tcell/v2"
)

// Cue opens the cue list.
type Cue struct{}

func (Cue) ActionName() string { return "tungsten::Cue" }

// Init registers the cue list settings and the Cue action for every new
// workspace.
func Init(app *texel.App) error {
	if _, err := settings.RegisterSection[Settings](app.Settings(), SettingsKey); err != nil {
		return err
	}
	app.Actions().Simple(Cue{}, "Cue", "Show the cue list")
	workspace.ObserveNew(app, func(ws *workspace.Workspace) {
		workspace.RegisterAction(ws, func(ws *workspace.Workspace, _ Cue) {
			Open(ws)
		})
	})
	return nil
}

// Open activates and focuses the active pane's cue list, adding one if
// there is none.
func Open(ws *workspace.Workspace) *workspace.View[*CueListView] {
	for _, item := range ws.ActivePane().Items() {
		if existing, ok := workspace.Downcast[*CueListView](item); ok {
			ws.ActivateItem(existing)
			existing.FocusHandle().Focus()
			return existing
		}
	}
	view := workspace.NewView(NewCueListView(ws.Window(), storeFor(ws.App())))
	ws.AddItemToActivePane(view, -1)
	return view
}

// Entry is one row of the cue list.
type Entry struct {
	Number float64
	Label  string
}

func (e Entry) String() string {
	return fmt.Sprintf("%6g  %s", e.Number, e.Label)
}

// CueListView shows the cues of the show with a movable selection. Entries
// stay ordered by number.
type CueListView struct {
	focus    *texel.FocusHandle
	window   *texel.Window
	store    *Store
	loaded   *texel.Task
	entries  []Entry
	selected int
}

// NewCueListView creates a cue list in w. With a store, entries load in the
// background and every change is written back.
func NewCueListView(w *texel.Window, store *Store) *CueListView {
	v := &CueListView{focus: w.Focus().NewHandle(), window: w, store: store}
	v.focus.SetKeyHandler(v.handleKey)
	if store == nil {
		v.loaded = texel.Ready(nil)
		return v
	}
	v.loaded = texel.Spawn(w.App().Executor(), store.Load, func(entries []Entry, err error) {
		if err != nil {
			return
		}
		for _, e := range entries {
			v.insert(e)
		}
		v.window.Refresh()
	})
	v.loaded.DetachAndLogErr("CueList: load")
	return v
}

func (v *CueListView) FocusHandle() *texel.FocusHandle { return v.focus }
func (v *CueListView) Entries() []Entry                { return slices.Clone(v.entries) }
func (v *CueListView) Selected() int                   { return v.selected }
func (v *CueListView) Loaded() *texel.Task             { return v.loaded }

// Append records e, replacing the label of an existing cue with the same
// number. The returned task completes once the change is stored.
func (v *CueListView) Append(e Entry) *texel.Task {
	v.insert(e)
	v.window.Refresh()
	if v.store == nil {
		return texel.Ready(nil)
	}
	task := texel.Spawn(v.window.App().Executor(), func(ctx context.Context) (struct{}, error) {
		return struct{}{}, v.store.Save(ctx, e)
	}, nil)
	task.DetachAndLogErr("CueList: save")
	return task
}

// RemoveSelected deletes the selected cue.
func (v *CueListView) RemoveSelected() *texel.Task {
	if len(v.entries) == 0 {
		return texel.Ready(nil)
	}
	removed := v.entries[v.selected]
	v.entries = slices.Delete(v.entries, v.selected, v.selected+1)
	v.selected = max(min(v.selected, len(v.entries)-1), 0)
	v.window.Refresh()
	if v.store == nil {
		return texel.Ready(nil)
	}
	task := texel.Spawn(v.window.App().Executor(), func(ctx context.Context) (struct{}, error) {
		return struct{}{}, v.store.Delete(ctx, removed.Number)
	}, nil)
	task.DetachAndLogErr("CueList: delete")
	return task
}

func (v *CueListView) insert(e Entry) {
	ix, found := slices.BinarySearchFunc(v.entries, e.Number, func(cur Entry, n float64) int {
		return cmp.Compare(cur.Number, n)
	})
	if found {
		v.entries[ix].Label = e.Label
		return
	}
	v.entries = slices.Insert(v.entries, ix, e)
}

func (v *CueListView) handleKey(ev *tcell.EventKey) bool {
	if len(v.entries) == 0 {
		return false
	}
	switch ev.Key() {
	case tcell.KeyUp:
		v.selected = max(v.selected-1, 0)
	case tcell.KeyDown:
		v.selected = min(v.selected+1, len(v.entries)-1)
	case tcell.KeyHome:
		v.selected = 0
	case tcell.KeyEnd:
		v.selected = len(v.entries) - 1
	case tcell.KeyDelete:
		v.RemoveSelected()
		return true
	default:
		return false
	}
	v.window.Refresh()
	return true
}

func (v *CueListView) TabContent(params workspace.TabContentParams) theme.Label {
	if params.Selected {
		return theme.Label{Text: "Cues"}
	}
	return theme.Label{Text: "Cues", Color: theme.LabelMuted}
}

func (v *CueListView) Render(th *theme.Theme, bounds texel.Bounds) [][]texel.Cell {
	lines := []string{"Cue List"}
	if len(v.entries) == 0 {
		lines = append(lines, "", "No cues recorded.")
	}
	for _, e := range v.entries {
		lines = append(lines, e.String())
	}
	buf := workspace.RenderLines(th, bounds, lines, th.LabelStyle(theme.LabelDefault, th.Colors.Background))
	if row := v.selected + 1; len(v.entries) > 0 && row < len(buf) {
		sel := th.Style(th.Colors.Background, th.Colors.Accent, true, false, false)
		for x := range buf[row] {
			buf[row][x].Style = sel
		}
	}
	return buf
}
