// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tungsten/menus.go
// Summary: Application menus and the key reference built from them.

package tungsten

import (
	"strings"

	"github.com/framegrace/tungsten/apps/cueui"
	"github.com/framegrace/tungsten/apps/help"
	"github.com/framegrace/tungsten/apps/patchui"
	"github.com/framegrace/tungsten/registry"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/workspace"
)

// MenuItem is a labelled action. An item without an action is a separator.
type MenuItem struct {
	Label  string
	Action registry.Action
}

// Menu is a named group of items.
type Menu struct {
	Name  string
	Items []MenuItem
}

func separator() MenuItem { return MenuItem{} }

// AppMenus returns the application menus.
func AppMenus() []Menu {
	return []Menu{
		{
			Name: "Tungsten",
			Items: []MenuItem{
				{"About Tungsten…", About{}},
				{"Patches", patchui.Patch{}},
				{"Cues", cueui.Cue{}},
				{"Help", Help{}},
				{"Quit", Quit{}},
			},
		},
		{
			Name: "File",
			Items: []MenuItem{
				{"New Window", workspace.NewWindow{}},
				{"Close Window", workspace.CloseWindow{}},
			},
		},
		{
			Name: "Window",
			Items: []MenuItem{
				{"Minimize", Minimize{}},
				{"Zoom", Zoom{}},
				separator(),
				{"Split Right", workspace.SplitRight{}},
				{"Split Down", workspace.SplitDown{}},
				{"Next Pane", workspace.ActivateNextPane{}},
			},
		},
		{
			Name: "Tabs",
			Items: []MenuItem{
				{"Next Tab", workspace.ActivateNextItem{}},
				{"Previous Tab", workspace.ActivatePrevItem{}},
				{"Close Tab", workspace.CloseActiveItem{}},
				{"Close Other Tabs", workspace.CloseInactiveItems{}},
			},
		},
	}
}

// HelpSections lists every menu item with the first key bound to its action.
// Unbound items are shown with a dash.
func HelpSections(app *texel.App) []help.Section {
	keys := make(map[string]string)
	for _, b := range app.Keymap().Bindings() {
		if b.Arg != "" {
			continue
		}
		if _, seen := keys[b.Action]; !seen {
			keys[b.Action] = DisplayChord(b.Chord)
		}
	}

	var sections []help.Section
	for _, menu := range AppMenus() {
		section := help.Section{Title: menu.Name}
		for _, item := range menu.Items {
			if item.Action == nil {
				continue
			}
			key, ok := keys[item.Action.ActionName()]
			if !ok {
				key = "-"
			}
			section.Entries = append(section.Entries, help.Entry{Key: key, Desc: strings.TrimSuffix(item.Label, "…")})
		}
		sections = append(sections, section)
	}
	return sections
}

// DisplayChord formats "ctrl+shift+p" as "Ctrl+Shift+P".
func DisplayChord(chord string) string {
	parts := strings.Split(chord, "+")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "+")
}
