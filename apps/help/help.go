// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/help/help.go
// Summary: Keyboard reference item listing actions and their bound keys.
// Usage: Opened by tungsten::Help; the caller supplies the sections.
// Notes: Displays static content with structured grid layout.

package help

import (
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
	"github.com/gdamore/tcell/v2"
)

// Entry is a key-description pair.
type Entry struct {
	Key  string
	Desc string
}

// Section is a titled group of entries.
type Section struct {
	Title   string
	Entries []Entry
}

// View displays a static keyboard reference.
type View struct {
	title    string
	focus    *texel.FocusHandle
	sections []Section
}

// NewView returns a help view for w.
func NewView(w *texel.Window, title string, sections []Section) *View {
	return &View{title: title, focus: w.Focus().NewHandle(), sections: sections}
}

// Open activates the active pane's help view, or adds one built from
// sections.
func Open(ws *workspace.Workspace, title string, sections []Section) *workspace.View[*View] {
	for _, item := range ws.ActivePane().Items() {
		if existing, ok := workspace.Downcast[*View](item); ok {
			existing.Value().sections = sections
			ws.ActivateItem(existing)
			return existing
		}
	}
	view := workspace.NewView(NewView(ws.Window(), title, sections))
	ws.AddItemToActivePane(view, -1)
	return view
}

func (v *View) FocusHandle() *texel.FocusHandle { return v.focus }
func (v *View) Sections() []Section             { return v.sections }

func (v *View) TabContent(params workspace.TabContentParams) theme.Label {
	if params.Selected {
		return theme.Label{Text: "Help"}
	}
	return theme.Label{Text: "Help", Color: theme.LabelMuted}
}

func (v *View) Render(th *theme.Theme, bounds texel.Bounds) [][]texel.Cell {
	width, height := bounds.W, bounds.H
	buffer := texel.NewBuffer(width, height, th.Base())
	if width <= 0 || height <= 0 {
		return buffer
	}

	bg := th.Colors.Background
	titleStyle := th.Style(th.Colors.Accent, bg, true, false, false)
	keyStyle := th.Style(th.Colors.Accent, bg, false, false, false)
	descStyle := th.Style(th.Colors.Muted, bg, false, false, false)

	totalLines := 1 // Main title
	keyWidth := 0
	for _, section := range v.sections {
		totalLines += 2 + len(section.Entries)
		for _, entry := range section.Entries {
			keyWidth = max(keyWidth, texel.TextWidth(entry.Key))
		}
	}
	keyWidth += 2

	contentWidth := min(keyWidth+30, width-4)
	startX := max((width-contentWidth)/2, 2)
	y := max((height-totalLines)/2, 1)

	drawCentered(buffer, width, y, v.title, titleStyle)
	y += 2

	for _, section := range v.sections {
		if y >= height {
			break
		}
		drawCentered(buffer, width, y, section.Title, titleStyle)
		y++

		for _, entry := range section.Entries {
			if y >= height {
				break
			}
			// Keys are right-aligned within their column.
			keyX := max(startX+keyWidth-texel.TextWidth(entry.Key)-1, startX)
			texel.DrawText(buffer, keyX, y, width-keyX, entry.Key, keyStyle)
			descX := startX + keyWidth + 1
			texel.DrawText(buffer, descX, y, width-descX, entry.Desc, descStyle)
			y++
		}
		y++
	}
	return buffer
}

func drawCentered(buffer [][]texel.Cell, width, y int, text string, style tcell.Style) {
	x := max((width-texel.TextWidth(text))/2, 0)
	texel.DrawText(buffer, x, y, width-x, text, style)
}
