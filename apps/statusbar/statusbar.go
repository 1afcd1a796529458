// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/statusbar/statusbar.go
// Summary: Status item showing the active item's tab label as a powerline tab.
// Usage: Added to the left of every workspace's status bar.

package statusbar

import (
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
	"github.com/gdamore/tcell/v2"
)

// Powerline characters for creating the tab effect.
// Note: These require a Powerline-patched font or a Nerd Font to render correctly.
const (
	rightTabSeparator = '\ue0b8' // Left half circle thick separator
	leftTabSeparator  = '\ue0ba' // Right half circle thick separator
	keyboardIcon      = " \uf11c "
)

// NoItemText is shown while the active pane is empty.
const NoItemText = "no item"

// ActiveItemIndicator renders the label of the active pane's active item.
type ActiveItemIndicator struct {
	focus *texel.FocusHandle
	label theme.Label
	item  workspace.ItemHandle
}

// New creates an indicator whose focus handle lives in w.
func New(w *texel.Window) *ActiveItemIndicator {
	return &ActiveItemIndicator{focus: w.Focus().NewHandle()}
}

// Install adds an indicator to the left of the workspace's status bar.
func Install(ws *workspace.Workspace) *ActiveItemIndicator {
	ind := New(ws.Window())
	ws.StatusBar().AddLeftItem(ind)
	return ind
}

func (a *ActiveItemIndicator) FocusHandle() *texel.FocusHandle { return a.focus }

// SetActivePaneItem implements workspace.StatusItemView.
func (a *ActiveItemIndicator) SetActivePaneItem(item workspace.ItemHandle) {
	a.item = item
	if item == nil {
		a.label = theme.Label{}
		return
	}
	a.label = item.TabContent(workspace.TabContentParams{Selected: true})
}

// Label returns the label last pushed.
func (a *ActiveItemIndicator) Label() theme.Label {
	return a.label
}

// Render draws keyboard icon, separator, label, separator.
func (a *ActiveItemIndicator) Render(th *theme.Theme, width int) []texel.Cell {
	if width <= 0 {
		return nil
	}
	barBg := th.Colors.StatusBar
	tabBg := th.Colors.TabActive
	styleBase := th.Style(th.Colors.StatusBarText, barBg, false, false, false)
	styleTab := th.LabelStyle(a.label.Color, tabBg)
	text := " " + a.label.Text + " "
	if a.item == nil || a.label.Empty() {
		styleTab = th.LabelStyle(theme.LabelMuted, tabBg)
		if a.item == nil {
			text = " " + NoItemText + " "
		}
	}

	row := texel.NewBuffer(width, 1, styleBase)
	col := texel.DrawText(row, 0, 0, width, keyboardIcon, styleBase)
	col += drawSeparator(row[0], col, leftTabSeparator, tcell.StyleDefault.Foreground(tabBg).Background(barBg))
	col += texel.DrawText(row, col, 0, width-col, texel.Truncate(text, width-col-1, "…"), styleTab)
	col += drawSeparator(row[0], col, rightTabSeparator, tcell.StyleDefault.Foreground(tabBg).Background(barBg))
	return row[0][:min(col, width)]
}

func drawSeparator(row []texel.Cell, col int, ch rune, style tcell.Style) int {
	if col >= len(row) {
		return 0
	}
	row[col] = texel.Cell{Ch: ch, Style: style}
	return 1
}
