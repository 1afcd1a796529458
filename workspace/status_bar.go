// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: workspace/status_bar.go
// Summary: Bottom bar hosting status items that track the active item.

package workspace

import (
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
)

// StatusItemView is a status bar entry. It is told about every change of
// the active pane's active item; nil means there is none.
type StatusItemView interface {
	SetActivePaneItem(item ItemHandle)
	FocusHandle() *texel.FocusHandle
	Render(th *theme.Theme, width int) []texel.Cell
}

// StatusBar holds left and right aligned status items.
type StatusBar struct {
	window     *texel.Window
	left       []StatusItemView
	right      []StatusItemView
	activePane *Pane
}

// NewStatusBar creates a bar following activePane.
func NewStatusBar(w *texel.Window, activePane *Pane) *StatusBar {
	return &StatusBar{window: w, activePane: activePane}
}

// AddLeftItem adds v after the existing left items. v receives the current
// active item before it is added.
func (sb *StatusBar) AddLeftItem(v StatusItemView) {
	v.SetActivePaneItem(sb.activeItem())
	sb.left = append(sb.left, v)
	sb.window.Refresh()
}

// AddRightItem adds v to the right side; later items sit further left.
func (sb *StatusBar) AddRightItem(v StatusItemView) {
	v.SetActivePaneItem(sb.activeItem())
	sb.right = append(sb.right, v)
	sb.window.Refresh()
}

func (sb *StatusBar) LeftItems() []StatusItemView  { return append([]StatusItemView(nil), sb.left...) }
func (sb *StatusBar) RightItems() []StatusItemView { return append([]StatusItemView(nil), sb.right...) }

// SetActivePane switches the followed pane and pushes its active item.
func (sb *StatusBar) SetActivePane(p *Pane) {
	sb.activePane = p
	sb.ActiveItemChanged()
}

// ActiveItemChanged pushes the active pane's active item to every item.
func (sb *StatusBar) ActiveItemChanged() {
	item := sb.activeItem()
	for _, v := range sb.left {
		v.SetActivePaneItem(item)
	}
	for _, v := range sb.right {
		v.SetActivePaneItem(item)
	}
	sb.window.Refresh()
}

func (sb *StatusBar) activeItem() ItemHandle {
	if sb.activePane == nil {
		return nil
	}
	return sb.activePane.ActiveItem()
}

// Render draws the bar as one row of width cells.
func (sb *StatusBar) Render(th *theme.Theme, width int) []texel.Cell {
	if width <= 0 {
		return nil
	}
	style := th.Style(th.Colors.StatusBarText, th.Colors.StatusBar, false, false, false)
	row := texel.NewBuffer(width, 1, style)

	x := 0
	for _, v := range sb.left {
		cells := v.Render(th, width-x)
		texel.Blit(row, [][]texel.Cell{cells}, x, 0)
		x += len(cells)
		if x >= width {
			return row[0]
		}
	}

	end := width
	for _, v := range sb.right {
		if end <= x {
			break
		}
		cells := v.Render(th, end-x)
		if len(cells) > end-x {
			cells = cells[:end-x]
		}
		end -= len(cells)
		texel.Blit(row, [][]texel.Cell{cells}, end, 0)
	}
	return row[0]
}
