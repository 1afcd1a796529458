// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: workspace/pane_render.go
// Summary: Renders a pane: tab bar, active item, or the empty placeholder.

package workspace

import (
	"cmp"

	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
)

// Placeholder is shown by panes without items.
const Placeholder = "Open a file or project to get started."

const maxTabWidth = 24

// TabPositionKind classifies a tab by its place in the bar.
type TabPositionKind int

const (
	TabFirst TabPositionKind = iota
	TabMiddle
	TabLast
)

// TabPosition is the visual position of a tab. For middle tabs Ordering
// compares the tab index with the active index (-1, 0 or 1).
type TabPosition struct {
	Kind     TabPositionKind
	Ordering int
}

// TabPosition returns the position tag of the tab at ix.
func (p *Pane) TabPosition(ix int) TabPosition {
	switch {
	case ix == 0:
		return TabPosition{Kind: TabFirst}
	case ix == len(p.items)-1:
		return TabPosition{Kind: TabLast}
	}
	return TabPosition{Kind: TabMiddle, Ordering: cmp.Compare(ix, p.activeItemIndex)}
}

// tabDividers returns whether a tab draws its left and right divider. Tabs
// left of the active one own their left edge, tabs right of it their right
// edge, so no divider is drawn twice.
func tabDividers(pos TabPosition) (left, right bool) {
	switch pos.Kind {
	case TabFirst:
		return false, false
	case TabLast:
		return true, true
	}
	return pos.Ordering <= 0, pos.Ordering > 0
}

// TabLabel renders the label of the tab at ix.
func (p *Pane) TabLabel(ix int) theme.Label {
	if ix < 0 || ix >= len(p.items) {
		return theme.Label{}
	}
	item := p.items[ix]
	return item.TabContent(TabContentParams{
		Selected: ix == p.activeItemIndex,
		Preview:  p.IsPreview(item.ItemID()),
	})
}

// Render draws the pane into a bounds-sized buffer.
func (p *Pane) Render(th *theme.Theme, bounds texel.Bounds, showTabBar, active bool) [][]texel.Cell {
	buf := texel.NewBuffer(bounds.W, bounds.H, th.Base())
	if bounds.Empty() {
		return buf
	}
	content := texel.Bounds{W: bounds.W, H: bounds.H}
	if showTabBar && bounds.H > 1 {
		p.renderTabBar(buf, th, bounds.W, active)
		content.Y = 1
		content.H--
	}

	item := p.ActiveItem()
	if item == nil {
		style := th.Style(th.Colors.Placeholder, th.Colors.Background, false, false, false)
		text := texel.Truncate(Placeholder, content.W, "…")
		x := (content.W - texel.TextWidth(text)) / 2
		texel.DrawText(buf, x, content.Y+content.H/2, content.W, text, style)
		return buf
	}
	texel.Blit(buf, item.Render(th, texel.Bounds{X: bounds.X, Y: bounds.Y + content.Y, W: content.W, H: content.H}), 0, content.Y)
	return buf
}

func (p *Pane) renderTabBar(buf [][]texel.Cell, th *theme.Theme, width int, active bool) {
	texel.Fill(buf, texel.Bounds{W: width, H: 1}, ' ', th.Style(th.Colors.Foreground, th.Colors.TabBar, false, false, false))
	x := 0
	for ix := range p.items {
		if x >= width {
			break
		}
		selected := ix == p.activeItemIndex
		bg := th.Colors.TabInactive
		if selected {
			bg = th.Colors.TabActive
		}
		borderColor := th.Colors.Border
		if selected && active {
			borderColor = th.Colors.BorderActive
		}
		border := th.Style(borderColor, th.Colors.TabBar, false, false, false)

		label := p.TabLabel(ix)
		text := " " + texel.Truncate(label.Text, maxTabWidth, "…") + " "
		style := th.LabelStyle(label.Color, bg)
		if selected && active {
			style = style.Bold(true)
		}
		if p.IsPreview(p.items[ix].ItemID()) {
			style = style.Italic(true)
		}

		left, right := tabDividers(p.TabPosition(ix))
		if left {
			x += texel.DrawText(buf, x, 0, width-x, "│", border)
		}
		x += texel.DrawText(buf, x, 0, width-x, text, style)
		if right {
			x += texel.DrawText(buf, x, 0, width-x, "│", border)
		}
	}
}
