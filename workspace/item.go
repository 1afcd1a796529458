// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: workspace/item.go
// Summary: Items hosted in panes and their type-erased handles.
// Usage: Features wrap a concrete item with NewView and hand the handle to
// a workspace. Downcast recovers the typed view for find-or-activate flows.

package workspace

import (
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/gdamore/tcell/v2"
)

// Item is a content unit a pane can host.
type Item interface {
	FocusHandle() *texel.FocusHandle
	Render(th *theme.Theme, bounds texel.Bounds) [][]texel.Cell
}

// TabContentParams are the inputs of tab label rendering.
type TabContentParams struct {
	// Detail selects a more verbose label; 0 is the default level.
	Detail   int
	Selected bool
	Preview  bool
}

// TabContenter is implemented by items that render a tab label. Rendering
// must not mutate the item.
type TabContenter interface {
	TabContent(params TabContentParams) theme.Label
}

// ItemEvent is emitted by an item towards the panes hosting it.
type ItemEvent int

const (
	// ItemEventUpdateTab asks for the tab label to be rendered again.
	ItemEventUpdateTab ItemEvent = iota
	// ItemEventCloseItem asks the hosting pane to close the item.
	ItemEventCloseItem
)

// ItemHandle is a shared, type-erased reference to an item. Copies share
// the item; a nil handle means "no item".
type ItemHandle interface {
	ItemID() texel.EntityID
	FocusHandle() *texel.FocusHandle
	TabContent(params TabContentParams) theme.Label
	Render(th *theme.Theme, bounds texel.Bounds) [][]texel.Cell
	Subscribe(fn func(ItemEvent)) texel.Subscription
	item() Item
}

// View is the typed handle of an item of concrete type T.
type View[T Item] struct {
	id     texel.EntityID
	value  T
	events *texel.EventDispatcher
}

// NewView wraps value and assigns its identity.
func NewView[T Item](value T) *View[T] {
	return &View[T]{
		id:     texel.NewEntityID(),
		value:  value,
		events: texel.NewEventDispatcher(),
	}
}

// Downcast returns the typed view behind h when its item is exactly a T.
func Downcast[T Item](h ItemHandle) (*View[T], bool) {
	v, ok := h.(*View[T])
	return v, ok && v != nil
}

func (v *View[T]) ItemID() texel.EntityID          { return v.id }
func (v *View[T]) Value() T                        { return v.value }
func (v *View[T]) FocusHandle() *texel.FocusHandle { return v.value.FocusHandle() }
func (v *View[T]) item() Item                      { return v.value }

// TabContent renders the tab label; items without a renderer get an empty
// label.
func (v *View[T]) TabContent(params TabContentParams) theme.Label {
	if tc, ok := any(v.value).(TabContenter); ok {
		return tc.TabContent(params)
	}
	return theme.Label{}
}

func (v *View[T]) Render(th *theme.Theme, bounds texel.Bounds) [][]texel.Cell {
	return v.value.Render(th, bounds)
}

// Subscribe registers fn for events emitted by this item.
func (v *View[T]) Subscribe(fn func(ItemEvent)) texel.Subscription {
	return v.events.Subscribe(texel.ListenerFunc(func(ev texel.Event) {
		if e, ok := ev.Payload.(ItemEvent); ok {
			fn(e)
		}
	}))
}

// Emit notifies every pane hosting the item.
func (v *View[T]) Emit(e ItemEvent) {
	typ := texel.EventItemUpdated
	if e == ItemEventCloseItem {
		typ = texel.EventItemCloseRequested
	}
	v.events.Broadcast(texel.Event{Type: typ, Payload: e})
}

// SameItem reports whether two handles share one item.
func SameItem(a, b ItemHandle) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ItemID() == b.ItemID()
}

// RenderLines draws one line of text per row, for items whose content is
// plain text.
func RenderLines(th *theme.Theme, bounds texel.Bounds, lines []string, style tcell.Style) [][]texel.Cell {
	buf := texel.NewBuffer(bounds.W, bounds.H, th.Base())
	for y, line := range lines {
		if y >= bounds.H {
			break
		}
		texel.DrawText(buf, 0, y, bounds.W, line, style)
	}
	return buf
}
