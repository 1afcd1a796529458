// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: workspace/pane.go
// Summary: Tab container with activation history and close semantics.
// Usage: Owned by a Workspace; every method runs on the UI goroutine.

package workspace

import (
	"sync/atomic"

	"github.com/framegrace/tungsten/texel"
)

// HistoryCounter hands out activation timestamps. One counter is shared by
// every pane of a workspace so histories are comparable across panes.
type HistoryCounter struct {
	n atomic.Uint64
}

// Next returns the next timestamp.
func (c *HistoryCounter) Next() uint64 {
	return c.n.Add(1)
}

// ActivationHistoryEntry records when an item was last activated.
type ActivationHistoryEntry struct {
	ID        texel.EntityID
	Timestamp uint64
}

// PaneEvent is the payload of events a pane broadcasts.
type PaneEvent struct {
	Pane  *Pane
	Item  ItemHandle
	Focus bool
}

// Pane is an ordered set of items with one active item.
type Pane struct {
	id       texel.EntityID
	window   *texel.Window
	executor *texel.Executor
	counter  *HistoryCounter
	focus    *texel.FocusHandle
	events   *texel.EventDispatcher

	items             []ItemHandle
	activeItemIndex   int
	previewItemID     texel.EntityID
	activationHistory []ActivationHistoryEntry
	itemSubs          map[texel.EntityID]texel.Subscription
	closeWhenEmpty    bool
}

// NewPane creates an empty pane inside w.
func NewPane(w *texel.Window, counter *HistoryCounter) *Pane {
	if counter == nil {
		counter = &HistoryCounter{}
	}
	return &Pane{
		id:       texel.NewEntityID(),
		window:   w,
		executor: w.App().Executor(),
		counter:  counter,
		focus:    w.Focus().NewHandle(),
		events:   texel.NewEventDispatcher(),
		itemSubs: make(map[texel.EntityID]texel.Subscription),
	}
}

func (p *Pane) ID() texel.EntityID                            { return p.id }
func (p *Pane) FocusHandle() *texel.FocusHandle               { return p.focus }
func (p *Pane) ActiveItemIndex() int                          { return p.activeItemIndex }
func (p *Pane) Len() int                                      { return len(p.items) }
func (p *Pane) PreviewItemID() texel.EntityID                 { return p.previewItemID }
func (p *Pane) SetCloseWhenEmpty(enabled bool)                { p.closeWhenEmpty = enabled }
func (p *Pane) Subscribe(l texel.Listener) texel.Subscription { return p.events.Subscribe(l) }

// Items returns the items in tab order.
func (p *Pane) Items() []ItemHandle {
	return append([]ItemHandle(nil), p.items...)
}

// ActivationHistory returns a copy of the history, oldest first.
func (p *Pane) ActivationHistory() []ActivationHistoryEntry {
	return append([]ActivationHistoryEntry(nil), p.activationHistory...)
}

// ActiveItem returns the active item, or nil when the pane is empty.
func (p *Pane) ActiveItem() ItemHandle {
	if p.activeItemIndex < 0 || p.activeItemIndex >= len(p.items) {
		return nil
	}
	return p.items[p.activeItemIndex]
}

// IndexForItem returns the index of the item with the given identity.
func (p *Pane) IndexForItem(id texel.EntityID) (int, bool) {
	for i, item := range p.items {
		if item.ItemID() == id {
			return i, true
		}
	}
	return 0, false
}

// SetPreviewItemID marks an item as the preview tab; NilEntityID clears it.
func (p *Pane) SetPreviewItemID(id texel.EntityID) {
	p.previewItemID = id
	p.window.Refresh()
}

// IsPreview reports whether id is the preview item.
func (p *Pane) IsPreview(id texel.EntityID) bool {
	return !p.previewItemID.IsNil() && p.previewItemID == id
}

// HasFocus reports whether the pane or its active item holds focus. The
// active item counts even before its handle is wired under the pane.
func (p *Pane) HasFocus() bool {
	if p.focus.ContainsFocused() {
		return true
	}
	if active := p.ActiveItem(); active != nil {
		return active.FocusHandle().ContainsFocused()
	}
	return false
}

// Focus moves focus to the active item, or the pane itself when empty.
func (p *Pane) Focus() {
	if active := p.ActiveItem(); active != nil {
		active.FocusHandle().Focus()
		return
	}
	p.focus.Focus()
}

func (p *Pane) emit(typ texel.EventType, item ItemHandle, focus bool) {
	p.events.Broadcast(texel.Event{Type: typ, Payload: PaneEvent{Pane: p, Item: item, Focus: focus}})
}

// AddItem inserts item at destinationIndex, or after the active item when
// destinationIndex is negative, and activates it. Adding an item that is
// already present does nothing.
func (p *Pane) AddItem(item ItemHandle, activatePane, focusItem bool, destinationIndex int) {
	if item == nil {
		return
	}
	if _, exists := p.IndexForItem(item.ItemID()); exists {
		texel.Debugf("Pane: Item %s already in pane %s", item.ItemID().Short(), p.id.Short())
		return
	}

	ix := destinationIndex
	if ix < 0 {
		ix = p.activeItemIndex + 1
	}
	ix = max(0, min(ix, len(p.items)))

	prev := p.ActiveItem()
	p.items = append(p.items, nil)
	copy(p.items[ix+1:], p.items[ix:])
	p.items[ix] = item
	if len(p.items) > 1 && ix <= p.activeItemIndex {
		p.activeItemIndex++
	}

	item.FocusHandle().SetParent(p.focus)
	id := item.ItemID()
	p.itemSubs[id] = item.Subscribe(func(e ItemEvent) { p.handleItemEvent(id, e) })
	texel.Debugf("Pane: Added item %s at %d in pane %s", id.Short(), ix, p.id.Short())
	p.emit(texel.EventItemAdded, item, false)

	p.activateItem(ix, prev, activatePane, focusItem)
}

// ActivateItem makes the item at index active and records it in the
// activation history. Out-of-range indices are ignored.
func (p *Pane) ActivateItem(index int, activatePane, focusItem bool) {
	if index < 0 || index >= len(p.items) {
		return
	}
	p.activateItem(index, p.ActiveItem(), activatePane, focusItem)
}

// activateItem compares against prev, the item that was active before the
// caller touched p.items.
func (p *Pane) activateItem(index int, prev ItemHandle, activatePane, focusItem bool) {
	p.activeItemIndex = index
	item := p.items[index]
	p.pushHistory(item.ItemID())

	if !SameItem(prev, item) {
		p.emit(texel.EventActiveItemChanged, item, false)
	}
	if focusItem {
		item.FocusHandle().Focus()
	}
	if activatePane {
		p.emit(texel.EventPaneActivate, item, focusItem)
	}
	p.window.Refresh()
}

// ActivatePrevItem activates the item left of the active one, wrapping.
func (p *Pane) ActivatePrevItem(activatePane bool) {
	if len(p.items) == 0 {
		return
	}
	ix := p.activeItemIndex - 1
	if ix < 0 {
		ix = len(p.items) - 1
	}
	p.ActivateItem(ix, activatePane, activatePane)
}

// ActivateNextItem activates the item right of the active one, wrapping.
func (p *Pane) ActivateNextItem(activatePane bool) {
	if len(p.items) == 0 {
		return
	}
	p.ActivateItem((p.activeItemIndex+1)%len(p.items), activatePane, activatePane)
}

func (p *Pane) pushHistory(id texel.EntityID) {
	p.pruneHistory(id)
	p.activationHistory = append(p.activationHistory, ActivationHistoryEntry{ID: id, Timestamp: p.counter.Next()})
}

func (p *Pane) pruneHistory(id texel.EntityID) {
	for i, entry := range p.activationHistory {
		if entry.ID == id {
			p.activationHistory = append(p.activationHistory[:i], p.activationHistory[i+1:]...)
			return
		}
	}
}

// RemoveItem removes the item at index. When it was active, the most
// recently activated remaining item takes over, else its left neighbour.
// An emptied pane stays alive; closePaneIfEmpty only asks the owner to
// remove it through EventPaneEmpty.
func (p *Pane) RemoveItem(index int, activatePane, closePaneIfEmpty bool) {
	if index < 0 || index >= len(p.items) {
		return
	}
	item := p.items[index]
	id := item.ItemID()
	p.pruneHistory(id)

	if index == p.activeItemIndex {
		shouldActivate := activatePane || p.HasFocus()
		if len(p.items) == 1 {
			if shouldActivate {
				p.focus.Focus()
			}
		} else {
			p.ActivateItem(p.replacementIndex(index), shouldActivate, shouldActivate)
		}
	}

	p.items = append(p.items[:index], p.items[index+1:]...)
	if index < p.activeItemIndex {
		p.activeItemIndex--
	}
	if len(p.items) == 0 {
		p.activeItemIndex = 0
	}
	if sub, ok := p.itemSubs[id]; ok {
		sub.Unsubscribe()
		delete(p.itemSubs, id)
	}
	if p.previewItemID == id {
		p.previewItemID = texel.NilEntityID
	}
	item.FocusHandle().SetParent(nil)

	texel.Debugf("Pane: Removed item %s from pane %s", id.Short(), p.id.Short())
	p.emit(texel.EventItemRemoved, item, false)
	if len(p.items) == 0 {
		p.emit(texel.EventActiveItemChanged, nil, false)
		if closePaneIfEmpty {
			p.emit(texel.EventPaneEmpty, nil, false)
		}
	}
	p.window.Refresh()
}

// replacementIndex picks, before removal, which item becomes active when
// the active item at index goes away. Indices are pre-removal.
func (p *Pane) replacementIndex(index int) int {
	for len(p.activationHistory) > 0 {
		last := p.activationHistory[len(p.activationHistory)-1]
		p.activationHistory = p.activationHistory[:len(p.activationHistory)-1]
		if ix, ok := p.IndexForItem(last.ID); ok && ix != index {
			return ix
		}
	}
	if index > 0 {
		return index - 1
	}
	return index + 1
}

// CloseItemByID closes the item with the given identity.
func (p *Pane) CloseItemByID(id texel.EntityID) *texel.Task {
	return p.CloseItems(func(item ItemHandle) bool { return item.ItemID() == id })
}

// CloseActiveItem closes the active item.
func (p *Pane) CloseActiveItem() *texel.Task {
	active := p.ActiveItem()
	if active == nil {
		return texel.Ready(nil)
	}
	return p.CloseItemByID(active.ItemID())
}

// CloseInactiveItems closes every item but the active one.
func (p *Pane) CloseInactiveItems() *texel.Task {
	active := p.ActiveItem()
	return p.CloseItems(func(item ItemHandle) bool { return !SameItem(item, active) })
}

// CloseItems closes every item matching pred. Matches are captured now and
// removed later on the executor; each removal looks its item up again by
// identity, and items that disappeared meanwhile are skipped.
func (p *Pane) CloseItems(pred func(ItemHandle) bool) *texel.Task {
	var ids []texel.EntityID
	for _, item := range p.items {
		if pred(item) {
			ids = append(ids, item.ItemID())
		}
	}
	if len(ids) == 0 {
		return texel.Ready(nil)
	}
	task := texel.NewTask()
	p.executor.Defer(func() {
		for _, id := range ids {
			ix, ok := p.IndexForItem(id)
			if !ok {
				texel.Debugf("Pane: Item %s already closed", id.Short())
				continue
			}
			p.RemoveItem(ix, false, p.closeWhenEmpty)
		}
		task.Complete(nil)
	})
	return task
}

func (p *Pane) handleItemEvent(id texel.EntityID, e ItemEvent) {
	switch e {
	case ItemEventCloseItem:
		p.CloseItemByID(id).DetachAndLogErr("Pane: close item")
	case ItemEventUpdateTab:
		if ix, ok := p.IndexForItem(id); ok {
			p.emit(texel.EventItemUpdated, p.items[ix], false)
		}
		p.window.Refresh()
	}
}

// detach drops item subscriptions when the pane leaves its workspace.
func (p *Pane) detach() {
	for id, sub := range p.itemSubs {
		sub.Unsubscribe()
		delete(p.itemSubs, id)
	}
}
