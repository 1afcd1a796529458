// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/focus.go
// Summary: Per-window focus tree with handles, parent links and listeners.
// Usage: Panes, items and status items own handles; the window routes keys
// along the focused handle's parent chain.

package texel

import "github.com/gdamore/tcell/v2"

// FocusListener describes consumers interested in focus changes.
type FocusListener interface {
	FocusChanged(prev, next *FocusHandle)
}

// FocusListenerFunc adapts a function to FocusListener.
type FocusListenerFunc func(prev, next *FocusHandle)

func (f FocusListenerFunc) FocusChanged(prev, next *FocusHandle) { f(prev, next) }

// FocusTree tracks which handle holds input focus inside one window.
type FocusTree struct {
	focused     *FocusHandle
	listeners   []FocusListener
	onFocusLost []func()
}

// NewFocusTree returns a tree with nothing focused.
func NewFocusTree() *FocusTree {
	return &FocusTree{}
}

// NewHandle creates a detached handle owned by this tree.
func (t *FocusTree) NewHandle() *FocusHandle {
	return &FocusHandle{id: NewEntityID(), tree: t}
}

// Focused returns the focused handle, or nil.
func (t *FocusTree) Focused() *FocusHandle {
	return t.focused
}

// Subscribe registers a focus listener.
func (t *FocusTree) Subscribe(l FocusListener) {
	t.listeners = append(t.listeners, l)
}

// OnFocusLost registers fn to run when focus is cleared entirely.
func (t *FocusTree) OnFocusLost(fn func()) {
	t.onFocusLost = append(t.onFocusLost, fn)
}

func (t *FocusTree) set(next *FocusHandle) {
	prev := t.focused
	if prev == next {
		return
	}
	t.focused = next
	for _, l := range t.listeners {
		l.FocusChanged(prev, next)
	}
	if next == nil {
		for _, fn := range t.onFocusLost {
			fn()
		}
	}
}

// Blur clears focus.
func (t *FocusTree) Blur() {
	t.set(nil)
}

// FocusHandle is a focus target. Handles may be wired under a parent so that
// a container counts as focused while one of its descendants is.
type FocusHandle struct {
	id     EntityID
	tree   *FocusTree
	parent *FocusHandle
	onKey  func(ev *tcell.EventKey) bool
}

// ID returns the handle identity.
func (h *FocusHandle) ID() EntityID {
	if h == nil {
		return NilEntityID
	}
	return h.id
}

// Focus moves the tree's focus to h.
func (h *FocusHandle) Focus() {
	if h == nil || h.tree == nil {
		return
	}
	h.tree.set(h)
}

// IsFocused reports whether h itself holds focus.
func (h *FocusHandle) IsFocused() bool {
	return h != nil && h.tree != nil && h.tree.focused == h
}

// ContainsFocused reports whether h or one of its descendants holds focus.
func (h *FocusHandle) ContainsFocused() bool {
	if h == nil || h.tree == nil {
		return false
	}
	for cur := h.tree.focused; cur != nil; cur = cur.parent {
		if cur == h {
			return true
		}
	}
	return false
}

// SetParent wires h under parent. A nil parent detaches it.
func (h *FocusHandle) SetParent(parent *FocusHandle) {
	if h == nil || parent == h {
		return
	}
	h.parent = parent
}

// Parent returns the handle h is wired under.
func (h *FocusHandle) Parent() *FocusHandle {
	if h == nil {
		return nil
	}
	return h.parent
}

// SetKeyHandler installs the key handler consulted while h is on the
// focused path. The handler returns true when it consumed the key.
func (h *FocusHandle) SetKeyHandler(fn func(ev *tcell.EventKey) bool) {
	if h == nil {
		return
	}
	h.onKey = fn
}

// dispatchKey offers ev to the focused handle and then to its ancestors.
func (t *FocusTree) dispatchKey(ev *tcell.EventKey) bool {
	for cur := t.focused; cur != nil; cur = cur.parent {
		if cur.onKey != nil && cur.onKey(ev) {
			return true
		}
	}
	return false
}
