// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/frame.go
// Summary: Render output carrying cells and the action listeners attached
// while rendering.

package texel

import (
	"github.com/framegrace/tungsten/registry"
	"github.com/gdamore/tcell/v2"
)

// ActionListener handles one action name.
type ActionListener struct {
	Name   string
	Handle func(action registry.Action)
}

// Frame is what a root view produces for one render pass. Listeners are
// kept in the order they were attached.
type Frame struct {
	Cells     [][]Cell
	listeners []ActionListener
}

// NewFrame allocates a w by h frame filled with style.
func NewFrame(w, h int, style tcell.Style) *Frame {
	return &Frame{Cells: NewBuffer(w, h, style)}
}

// OnAction attaches a listener for the named action.
func (f *Frame) OnAction(name string, fn func(action registry.Action)) {
	if fn == nil {
		return
	}
	f.listeners = append(f.listeners, ActionListener{Name: name, Handle: fn})
}

// On attaches a typed listener; the action name comes from A's zero value.
func On[A registry.Action](f *Frame, fn func(action A)) {
	var zero A
	f.OnAction(zero.ActionName(), func(action registry.Action) {
		if typed, ok := action.(A); ok {
			fn(typed)
		}
	})
}

// Listeners returns the attached listeners in attachment order.
func (f *Frame) Listeners() []ActionListener {
	return append([]ActionListener(nil), f.listeners...)
}

// Dispatch runs the first listener attached for action's name and reports
// whether one existed.
func (f *Frame) Dispatch(action registry.Action) bool {
	if f == nil || action == nil {
		return false
	}
	name := action.ActionName()
	for _, l := range f.listeners {
		if l.Name == name {
			l.Handle(action)
			return true
		}
	}
	return false
}

// Size returns the frame's width and height.
func (f *Frame) Size() (int, int) {
	if f == nil || len(f.Cells) == 0 {
		return 0, 0
	}
	return len(f.Cells[0]), len(f.Cells)
}
