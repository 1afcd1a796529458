// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/runtime_interfaces.go
// Summary: Abstractions over the rendering surface and event routing.

package texel

import "github.com/gdamore/tcell/v2"

// ScreenDriver abstracts the rendering surface used by the application. It
// mirrors the subset of tcell.Screen functionality the window layer needs so
// tests can drive a simulation screen or a stub.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	Clear()
	Show()
	Sync()
	SetTitle(title string)
	PollEvent() tcell.Event
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (rune, []rune, tcell.Style, int)
}

// EventRouter exposes the subset of dispatcher behaviour the rest of the system
// relies on. Having it as an interface lets tests inject recording routers.
type EventRouter interface {
	Subscribe(listener Listener) Subscription
	Broadcast(event Event)
}

var _ EventRouter = (*EventDispatcher)(nil)
