// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: Application context shared by every window.
// Usage: Created once by the binary (or per test). Holds the settings
// store, executor, action registry, keymap, typed globals and windows.

package texel

import (
	"fmt"
	"log"
	"reflect"
	"sync"

	"github.com/framegrace/tungsten/registry"
	"github.com/framegrace/tungsten/settings"
)

// GlobalHandler handles an action no window listener claimed.
type GlobalHandler func(w *Window, action registry.Action)

// App is the explicit application context. Nothing here is process global;
// tests build independent apps.
type App struct {
	settings *settings.Store
	executor *Executor
	actions  *registry.Registry
	keymap   *Keymap
	events   *EventDispatcher

	globals  map[reflect.Type]any
	handlers map[string]GlobalHandler

	windows []*Window
	active  *Window

	quit     chan struct{}
	quitOnce sync.Once
}

// NewApp creates an application around a settings store.
func NewApp(store *settings.Store) *App {
	return &App{
		settings: store,
		executor: NewExecutor(),
		actions:  registry.New(),
		keymap:   NewKeymap(),
		events:   NewEventDispatcher(),
		globals:  make(map[reflect.Type]any),
		handlers: make(map[string]GlobalHandler),
		quit:     make(chan struct{}),
	}
}

func (a *App) Settings() *settings.Store              { return a.settings }
func (a *App) Executor() *Executor                    { return a.executor }
func (a *App) Actions() *registry.Registry            { return a.actions }
func (a *App) Keymap() *Keymap                        { return a.keymap }
func (a *App) Events() *EventDispatcher               { return a.events }
func (a *App) Windows() []*Window                     { return append([]*Window(nil), a.windows...) }
func (a *App) ActiveWindow() *Window                  { return a.active }
func (a *App) Done() <-chan struct{}                  { return a.quit }
func (a *App) Defer(fn func())                        { a.executor.Defer(fn) }
func (a *App) RunUntilIdle() int                      { return a.executor.RunUntilIdle() }
func (a *App) OnAction(name string, fn GlobalHandler) { a.handlers[name] = fn }

// SetGlobal stores v as the app-wide value of type T.
func SetGlobal[T any](a *App, v T) {
	a.globals[reflect.TypeFor[T]()] = v
}

// TryGlobal returns the app-wide value of type T if one was set.
func TryGlobal[T any](a *App) (T, bool) {
	v, ok := a.globals[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Global returns the app-wide value of type T and panics when unset.
func Global[T any](a *App) T {
	v, ok := TryGlobal[T](a)
	if !ok {
		panic(fmt.Sprintf("texel: global %s is not set", reflect.TypeFor[T]()))
	}
	return v
}

// ReloadKeymap rebuilds the keymap from the "keymap" settings section.
func (a *App) ReloadKeymap() {
	km := NewKeymap()
	km.Load(a.settings.Merged().Section("keymap"))
	a.keymap = km
}

// BuildAction resolves a keymap binding into an action.
func (a *App) BuildAction(b KeyBinding) (registry.Action, error) {
	return a.actions.Build(b.Action, b.Arg)
}

// dispatchGlobal runs the app-level handler for action.
func (a *App) dispatchGlobal(w *Window, action registry.Action) bool {
	fn, ok := a.handlers[action.ActionName()]
	if !ok {
		return false
	}
	fn(w, action)
	return true
}

// OpenWindow creates a window, builds its root view and activates it.
func (a *App) OpenWindow(build func(w *Window) View) *Window {
	w := newWindow(a)
	a.windows = append(a.windows, w)
	w.root = build(w)
	a.ActivateWindow(w)
	log.Printf("App: Opened window %s", w.id.Short())
	return w
}

// ActivateWindow makes w the window that receives input and is drawn.
func (a *App) ActivateWindow(w *Window) {
	if a.active == w {
		return
	}
	if a.active != nil {
		a.active.setActive(false)
	}
	a.active = w
	if w != nil {
		w.setActive(true)
	}
}

// ActivateNextWindow cycles the active window.
func (a *App) ActivateNextWindow() {
	if len(a.windows) < 2 {
		return
	}
	for i, w := range a.windows {
		if w == a.active {
			a.ActivateWindow(a.windows[(i+1)%len(a.windows)])
			return
		}
	}
}

func (a *App) removeWindow(w *Window) {
	for i, cur := range a.windows {
		if cur != w {
			continue
		}
		a.windows = append(a.windows[:i], a.windows[i+1:]...)
		if a.active == w {
			a.active = nil
			if len(a.windows) > 0 {
				a.ActivateWindow(a.windows[len(a.windows)-1])
			}
		}
		a.events.Broadcast(Event{Type: EventWindowRemoved, Payload: w.id})
		log.Printf("App: Removed window %s", w.id.Short())
		break
	}
	if len(a.windows) == 0 {
		a.Quit()
	}
}

// Quit ends the event loop. Safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() {
		log.Printf("App: Quit requested")
		close(a.quit)
	})
}

// Quitting reports whether Quit was called.
func (a *App) Quitting() bool {
	select {
	case <-a.quit:
		return true
	default:
		return false
	}
}
