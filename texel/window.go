// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/window.go
// Summary: A full-screen terminal window: root view, focus tree, prompt
// overlay, action dispatch and the two-phase close.

package texel

import (
	"log"

	"github.com/framegrace/tungsten/registry"
	"github.com/gdamore/tcell/v2"
)

// View is the root of a window's content.
type View interface {
	Render(w *Window, bounds Bounds) *Frame
}

// Window owns one root view. Only the active window is drawn and receives
// input.
type Window struct {
	id    EntityID
	app   *App
	root  View
	focus *FocusTree

	title     string
	lastTitle string
	remSize   float64
	active    bool
	zoomed    bool
	dirty     bool
	removed   bool
	closing   bool

	frame        *Frame
	prompt       *Prompt
	promptStyle  tcell.Style
	promptSelect tcell.Style
	backdrop     tcell.Color
	shouldClose  []func() bool
	onRemoved    []func()
	onActivation []func(active bool)
}

func newWindow(app *App) *Window {
	return &Window{
		id:           NewEntityID(),
		app:          app,
		focus:        NewFocusTree(),
		remSize:      16,
		dirty:        true,
		promptStyle:  tcell.StyleDefault.Reverse(true),
		promptSelect: tcell.StyleDefault.Bold(true),
		backdrop:     tcell.ColorDefault,
	}
}

func (w *Window) ID() EntityID      { return w.id }
func (w *Window) App() *App         { return w.app }
func (w *Window) Focus() *FocusTree { return w.focus }
func (w *Window) Root() View        { return w.root }
func (w *Window) Title() string     { return w.title }
func (w *Window) RemSize() float64  { return w.remSize }
func (w *Window) IsActive() bool    { return w.active }
func (w *Window) Zoomed() bool      { return w.zoomed }
func (w *Window) Removed() bool     { return w.removed }
func (w *Window) NeedsDraw() bool   { return w.dirty }
func (w *Window) LastFrame() *Frame { return w.frame }

// SetTitle changes the terminal title shown while the window is active.
func (w *Window) SetTitle(title string) {
	if w.title == title {
		return
	}
	w.title = title
	w.Refresh()
}

// SetRemSize records the base font size used to scale the layout.
func (w *Window) SetRemSize(size float64) {
	if size <= 0 || w.remSize == size {
		return
	}
	w.remSize = size
	w.Refresh()
}

// SetPromptStyles sets the styles of the confirmation overlay and the
// colour the rest of the window fades toward while it shows.
func (w *Window) SetPromptStyles(normal, selected tcell.Style, backdrop tcell.Color) {
	w.promptStyle = normal
	w.promptSelect = selected
	w.backdrop = backdrop
}

// Refresh schedules a redraw.
func (w *Window) Refresh() {
	w.dirty = true
}

// OnShouldClose registers a veto hook; returning false keeps the window.
func (w *Window) OnShouldClose(fn func() bool) {
	w.shouldClose = append(w.shouldClose, fn)
}

// OnRemoved registers fn to run once the window has been removed.
func (w *Window) OnRemoved(fn func()) {
	w.onRemoved = append(w.onRemoved, fn)
}

// OnActivationChange registers fn to run when the window gains or loses
// the active state.
func (w *Window) OnActivationChange(fn func(active bool)) {
	w.onActivation = append(w.onActivation, fn)
}

func (w *Window) setActive(active bool) {
	if w.active == active {
		return
	}
	w.active = active
	w.lastTitle = ""
	w.Refresh()
	for _, fn := range w.onActivation {
		fn(active)
	}
}

// Minimize is a window-manager pass-through; terminals have no equivalent.
func (w *Window) Minimize() {
	log.Printf("Window: Minimize is not supported by the terminal host")
}

// ToggleZoom flips the zoomed state, in which the root view shows only its
// active content.
func (w *Window) ToggleZoom() {
	w.zoomed = !w.zoomed
	w.Refresh()
}

// RequestClose runs the should-close hooks and, unless one vetoes, schedules
// the window's removal on the executor. The task completes once the window
// is gone, or immediately when vetoed or already closing.
func (w *Window) RequestClose() *Task {
	if w.removed || w.closing {
		return Ready(nil)
	}
	for _, fn := range w.shouldClose {
		if !fn() {
			Debugf("Window: Close of %s vetoed", w.id.Short())
			return Ready(nil)
		}
	}
	w.closing = true
	task := NewTask()
	w.app.executor.Defer(func() {
		w.remove()
		task.Complete(nil)
	})
	return task
}

func (w *Window) remove() {
	if w.removed {
		return
	}
	w.removed = true
	if w.prompt != nil {
		w.prompt.resolve(-1)
		w.prompt = nil
	}
	w.app.removeWindow(w)
	for _, fn := range w.onRemoved {
		fn()
	}
}

// Render produces a frame for a width by height surface and remembers it
// for action dispatch.
func (w *Window) Render(width, height int) *Frame {
	var frame *Frame
	if w.root != nil {
		frame = w.root.Render(w, Bounds{W: width, H: height})
	}
	if frame == nil {
		frame = NewFrame(width, height, tcell.StyleDefault)
	}
	if w.prompt != nil {
		Dim(frame.Cells, w.backdrop, tcell.ColorBlack, promptDim)
		w.prompt.render(frame.Cells, w.promptStyle, w.promptSelect)
	}
	w.frame = frame
	w.dirty = false
	return frame
}

// Draw renders the window onto a screen driver.
func (w *Window) Draw(driver ScreenDriver) {
	width, height := driver.Size()
	frame := w.Render(width, height)
	for y, row := range frame.Cells {
		for x, c := range row {
			driver.SetContent(x, y, c.Ch, nil, c.Style)
		}
	}
	if w.title != w.lastTitle {
		driver.SetTitle(w.title)
		w.lastTitle = w.title
	}
	driver.HideCursor()
	driver.Show()
}

// DispatchAction offers action to the last frame's listeners in order and
// then to the app's global handlers.
func (w *Window) DispatchAction(action registry.Action) bool {
	if action == nil || w.removed {
		return false
	}
	handled := w.frame.Dispatch(action) || w.app.dispatchGlobal(w, action)
	if !handled {
		Debugf("Window: No handler for %s", action.ActionName())
		return false
	}
	w.Refresh()
	return true
}

// HandleKey routes a key to the prompt overlay, then the keymap, then the
// focused handle and its ancestors.
func (w *Window) HandleKey(ev *tcell.EventKey) bool {
	if w.prompt != nil {
		if answer, done := w.prompt.handleKey(ev); done {
			p := w.prompt
			w.prompt = nil
			p.resolve(answer)
		}
		w.Refresh()
		return true
	}
	if b, ok := w.app.keymap.Lookup(ev); ok {
		action, err := w.app.BuildAction(b)
		if err != nil {
			log.Printf("Window: Binding %s: %v", b.Chord, err)
			return false
		}
		return w.DispatchAction(action)
	}
	if w.focus.dispatchKey(ev) {
		w.Refresh()
		return true
	}
	return false
}

// Prompt shows a modal question and returns a channel that receives the
// chosen answer index. A prompt replaced by another one, or dismissed by the
// window closing, receives -1.
func (w *Window) Prompt(message string, answers []string) <-chan int {
	if w.prompt != nil {
		w.prompt.resolve(-1)
	}
	p := newPrompt(message, answers)
	if w.removed {
		p.resolve(-1)
		return p.reply
	}
	w.prompt = p
	w.Refresh()
	return p.reply
}

// HasPrompt reports whether a prompt is showing.
func (w *Window) HasPrompt() bool {
	return w.prompt != nil
}
