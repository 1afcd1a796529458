// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: workspace/workspace.go
// Summary: Per-window orchestrator of panes, the split tree, the status bar
// and the registered action handlers.
// Usage: Created by OpenNew (or New in tests) as a window's root view.

package workspace

import (
	"log"

	"github.com/framegrace/tungsten/registry"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
)

// EmptyTitle is the window title while no item is open.
const EmptyTitle = "empty project"

// Options tune a workspace.
type Options struct {
	// ClosePaneWhenEmpty removes a pane from the split tree once its last
	// item closes. Off by default: empty panes stay and show a placeholder.
	ClosePaneWhenEmpty bool
}

// ActionHandler attaches action listeners to the frame being rendered.
type ActionHandler func(ws *Workspace, f *texel.Frame)

// Workspace is the root view of a window.
type Workspace struct {
	app      *texel.App
	window   *texel.Window
	weakSelf texel.WeakRef[Workspace]
	opts     Options

	center     *PaneGroup
	panes      []*Pane
	activePane *Pane
	statusBar  *StatusBar
	counter    *HistoryCounter

	actionHandlers []ActionHandler
	paneSubs       map[*Pane]texel.Subscription
	lastLayout     *Layout
}

// New creates the workspace of w with one empty pane and runs the
// registered new-workspace observers.
func New(w *texel.Window, opts Options) *Workspace {
	ws := &Workspace{
		app:      w.App(),
		window:   w,
		opts:     opts,
		counter:  &HistoryCounter{},
		paneSubs: make(map[*Pane]texel.Subscription),
	}
	ws.weakSelf = texel.MakeWeak(ws)

	pane := ws.newPane()
	ws.center = NewPaneGroup(pane)
	ws.activePane = pane
	ws.statusBar = NewStatusBar(w, pane)

	weak := ws.weakSelf
	w.Focus().Subscribe(texel.FocusListenerFunc(func(prev, next *texel.FocusHandle) {
		if ws, ok := weak.Upgrade(); ok {
			ws.focusChanged()
		}
	}))
	w.Focus().OnFocusLost(func() {
		w.App().Defer(func() {
			ws, ok := weak.Upgrade()
			if !ok || ws.window.Focus().Focused() != nil {
				return
			}
			texel.Debugf("Workspace: Focus lost, returning it to the active pane")
			ws.activePane.Focus()
		})
	})
	w.OnShouldClose(func() bool {
		// A pending confirmation keeps the window open.
		return !w.HasPrompt()
	})
	w.OnRemoved(func() {
		ws.weakSelf.Release()
		for _, p := range ws.panes {
			ws.paneSubs[p].Unsubscribe()
			p.detach()
		}
	})

	ws.registerBuiltinActions()
	if obs, ok := texel.TryGlobal[*newWorkspaceObservers](ws.app); ok {
		for _, fn := range obs.fns {
			fn(ws)
		}
	}
	ws.updateWindowTitle()
	pane.Focus()
	return ws
}

func (ws *Workspace) App() *texel.App                   { return ws.app }
func (ws *Workspace) Window() *texel.Window             { return ws.window }
func (ws *Workspace) Center() *PaneGroup                { return ws.center }
func (ws *Workspace) ActivePane() *Pane                 { return ws.activePane }
func (ws *Workspace) StatusBar() *StatusBar             { return ws.statusBar }
func (ws *Workspace) WeakRef() texel.WeakRef[Workspace] { return ws.weakSelf }

// Panes returns every pane in split-tree order.
func (ws *Workspace) Panes() []*Pane {
	return ws.center.Panes()
}

// ActiveItem returns the active pane's active item.
func (ws *Workspace) ActiveItem() ItemHandle {
	return ws.activePane.ActiveItem()
}

// Items returns the items of every pane.
func (ws *Workspace) Items() []ItemHandle {
	var out []ItemHandle
	for _, p := range ws.Panes() {
		out = append(out, p.Items()...)
	}
	return out
}

func (ws *Workspace) newPane() *Pane {
	p := NewPane(ws.window, ws.counter)
	p.SetCloseWhenEmpty(ws.opts.ClosePaneWhenEmpty)
	ws.panes = append(ws.panes, p)
	ws.paneSubs[p] = p.Subscribe(texel.ListenerFunc(ws.handlePaneEvent))
	return p
}

// RegisterActionHandler appends h; handlers attach to every rendered frame
// in registration order.
func (ws *Workspace) RegisterActionHandler(h ActionHandler) {
	ws.actionHandlers = append(ws.actionHandlers, h)
}

// RegisterAction registers fn for actions of type A.
func RegisterAction[A registry.Action](ws *Workspace, fn func(ws *Workspace, action A)) {
	ws.RegisterActionHandler(func(ws *Workspace, f *texel.Frame) {
		texel.On(f, func(action A) { fn(ws, action) })
	})
}

func (ws *Workspace) registerBuiltinActions() {
	RegisterAction(ws, func(ws *Workspace, a ActivateItem) {
		ws.activePane.ActivateItem(a.Index, true, true)
	})
	RegisterAction(ws, func(ws *Workspace, _ ActivatePrevItem) { ws.activePane.ActivatePrevItem(true) })
	RegisterAction(ws, func(ws *Workspace, _ ActivateNextItem) { ws.activePane.ActivateNextItem(true) })
	RegisterAction(ws, func(ws *Workspace, _ CloseActiveItem) {
		ws.activePane.CloseActiveItem().DetachAndLogErr("Workspace: close active item")
	})
	RegisterAction(ws, func(ws *Workspace, _ CloseInactiveItems) {
		ws.activePane.CloseInactiveItems().DetachAndLogErr("Workspace: close inactive items")
	})
	RegisterAction(ws, func(ws *Workspace, a ActivatePane) { ws.ActivatePane(a.Index) })
	RegisterAction(ws, func(ws *Workspace, _ ActivateNextPane) { ws.ActivateNextPane() })
	RegisterAction(ws, func(ws *Workspace, _ SplitRight) { ws.splitActive(Horizontal) })
	RegisterAction(ws, func(ws *Workspace, _ SplitDown) { ws.splitActive(Vertical) })
	RegisterAction(ws, func(ws *Workspace, a ResizePane) { ws.ResizeActivePane(a.Delta) })
}

// ActivateItem brings item to the front of the first pane holding it and
// reports whether it was found.
func (ws *Workspace) ActivateItem(item ItemHandle) bool {
	if item == nil {
		return false
	}
	for _, p := range ws.Panes() {
		if ix, ok := p.IndexForItem(item.ItemID()); ok {
			p.ActivateItem(ix, true, true)
			ws.setActivePane(p)
			return true
		}
	}
	return false
}

// AddItemToActivePane adds item to the active pane at destinationIndex
// (negative: after the active item), activating and focusing it.
func (ws *Workspace) AddItemToActivePane(item ItemHandle, destinationIndex int) {
	ws.activePane.AddItem(item, true, true, destinationIndex)
}

// Split adds a new empty pane next to pane along axis and activates it.
func (ws *Workspace) Split(pane *Pane, axis Axis) (*Pane, error) {
	newPane := ws.newPane()
	if err := ws.center.Split(pane, newPane, axis); err != nil {
		ws.dropPane(newPane)
		return nil, err
	}
	ws.setActivePane(newPane)
	newPane.Focus()
	return newPane, nil
}

func (ws *Workspace) splitActive(axis Axis) {
	if _, err := ws.Split(ws.activePane, axis); err != nil {
		log.Printf("Workspace: Split failed: %v", err)
	}
}

// RemovePane takes pane out of the split tree. The first remaining pane
// becomes active when pane was.
func (ws *Workspace) RemovePane(pane *Pane) error {
	if err := ws.center.Remove(pane); err != nil {
		return err
	}
	ws.dropPane(pane)
	if ws.activePane == pane {
		next := ws.center.FirstPane()
		ws.setActivePane(next)
		next.Focus()
	}
	ws.window.Refresh()
	return nil
}

func (ws *Workspace) dropPane(pane *Pane) {
	if sub, ok := ws.paneSubs[pane]; ok {
		sub.Unsubscribe()
		delete(ws.paneSubs, pane)
	}
	pane.detach()
	for i, p := range ws.panes {
		if p == pane {
			ws.panes = append(ws.panes[:i], ws.panes[i+1:]...)
			break
		}
	}
}

// ActivatePane activates the pane at ix in tree order.
func (ws *Workspace) ActivatePane(ix int) {
	panes := ws.Panes()
	if ix < 0 || ix >= len(panes) {
		return
	}
	ws.setActivePane(panes[ix])
	panes[ix].Focus()
}

// ActivateNextPane cycles through panes in tree order.
func (ws *Workspace) ActivateNextPane() {
	panes := ws.Panes()
	for i, p := range panes {
		if p == ws.activePane {
			ws.ActivatePane((i + 1) % len(panes))
			return
		}
	}
}

// ResizeActivePane grows the active pane by delta flex units.
func (ws *Workspace) ResizeActivePane(delta float64) bool {
	axis, ix, ok := ws.center.ParentAxis(ws.activePane)
	if !ok {
		return false
	}
	if ix == len(axis.Members)-1 {
		ok = axis.Resize(ix-1, -delta)
	} else {
		ok = axis.Resize(ix, delta)
	}
	if ok {
		ws.window.Refresh()
	}
	return ok
}

func (ws *Workspace) setActivePane(p *Pane) {
	if p == nil || ws.activePane == p {
		return
	}
	ws.activePane = p
	texel.Debugf("Workspace: Active pane %s", p.ID().Short())
	ws.statusBar.SetActivePane(p)
	ws.updateWindowTitle()
	ws.window.Refresh()
}

func (ws *Workspace) focusChanged() {
	if ws.activePane.HasFocus() {
		return
	}
	for _, p := range ws.Panes() {
		if p.HasFocus() {
			ws.setActivePane(p)
			return
		}
	}
}

func (ws *Workspace) handlePaneEvent(ev texel.Event) {
	pe, ok := ev.Payload.(PaneEvent)
	if !ok {
		return
	}
	switch ev.Type {
	case texel.EventPaneActivate, texel.EventPaneFocused:
		ws.setActivePane(pe.Pane)
	case texel.EventActiveItemChanged:
		if pe.Pane == ws.activePane {
			ws.statusBar.ActiveItemChanged()
			ws.updateWindowTitle()
		}
	case texel.EventItemUpdated:
		if pe.Pane == ws.activePane {
			ws.updateWindowTitle()
		}
	case texel.EventPaneEmpty:
		if !ws.opts.ClosePaneWhenEmpty {
			return
		}
		if err := ws.RemovePane(pe.Pane); err != nil {
			texel.Debugf("Workspace: Keeping empty pane: %v", err)
		}
	}
	ws.window.Refresh()
}

func (ws *Workspace) updateWindowTitle() {
	title := EmptyTitle
	if item := ws.ActiveItem(); item != nil {
		if label := item.TabContent(TabContentParams{Detail: 1, Selected: true}); !label.Empty() {
			title = label.Text
		}
	}
	ws.window.SetTitle(title)
}

// CloseWindow asks the window to close; hooks may veto.
func (ws *Workspace) CloseWindow() *texel.Task {
	return ws.window.RequestClose()
}

// Render implements texel.View.
func (ws *Workspace) Render(w *texel.Window, bounds texel.Bounds) *texel.Frame {
	appearance := settings.Get[theme.Settings](ws.app.Settings())
	w.SetRemSize(appearance.UIFontSize)
	prefs, _ := settings.TryGet[Settings](ws.app.Settings())

	th := theme.Active(ws.app)
	w.SetPromptStyles(
		th.Style(th.Colors.Foreground, th.Colors.Prompt, false, false, false),
		th.Style(th.Colors.Background, th.Colors.PromptSelected, true, false, false),
		th.Colors.Background,
	)

	frame := texel.NewFrame(bounds.W, bounds.H, th.Base())
	center := bounds
	if bounds.H > 1 {
		center.H--
		texel.Blit(frame.Cells, [][]texel.Cell{ws.statusBar.Render(th, bounds.W)}, bounds.X, bounds.Y+center.H)
	}

	var layout *Layout
	if w.Zoomed() {
		layout = &Layout{Panes: []PaneBox{{Pane: ws.activePane, Bounds: center}}}
	} else {
		layout = ws.center.Layout(center)
	}
	ws.lastLayout = layout

	divider := th.Style(th.Colors.Border, th.Colors.Background, false, false, false)
	for _, d := range layout.Dividers {
		ch := '│'
		if d.Axis == Vertical {
			ch = '─'
		}
		texel.Fill(frame.Cells, d.Bounds, ch, divider)
	}
	for _, pb := range layout.Panes {
		cells := pb.Pane.Render(th, pb.Bounds, prefs.ShowTabBar, pb.Pane == ws.activePane)
		texel.Blit(frame.Cells, cells, pb.Bounds.X, pb.Bounds.Y)
	}

	for _, h := range ws.actionHandlers {
		h(ws, frame)
	}
	return frame
}

// LastLayout returns the pane placement of the last render.
func (ws *Workspace) LastLayout() *Layout {
	return ws.lastLayout
}
