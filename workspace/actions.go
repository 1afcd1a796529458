// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: workspace/actions.go
// Summary: Pane and workspace actions and their registry manifests.

package workspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/framegrace/tungsten/registry"
)

// ActivateItem activates the tab at Index in the active pane.
type ActivateItem struct{ Index int }

type ActivatePrevItem struct{}
type ActivateNextItem struct{}
type CloseActiveItem struct{}
type CloseInactiveItems struct{}

// ActivatePane activates the pane at Index in tree order.
type ActivatePane struct{ Index int }

type SplitRight struct{}
type SplitDown struct{}
type ActivateNextPane struct{}

// ResizePane grows (positive) or shrinks the active pane along its axis.
type ResizePane struct{ Delta float64 }

type CloseWindow struct{}
type NewWindow struct{}

func (ActivateItem) ActionName() string       { return "pane::ActivateItem" }
func (ActivatePrevItem) ActionName() string   { return "pane::ActivatePrevItem" }
func (ActivateNextItem) ActionName() string   { return "pane::ActivateNextItem" }
func (CloseActiveItem) ActionName() string    { return "pane::CloseActiveItem" }
func (CloseInactiveItems) ActionName() string { return "pane::CloseInactiveItems" }
func (ActivatePane) ActionName() string       { return "workspace::ActivatePane" }
func (SplitRight) ActionName() string         { return "workspace::SplitRight" }
func (SplitDown) ActionName() string          { return "workspace::SplitDown" }
func (ActivateNextPane) ActionName() string   { return "workspace::ActivateNextPane" }
func (ResizePane) ActionName() string         { return "workspace::ResizePane" }
func (CloseWindow) ActionName() string        { return "workspace::CloseWindow" }
func (NewWindow) ActionName() string          { return "workspace::NewWindow" }

func parseIndex(arg string) (int, error) {
	ix, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", arg, err)
	}
	if ix < 0 {
		return 0, fmt.Errorf("index %d is negative", ix)
	}
	return ix, nil
}

// registerActions adds the pane and workspace actions to r.
func registerActions(r *registry.Registry) {
	r.MustRegister(&registry.Manifest{
		Name:          ActivateItem{}.ActionName(),
		DisplayName:   "Activate Item",
		Description:   "Activate the tab at the given index",
		TakesArgument: true,
	}, func(arg string) (registry.Action, error) {
		ix, err := parseIndex(arg)
		return ActivateItem{Index: ix}, err
	})
	r.MustRegister(&registry.Manifest{
		Name:          ActivatePane{}.ActionName(),
		DisplayName:   "Activate Pane",
		Description:   "Activate the pane at the given index",
		TakesArgument: true,
	}, func(arg string) (registry.Action, error) {
		ix, err := parseIndex(arg)
		return ActivatePane{Index: ix}, err
	})
	r.MustRegister(&registry.Manifest{
		Name:          ResizePane{}.ActionName(),
		DisplayName:   "Resize Pane",
		Description:   "Grow or shrink the active pane",
		TakesArgument: true,
	}, func(arg string) (registry.Action, error) {
		if strings.TrimSpace(arg) == "" {
			return ResizePane{Delta: ResizeStep}, nil
		}
		delta, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("delta %q: %w", arg, err)
		}
		return ResizePane{Delta: delta}, nil
	})
	r.Simple(ActivatePrevItem{}, "Previous Tab", "Activate the tab to the left")
	r.Simple(ActivateNextItem{}, "Next Tab", "Activate the tab to the right")
	r.Simple(CloseActiveItem{}, "Close Tab", "Close the active tab")
	r.Simple(CloseInactiveItems{}, "Close Other Tabs", "Close every tab but the active one")
	r.Simple(SplitRight{}, "Split Right", "Split the active pane to the right")
	r.Simple(SplitDown{}, "Split Down", "Split the active pane downwards")
	r.Simple(ActivateNextPane{}, "Next Pane", "Activate the next pane")
	r.Simple(CloseWindow{}, "Close Window", "Close the focused window")
	r.Simple(NewWindow{}, "New Window", "Open a new window")
}
