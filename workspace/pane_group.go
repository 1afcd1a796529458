// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: workspace/pane_group.go
// Summary: Recursive split tree of panes with flex-based layout.
// Usage: A Workspace owns one PaneGroup. Leaves are panes, branches are
// axes whose flexes and cached boxes persist between renders.

package workspace

import (
	"errors"
	"math"

	"github.com/framegrace/tungsten/texel"
)

var (
	// ErrPaneNotFound is returned when a pane is not part of the group.
	ErrPaneNotFound = errors.New("workspace: pane not found")
	// ErrLastPane is returned when removing the only pane.
	ErrLastPane = errors.New("workspace: cannot remove the last pane")
)

const (
	// MinFlex is the smallest flex a member may be resized to.
	MinFlex = 0.2
	// ResizeStep is the flex delta of one keyboard resize.
	ResizeStep = 0.1
)

// Axis is a split direction.
type Axis int

const (
	// Horizontal lays members out left to right.
	Horizontal Axis = iota
	// Vertical lays members out top to bottom.
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Member is a node of the split tree: a *PaneMember or a *PaneAxis.
type Member interface {
	Contains(p *Pane) bool
	FirstPane() *Pane
	collect(out []*Pane) []*Pane
	layout(b texel.Bounds, out *Layout)
}

// PaneMember is a leaf.
type PaneMember struct {
	Pane *Pane
}

func (m *PaneMember) Contains(p *Pane) bool { return m.Pane == p }
func (m *PaneMember) FirstPane() *Pane      { return m.Pane }

func (m *PaneMember) collect(out []*Pane) []*Pane { return append(out, m.Pane) }

func (m *PaneMember) layout(b texel.Bounds, out *Layout) {
	out.Panes = append(out.Panes, PaneBox{Pane: m.Pane, Bounds: b})
}

// axisState is shared between render and resize handling.
type axisState struct {
	flexes []float64
	boxes  []texel.Bounds
	busy   bool
}

// PaneAxis is a branch splitting its members along one axis.
type PaneAxis struct {
	Axis    Axis
	Members []Member
	state   *axisState
}

func newPaneAxis(axis Axis, members ...Member) *PaneAxis {
	a := &PaneAxis{Axis: axis, Members: members, state: &axisState{}}
	a.resetFlexes()
	return a
}

// with runs fn with exclusive access to the shared state. It returns false
// without running fn when the state is already in use further up the stack.
func (a *PaneAxis) with(fn func(s *axisState)) bool {
	if a.state.busy {
		return false
	}
	a.state.busy = true
	defer func() { a.state.busy = false }()
	fn(a.state)
	return true
}

func (a *PaneAxis) resetFlexes() {
	a.with(func(s *axisState) {
		s.flexes = make([]float64, len(a.Members))
		for i := range s.flexes {
			s.flexes[i] = 1
		}
		s.boxes = make([]texel.Bounds, len(a.Members))
	})
}

// Flexes returns a copy of the member proportions.
func (a *PaneAxis) Flexes() []float64 {
	return append([]float64(nil), a.state.flexes...)
}

// Boxes returns the member bounds computed by the last layout.
func (a *PaneAxis) Boxes() []texel.Bounds {
	return append([]texel.Bounds(nil), a.state.boxes...)
}

func (a *PaneAxis) Contains(p *Pane) bool {
	for _, m := range a.Members {
		if m.Contains(p) {
			return true
		}
	}
	return false
}

func (a *PaneAxis) FirstPane() *Pane {
	if len(a.Members) == 0 {
		return nil
	}
	return a.Members[0].FirstPane()
}

func (a *PaneAxis) collect(out []*Pane) []*Pane {
	for _, m := range a.Members {
		out = m.collect(out)
	}
	return out
}

// Resize moves the divider after member ix by delta flex units, keeping
// both neighbours at or above MinFlex. It refuses while a layout of this
// axis is in progress.
func (a *PaneAxis) Resize(ix int, delta float64) bool {
	if ix < 0 || ix+1 >= len(a.Members) {
		return false
	}
	applied := false
	ok := a.with(func(s *axisState) {
		left, right := s.flexes[ix]+delta, s.flexes[ix+1]-delta
		if left < MinFlex || right < MinFlex {
			return
		}
		s.flexes[ix], s.flexes[ix+1] = left, right
		applied = true
	})
	return ok && applied
}

func (a *PaneAxis) layout(b texel.Bounds, out *Layout) {
	a.with(func(s *axisState) {
		n := len(a.Members)
		extent := b.W
		if a.Axis == Vertical {
			extent = b.H
		}
		// One cell between neighbours is reserved for the divider.
		avail := max(extent-(n-1), 0)
		total := 0.0
		for _, f := range s.flexes {
			total += f
		}
		pos := 0
		for i := range a.Members {
			size := avail - pos
			if i < n-1 {
				size = int(math.Round(float64(avail) * s.flexes[i] / total))
				size = min(size, avail-pos)
			}
			box := b
			if a.Axis == Vertical {
				box.Y, box.H = b.Y+pos+i, size
			} else {
				box.X, box.W = b.X+pos+i, size
			}
			s.boxes[i] = box
			pos += size
			if i < n-1 {
				div := box
				if a.Axis == Vertical {
					div.Y, div.H = box.Y+box.H, 1
				} else {
					div.X, div.W = box.X+box.W, 1
				}
				out.Dividers = append(out.Dividers, Divider{Axis: a.Axis, Bounds: div})
			}
		}
		for i, m := range a.Members {
			m.layout(s.boxes[i], out)
		}
	})
}

// PaneBox places one pane.
type PaneBox struct {
	Pane   *Pane
	Bounds texel.Bounds
}

// Divider is the line between two members of an axis.
type Divider struct {
	Axis   Axis
	Bounds texel.Bounds
}

// Layout is the result of laying out a group.
type Layout struct {
	Panes    []PaneBox
	Dividers []Divider
}

// BoundsOf returns the box of p.
func (l *Layout) BoundsOf(p *Pane) (texel.Bounds, bool) {
	for _, pb := range l.Panes {
		if pb.Pane == p {
			return pb.Bounds, true
		}
	}
	return texel.Bounds{}, false
}

// PaneGroup is the split tree rooted at Root.
type PaneGroup struct {
	Root Member
}

// NewPaneGroup creates a group holding a single pane.
func NewPaneGroup(p *Pane) *PaneGroup {
	return &PaneGroup{Root: &PaneMember{Pane: p}}
}

// Contains reports whether p is a leaf of the group.
func (g *PaneGroup) Contains(p *Pane) bool {
	return g.Root.Contains(p)
}

// FirstPane returns the leftmost, topmost pane.
func (g *PaneGroup) FirstPane() *Pane {
	return g.Root.FirstPane()
}

// Panes returns every pane in tree order.
func (g *PaneGroup) Panes() []*Pane {
	return g.Root.collect(nil)
}

// Layout places every pane inside b.
func (g *PaneGroup) Layout(b texel.Bounds) *Layout {
	out := &Layout{}
	g.Root.layout(b, out)
	return out
}

// Split inserts newPane next to oldPane along axis. Splitting along the
// parent's own axis adds a sibling and evens out the flexes; otherwise
// oldPane is replaced by a new axis holding both.
func (g *PaneGroup) Split(oldPane, newPane *Pane, axis Axis) error {
	replaced, err := split(g.Root, oldPane, newPane, axis)
	if err != nil {
		return err
	}
	if replaced != nil {
		g.Root = replaced
	}
	texel.Debugf("PaneGroup: Split %s %s", oldPane.ID().Short(), axis)
	return nil
}

// split returns a replacement for m when m itself must change.
func split(m Member, oldPane, newPane *Pane, axis Axis) (Member, error) {
	switch node := m.(type) {
	case *PaneMember:
		if node.Pane != oldPane {
			return nil, ErrPaneNotFound
		}
		return newPaneAxis(axis, node, &PaneMember{Pane: newPane}), nil
	case *PaneAxis:
		for i, child := range node.Members {
			if !child.Contains(oldPane) {
				continue
			}
			if _, ok := child.(*PaneMember); ok && node.Axis == axis {
				node.Members = append(node.Members[:i+1], append([]Member{&PaneMember{Pane: newPane}}, node.Members[i+1:]...)...)
				node.resetFlexes()
				return nil, nil
			}
			replaced, err := split(child, oldPane, newPane, axis)
			if err != nil {
				return nil, err
			}
			if replaced != nil {
				node.Members[i] = replaced
			}
			return nil, nil
		}
	}
	return nil, ErrPaneNotFound
}

// Remove takes p out of the group, collapsing axes left with one member.
func (g *PaneGroup) Remove(p *Pane) error {
	if leaf, ok := g.Root.(*PaneMember); ok {
		if leaf.Pane == p {
			return ErrLastPane
		}
		return ErrPaneNotFound
	}
	replaced, err := remove(g.Root.(*PaneAxis), p)
	if err != nil {
		return err
	}
	if replaced != nil {
		g.Root = replaced
	}
	return nil
}

func remove(a *PaneAxis, p *Pane) (Member, error) {
	for i, child := range a.Members {
		if !child.Contains(p) {
			continue
		}
		switch node := child.(type) {
		case *PaneMember:
			a.Members = append(a.Members[:i], a.Members[i+1:]...)
			a.resetFlexes()
		case *PaneAxis:
			replaced, err := remove(node, p)
			if err != nil {
				return nil, err
			}
			if replaced != nil {
				a.Members[i] = replaced
			}
		}
		if len(a.Members) == 1 {
			return a.Members[0], nil
		}
		return nil, nil
	}
	return nil, ErrPaneNotFound
}

// ParentAxis returns the axis directly holding p and p's index in it.
func (g *PaneGroup) ParentAxis(p *Pane) (*PaneAxis, int, bool) {
	return parentAxis(g.Root, p)
}

func parentAxis(m Member, p *Pane) (*PaneAxis, int, bool) {
	a, ok := m.(*PaneAxis)
	if !ok {
		return nil, 0, false
	}
	for i, child := range a.Members {
		if leaf, ok := child.(*PaneMember); ok && leaf.Pane == p {
			return a, i, true
		}
		if found, ix, ok := parentAxis(child, p); ok {
			return found, ix, true
		}
	}
	return nil, 0, false
}
