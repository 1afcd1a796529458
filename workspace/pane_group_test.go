// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package workspace

import (
	"testing"

	"github.com/framegrace/tungsten/texel"
	"github.com/stretchr/testify/require"
)

func newTestPanes(t *testing.T, n int) []*Pane {
	t.Helper()
	app := newTestApp(t)
	w := app.OpenWindow(func(*texel.Window) texel.View { return nil })
	counter := &HistoryCounter{}
	panes := make([]*Pane, n)
	for i := range panes {
		panes[i] = NewPane(w, counter)
	}
	return panes
}

func TestPaneGroupContainsAndFirstPane(t *testing.T) {
	p := newTestPanes(t, 4)
	g := NewPaneGroup(p[0])
	require.True(t, g.Contains(p[0]))
	require.False(t, g.Contains(p[1]))

	require.NoError(t, g.Split(p[0], p[1], Horizontal))
	require.NoError(t, g.Split(p[1], p[2], Vertical))
	require.Equal(t, []*Pane{p[0], p[1], p[2]}, g.Panes())
	require.True(t, g.Contains(p[2]))
	require.False(t, g.Contains(p[3]))
	require.Same(t, p[0], g.FirstPane())

	require.ErrorIs(t, g.Split(p[3], p[0], Horizontal), ErrPaneNotFound)
}

func TestSplitAlongSameAxisAddsSibling(t *testing.T) {
	p := newTestPanes(t, 3)
	g := NewPaneGroup(p[0])
	require.NoError(t, g.Split(p[0], p[1], Horizontal))
	root := g.Root.(*PaneAxis)
	require.True(t, root.Resize(0, 0.5))

	require.NoError(t, g.Split(p[0], p[2], Horizontal))
	require.Same(t, root, g.Root)
	require.Len(t, root.Members, 3)
	require.Equal(t, []*Pane{p[0], p[2], p[1]}, g.Panes())
	require.Equal(t, []float64{1, 1, 1}, root.Flexes())
}

func TestRemoveCollapsesAxis(t *testing.T) {
	p := newTestPanes(t, 3)
	g := NewPaneGroup(p[0])
	require.NoError(t, g.Split(p[0], p[1], Horizontal))
	require.NoError(t, g.Split(p[1], p[2], Vertical))

	require.NoError(t, g.Remove(p[1]))
	root := g.Root.(*PaneAxis)
	require.Len(t, root.Members, 2)
	require.Equal(t, []*Pane{p[0], p[2]}, g.Panes())

	require.NoError(t, g.Remove(p[0]))
	leaf, ok := g.Root.(*PaneMember)
	require.True(t, ok)
	require.Same(t, p[2], leaf.Pane)

	require.ErrorIs(t, g.Remove(p[2]), ErrLastPane)
	require.ErrorIs(t, g.Remove(p[0]), ErrPaneNotFound)
}

func TestResizeKeepsMinimumFlex(t *testing.T) {
	p := newTestPanes(t, 2)
	g := NewPaneGroup(p[0])
	require.NoError(t, g.Split(p[0], p[1], Horizontal))
	axis := g.Root.(*PaneAxis)

	require.False(t, axis.Resize(0, 0.9))
	require.Equal(t, []float64{1, 1}, axis.Flexes())
	require.True(t, axis.Resize(0, 0.75))
	require.InDeltaSlice(t, []float64{1.75, 0.25}, axis.Flexes(), 1e-9)
	require.False(t, axis.Resize(1, 0.1))
	require.False(t, axis.Resize(-1, 0.1))
}

func TestResizeRefusedDuringLayout(t *testing.T) {
	p := newTestPanes(t, 2)
	g := NewPaneGroup(p[0])
	require.NoError(t, g.Split(p[0], p[1], Horizontal))
	axis := g.Root.(*PaneAxis)

	ran := axis.with(func(*axisState) {
		require.False(t, axis.Resize(0, 0.1))
	})
	require.True(t, ran)
	require.Equal(t, []float64{1, 1}, axis.Flexes())
	require.True(t, axis.Resize(0, 0.1))
}

func TestLayoutPersistsBoxes(t *testing.T) {
	p := newTestPanes(t, 3)
	g := NewPaneGroup(p[0])
	require.NoError(t, g.Split(p[0], p[1], Horizontal))
	require.NoError(t, g.Split(p[1], p[2], Vertical))
	axis := g.Root.(*PaneAxis)
	require.True(t, axis.Resize(0, 0.5))

	layout := g.Layout(texel.Bounds{W: 81, H: 20})
	require.Len(t, layout.Panes, 3)
	require.Len(t, layout.Dividers, 2)

	left, ok := layout.BoundsOf(p[0])
	require.True(t, ok)
	require.Equal(t, texel.Bounds{X: 0, Y: 0, W: 60, H: 20}, left)
	top, _ := layout.BoundsOf(p[1])
	bottom, _ := layout.BoundsOf(p[2])
	require.Equal(t, 61, top.X)
	require.Equal(t, 20, top.W)
	require.Equal(t, top.H+bottom.H+1, 20)
	require.Equal(t, top.Y+top.H+1, bottom.Y)

	require.Equal(t, []texel.Bounds{left, {X: 61, Y: 0, W: 20, H: 20}}, axis.Boxes())
}
