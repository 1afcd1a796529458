// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package workspace

import (
	"testing"

	"github.com/framegrace/tungsten/defaults"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	focus *texel.FocusHandle
	label string
}

func (t *testItem) FocusHandle() *texel.FocusHandle { return t.focus }

func (t *testItem) Render(th *theme.Theme, bounds texel.Bounds) [][]texel.Cell {
	buf := texel.NewBuffer(bounds.W, bounds.H, th.Base())
	texel.DrawText(buf, 0, 0, bounds.W, "item:"+t.label, th.Base())
	return buf
}

func (t *testItem) TabContent(params TabContentParams) theme.Label {
	if params.Selected {
		return theme.Label{Text: t.label}
	}
	return theme.Label{Text: t.label, Color: theme.LabelMuted}
}

// otherItem has no tab label renderer.
type otherItem struct {
	focus *texel.FocusHandle
}

func (o *otherItem) FocusHandle() *texel.FocusHandle { return o.focus }

func (o *otherItem) Render(th *theme.Theme, bounds texel.Bounds) [][]texel.Cell {
	return texel.NewBuffer(bounds.W, bounds.H, th.Base())
}

func newTestApp(t *testing.T) *texel.App {
	t.Helper()
	store, err := settings.NewStore(defaults.Settings())
	require.NoError(t, err)
	app := texel.NewApp(store)
	require.NoError(t, theme.Init(app))
	require.NoError(t, Init(app))
	t.Cleanup(app.Executor().Shutdown)
	return app
}

func newTestWorkspace(t *testing.T) (*texel.App, *Workspace) {
	t.Helper()
	app := newTestApp(t)
	ws := OpenNew(app, nil)
	require.NotNil(t, ws)
	return app, ws
}

func newItem(ws *Workspace, label string) *View[*testItem] {
	return NewView(&testItem{focus: ws.Window().Focus().NewHandle(), label: label})
}

func labels(p *Pane) []string {
	out := make([]string, 0, p.Len())
	for _, item := range p.Items() {
		out = append(out, item.TabContent(TabContentParams{Selected: true}).Text)
	}
	return out
}

func requireInvariants(t *testing.T, p *Pane) {
	t.Helper()
	if p.Len() > 0 {
		require.GreaterOrEqual(t, p.ActiveItemIndex(), 0)
		require.Less(t, p.ActiveItemIndex(), p.Len())
	}
	seen := make(map[texel.EntityID]bool)
	for _, entry := range p.ActivationHistory() {
		require.False(t, seen[entry.ID], "duplicate history entry %s", entry.ID)
		seen[entry.ID] = true
	}
}
