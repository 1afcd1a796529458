// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package statusbar

import (
	"strings"
	"testing"

	"github.com/framegrace/tungsten/defaults"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
	"github.com/stretchr/testify/require"
)

type labelled struct {
	focus *texel.FocusHandle
	text  string
}

func (l *labelled) FocusHandle() *texel.FocusHandle { return l.focus }

func (l *labelled) Render(th *theme.Theme, b texel.Bounds) [][]texel.Cell {
	return texel.NewBuffer(b.W, b.H, th.Base())
}

func (l *labelled) TabContent(workspace.TabContentParams) theme.Label {
	return theme.Label{Text: l.text}
}

func newWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	store, err := settings.NewStore(defaults.Settings())
	require.NoError(t, err)
	app := texel.NewApp(store)
	require.NoError(t, theme.Init(app))
	require.NoError(t, workspace.Init(app))
	return workspace.OpenNew(app, nil)
}

func TestIndicatorFollowsActiveItem(t *testing.T) {
	ws := newWorkspace(t)
	ind := Install(ws)
	require.True(t, ind.Label().Empty())

	item := workspace.NewView(&labelled{focus: ws.Window().Focus().NewHandle(), text: "Cues"})
	ws.AddItemToActivePane(item, -1)
	require.Equal(t, "Cues", ind.Label().Text)

	th := theme.Active(ws.App())
	row := ind.Render(th, 40)
	require.NotEmpty(t, row)
	require.LessOrEqual(t, len(row), 40)
	text := texel.BufferText([][]texel.Cell{row}, 0)
	require.Contains(t, text, "Cues")
	require.Contains(t, text, string(leftTabSeparator))
	require.Contains(t, text, string(rightTabSeparator))

	ws.ActivePane().RemoveItem(0, false, false)
	row = ind.Render(th, 40)
	require.True(t, strings.Contains(texel.BufferText([][]texel.Cell{row}, 0), NoItemText))
}

func TestIndicatorClipsToWidth(t *testing.T) {
	ws := newWorkspace(t)
	ind := Install(ws)
	th := theme.Active(ws.App())
	require.Len(t, ind.Render(th, 3), 3)
	require.Nil(t, ind.Render(th, 0))
}
