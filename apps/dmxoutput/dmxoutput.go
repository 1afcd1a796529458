// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/dmxoutput/dmxoutput.go
// Summary: DMX output settings and the status bar indicator that shows them.

package dmxoutput

import (
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/theme"
	"github.com/framegrace/tungsten/workspace"
)

// SettingsKey is the settings section holding the output switches.
const SettingsKey = "dmx_output"

// Settings selects which network protocols carry DMX.
type Settings struct {
	EnableArtNet bool `mapstructure:"enable_artnet"`
	EnableSACN   bool `mapstructure:"enable_sacn"`
}

// Init registers the settings and adds an Indicator to every new workspace.
func Init(app *texel.App) error {
	if _, err := settings.RegisterSection[Settings](app.Settings(), SettingsKey); err != nil {
		return err
	}
	workspace.ObserveNew(app, func(ws *workspace.Workspace) {
		ws.StatusBar().AddRightItem(NewIndicator(ws))
	})
	return nil
}

// Indicator shows whether ArtNet and sACN output are enabled.
type Indicator struct {
	workspace texel.WeakRef[workspace.Workspace]
	focus     *texel.FocusHandle
}

// NewIndicator creates an indicator for ws.
func NewIndicator(ws *workspace.Workspace) *Indicator {
	return &Indicator{
		workspace: ws.WeakRef(),
		focus:     ws.Window().Focus().NewHandle(),
	}
}

func (i *Indicator) FocusHandle() *texel.FocusHandle { return i.focus }

// SetActivePaneItem implements workspace.StatusItemView; output state does
// not depend on the active item.
func (i *Indicator) SetActivePaneItem(workspace.ItemHandle) {}

func (i *Indicator) Render(th *theme.Theme, width int) []texel.Cell {
	ws, ok := i.workspace.Upgrade()
	if !ok || width <= 0 {
		return nil
	}
	s, _ := settings.TryGet[Settings](ws.App().Settings())

	bg := th.Colors.StatusBar
	row := texel.NewBuffer(width, 1, th.Style(th.Colors.StatusBarText, bg, false, false, false))
	col := texel.DrawText(row, 0, 0, width, " DMX ", th.Style(th.Colors.StatusAccent, bg, true, false, false))
	col += drawProtocol(row, col, width, th, "ArtNet", s.EnableArtNet)
	col += texel.DrawText(row, col, 0, width-col, " ", th.Base())
	col += drawProtocol(row, col, width, th, "sACN", s.EnableSACN)
	col += texel.DrawText(row, col, 0, width-col, " ", th.Base())
	return row[0][:min(col, width)]
}

func drawProtocol(row [][]texel.Cell, col, width int, th *theme.Theme, name string, enabled bool) int {
	mark, color := "○", theme.LabelMuted
	if enabled {
		mark, color = "●", theme.LabelAccent
	}
	return texel.DrawText(row, col, 0, width-col, mark+" "+name, th.LabelStyle(color, th.Colors.StatusBar))
}
