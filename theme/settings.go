// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/settings.go
// Summary: Font and theme settings, and app-level theme lookup.

package theme

import (
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
)

// Settings are the root-level appearance settings.
type Settings struct {
	UIFontFamily string  `mapstructure:"ui_font_family"`
	UIFontSize   float64 `mapstructure:"ui_font_size"`
	Theme        string  `mapstructure:"theme"`
}

// Init registers the appearance settings and installs the theme set as an
// app global. Calling it again is harmless.
func Init(app *texel.App) error {
	if _, err := settings.RegisterSection[Settings](app.Settings(), ""); err != nil {
		return err
	}
	if _, ok := texel.TryGlobal[*Set](app); !ok {
		texel.SetGlobal(app, NewSet())
	}
	return nil
}

// Active returns the theme selected by the current settings.
func Active(app *texel.App) *Theme {
	set, ok := texel.TryGlobal[*Set](app)
	if !ok {
		set = NewSet()
		texel.SetGlobal(app, set)
	}
	s, _ := settings.TryGet[Settings](app.Settings())
	return set.Lookup(s.Theme)
}
