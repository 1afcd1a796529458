// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/label.go
// Summary: Rendered tab labels.

package theme

import "github.com/gdamore/tcell/v2"

// LabelColor selects a palette entry for a label.
type LabelColor int

const (
	LabelDefault LabelColor = iota
	LabelMuted
	LabelAccent
)

// Label is the rendered form of a tab title.
type Label struct {
	Text  string
	Color LabelColor
}

// Empty reports whether the label has no text.
func (l Label) Empty() bool {
	return l.Text == ""
}

// LabelStyle resolves a label color against the theme on background bg.
func (t *Theme) LabelStyle(c LabelColor, bg tcell.Color) tcell.Style {
	switch c {
	case LabelMuted:
		return t.Style(t.Colors.Muted, bg, false, false, false)
	case LabelAccent:
		return t.Style(t.Colors.Accent, bg, true, false, false)
	}
	return t.Style(t.Colors.Foreground, bg, false, false, false)
}
