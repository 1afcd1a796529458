// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/dim.go
// Summary: Colour blending used to fade the window behind a prompt.

package texel

import "github.com/gdamore/tcell/v2"

// promptDim is how far the window behind a prompt fades toward the backdrop.
const promptDim = 0.4

// Dim blends the foreground and background of every cell toward color.
// intensity 0 leaves buf unchanged, 1 paints it solid. Cells with default
// colours take fallback instead.
func Dim(buf [][]Cell, color, fallback tcell.Color, intensity float32) {
	if intensity <= 0 || !color.Valid() {
		return
	}
	intensity = min(intensity, 1)
	for y := range buf {
		for x := range buf[y] {
			cell := &buf[y][x]
			fg, bg, _ := cell.Style.Decompose()
			if !fg.Valid() {
				fg = fallback
			}
			if !bg.Valid() {
				bg = fallback
			}
			cell.Style = cell.Style.
				Foreground(blendColor(fg, color, intensity)).
				Background(blendColor(bg, color, intensity))
		}
	}
}

// blendColor performs a linear interpolation between two colours.
func blendColor(original, blend tcell.Color, intensity float32) tcell.Color {
	if !original.Valid() {
		return original
	}
	r1, g1, b1 := original.RGB()
	r2, g2, b2 := blend.RGB()
	r := int32(float32(r1)*(1-intensity) + float32(r2)*intensity)
	g := int32(float32(g1)*(1-intensity) + float32(g2)*intensity)
	b := int32(float32(b1)*(1-intensity) + float32(b2)*intensity)
	return tcell.NewRGBColor(r, g, b)
}
