// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/cells.go
// Summary: Cell buffers, bounds and text drawing helpers shared by renderers.

package texel

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Bounds is an absolute cell rectangle; [X, X+W) by [Y, Y+H).
type Bounds struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no cells.
func (b Bounds) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Contains reports whether the cell (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// NewBuffer allocates an h-row, w-column buffer filled with blanks.
func NewBuffer(w, h int, style tcell.Style) [][]Cell {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	buf := make([][]Cell, h)
	for y := range buf {
		buf[y] = make([]Cell, w)
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
	return buf
}

// Fill paints every cell of b inside buf.
func Fill(buf [][]Cell, b Bounds, ch rune, style tcell.Style) {
	for y := b.Y; y < b.Y+b.H; y++ {
		if y < 0 || y >= len(buf) {
			continue
		}
		for x := b.X; x < b.X+b.W; x++ {
			if x < 0 || x >= len(buf[y]) {
				continue
			}
			buf[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// DrawText writes text at (x, y), clipped to maxWidth columns, and returns
// the number of columns consumed. Wide runes occupy two columns; the
// trailing column is left blank in the same style.
func DrawText(buf [][]Cell, x, y, maxWidth int, text string, style tcell.Style) int {
	if y < 0 || y >= len(buf) || maxWidth <= 0 {
		return 0
	}
	row := buf[y]
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		col := x + used
		if col >= 0 && col < len(row) {
			row[col] = Cell{Ch: r, Style: style}
		}
		if w == 2 && col+1 >= 0 && col+1 < len(row) {
			row[col+1] = Cell{Ch: ' ', Style: style}
		}
		used += w
	}
	return used
}

// TextWidth returns the display width of text in columns.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width columns, ending with tail when
// something was cut.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, tail)
}

// Blit copies src into dst with its top-left corner at (x, y).
func Blit(dst, src [][]Cell, x, y int) {
	for sy, row := range src {
		dy := y + sy
		if dy < 0 || dy >= len(dst) {
			continue
		}
		for sx, cell := range row {
			dx := x + sx
			if dx < 0 || dx >= len(dst[dy]) {
				continue
			}
			dst[dy][dx] = cell
		}
	}
}

// BufferText flattens one row of buf to a string, mostly for tests and logs.
func BufferText(buf [][]Cell, y int) string {
	if y < 0 || y >= len(buf) {
		return ""
	}
	runes := make([]rune, 0, len(buf[y]))
	for _, c := range buf[y] {
		if c.Ch == 0 {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, c.Ch)
	}
	return string(runes)
}
