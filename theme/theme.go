// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Color palettes and a bounded cache of derived tcell styles.

package theme

import (
	"log"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const styleCacheSize = 256

// Colors is the palette a theme renders with.
type Colors struct {
	Background     tcell.Color
	Foreground     tcell.Color
	Muted          tcell.Color
	Accent         tcell.Color
	Border         tcell.Color
	BorderActive   tcell.Color
	TabBar         tcell.Color
	TabActive      tcell.Color
	TabInactive    tcell.Color
	StatusBar      tcell.Color
	StatusBarText  tcell.Color
	StatusAccent   tcell.Color
	Prompt         tcell.Color
	PromptSelected tcell.Color
	Placeholder    tcell.Color
}

type styleKey struct {
	fg, bg          tcell.Color
	bold, underline bool
	reverse         bool
}

// Theme is a named palette. Styles are derived on demand and cached.
type Theme struct {
	Name   string
	Colors Colors
	styles *lru.Cache[styleKey, tcell.Style]
}

// New creates a theme from a palette.
func New(name string, colors Colors) *Theme {
	cache, err := lru.New[styleKey, tcell.Style](styleCacheSize)
	if err != nil {
		// Only fails for a non-positive size.
		panic(err)
	}
	return &Theme{Name: name, Colors: colors, styles: cache}
}

// Style returns the style for the given colors and attributes.
func (t *Theme) Style(fg, bg tcell.Color, bold, underline, reverse bool) tcell.Style {
	key := styleKey{fg: fg, bg: bg, bold: bold, underline: underline, reverse: reverse}
	if st, ok := t.styles.Get(key); ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(fg).Background(bg)
	if bold {
		st = st.Bold(true)
	}
	if underline {
		st = st.Underline(true)
	}
	if reverse {
		st = st.Reverse(true)
	}
	t.styles.Add(key, st)
	return st
}

// Base is the default text style on the window background.
func (t *Theme) Base() tcell.Style {
	return t.Style(t.Colors.Foreground, t.Colors.Background, false, false, false)
}

// CachedStyles reports how many styles are cached.
func (t *Theme) CachedStyles() int {
	return t.styles.Len()
}

// Set holds the themes selectable by name.
type Set struct {
	mu       sync.RWMutex
	themes   map[string]*Theme
	fallback string
}

// DefaultThemeName is used when the configured theme is unknown.
const DefaultThemeName = "tungsten-dark"

// NewSet returns a set containing the built-in themes.
func NewSet() *Set {
	s := &Set{themes: make(map[string]*Theme), fallback: DefaultThemeName}
	s.Add(New("tungsten-dark", Colors{
		Background:     tcell.NewRGBColor(0x1e, 0x1f, 0x24),
		Foreground:     tcell.NewRGBColor(0xdc, 0xdf, 0xe4),
		Muted:          tcell.NewRGBColor(0x7f, 0x84, 0x8e),
		Accent:         tcell.NewRGBColor(0x61, 0xaf, 0xef),
		Border:         tcell.NewRGBColor(0x3b, 0x3f, 0x4c),
		BorderActive:   tcell.NewRGBColor(0x61, 0xaf, 0xef),
		TabBar:         tcell.NewRGBColor(0x23, 0x25, 0x2c),
		TabActive:      tcell.NewRGBColor(0x1e, 0x1f, 0x24),
		TabInactive:    tcell.NewRGBColor(0x2c, 0x2f, 0x37),
		StatusBar:      tcell.NewRGBColor(0x23, 0x25, 0x2c),
		StatusBarText:  tcell.NewRGBColor(0xa9, 0xb1, 0xbd),
		StatusAccent:   tcell.NewRGBColor(0x98, 0xc3, 0x79),
		Prompt:         tcell.NewRGBColor(0x2c, 0x2f, 0x37),
		PromptSelected: tcell.NewRGBColor(0x61, 0xaf, 0xef),
		Placeholder:    tcell.NewRGBColor(0x5c, 0x63, 0x70),
	}))
	s.Add(New("tungsten-light", Colors{
		Background:     tcell.NewRGBColor(0xfa, 0xfa, 0xfa),
		Foreground:     tcell.NewRGBColor(0x38, 0x3a, 0x42),
		Muted:          tcell.NewRGBColor(0xa0, 0xa1, 0xa7),
		Accent:         tcell.NewRGBColor(0x40, 0x78, 0xf2),
		Border:         tcell.NewRGBColor(0xd4, 0xd4, 0xd6),
		BorderActive:   tcell.NewRGBColor(0x40, 0x78, 0xf2),
		TabBar:         tcell.NewRGBColor(0xea, 0xea, 0xeb),
		TabActive:      tcell.NewRGBColor(0xfa, 0xfa, 0xfa),
		TabInactive:    tcell.NewRGBColor(0xdb, 0xdb, 0xdc),
		StatusBar:      tcell.NewRGBColor(0xea, 0xea, 0xeb),
		StatusBarText:  tcell.NewRGBColor(0x69, 0x6c, 0x77),
		StatusAccent:   tcell.NewRGBColor(0x50, 0xa1, 0x4f),
		Prompt:         tcell.NewRGBColor(0xdb, 0xdb, 0xdc),
		PromptSelected: tcell.NewRGBColor(0x40, 0x78, 0xf2),
		Placeholder:    tcell.NewRGBColor(0xa0, 0xa1, 0xa7),
	}))
	return s
}

// Add registers or replaces a theme.
func (s *Set) Add(t *Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[t.Name] = t
}

// Lookup returns the named theme, falling back to the default theme.
func (s *Set) Lookup(name string) *Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.themes[name]; ok {
		return t
	}
	if name != "" {
		log.Printf("Theme: Unknown theme %q, using %s", name, s.fallback)
	}
	return s.themes[s.fallback]
}

// Names returns the registered theme names, sorted.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.themes))
	for name := range s.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
