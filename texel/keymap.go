// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/keymap.go
// Summary: Key bindings from tcell key events to registered action names.

package texel

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyBinding maps one key chord to an action name and optional argument.
type KeyBinding struct {
	Chord  string
	Key    tcell.Key
	Rune   rune
	Mods   tcell.ModMask
	Action string
	Arg    string
}

func (b KeyBinding) matches(ev *tcell.EventKey) bool {
	if b.Key == tcell.KeyRune {
		if ev.Key() != tcell.KeyRune || ev.Rune() != b.Rune {
			return false
		}
		mask := tcell.ModAlt | tcell.ModCtrl
		return ev.Modifiers()&mask == b.Mods&mask
	}
	if ev.Key() != b.Key {
		return false
	}
	// tcell reports control keys with ModCtrl already implied.
	return ev.Modifiers()&^tcell.ModCtrl == b.Mods&^tcell.ModCtrl
}

// Keymap resolves key events to bindings. Later bindings for the same chord
// replace earlier ones.
type Keymap struct {
	bindings []KeyBinding
}

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{}
}

var namedKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEscape
	m["esc"] = tcell.KeyEscape
	m["return"] = tcell.KeyEnter
	return m
}()

// ParseChord parses chords like "ctrl+p", "alt+1", "shift+right" or "f2".
func ParseChord(chord string) (KeyBinding, error) {
	b := KeyBinding{Chord: chord}
	parts := strings.Split(strings.ToLower(strings.TrimSpace(chord)), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return b, fmt.Errorf("empty chord %q", chord)
	}
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl", "control":
			b.Mods |= tcell.ModCtrl
		case "alt", "meta":
			b.Mods |= tcell.ModAlt
		case "shift":
			b.Mods |= tcell.ModShift
		default:
			return b, fmt.Errorf("chord %q: unknown modifier %q", chord, mod)
		}
	}
	key := parts[len(parts)-1]

	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if b.Mods&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			b.Key = tcell.KeyCtrlA + tcell.Key(r-'a')
			return b, nil
		}
		b.Key = tcell.KeyRune
		b.Rune = r
		return b, nil
	}
	if key == "space" {
		b.Key = tcell.KeyRune
		b.Rune = ' '
		return b, nil
	}
	if k, ok := namedKeys[key]; ok {
		b.Key = k
		return b, nil
	}
	return b, fmt.Errorf("chord %q: unknown key %q", chord, key)
}

// Bind adds a binding. target is "namespace::Action" optionally followed by
// a space and an argument.
func (k *Keymap) Bind(chord, target string) error {
	b, err := ParseChord(chord)
	if err != nil {
		return err
	}
	name, arg, _ := strings.Cut(strings.TrimSpace(target), " ")
	if name == "" {
		return fmt.Errorf("chord %q: empty action", chord)
	}
	b.Action = name
	b.Arg = strings.TrimSpace(arg)
	for i, existing := range k.bindings {
		if existing.Key == b.Key && existing.Rune == b.Rune && existing.Mods == b.Mods {
			k.bindings[i] = b
			return nil
		}
	}
	k.bindings = append(k.bindings, b)
	return nil
}

// Load binds every chord of a settings section, logging malformed entries.
// Chords are applied in sorted order so reloads are deterministic.
func (k *Keymap) Load(section map[string]any) {
	chords := make([]string, 0, len(section))
	for chord := range section {
		chords = append(chords, chord)
	}
	sort.Strings(chords)
	for _, chord := range chords {
		target, ok := section[chord].(string)
		if !ok {
			log.Printf("Keymap: binding %q is not a string", chord)
			continue
		}
		if err := k.Bind(chord, target); err != nil {
			log.Printf("Keymap: %v", err)
		}
	}
}

// Lookup returns the binding matching ev.
func (k *Keymap) Lookup(ev *tcell.EventKey) (KeyBinding, bool) {
	for _, b := range k.bindings {
		if b.matches(ev) {
			return b, true
		}
	}
	return KeyBinding{}, false
}

// Bindings returns a copy of all bindings.
func (k *Keymap) Bindings() []KeyBinding {
	return append([]KeyBinding(nil), k.bindings...)
}
