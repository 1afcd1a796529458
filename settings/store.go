// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/store.go
// Summary: Typed settings registry computed from default and user content.
// Usage: One Store per application, passed to constructors. Features
// register their setting types at init and read them with Get.

package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"reflect"
	"sync"
)

// ErrNotObject is returned when settings content is not a JSON object.
var ErrNotObject = errors.New("settings: content is not an object")

// Sources are the layers a setting is computed from.
type Sources struct {
	Default Content
	User    Content
}

// Merged returns user content merged over the defaults.
func (s Sources) Merged() Content {
	merged := Clone(s.Default)
	if merged == nil {
		merged = make(Content)
	}
	MergeInto(Section(merged), Section(s.User))
	return merged
}

type entry struct {
	key   string
	load  func(Sources) (any, error)
	value any
}

// Store holds the registered setting values. It is not a process global;
// tests build their own.
type Store struct {
	mu        sync.RWMutex
	defaults  Content
	user      Content
	entries   map[reflect.Type]*entry
	order     []reflect.Type
	observers map[int]func()
	nextObs   int
}

// NewStore creates a store seeded with the given default settings JSON.
func NewStore(defaultJSON []byte) (*Store, error) {
	s := &Store{
		defaults:  make(Content),
		user:      make(Content),
		entries:   make(map[reflect.Type]*entry),
		observers: make(map[int]func()),
	}
	if len(defaultJSON) > 0 {
		if err := s.SetDefaultSettings(defaultJSON); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Parse decodes a settings document. Empty input is an empty document.
func Parse(data []byte) (Content, error) {
	if len(data) == 0 {
		return make(Content), nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if raw == nil {
		return make(Content), nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Content(obj), nil
}

// Register adds the setting type T under key. load computes the value from
// the current sources. Registering T again is a no-op and returns false.
func Register[T any](s *Store, key string, load func(Sources) (T, error)) (bool, error) {
	typ := reflect.TypeFor[T]()
	s.mu.Lock()
	if _, exists := s.entries[typ]; exists {
		s.mu.Unlock()
		return false, nil
	}
	e := &entry{
		key:  key,
		load: func(src Sources) (any, error) { return load(src) },
	}
	value, err := e.load(s.sourcesLocked())
	if err != nil {
		s.mu.Unlock()
		return false, fmt.Errorf("register setting %q: %w", key, err)
	}
	e.value = value
	s.entries[typ] = e
	s.order = append(s.order, typ)
	s.mu.Unlock()
	return true, nil
}

// RegisterSection registers T decoded from the named section of the merged
// content. An empty section name decodes the document root.
func RegisterSection[T any](s *Store, section string) (bool, error) {
	return Register(s, section, func(src Sources) (T, error) {
		var out T
		err := Decode(src.Merged(), section, &out)
		return out, err
	})
}

// Get returns the current value of T. Reading an unregistered setting is a
// programming error and panics.
func Get[T any](s *Store) T {
	v, ok := TryGet[T](s)
	if !ok {
		panic(fmt.Sprintf("settings: %s is not registered", reflect.TypeFor[T]()))
	}
	return v
}

// TryGet returns the current value of T and whether it is registered.
func TryGet[T any](s *Store) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value.(T), true
}

// Keys returns the registered setting keys in registration order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.order))
	for _, typ := range s.order {
		keys = append(keys, s.entries[typ].key)
	}
	return keys
}

// SetDefaultSettings replaces the default layer.
func (s *Store) SetDefaultSettings(data []byte) error {
	content, err := Parse(data)
	if err != nil {
		return fmt.Errorf("default settings: %w", err)
	}
	s.mu.Lock()
	s.defaults = content
	s.mu.Unlock()
	s.recompute()
	return nil
}

// SetUserSettings replaces the user layer from JSON.
func (s *Store) SetUserSettings(data []byte) error {
	content, err := Parse(data)
	if err != nil {
		return fmt.Errorf("user settings: %w", err)
	}
	s.SetUserContent(content)
	return nil
}

// SetUserContent replaces the user layer.
func (s *Store) SetUserContent(content Content) {
	if content == nil {
		content = make(Content)
	}
	s.mu.Lock()
	s.user = Clone(content)
	s.mu.Unlock()
	s.recompute()
}

// Defaults returns a copy of the default layer.
func (s *Store) Defaults() Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Clone(s.defaults)
}

// Merged returns the effective settings document.
func (s *Store) Merged() Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sourcesLocked().Merged()
}

// Observe registers fn to run after every recompute. The returned function
// removes it.
func (s *Store) Observe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextObs++
	id := s.nextObs
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Store) sourcesLocked() Sources {
	return Sources{Default: s.defaults, User: s.user}
}

// recompute reloads every registered value. A setting whose loader fails
// keeps its previous value.
func (s *Store) recompute() {
	s.mu.Lock()
	src := s.sourcesLocked()
	for _, typ := range s.order {
		e := s.entries[typ]
		value, err := e.load(src)
		if err != nil {
			log.Printf("Settings: Failed to load %q, keeping previous value: %v", e.key, err)
			continue
		}
		e.value = value
	}
	observers := make([]func(), 0, len(s.observers))
	for id := 1; id <= s.nextObs; id++ {
		if fn, ok := s.observers[id]; ok {
			observers = append(observers, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}
