// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Implements the action registry used to build actions by name.
// Usage: Features register their actions at init; the keymap and the CLI
// look actions up by name.

package registry

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// Factory builds an action instance from an optional argument.
type Factory func(arg string) (Action, error)

// Entry represents a registered action with its metadata and factory.
type Entry struct {
	Manifest *Manifest
	Factory  Factory
}

// Registry manages the collection of known actions. It is an explicit
// object; each application (and each test) owns its own.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]*Entry
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		actions: make(map[string]*Entry),
	}
}

// Register adds an action. Registering a name that already exists keeps the
// first registration and returns false.
func (r *Registry) Register(manifest *Manifest, factory Factory) (bool, error) {
	if err := manifest.Validate(); err != nil {
		return false, err
	}
	if factory == nil {
		return false, fmt.Errorf("action %s: nil factory", manifest.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.actions[manifest.Name]; exists {
		return false, nil
	}
	r.actions[manifest.Name] = &Entry{Manifest: manifest, Factory: factory}
	log.Printf("Registry: Registered action '%s'", manifest.Name)
	return true, nil
}

// MustRegister is Register for init paths where a malformed manifest is a
// programming error.
func (r *Registry) MustRegister(manifest *Manifest, factory Factory) {
	if _, err := r.Register(manifest, factory); err != nil {
		panic(err)
	}
}

// Simple registers an argument-less action whose value is always a.
func (r *Registry) Simple(a Action, displayName, description string) {
	r.MustRegister(&Manifest{
		Name:        a.ActionName(),
		DisplayName: displayName,
		Description: description,
	}, func(string) (Action, error) { return a, nil })
}

// Get retrieves an entry by name.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.actions[name]
	return entry, ok
}

// Build creates an action instance by name.
func (r *Registry) Build(name, arg string) (Action, error) {
	entry, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown action %q", name)
	}
	action, err := entry.Factory(arg)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return action, nil
}

// List returns all actions sorted by name.
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*Entry, 0, len(r.actions))
	for _, entry := range r.actions {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Manifest.Name < entries[j].Manifest.Name
	})
	return entries
}

// ListByNamespace returns actions grouped by namespace.
func (r *Registry) ListByNamespace() map[string][]*Entry {
	namespaces := make(map[string][]*Entry)
	for _, entry := range r.List() {
		ns := entry.Manifest.Namespace()
		namespaces[ns] = append(namespaces[ns], entry)
	}
	return namespaces
}

// Count returns the total number of registered actions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}
