// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/manifest.go
// Summary: Defines the metadata that describes a registered action.

package registry

import (
	"fmt"
	"strings"
)

// Action is a named command dispatched through windows and workspaces.
// Concrete action types are plain structs; handlers receive them back and
// type-assert to read their arguments.
type Action interface {
	ActionName() string
}

// Manifest describes an action's metadata.
type Manifest struct {
	// Name is the unique identifier, "namespace::Action" (e.g. "workspace::CloseWindow").
	Name string `json:"name"`

	// DisplayName is the human-readable name shown in menus and help.
	DisplayName string `json:"displayName"`

	// Description provides a brief explanation of what the action does.
	Description string `json:"description,omitempty"`

	// TakesArgument marks actions built from a keymap argument (e.g. "pane::ActivateItem 2").
	TakesArgument bool `json:"takesArgument,omitempty"`
}

// Namespace returns the part of the name before "::".
func (m *Manifest) Namespace() string {
	ns, _, ok := strings.Cut(m.Name, "::")
	if !ok {
		return ""
	}
	return ns
}

// Validate checks that the manifest is well-formed.
func (m *Manifest) Validate() error {
	if m == nil {
		return fmt.Errorf("manifest is nil")
	}
	ns, action, ok := strings.Cut(m.Name, "::")
	if !ok || ns == "" || action == "" {
		return fmt.Errorf("action name %q must have the form namespace::Action", m.Name)
	}
	if strings.ContainsAny(m.Name, " \t") {
		return fmt.Errorf("action name %q must not contain whitespace", m.Name)
	}
	if m.DisplayName == "" {
		m.DisplayName = action
	}
	return nil
}
