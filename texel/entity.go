// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/entity.go
// Summary: Stable identity tokens for items, panes, windows and focus handles.

package texel

import "github.com/google/uuid"

// EntityID identifies an entity for its whole lifetime. Equality of two
// entities is always decided by EntityID, never by structural comparison.
type EntityID uuid.UUID

// NilEntityID is the zero identity; no live entity ever carries it.
var NilEntityID EntityID

// NewEntityID returns a fresh random identity.
func NewEntityID() EntityID {
	return EntityID(uuid.New())
}

func (id EntityID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight hex digits, handy for log lines.
func (id EntityID) Short() string {
	return id.String()[:8]
}

// IsNil reports whether id is the zero identity.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}
