// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/weak.go
// Summary: Weak handles that async continuations upgrade before touching state.

package texel

import (
	"sync/atomic"
	"weak"
)

// WeakRef refers to a value without keeping it alive. A ref also dies when
// its owner releases it explicitly, e.g. when a window closes while the
// value is still reachable from elsewhere. Copies share the release state.
type WeakRef[T any] struct {
	ptr      weak.Pointer[T]
	released *atomic.Bool
}

// MakeWeak returns a weak ref to v.
func MakeWeak[T any](v *T) WeakRef[T] {
	return WeakRef[T]{ptr: weak.Make(v), released: new(atomic.Bool)}
}

// Upgrade returns the value if it is still alive.
func (w WeakRef[T]) Upgrade() (*T, bool) {
	if w.released == nil || w.released.Load() {
		return nil, false
	}
	v := w.ptr.Value()
	return v, v != nil
}

// Release marks the ref dead for every copy.
func (w WeakRef[T]) Release() {
	if w.released != nil {
		w.released.Store(true)
	}
}
