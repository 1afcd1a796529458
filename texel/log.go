// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/log.go
// Summary: Verbose trace logging toggled by --verbose.

package texel

import (
	"log"
	"sync/atomic"
)

var verbose atomic.Bool

// SetVerbose enables or disables Debugf output.
func SetVerbose(on bool) {
	verbose.Store(on)
}

// Verbose reports whether debug tracing is enabled.
func Verbose() bool {
	return verbose.Load()
}

// Debugf logs only when verbose tracing is enabled.
func Debugf(format string, args ...interface{}) {
	if verbose.Load() {
		log.Printf(format, args...)
	}
}
