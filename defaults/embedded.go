// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default settings.

package defaults

import _ "embed"

//go:embed default.json
var defaultSettings []byte

// Settings returns the embedded default settings JSON. Every registered
// setting has a value here, so lookups never miss before user settings load.
func Settings() []byte {
	return append([]byte(nil), defaultSettings...)
}
