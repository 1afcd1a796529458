// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/paths.go
// Summary: Path helpers for tungsten settings and logs.

package settings

import (
	"os"
	"path/filepath"
)

const appDirName = "tungsten"

// ConfigDir returns the directory searched for tungsten.{json,yaml,toml}.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appDirName), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/tungsten/tungsten.log, falling back
// to the user cache directory.
func DefaultLogPath() (string, error) {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, appDirName, "tungsten.log"), nil
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, appDirName, "tungsten.log"), nil
}
