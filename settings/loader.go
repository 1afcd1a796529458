// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/loader.go
// Summary: Reads and watches the user settings file with viper.
// Usage: The binary creates one Loader for the app store, calls Load once
// and Watch with the UI executor's Defer so reloads apply on the UI thread.

package settings

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TUNGSTEN_CONFIRM_QUIT.
const EnvPrefix = "TUNGSTEN"

// Loader feeds the user layer of a Store from a settings file and the
// environment.
type Loader struct {
	v        *viper.Viper
	store    *Store
	explicit bool
}

// NewLoader creates a loader for store. An empty configFile searches the
// config directory for tungsten.json, tungsten.yaml or tungsten.toml.
func NewLoader(store *Store, configFile string) *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Env overrides only resolve for keys viper knows about.
	for key, value := range Flatten(store.Defaults()) {
		v.SetDefault(key, value)
	}

	l := &Loader{v: v, store: store, explicit: configFile != ""}
	if configFile != "" {
		v.SetConfigFile(configFile)
		return l
	}
	v.SetConfigName("tungsten")
	if dir, err := ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	} else {
		log.Printf("Settings: Failed to resolve config dir: %v", err)
	}
	return l
}

// Load reads the settings file (if any) and applies it to the store. A
// missing file is not an error unless it was named explicitly.
func (l *Loader) Load() error {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read settings: %w", err)
		}
		log.Printf("Settings: No user settings file found, using defaults")
	} else {
		log.Printf("Settings: Loaded user settings from %s", l.v.ConfigFileUsed())
	}
	l.store.SetUserContent(Content(l.v.AllSettings()))
	return nil
}

// Path returns the settings file in use, or "" when none was found.
func (l *Loader) Path() string {
	return l.v.ConfigFileUsed()
}

// Watch reloads the store whenever the settings file changes. post must
// run its argument on the goroutine that owns the store's consumers.
func (l *Loader) Watch(post func(func())) {
	if l.v.ConfigFileUsed() == "" {
		log.Printf("Settings: Nothing to watch")
		return
	}
	l.v.OnConfigChange(func(ev fsnotify.Event) {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
			return
		}
		content := Content(l.v.AllSettings())
		log.Printf("Settings: %s changed, reloading", ev.Name)
		post(func() {
			l.store.SetUserContent(content)
		})
	})
	l.v.WatchConfig()
}
