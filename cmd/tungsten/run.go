// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tungsten/run.go
// Summary: Boots settings, logging and the terminal, then runs the app.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/framegrace/tungsten/defaults"
	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"
	"github.com/framegrace/tungsten/tungsten"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("tungsten needs an interactive terminal")

// setupLogging sends the standard logger to the log file. It returns the
// file to close on exit.
func setupLogging(opts *rootOptions) (io.Closer, error) {
	texel.SetVerbose(opts.verbose)
	path := opts.logFile
	if path == "" {
		var err error
		if path, err = settings.DefaultLogPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

// loadSettings builds the store from the embedded defaults and the user's
// settings file.
func loadSettings(opts *rootOptions) (*settings.Store, *settings.Loader, error) {
	store, err := settings.NewStore(defaults.Settings())
	if err != nil {
		return nil, nil, fmt.Errorf("default settings: %w", err)
	}
	loader := settings.NewLoader(store, opts.configFile)
	if err := loader.Load(); err != nil {
		return nil, nil, err
	}
	return store, loader, nil
}

func runUI(opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	logFile, err := setupLogging(opts)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.Printf("========== starting tungsten %s ==========", tungsten.Version)

	store, loader, err := loadSettings(opts)
	if err != nil {
		return err
	}
	app, err := tungsten.New(store)
	if err != nil {
		return err
	}
	if path := loader.Path(); path != "" {
		log.Printf("Tungsten: Watching %s", path)
		loader.Watch(app.Defer)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	tungsten.OpenWorkspace(app)
	if err := app.Run(texel.NewTcellScreenDriver(screen)); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Printf("Tungsten: Exited cleanly")
	return nil
}
