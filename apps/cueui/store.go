// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/cueui/store.go
// Summary: SQLite-backed storage for the cue list.
// Usage: Enabled by setting cue_list.database; without it cues live only in
// memory for the session.

package cueui

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/framegrace/tungsten/settings"
	"github.com/framegrace/tungsten/texel"

	_ "modernc.org/sqlite"
)

// SettingsKey is the settings section for the cue list.
const SettingsKey = "cue_list"

// Settings configures cue storage.
type Settings struct {
	Database string `mapstructure:"database"`
}

const cueSchema = `
CREATE TABLE IF NOT EXISTS cues (
    number REAL PRIMARY KEY,
    label  TEXT NOT NULL
);
`

// Store persists cue entries keyed by cue number.
type Store struct {
	path string
	db   *sql.DB
}

// OpenStore opens (creating if needed) the cue database at path.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(cueSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

// Path returns the database file.
func (s *Store) Path() string { return s.path }

// Load returns every cue ordered by number.
func (s *Store) Load(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT number, label FROM cues ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("load cues: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Number, &e.Label); err != nil {
			return nil, fmt.Errorf("scan cue: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Save inserts e or relabels the cue with the same number.
func (s *Store) Save(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cues (number, label) VALUES (?, ?)
		 ON CONFLICT(number) DO UPDATE SET label = excluded.label`,
		e.Number, e.Label)
	if err != nil {
		return fmt.Errorf("save cue %g: %w", e.Number, err)
	}
	return nil
}

// Delete removes the cue with the given number.
func (s *Store) Delete(ctx context.Context, number float64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cues WHERE number = ?`, number); err != nil {
		return fmt.Errorf("delete cue %g: %w", number, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// storeFor returns the app's cue store, opening it on first use. It returns
// nil when no database is configured or it cannot be opened.
func storeFor(app *texel.App) *Store {
	s, _ := settings.TryGet[Settings](app.Settings())
	if s.Database == "" {
		return nil
	}
	current, ok := texel.TryGlobal[*Store](app)
	if ok && current.path == s.Database {
		return current
	}
	if ok {
		current.Close()
	}
	store, err := OpenStore(s.Database)
	if err != nil {
		log.Printf("CueList: Failed to open %s: %v", s.Database, err)
		return nil
	}
	log.Printf("CueList: Using %s", s.Database)
	texel.SetGlobal(app, store)
	return store
}
