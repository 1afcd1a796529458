// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tungsten/inspect.go
// Summary: Non-interactive subcommands for settings and actions.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/framegrace/tungsten/registry"
	"github.com/framegrace/tungsten/tungsten"
	"github.com/spf13/cobra"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the merged settings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := loadSettings(opts)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(store.Merged())
		},
	}
}

func newActionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List registered actions and their key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := loadSettings(opts)
			if err != nil {
				return err
			}
			app, err := tungsten.New(store)
			if err != nil {
				return err
			}
			defer app.Executor().Shutdown()

			keys := make(map[string][]string)
			for _, b := range app.Keymap().Bindings() {
				target := b.Action
				if b.Arg != "" {
					target += " " + b.Arg
				}
				keys[b.Action] = append(keys[b.Action], fmt.Sprintf("%s (%s)", tungsten.DisplayChord(b.Chord), target))
			}
			return printActions(cmd.OutOrStdout(), app.Actions().ListByNamespace(), keys)
		},
	}
}

func printActions(out io.Writer, byNamespace map[string][]*registry.Entry, keys map[string][]string) error {
	namespaces := make([]string, 0, len(byNamespace))
	for ns := range byNamespace {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	for _, ns := range namespaces {
		fmt.Fprintf(out, "%s\n", ns)
		for _, entry := range byNamespace[ns] {
			fmt.Fprintf(out, "  %-32s %s\n", entry.Manifest.Name, entry.Manifest.Description)
			for _, k := range keys[entry.Manifest.Name] {
				fmt.Fprintf(out, "      %s\n", k)
			}
		}
	}
	return nil
}
