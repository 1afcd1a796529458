// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tungsten/main.go
// Summary: The tungsten command: runs the UI or inspects settings and actions.
// Usage: `tungsten [--config file] [--log-file path] [--verbose]`.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configFile string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "tungsten",
		Short:         "Terminal lighting console workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(opts)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "settings file (default is tungsten.{json,yaml,toml} in the user config dir)")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default is tungsten.log in the user state dir)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSettingsCmd(opts), newActionsCmd(opts))
	return root
}
