// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSettingsCommandMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tungsten.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "tungsten-light", "dmx_output": {"enable_sacn": true}}`), 0o644))

	out, err := execute(t, "--config", path, "settings")
	require.NoError(t, err)

	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	require.Equal(t, "tungsten-light", merged["theme"])
	dmx := merged["dmx_output"].(map[string]any)
	require.Equal(t, true, dmx["enable_sacn"])
	require.Equal(t, false, dmx["enable_artnet"])
}

func TestSettingsCommandRejectsMissingFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "settings")
	require.Error(t, err)
}

func TestActionsCommandListsBindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tungsten.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	out, err := execute(t, "--config", path, "actions")
	require.NoError(t, err)
	require.Contains(t, out, "tungsten::Quit")
	require.Contains(t, out, "Ctrl+Q (tungsten::Quit)")
	require.Contains(t, out, "pane::ActivateItem")
	require.Contains(t, out, "Alt+1 (pane::ActivateItem 0)")
}
