// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDefaults = `{
  "ui_font_size": 14,
  "confirm_quit": false,
  "dmx_output": {"enable_artnet": false, "enable_sacn": true}
}`

type fontSettings struct {
	Size float64 `mapstructure:"ui_font_size"`
}

type quitSettings struct {
	ConfirmQuit bool `mapstructure:"confirm_quit"`
}

type dmxSettings struct {
	ArtNet bool `mapstructure:"enable_artnet"`
	SACN   bool `mapstructure:"enable_sacn"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore([]byte(testDefaults))
	require.NoError(t, err)
	return s
}

func TestRegisterAndGet(t *testing.T) {
	s := newTestStore(t)
	added, err := RegisterSection[fontSettings](s, "")
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 14.0, Get[fontSettings](s).Size)

	added, err = RegisterSection[dmxSettings](s, "dmx_output")
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, dmxSettings{SACN: true}, Get[dmxSettings](s))
}

func TestRegisterIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	_, err := RegisterSection[fontSettings](s, "")
	require.NoError(t, err)
	keys := s.Keys()

	added, err := Register(s, "other", func(Sources) (fontSettings, error) {
		return fontSettings{Size: 99}, nil
	})
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, keys, s.Keys())
	require.Equal(t, 14.0, Get[fontSettings](s).Size)
}

func TestGetUnregisteredPanics(t *testing.T) {
	s := newTestStore(t)
	require.Panics(t, func() { Get[quitSettings](s) })
	_, ok := TryGet[quitSettings](s)
	require.False(t, ok)
}

func TestUserSettingsMergeOverDefaults(t *testing.T) {
	s := newTestStore(t)
	_, err := RegisterSection[dmxSettings](s, "dmx_output")
	require.NoError(t, err)
	_, err = RegisterSection[fontSettings](s, "")
	require.NoError(t, err)

	notified := 0
	cancel := s.Observe(func() { notified++ })

	require.NoError(t, s.SetUserSettings([]byte(`{"ui_font_size": null, "dmx_output": {"enable_artnet": true}}`)))
	require.Equal(t, dmxSettings{ArtNet: true, SACN: true}, Get[dmxSettings](s))
	require.Equal(t, 14.0, Get[fontSettings](s).Size, "null must not overwrite the default")
	require.Equal(t, 1, notified)

	cancel()
	require.NoError(t, s.SetUserSettings([]byte(`{}`)))
	require.Equal(t, 1, notified)
	require.Equal(t, dmxSettings{SACN: true}, Get[dmxSettings](s))
}

func TestUserSettingsMustBeObject(t *testing.T) {
	s := newTestStore(t)
	err := s.SetUserSettings([]byte(`[1, 2]`))
	require.True(t, errors.Is(err, ErrNotObject))
}

func TestFailedReloadKeepsPreviousValue(t *testing.T) {
	s := newTestStore(t)
	_, err := RegisterSection[dmxSettings](s, "dmx_output")
	require.NoError(t, err)

	require.NoError(t, s.SetUserSettings([]byte(`{"dmx_output": "off"}`)))
	require.Equal(t, dmxSettings{SACN: true}, Get[dmxSettings](s))
}

func TestLoaderReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tungsten.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ui_font_size": 18}`), 0o644))
	t.Setenv("TUNGSTEN_CONFIRM_QUIT", "true")

	s := newTestStore(t)
	_, err := RegisterSection[fontSettings](s, "")
	require.NoError(t, err)
	_, err = RegisterSection[quitSettings](s, "")
	require.NoError(t, err)

	loader := NewLoader(s, path)
	require.NoError(t, loader.Load())
	require.Equal(t, path, loader.Path())
	require.Equal(t, 18.0, Get[fontSettings](s).Size)
	require.True(t, Get[quitSettings](s).ConfirmQuit)
}

func TestLoaderMissingExplicitFile(t *testing.T) {
	s := newTestStore(t)
	loader := NewLoader(s, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, loader.Load())
}

func TestMergedAndFlatten(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetUserSettings([]byte(`{"dmx_output": {"enable_artnet": true}}`)))
	merged := s.Merged()
	require.True(t, merged.GetBool("dmx_output", "enable_artnet", false))
	require.Equal(t, 14.0, merged.GetFloat("", "ui_font_size", 0))

	flat := Flatten(merged)
	require.Equal(t, true, flat["dmx_output.enable_sacn"])
}
