// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/decode.go
// Summary: Decodes settings sections into typed structs.

package settings

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode decodes the named section of c into out, a pointer to a struct
// tagged with `mapstructure`. Loosely typed input ("true", "14") is
// accepted so environment overrides decode like file values.
func Decode(c Content, section string, out any) error {
	raw := c.Section(section)
	if raw == nil {
		if section != "" && c != nil {
			if _, present := c[section]; present {
				return fmt.Errorf("section %q: %w", section, ErrNotObject)
			}
		}
		raw = Section{}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("section %q: %w", section, err)
	}
	if err := dec.Decode(map[string]interface{}(raw)); err != nil {
		return fmt.Errorf("section %q: %w", section, err)
	}
	return nil
}
