// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/content.go
// Summary: Raw settings content with typed accessors, cloning and merging.

package settings

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Content is a raw settings document as decoded from JSON, YAML or TOML.
type Content map[string]interface{}

// Section stores key/value pairs for a settings section.
type Section map[string]interface{}

// Section returns the named section or nil if missing. Dotted names walk
// nested sections; the empty name is the document root.
func (c Content) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	cur := Section(c)
	for _, part := range strings.Split(sectionName, ".") {
		next, ok := asSection(cur[part])
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

func asSection(raw interface{}) (Section, bool) {
	switch v := raw.(type) {
	case Section:
		return v, true
	case Content:
		return Section(v), true
	case map[string]interface{}:
		return Section(v), true
	}
	return nil, false
}

// GetString retrieves a string value from the content.
func (c Content) GetString(sectionName, key, defaultValue string) string {
	if val, ok := c.Section(sectionName)[key]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return defaultValue
}

// GetFloat retrieves a float value from the content.
func (c Content) GetFloat(sectionName, key string, defaultValue float64) float64 {
	if val, ok := c.Section(sectionName)[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case json.Number:
			if parsed, err := v.Float64(); err == nil {
				return parsed
			}
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return defaultValue
}

// GetBool retrieves a boolean value from the content.
func (c Content) GetBool(sectionName, key string, defaultValue bool) bool {
	if val, ok := c.Section(sectionName)[key]; ok {
		switch v := val.(type) {
		case bool:
			return v
		case string:
			if parsed, err := strconv.ParseBool(v); err == nil {
				return parsed
			}
		case float64:
			return v != 0
		case int:
			return v != 0
		}
	}
	return defaultValue
}

// Clone returns a deep copy of the content; nested sections are copied,
// leaf values are shared.
func Clone(c Content) Content {
	if c == nil {
		return nil
	}
	return Content(cloneSection(Section(c)))
}

func cloneSection(s Section) Section {
	out := make(Section, len(s))
	for key, value := range s {
		if nested, ok := asSection(value); ok {
			out[key] = cloneSection(nested)
			continue
		}
		out[key] = value
	}
	return out
}

// MergeInto merges source over target: objects merge key by key, null
// values in source never overwrite, anything else replaces.
func MergeInto(target, source Section) {
	for key, value := range source {
		if value == nil {
			continue
		}
		srcNested, srcIsSection := asSection(value)
		if srcIsSection {
			if dstNested, ok := asSection(target[key]); ok {
				MergeInto(dstNested, srcNested)
				target[key] = dstNested
				continue
			}
			target[key] = cloneSection(srcNested)
			continue
		}
		target[key] = value
	}
}

// Flatten returns "a.b.c" keyed leaves, the shape viper defaults expect.
func Flatten(c Content) map[string]interface{} {
	out := make(map[string]interface{})
	flattenInto(out, "", Section(c))
	return out
}

func flattenInto(out map[string]interface{}, prefix string, s Section) {
	for key, value := range s {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := asSection(value); ok && len(nested) > 0 {
			flattenInto(out, full, nested)
			continue
		}
		out[full] = value
	}
}
