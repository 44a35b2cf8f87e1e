// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides JSON Schema loading, traversal and class enumeration utilities.
package jschema

import (
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema is the JSON Schema model used throughout jschema2py.
type Schema = jsonschema.Schema

// Format is a schema document encoding.
type Format int

// Supported schema document encodings.
const (
	JSON Format = iota
	YAML
)

// FormatFromPath returns YAML for .yaml and .yml paths and JSON otherwise.
func FormatFromPath(p string) Format {
	if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
		return YAML
	}
	return JSON
}

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#")
}

// IsInternalRef returns true if ref points into the current document.
func IsInternalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}

// IsEnum reports whether s describes an enumeration rather than an object.
func IsEnum(s *Schema) bool {
	return s != nil && len(s.Enum) > 0 && len(s.Properties) == 0
}
