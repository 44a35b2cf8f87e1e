// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package hints provides code generation hints: caller-supplied directives,
// keyed by class and property, that adjust how a property is generated.
package hints

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// PropertyNameHint renames the generated identifier of a property.
const PropertyNameHint = "PropertyNameHint"

// ErrInvalidHintKey indicates a hints file key that is not "<ClassName>.<propertyName>".
var ErrInvalidHintKey = errors.New("invalid hint key")

// Key identifies the property a hint applies to.
type Key struct {
	Class    string
	Property string
}

// ParseKey splits a "<ClassName>.<propertyName>" key at its first dot.
func ParseKey(s string) (Key, error) {
	class, property, ok := strings.Cut(s, ".")
	if !ok || class == "" || property == "" {
		return Key{}, errors.Wrapf(ErrInvalidHintKey, "%q", s)
	}
	return Key{Class: class, Property: property}, nil
}

// String returns the on-disk form of the key.
func (k Key) String() string {
	return k.Class + "." + k.Property
}

// Hint is a single directive.
type Hint struct {
	Kind      string         `json:"kind" yaml:"kind"`
	Arguments map[string]any `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// Table maps properties to their ordered hints. It is never written during
// generation, so it is safe for concurrent readers.
type Table map[Key][]Hint

// Find returns the first hint of the given kind for a property.
func (t Table) Find(class, property, kind string) (Hint, bool) {
	for _, h := range t[Key{Class: class, Property: property}] {
		if h.Kind == kind {
			return h, true
		}
	}
	return Hint{}, false
}

// PropertyName returns the renamed identifier a PropertyNameHint supplies
// under argument, if any. Non-string or empty arguments are ignored.
func (t Table) PropertyName(class, property, argument string) (string, bool) {
	h, ok := t.Find(class, property, PropertyNameHint)
	if !ok {
		return "", false
	}
	name, ok := h.Arguments[argument].(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
