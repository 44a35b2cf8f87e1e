// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/jschema2py/internal/translate"
)

// ErrDuplicateClass indicates two definitions that map to the same class name.
var ErrDuplicateClass = errors.New("duplicate class name")

// Class is one class schema found in a document.
type Class struct {
	// Name is the generated class name, e.g. "ArtifactLocation".
	Name string
	// DefName is the definition key the class came from; empty for the root.
	DefName string
	Schema  *Schema
}

// Classes enumerates the class schemas of a document: every entry of
// definitions and $defs (a $defs entry shadows a definitions entry with the
// same key), sorted by class name. If rootName is not empty the root schema
// is appended as a class with that name.
func Classes(root *Schema, rootName string) ([]Class, error) {
	if root == nil {
		return nil, nil
	}

	defs := make(map[string]*Schema, len(root.Definitions)+len(root.Defs))
	for name, s := range root.Definitions {
		defs[name] = s
	}
	for name, s := range root.Defs {
		defs[name] = s
	}

	byName := make(map[string]string, len(defs))
	classes := make([]Class, 0, len(defs)+1)
	for _, defName := range sortedKeys(defs) {
		name := translate.ToPascalCase(defName)
		if !translate.IsIdentifier(name) {
			return nil, errors.Newf("definition %q does not yield a valid class name", defName)
		}
		if other, ok := byName[name]; ok {
			return nil, errors.Wrapf(ErrDuplicateClass, "%s (definitions %q and %q)", name, other, defName)
		}
		byName[name] = defName
		classes = append(classes, Class{Name: name, DefName: defName, Schema: defs[defName]})
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })

	if rootName != "" {
		if other, ok := byName[rootName]; ok {
			return nil, errors.Wrapf(ErrDuplicateClass, "%s (root and definition %q)", rootName, other)
		}
		classes = append(classes, Class{Name: rootName, Schema: root})
	}
	return classes, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
