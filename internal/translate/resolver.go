// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// NameResolver maps a class's schema property names to target-language identifiers.
// Each translator implements this interface to control how properties are named in its output.
type NameResolver interface {
	// PropertyName returns the identifier for schemaPropertyName within className.
	// It must be a pure function of its inputs.
	PropertyName(className, schemaPropertyName string) string
}
