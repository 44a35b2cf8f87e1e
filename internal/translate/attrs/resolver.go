// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package attrs

import (
	"github.com/dacolabs/jschema2py/internal/hints"
	"github.com/dacolabs/jschema2py/internal/translate"
)

// PropertyNameArgument is the PropertyNameHint argument holding the Python name.
const PropertyNameArgument = "pythonPropertyName"

type resolver struct {
	hints hints.Table
}

// PropertyName returns the snake_case Python name of a schema property,
// taking the base name from a PropertyNameHint when one is present.
func (r *resolver) PropertyName(className, schemaPropertyName string) string {
	base := schemaPropertyName
	if name, ok := r.hints.PropertyName(className, schemaPropertyName, PropertyNameArgument); ok {
		base = name
	}
	return translate.ToSnakeCase(base)
}
