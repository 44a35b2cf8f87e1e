// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import "iter"

// RefResolver resolves $ref strings to schemas.
// Return nil if the ref cannot be resolved.
type RefResolver func(ref string) *Schema

// Traverse returns an iterator over all schemas in the tree.
// It handles cycles by tracking visited schemas.
// If resolver is provided, it follows $ref links to their targets.
func Traverse(schema *Schema, resolver RefResolver) iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		visited := make(map[*Schema]struct{})
		traverseWithVisited(schema, resolver, yield, visited)
	}
}

func traverseWithVisited(schema *Schema, resolver RefResolver, yield func(*Schema) bool, visited map[*Schema]struct{}) bool {
	if schema == nil {
		return true
	}
	if _, ok := visited[schema]; ok {
		return true
	}
	visited[schema] = struct{}{}

	if !yield(schema) {
		return false
	}

	if schema.Ref != "" && resolver != nil {
		if resolved := resolver(schema.Ref); resolved != nil {
			if !traverseWithVisited(resolved, resolver, yield, visited) {
				return false
			}
		}
	}

	var children []*Schema
	children = append(children, mapValues(schema.Properties)...)
	children = append(children, mapValues(schema.PatternProperties)...)
	children = append(children, schema.AdditionalProperties, schema.PropertyNames, schema.UnevaluatedProperties)
	children = append(children, schema.Items, schema.Contains, schema.UnevaluatedItems)
	children = append(children, schema.PrefixItems...)
	children = append(children, schema.AllOf...)
	children = append(children, schema.AnyOf...)
	children = append(children, schema.OneOf...)
	children = append(children, schema.Not, schema.If, schema.Then, schema.Else)
	children = append(children, mapValues(schema.DependentSchemas)...)
	children = append(children, mapValues(schema.Defs)...)
	children = append(children, mapValues(schema.Definitions)...)

	for _, s := range children {
		if !traverseWithVisited(s, resolver, yield, visited) {
			return false
		}
	}
	return true
}

// mapValues returns the values of m in key order so traversal is deterministic.
func mapValues(m map[string]*Schema) []*Schema {
	values := make([]*Schema, 0, len(m))
	for _, k := range sortedKeys(m) {
		values = append(values, m[k])
	}
	return values
}
