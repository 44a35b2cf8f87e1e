// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a schema name to a valid snake_case identifier.
// Case changes start a new word, with acronyms kept together
// ("HTTPSConnection" -> "https_connection"). Underscores are kept as
// written, so "__init__" and "type_" keep their shape. Runs of other
// characters that are not letters or digits act as a single separator.
// A leading digit gets an underscore prefix, and an input with no letters,
// digits or underscores becomes "_".
func ToSnakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder
	sep := false
	last := rune(0)
	for i, r := range runes {
		if r == '_' {
			sb.WriteRune(r)
			last = r
			sep = false
			continue
		}
		if !isWordRune(r) {
			sep = sb.Len() > 0 && last != '_'
			continue
		}
		if i > 0 && sb.Len() > 0 && last != '_' && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sep = true
			}
		}
		if sep {
			sb.WriteByte('_')
			sep = false
		}
		last = unicode.ToLower(r)
		sb.WriteRune(last)
	}

	result := sb.String()
	switch {
	case result == "":
		return "_"
	case unicode.IsDigit([]rune(result)[0]):
		return "_" + result
	}
	return result
}

// ToPascalCase converts a snake_case, kebab-case or camelCase string to
// PascalCase for class name generation.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !isWordRune(r)
	})

	var sb strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		sb.WriteRune(unicode.ToUpper(runes[0]))
		sb.WriteString(string(runes[1:]))
	}

	return sb.String()
}

// ModuleName returns the private module name for a class,
// e.g. "ArtifactLocation" -> "_artifact_location".
func ModuleName(className string) string {
	return "_" + strings.TrimLeft(ToSnakeCase(className), "_")
}

// IsIdentifier reports whether s is a letter or underscore followed by
// letters, digits and underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
