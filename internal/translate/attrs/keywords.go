// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package attrs

// pythonKeywords are the hard keywords of Python 3 (keyword.kwlist).
// Soft keywords such as match, case and type are valid identifiers.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// escapeKeyword prefixes identifiers that collide with a Python keyword.
func escapeKeyword(ident string) string {
	if pythonKeywords[ident] {
		return "_" + ident
	}
	return ident
}
