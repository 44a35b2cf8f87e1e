// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package attrs

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

const pythonNone = "None"

// defaultExpr returns the default expression of an optional attribute.
func defaultExpr(prop *jsonschema.Schema) (string, error) {
	if prop == nil || len(prop.Default) == 0 {
		return pythonNone, nil
	}

	value, err := decodeDefault(prop.Default)
	if err != nil {
		return "", err
	}
	if isFalsy(value) {
		return pythonNone, nil
	}

	switch {
	case prop.Type == "string":
		return quote(stringForm(value)), nil
	case prop.Type == "array":
		// attr.Factory builds a new list per instance; a literal default
		// would be one list shared by every instance.
		return "attr.Factory(lambda: " + pythonLiteral(value) + ")", nil
	case prop.Type == "" && len(prop.Types) == 0 && len(prop.Enum) > 0:
		return quote(stringForm(value)), nil
	default:
		return stringForm(value), nil
	}
}

func decodeDefault(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrapf(err, "decoding default %s", raw)
	}
	return v, nil
}

// isFalsy reports whether a default carries no value: null, false, zero or
// the empty string. Empty arrays and objects are real defaults.
func isFalsy(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	}
	return false
}

// stringForm renders a top-level default without quoting it: strings are
// used verbatim, anything else becomes a Python literal.
func stringForm(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return pythonLiteral(v)
}

// pythonLiteral renders a decoded JSON value as a Python expression.
func pythonLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return pythonNone
	case bool:
		if v {
			return "True"
		}
		return "False"
	case json.Number:
		return v.String()
	case string:
		return quote(v)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = pythonLiteral(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = quote(k) + ": " + pythonLiteral(v[k])
		}
		return "{" + strings.Join(items, ", ") + "}"
	}
	return pythonNone
}

// quote returns s as a double-quoted Python string literal. Control
// characters without a short escape are written as \xNN.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '"':
			sb.WriteString(`\"`)
		default:
			writeEscapedControl(&sb, r, false)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// writeEscapedControl writes r, escaping C0 control characters and DEL.
// keepNewline leaves \n unescaped for multi-line literals.
func writeEscapedControl(sb *strings.Builder, r rune, keepNewline bool) {
	switch {
	case r == '\n' && keepNewline:
		sb.WriteRune(r)
	case r == '\n':
		sb.WriteString(`\n`)
	case r == '\r':
		sb.WriteString(`\r`)
	case r == '\t':
		sb.WriteString(`\t`)
	case r < 0x20 || r == 0x7f:
		fmt.Fprintf(sb, `\x%02x`, r)
	default:
		sb.WriteRune(r)
	}
}
