// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package attrs translates class schemas into Python classes declared with attrs.
package attrs

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"

	"github.com/dacolabs/jschema2py/internal/hints"
	"github.com/dacolabs/jschema2py/internal/logger"
	"github.com/dacolabs/jschema2py/internal/output"
	"github.com/dacolabs/jschema2py/internal/translate"
	"github.com/dacolabs/jschema2py/internal/version"
)

const indent = "    "

var (
	// ErrInvalidClassName indicates a class name that is not a usable Python identifier.
	ErrInvalidClassName = errors.New("invalid class name")

	// ErrUnknownRequired indicates a required name with no matching property.
	ErrUnknownRequired = errors.New("required property not defined")

	// ErrDuplicateAttribute indicates two properties that resolve to the same identifier.
	ErrDuplicateAttribute = errors.New("duplicate attribute name")
)

// typeMapping maps primitive schema types to Python base classes.
var typeMapping = map[string]string{
	"string":  "str",
	"integer": "int",
	"number":  "float",
	"boolean": "bool",
}

// Translator translates class schemas to attrs class definitions.
type Translator struct {
	// Hints adjusts generated names; it is only read.
	Hints hints.Table
	// Version is written in the generation header. Defaults to version.Short().
	Version string
	// Logger receives diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// attribute is one generated class member.
type attribute struct {
	schemaName string
	ident      string
	required   bool
	defaultSrc string
}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "attrs"
}

// FileName returns the private module file a class is written to.
func (t *Translator) FileName(className string) string {
	return translate.ModuleName(className) + ".py"
}

// Generate translates a class schema and writes it through w.
func (t *Translator) Generate(className string, schema *jsonschema.Schema, w output.Writer) error {
	lines, err := t.Translate(className, schema)
	if err != nil {
		return err
	}
	name := t.FileName(className)
	if err := w.Write(name, lines); err != nil {
		return errors.Wrapf(err, "writing class %s", className)
	}
	return nil
}

// Translate returns the lines of the Python module declaring className.
func (t *Translator) Translate(className string, schema *jsonschema.Schema) ([]string, error) {
	if !translate.IsIdentifier(className) || pythonKeywords[className] {
		return nil, errors.Wrapf(ErrInvalidClassName, "%q", className)
	}
	if schema == nil {
		schema = &jsonschema.Schema{}
	}
	log := t.logger().With(zap.String(logger.FieldClass, className))

	attrs, err := t.attributes(className, schema, log)
	if err != nil {
		return nil, err
	}

	lines := t.header()
	lines = append(lines, "import attr", "", "")
	lines = append(lines, "@attr.s", "class "+className+"("+parentType(schema, log)+"):")

	if schema.Description != "" {
		lines = append(lines, indent+docstring(schema.Description), "")
	}

	if len(attrs) == 0 {
		lines = append(lines, indent+"pass")
	}
	for _, a := range attrs {
		lines = append(lines, a.declaration())
	}

	log.Debug("translated class", zap.Int("attributes", len(attrs)))
	return lines, nil
}

// PackageInit returns the __init__.py that re-exports the given classes.
func (t *Translator) PackageInit(classNames []string) (string, []string) {
	names := append([]string(nil), classNames...)
	sort.Strings(names)

	lines := t.header()
	for _, name := range names {
		lines = append(lines, "from ."+translate.ModuleName(name)+" import "+name)
	}
	return "__init__.py", lines
}

func (t *Translator) header() []string {
	v := t.Version
	if v == "" {
		v = version.Short()
	}
	return []string{
		"# This file was generated by jschema2py version " + v + ".",
		"# Do not edit this file.",
		"",
	}
}

func (t *Translator) logger() *zap.Logger {
	if t.Logger == nil {
		return zap.NewNop()
	}
	return t.Logger
}

// parentType picks the base class: a mapped primitive type, dict for
// schemas without properties, object otherwise.
func parentType(schema *jsonschema.Schema, log *zap.Logger) string {
	if len(schema.Types) > 0 {
		log.Warn("type lists are not supported, falling back to an untyped base class",
			zap.Strings("types", schema.Types))
	}
	if parent, ok := typeMapping[schema.Type]; ok {
		return parent
	}
	if schema.Properties == nil {
		return "dict"
	}
	return "object"
}

// attributes returns the class members in declaration order: required
// properties sorted by name, then optional properties sorted by name.
// attrs rejects a mandatory attribute declared after one with a default.
func (t *Translator) attributes(className string, schema *jsonschema.Schema, log *zap.Logger) ([]attribute, error) {
	if len(schema.Properties) == 0 {
		return nil, nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; !ok {
			return nil, errors.WithHint(
				errors.Wrapf(ErrUnknownRequired, "%s.%s", className, name),
				"every name in \"required\" must be a key of \"properties\"")
		}
		required[name] = true
	}

	var requiredNames, optionalNames []string
	for name := range schema.Properties {
		if required[name] {
			requiredNames = append(requiredNames, name)
		} else {
			optionalNames = append(optionalNames, name)
		}
	}
	sort.Strings(requiredNames)
	sort.Strings(optionalNames)

	r := &resolver{hints: t.Hints}
	seen := make(map[string]string, len(schema.Properties))
	attrs := make([]attribute, 0, len(schema.Properties))
	for _, name := range append(requiredNames, optionalNames...) {
		a, err := t.attribute(r, className, name, schema.Properties[name], required[name])
		if err != nil {
			return nil, err
		}
		if other, ok := seen[a.ident]; ok {
			return nil, errors.Wrapf(ErrDuplicateAttribute, "%s.%s: properties %q and %q", className, a.ident, other, name)
		}
		seen[a.ident] = name
		if prop := schema.Properties[name]; prop != nil && prop.Ref != "" {
			log.Warn("$ref properties are emitted untyped", zap.String(logger.FieldProperty, name), zap.String("ref", prop.Ref))
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

func (t *Translator) attribute(r translate.NameResolver, className, name string, prop *jsonschema.Schema, required bool) (attribute, error) {
	a := attribute{
		schemaName: name,
		ident:      escapeKeyword(r.PropertyName(className, name)),
		required:   required,
	}
	if !required {
		expr, err := defaultExpr(prop)
		if err != nil {
			return attribute{}, errors.Wrapf(err, "%s.%s", className, name)
		}
		a.defaultSrc = expr
	}
	return a, nil
}

func (a attribute) declaration() string {
	var sb strings.Builder
	sb.WriteString(indent + a.ident + " = attr.ib(")
	if !a.required {
		sb.WriteString("default=" + a.defaultSrc + ", ")
	}
	sb.WriteString(`metadata={"schema_property_name": ` + quote(a.schemaName) + "})")
	return sb.String()
}

// docstring wraps text in triple quotes, escaping anything that would end
// the docstring early.
func docstring(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `"""`, `\"\"\"`)
	if strings.HasSuffix(text, `"`) {
		text = text[:len(text)-1] + `\"`
	}
	var sb strings.Builder
	sb.WriteString(`"""`)
	for _, r := range text {
		writeEscapedControl(&sb, r, true)
	}
	sb.WriteString(`"""`)
	return sb.String()
}

// New returns a Translator configured with opts.
func New(opts translate.Options) translate.Translator {
	return &Translator{Hints: opts.Hints, Logger: opts.Logger}
}
