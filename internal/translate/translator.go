// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides class schema translation utilities.
package translate

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"

	"github.com/dacolabs/jschema2py/internal/hints"
	"github.com/dacolabs/jschema2py/internal/output"
)

// Translator defines the interface all class translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "attrs")
	Name() string

	// Translate converts one class schema into the ordered source lines of a class.
	Translate(className string, schema *jsonschema.Schema) ([]string, error)

	// Generate translates a class and hands the lines to w under FileName(className).
	Generate(className string, schema *jsonschema.Schema, w output.Writer) error

	// FileName returns the output file name for a class (e.g., "Widget" -> "_widget.py")
	FileName(className string) string

	// PackageInit returns the package index file name and lines for the given classes.
	PackageInit(classNames []string) (string, []string)
}

// Options configures a translator for one project.
type Options struct {
	// Hints is shared read-only by every translation.
	Hints hints.Table
	// Logger receives diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Factory creates a translator for a project.
type Factory func(Options) Translator

// Register maps translator names to their factories.
type Register map[string]Factory

// Get retrieves a translator factory by name.
func (r Register) Get(name string) (Factory, error) {
	f, ok := r[name]
	if !ok {
		return nil, errors.Newf("unknown translator: %s", name)
	}
	return f, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
