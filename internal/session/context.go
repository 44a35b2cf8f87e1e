// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/jschema2py/internal/config"
	"github.com/dacolabs/jschema2py/internal/hints"
	"github.com/dacolabs/jschema2py/internal/jschema"
)

var (
	// ErrNotInitialized indicates no jschema2py.yaml was found in the project directory.
	ErrNotInitialized = errors.New("not in a jschema2py project (jschema2py.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the schema file referenced by config doesn't exist.
	ErrSchemaNotFound = errors.New("schema file not found")

	// ErrInvalidSchema indicates the schema file exists but couldn't be parsed.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrInvalidHints indicates the hints file couldn't be loaded.
	ErrInvalidHints = errors.New("invalid hints")
)

// ConfigFileName is the name of the jschema2py configuration file.
const ConfigFileName = "jschema2py.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the project configuration and the documents it points to.
type Context struct {
	// Dir is the absolute project directory.
	Dir string

	Config *config.Config

	// Schema is the root schema with external file refs inlined.
	Schema *jschema.Schema

	// Hints is empty when the project has no hints file.
	Hints hints.Table
}

// OutputDir returns the absolute output directory of the project.
func (c *Context) OutputDir() string {
	return c.resolve(c.Config.OutputDir())
}

func (c *Context) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the project Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current directory")
	}
	return LoadDir(ctx, cwd)
}

// LoadDir is Load for an explicit project directory.
func LoadDir(ctx context.Context, dir string) (context.Context, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve project directory")
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, errors.WithHint(ErrNotInitialized, "run \"jschema2py init\" to create one")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Newf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, errors.Newf("%w: %v", ErrInvalidConfig, validateErr)
	}

	projCtx := &Context{Dir: dir, Config: cfg}

	schemaPath := projCtx.resolve(cfg.Schema)
	if _, statErr := os.Stat(schemaPath); statErr != nil {
		return nil, errors.Newf("%w: %s", ErrSchemaNotFound, schemaPath)
	}
	schemaDir, schemaFile := filepath.Split(schemaPath)
	loader := jschema.NewLoader(os.DirFS(schemaDir))
	schema, err := loader.LoadFile(schemaFile)
	if err != nil {
		return nil, errors.Newf("%w: %v", ErrInvalidSchema, err)
	}
	if err := loader.ResolveRefs(schema, path.Dir(schemaFile)); err != nil {
		return nil, errors.Newf("%w: %v", ErrInvalidSchema, err)
	}
	projCtx.Schema = schema

	projCtx.Hints = hints.Table{}
	if cfg.Hints != "" {
		hintsDir, hintsFile := filepath.Split(projCtx.resolve(cfg.Hints))
		table, err := hints.Load(os.DirFS(hintsDir), hintsFile)
		if err != nil {
			return nil, errors.Newf("%w: %v", ErrInvalidHints, err)
		}
		projCtx.Hints = table
	}

	return context.WithValue(ctx, contextKey{}, projCtx), nil
}

// From extracts the project Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if projCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return projCtx
	}
	return nil
}
