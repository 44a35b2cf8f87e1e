// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/jschema2py/internal/config"
	"github.com/dacolabs/jschema2py/internal/jschema"
	"github.com/dacolabs/jschema2py/internal/session"
	"github.com/dacolabs/jschema2py/internal/translate"
	"github.com/dacolabs/jschema2py/internal/translate/attrs"
)

const testSchema = `{
  "definitions": {
    "widget": {
      "type": "object",
      "properties": {"id": {"type": "string"}, "size": {"type": "integer", "default": 3}},
      "required": ["id"]
    },
    "bag": {
      "type": "object",
      "properties": {"items": {"type": "array", "default": []}}
    },
    "color": {"enum": ["red", "green"]}
  }
}`

func testTranslators() translate.Register {
	return translate.Register{"attrs": attrs.New}
}

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(testTranslators(), nil)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// setupProject creates a project directory holding the schema and changes into it.
func setupProject(t *testing.T, schema string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.schema.json"), []byte(schema), 0o600))
	t.Chdir(dir)
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	return string(data)
}

func TestInit_NonInteractive(t *testing.T) {
	dir := setupProject(t, testSchema)

	out, err := execute(t, "init", "--schema", "model.schema.json", "--root", "Model", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialization completed")

	cfg, err := config.Load(filepath.Join(dir, session.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "model.schema.json", cfg.Schema)
	assert.Equal(t, "Model", cfg.Root)
	assert.Empty(t, cfg.Output)
}

func TestInit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		args    []string
		wantErr string
	}{
		{
			name:    "missing schema flag",
			args:    []string{"init", "--non-interactive"},
			wantErr: "non-interactive mode requires --schema",
		},
		{
			name:    "schema file missing",
			args:    []string{"init", "--schema", "nope.json", "--non-interactive"},
			wantErr: "schema file not found: nope.json",
		},
		{
			name:    "invalid root name",
			args:    []string{"init", "--schema", "model.schema.json", "--root", "not valid", "--non-interactive"},
			wantErr: `root class name "not valid" is not a valid identifier`,
		},
		{
			name: "already initialized",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, session.ConfigFileName), []byte("version: 1\n"), 0o600))
			},
			args:    []string{"init", "--schema", "model.schema.json", "--non-interactive"},
			wantErr: "jschema2py.yaml already exists; project already initialized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t, testSchema)
			if tt.setup != nil {
				tt.setup(t, dir)
			}
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestGenerate(t *testing.T) {
	dir := setupProject(t, testSchema)
	_, err := execute(t, "init", "--schema", "model.schema.json", "--non-interactive")
	require.NoError(t, err)

	out, err := execute(t, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Generating 3 class(es)...")
	assert.Contains(t, out, "Color (enum, skipped)")
	assert.Contains(t, out, "Generated 2 class(es)")

	genDir := filepath.Join(dir, config.DefaultOutput)
	widget := readFile(t, filepath.Join(genDir, "_widget.py"))
	assert.Contains(t, widget, "class Widget(object):\n")
	assert.Contains(t, widget, `    id = attr.ib(metadata={"schema_property_name": "id"})`)
	assert.Contains(t, widget, `    size = attr.ib(default=3, metadata={"schema_property_name": "size"})`)

	bag := readFile(t, filepath.Join(genDir, "_bag.py"))
	assert.Contains(t, bag, `    items = attr.ib(default=attr.Factory(lambda: []), metadata={"schema_property_name": "items"})`)

	assert.NoFileExists(t, filepath.Join(genDir, "_color.py"))
	initPy := readFile(t, filepath.Join(genDir, "__init__.py"))
	assert.True(t, strings.HasPrefix(initPy, "# This file was generated by jschema2py version "))
	assert.True(t, strings.HasSuffix(initPy, "\nfrom ._bag import Bag\nfrom ._widget import Widget\n"))
}

func TestGenerate_SelectedClassesAndOutput(t *testing.T) {
	dir := setupProject(t, testSchema)
	_, err := execute(t, "init", "--schema", "model.schema.json", "--non-interactive")
	require.NoError(t, err)

	_, err = execute(t, "generate", "--class", "Widget", "--output", "custom")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "custom", "_widget.py"))
	assert.NoFileExists(t, filepath.Join(dir, "custom", "_bag.py"))
	assert.True(t, strings.HasSuffix(readFile(t, filepath.Join(dir, "custom", "__init__.py")), "\nfrom ._widget import Widget\n"))
}

func TestGenerate_UnknownClass(t *testing.T) {
	dir := setupProject(t, testSchema)
	_, err := execute(t, "init", "--schema", "model.schema.json", "--non-interactive")
	require.NoError(t, err)

	_, err = execute(t, "generate", "--class", "Widget,Gadget")
	require.Error(t, err)
	assert.EqualError(t, err, "unknown class(es): Gadget")
	assert.NoDirExists(t, filepath.Join(dir, config.DefaultOutput))
}

func TestGenerate_UnknownFormat(t *testing.T) {
	setupProject(t, testSchema)
	_, err := execute(t, "init", "--schema", "model.schema.json", "--non-interactive")
	require.NoError(t, err)

	_, err = execute(t, "generate", "--format", "pydantic")
	require.Error(t, err)
	assert.EqualError(t, err, "unknown translator: pydantic")
}

func TestGenerate_CollectsFailures(t *testing.T) {
	dir := setupProject(t, `{
  "definitions": {
    "broken": {"properties": {"a": {}}, "required": ["b"]},
    "fine": {"properties": {"a": {}}}
  }
}`)
	_, err := execute(t, "init", "--schema", "model.schema.json", "--non-interactive")
	require.NoError(t, err)

	out, err := execute(t, "generate")
	require.Error(t, err)
	assert.EqualError(t, err, "failed to generate 1 class(es)")
	assert.Contains(t, out, "✗ Broken")

	genDir := filepath.Join(dir, config.DefaultOutput)
	assert.FileExists(t, filepath.Join(genDir, "_fine.py"))
	assert.NoFileExists(t, filepath.Join(genDir, "_broken.py"))
	assert.True(t, strings.HasSuffix(readFile(t, filepath.Join(genDir, "__init__.py")), "\nfrom ._fine import Fine\n"))
}

func TestGenerate_NotInitialized(t *testing.T) {
	setupProject(t, testSchema)

	_, err := execute(t, "generate")
	require.Error(t, err)
	assert.True(t, errors.Is(err, session.ErrNotInitialized))
}

func TestClasses(t *testing.T) {
	setupProject(t, testSchema)
	_, err := execute(t, "init", "--schema", "model.schema.json", "--root", "Model", "--non-interactive")
	require.NoError(t, err)

	out, err := execute(t, "classes")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^Bag\s+_bag\.py\s+bag$`, out)
	assert.Regexp(t, `(?m)^Color\s+-\s+color \(enum\)$`, out)
	assert.Regexp(t, `(?m)^Widget\s+_widget\.py\s+widget$`, out)
	assert.Regexp(t, `(?m)^Model\s+_model\.py\s+\(root\)$`, out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "jschema2py version")
}

func TestGenerate_DryRun(t *testing.T) {
	dir := setupProject(t, testSchema)
	_, err := execute(t, "init", "--schema", "model.schema.json", "--non-interactive")
	require.NoError(t, err)

	out, err := execute(t, "generate", "--class", "Widget", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "==> _widget.py <==\n")
	assert.Contains(t, out, "==> __init__.py <==\n")
	assert.Contains(t, out, "class Widget(object):\n")
	assert.NoDirExists(t, filepath.Join(dir, config.DefaultOutput))
}

func TestSelectClasses(t *testing.T) {
	classes := []jschema.Class{{Name: "Bag"}, {Name: "Color"}, {Name: "Widget"}}

	tests := []struct {
		name    string
		names   []string
		want    []string
		wantErr string
	}{
		{name: "all", names: nil, want: []string{"Bag", "Color", "Widget"}},
		{name: "keeps class order", names: []string{"Widget", "Bag"}, want: []string{"Bag", "Widget"}},
		{name: "duplicates collapse", names: []string{"Bag", "Bag"}, want: []string{"Bag"}},
		{name: "unknown", names: []string{"Bag", "X", "Y"}, wantErr: "unknown class(es): X, Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectClasses(classes, tt.names)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
