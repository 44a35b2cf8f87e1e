// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"io"
	"io/fs"
	"path"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parse decodes a schema document.
// YAML documents are converted to JSON first so both encodings share the
// schema's JSON decoding rules.
func Parse(data []byte, format Format) (*Schema, error) {
	if format == YAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding YAML schema")
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "converting YAML schema")
		}
		data = converted
	}

	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, errors.Wrap(err, "decoding schema")
	}
	return &schema, nil
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Schema, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	schema, err := Parse(data, FormatFromPath(filePath))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filePath)
	}
	return schema, nil
}

// ResolveRefs resolves all external file $refs in the schema tree in-place.
// It recursively loads referenced schemas and replaces the ref with the loaded content.
// Internal refs (starting with #) are left unchanged.
func (l *Loader) ResolveRefs(schema *Schema, basePath string) error {
	for s := range Traverse(schema, nil) {
		if !IsFileRef(s.Ref) {
			continue
		}
		refPath := path.Join(basePath, s.Ref)
		loaded, err := l.LoadFile(refPath)
		if err != nil {
			return err
		}
		if err := l.ResolveRefs(loaded, path.Dir(refPath)); err != nil {
			return err
		}
		*s = *loaded
	}
	return nil
}
