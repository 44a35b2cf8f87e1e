// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package hints

import (
	"io"
	"io/fs"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a hints file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported hints format")

// Parse decodes a hints document. Format is "json" or "yaml".
func Parse(data []byte, format string) (Table, error) {
	var raw map[string][]Hint
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "decoding hints")
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "decoding hints")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	table := make(Table, len(raw))
	for s, list := range raw {
		key, err := ParseKey(s)
		if err != nil {
			return nil, err
		}
		table[key] = list
	}
	return table, nil
}

// Load reads and decodes a hints file from fsys.
// The format is determined from the file extension.
func Load(fsys fs.FS, filePath string) (Table, error) {
	format, err := formatOf(filePath)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}

func formatOf(filePath string) (string, error) {
	switch {
	case strings.HasSuffix(filePath, ".json"):
		return "json", nil
	case strings.HasSuffix(filePath, ".yaml"), strings.HasSuffix(filePath, ".yml"):
		return "yaml", nil
	}
	return "", errors.WithHint(
		errors.Wrapf(ErrUnsupportedFormat, "%s", filePath),
		"hints files must end in .json, .yaml or .yml")
}
