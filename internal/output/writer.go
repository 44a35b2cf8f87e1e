// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package output persists generated source lines.
package output

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Writer accepts the complete, ordered lines of one artifact and persists
// them under name.
type Writer interface {
	Write(name string, lines []string) error
}

// DirWriter writes each artifact as a file in Dir.
// A file is first written to a temporary sibling and renamed into place,
// so a failed write never leaves a truncated target behind.
type DirWriter struct {
	Dir string
}

// NewDirWriter returns a DirWriter for dir.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{Dir: dir}
}

// Write creates Dir if needed and writes lines, each terminated by a newline,
// to Dir/name.
func (w *DirWriter) Write(name string, lines []string) (err error) {
	if name == "" || filepath.Base(name) != name {
		return errors.Newf("invalid output file name %q", name)
	}
	if err := os.MkdirAll(w.Dir, dirPerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	tmp, err := os.CreateTemp(w.Dir, "."+name+".tmp*")
	if err != nil {
		return errors.Wrapf(err, "creating %s", name)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", name)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(w.Dir, name)); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	return nil
}

// MemoryWriter keeps written artifacts in memory. It is used by tests and
// dry runs.
type MemoryWriter struct {
	Files map[string][]string
}

// NewMemoryWriter returns an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{Files: make(map[string][]string)}
}

// Write stores a copy of lines under name, replacing any previous content.
func (w *MemoryWriter) Write(name string, lines []string) error {
	w.Files[name] = append([]string(nil), lines...)
	return nil
}

// Content returns the artifact as it would appear on disk.
func (w *MemoryWriter) Content(name string) string {
	lines, ok := w.Files[name]
	if !ok {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Names returns the names of all stored artifacts, sorted.
func (w *MemoryWriter) Names() []string {
	names := make([]string, 0, len(w.Files))
	for name := range w.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
