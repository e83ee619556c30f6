// Package storage provides flat file access over the scanned directory:
// list, read, write. Nothing recursive, nothing clever.
package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir is a handle on one directory. All names passed to Read and Write are
// plain file names resolved against it.
type Dir struct {
	path string
}

// New returns a handle on path. The directory is not checked here; List
// surfaces the error on first use.
func New(path string) Dir {
	return Dir{path: path}
}

// Path returns the full path of name within the directory.
func (d Dir) Path(name string) string {
	return filepath.Join(d.path, name)
}

// List returns the names of regular files carrying ext, in lexical order.
// Subdirectories are not descended into.
func (d Dir) List(ext string) ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Read returns the full content of name.
func (d Dir) Read(name string) (string, error) {
	b, err := os.ReadFile(d.Path(name))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Write replaces name's content in one call.
func (d Dir) Write(name, content string) error {
	return os.WriteFile(d.Path(name), []byte(content), 0644)
}
