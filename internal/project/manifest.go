// Package project loads the optional per-directory commonize.toml manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the manifest file looked up in the scanned directory.
const ManifestName = "commonize.toml"

// Manifest holds per-directory settings. Zero values mean "not set"; the
// caller layers defaults and command-line overrides on top.
type Manifest struct {
	Scan    ScanConfig    `toml:"scan"`
	Promote PromoteConfig `toml:"promote"`
}

// ScanConfig configures file selection.
type ScanConfig struct {
	// Extension selects the source files to scan, e.g. ".rs".
	Extension string `toml:"extension"`
	// SharedFile names the shared module file, e.g. "common.rs".
	SharedFile string `toml:"shared_file"`
}

// PromoteConfig configures the promotion decision.
type PromoteConfig struct {
	// Threshold is the minimum total usage for promotion. A pointer so an
	// explicit 0 is distinguishable from "not set".
	Threshold *int `toml:"threshold"`
}

// Load reads dir's manifest. A missing manifest is not an error: the zero
// Manifest is returned.
func Load(dir string) (Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	var m Manifest
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return m, nil
}
