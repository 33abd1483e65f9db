package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectFile is the optional cfsweep.toml checked into a site repo so
// the account and project do not have to be exported on every shell.
// Credentials never belong in it; the API token is env-only.
type ProjectFile struct {
	AccountID string            `toml:"account_id,omitempty"`
	Project   string            `toml:"project,omitempty"`
	Sweep     *SweepProjectFile `toml:"sweep,omitempty"`
}

// SweepProjectFile holds scheduler overrides from cfsweep.toml.
type SweepProjectFile struct {
	BatchSize    int `toml:"batch_size,omitempty"`
	RetryCeiling int `toml:"retry_ceiling,omitempty"`
}

// LoadProjectFile parses cfsweep.toml from the nearest ancestor
// directory. Returns (nil, nil) when no file exists; the file is
// optional.
func LoadProjectFile(startDir string) (*ProjectFile, error) {
	path, ok := findProjectFile(startDir)
	if !ok {
		return nil, nil
	}

	var pf ProjectFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	pf.AccountID = os.ExpandEnv(pf.AccountID)
	pf.Project = os.ExpandEnv(pf.Project)
	return &pf, nil
}

// findProjectFile walks up from startDir looking for cfsweep.toml.
func findProjectFile(startDir string) (string, bool) {
	dir := startDir
	for {
		path := filepath.Join(dir, "cfsweep.toml")
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
