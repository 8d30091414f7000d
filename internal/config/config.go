package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tobyv/scenesweep/internal/backup"
)

const (
	// FileName is the optional per-project config file
	FileName = ".scenesweep.toml"

	// DefaultProjectFile is used when neither flag nor config names one
	DefaultProjectFile = "project.scene"
)

// Config holds per-project settings. Scene data is tolerated in any shape,
// but this file is user-authored, so a malformed config is an error.
type Config struct {
	Project     string `toml:"project"`     // project file name inside the root
	Backups     bool   `toml:"backups"`     // snapshot before mutating passes
	Suggestions bool   `toml:"suggestions"` // offer replacements for missing files
	Keep        int    `toml:"keep"`        // backup retention count
}

// Load reads <root>/.scenesweep.toml, returning defaults when it is absent
func Load(root string) (*Config, error) {
	cfg := &Config{
		Project:     DefaultProjectFile,
		Backups:     true,
		Suggestions: true,
		Keep:        backup.DefaultKeep,
	}

	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return cfg, nil
}
