// Package file provides bindery's TOML configuration: default output
// names and prefixes for each operation, stored in the bindery config
// directory, plus loading of assembly recipes.
package file

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bindery-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ConfigStore = (*Store)(nil)

// ExtractConfig holds defaults for the extract command.
type ExtractConfig struct {
	OutputDir string `toml:"output_dir"`
	Prefix    string `toml:"prefix"`
}

// CombineConfig holds defaults for the combine command.
type CombineConfig struct {
	OutputName string `toml:"output_name"`
}

// SliceConfig holds defaults for the slice command.
type SliceConfig struct {
	OutputName string `toml:"output_name"`
}

// CombineListConfig holds defaults for the combine-list command.
type CombineListConfig struct {
	OutputName string `toml:"output_name"`
}

// Config is bindery's on-disk configuration. Zero values mean "use the
// built-in default"; the CLI only consults fields that are set.
type Config struct {
	Extract     ExtractConfig     `toml:"extract"`
	Combine     CombineConfig     `toml:"combine"`
	Slice       SliceConfig       `toml:"slice"`
	CombineList CombineListConfig `toml:"combine_list"`
}

// DefaultConfig returns the built-in defaults, matching the names the
// tool has always produced for operating-agreement workflows.
func DefaultConfig() Config {
	return Config{
		Extract:     ExtractConfig{OutputDir: "Sig Pages", Prefix: "Sig Page - "},
		Combine:     CombineConfig{OutputName: "Sig Pages Combined.pdf"},
		Slice:       SliceConfig{OutputName: "Sliced.pdf"},
		CombineList: CombineListConfig{OutputName: "Combined.pdf"},
	}
}

// Store is a file-based implementation of driven.ConfigStore using
// TOML. Configuration is stored in a TOML file within the bindery
// config directory.
type Store struct {
	cfg  Config
	path string
}

// NewStore creates a new TOML-based config store and loads the file if
// it exists. If configDir is empty, defaults to ~/.bindery/config.toml.
// A missing file is not an error; the built-in defaults apply.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".bindery")
	}

	s := &Store{
		cfg:  DefaultConfig(),
		path: filepath.Join(configDir, "config.toml"),
	}
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Defaults returns the configured output defaults.
func (s *Store) Defaults() driven.OutputDefaults {
	return driven.OutputDefaults{
		ExtractOutputDir: s.cfg.Extract.OutputDir,
		ExtractPrefix:    s.cfg.Extract.Prefix,
		CombineName:      s.cfg.Combine.OutputName,
		SliceName:        s.cfg.Slice.OutputName,
		CombineListName:  s.cfg.CombineList.OutputName,
	}
}

// Load reads the configuration file, layered over the built-in
// defaults. A missing file is not an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Save writes the current configuration to the config file, creating
// the directory if needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.path
}
