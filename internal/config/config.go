package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

const (
	appName        = "menuvroom"
	configFileName = "config.toml"

	SearchModeContains   = "contains"
	SearchModeSimilarity = "similarity"
)

// Config represents the application configuration
type Config struct {
	ExtraDirectories    []string       `toml:"extra_directories"`
	IgnoredDirectories  []string       `toml:"ignored_directories"`
	CacheDir            string         `toml:"cache_dir"`
	IncludeBinaries     bool           `toml:"include_binaries"`
	IncludeDesktopFiles bool           `toml:"include_desktop_files"`
	Search              SearchSettings `toml:"search"`
	UISettings          UISettings     `toml:"ui"`
}

// SearchSettings selects the ranking policy
type SearchSettings struct {
	Mode       string `toml:"mode"`        // "contains" or "similarity"
	MaxResults int    `toml:"max_results"` // 0 means the mode's default
	IgnoreCase bool   `toml:"ignore_case"`
}

// UISettings holds presentation options, opaque to the search core
type UISettings struct {
	AccentColor    string `toml:"accent_color"`
	SelectionColor string `toml:"selection_color"`
	ShowHotkeys    bool   `toml:"show_hotkeys"`
	ShowHelp       bool   `toml:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = homedir.Dir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, appName, configFileName),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, creating it with defaults if missing
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration. CacheDir is left
// unexpanded so the written file stays portable.
func DefaultConfig() *Config {
	return &Config{
		ExtraDirectories:    []string{},
		IgnoredDirectories:  []string{},
		CacheDir:            filepath.Join("~", ".cache", appName),
		IncludeBinaries:     true,
		IncludeDesktopFiles: true,
		Search: SearchSettings{
			Mode: SearchModeContains,
		},
		UISettings: UISettings{
			AccentColor:    "99",
			SelectionColor: "238",
			ShowHotkeys:    true,
			ShowHelp:       true,
		},
	}
}

// ResolvedCacheDir expands the configured cache directory. An empty value
// falls back to ~/.cache/menuvroom; failing to resolve home is an error.
func (c *Config) ResolvedCacheDir() (string, error) {
	dir := c.CacheDir
	if dir == "" {
		dir = filepath.Join("~", ".cache", appName)
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache directory %q: %w", dir, err)
	}
	return expanded, nil
}

func (c *Config) normalize() error {
	var err error
	if c.ExtraDirectories, err = expandAll(c.ExtraDirectories); err != nil {
		return err
	}
	if c.IgnoredDirectories, err = expandAll(c.IgnoredDirectories); err != nil {
		return err
	}

	switch c.Search.Mode {
	case "":
		c.Search.Mode = SearchModeContains
	case SearchModeContains, SearchModeSimilarity:
	default:
		return fmt.Errorf("invalid search mode %q (want %q or %q)", c.Search.Mode, SearchModeContains, SearchModeSimilarity)
	}
	if c.Search.MaxResults < 0 {
		return fmt.Errorf("invalid max_results %d", c.Search.MaxResults)
	}
	return nil
}

func expandAll(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		expanded, err := homedir.Expand(p)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", p, err)
		}
		out = append(out, expanded)
	}
	return out, nil
}
