package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	// AppName names the XDG sub-directories
	AppName = "claude-agents"

	// ConfigFileName is the user config file name
	ConfigFileName = "config.toml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the typed, fully merged configuration.
type Config struct {
	Paths       Paths                       `koanf:"paths" toml:"paths"`
	Output      Output                      `koanf:"output" toml:"output"`
	Collections map[string]CollectionConfig `koanf:"collections" toml:"collections"`
}

// Paths holds the managed root and the sources directory.
type Paths struct {
	Root    string `koanf:"root" toml:"root"`
	Sources string `koanf:"sources" toml:"sources"`
}

// Output holds presentation settings.
type Output struct {
	Color string `koanf:"color" toml:"color"`
}

// CollectionConfig is the raw, unvalidated definition of a collection.
type CollectionConfig struct {
	Order         int    `koanf:"order" toml:"order"`
	Name          string `koanf:"name" toml:"name"`
	Description   string `koanf:"description" toml:"description"`
	ExpectedCount int    `koanf:"expected_count" toml:"expected_count"`
	Source        string `koanf:"source" toml:"source"`
	Prefix        string `koanf:"prefix" toml:"prefix"`
	Destination   string `koanf:"destination" toml:"destination"`
	Strategy      string `koanf:"strategy" toml:"strategy"`
	Repository    string `koanf:"repository" toml:"repository,omitempty"`
}

// UserConfigPath returns the user config file location.
func UserConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, ConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// DefaultSourcesDir returns where upstream collections are cloned when the
// configuration does not say.
func DefaultSourcesDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "sources")
	}
	return filepath.Join(xdg.DataHome, AppName, "sources")
}

// Validate checks the settings that do not belong to a collection.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrInvalidInput, "invalid color mode %q (want auto, always or never)", c.Output.Color)
	}
	if len(c.Collections) == 0 {
		return errors.New(errors.ErrInvalidInput, "no collections configured")
	}
	return nil
}

// MarshalTOML renders the effective configuration.
func (c *Config) MarshalTOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}
