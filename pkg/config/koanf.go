package config

import (
	"os"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of recognised environment variables
const EnvPrefix = "CLAUDE_AGENTS_"

// envKeys maps environment variables (without prefix) to config keys.
// Only these are read; collection keys contain underscores and cannot be
// addressed unambiguously from the environment.
var envKeys = map[string]string{
	"ROOT":    "paths.root",
	"SOURCES": "paths.sources",
	"COLOR":   "output.color",
}

// LoadOptions controls which layers Load reads.
type LoadOptions struct {
	// ConfigFile is an explicit file; it must exist when set.
	ConfigFile string

	// SkipUserConfig ignores the XDG user file.
	SkipUserConfig bool
}

// Load merges all configuration layers and returns the typed result.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	k, err := newKoanf(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if cfg.Paths.Sources == "" {
		cfg.Paths.Sources = DefaultSourcesDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", cfg.Paths.Root).
		Str("sources", cfg.Paths.Sources).
		Int("collections", len(cfg.Collections)).
		Msg("configuration loaded")

	return &cfg, nil
}

func newKoanf(opts LoadOptions) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config if it exists
	if !opts.SkipUserConfig {
		userPath := UserConfigPath()
		if _, err := os.Stat(userPath); err == nil {
			if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath)
			}
		}
	}

	// 3. Explicit config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ConfigFile)
		}
	}

	// 4. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	return k, nil
}

// envKey maps CLAUDE_AGENTS_ROOT to paths.root. Unknown variables map to
// the empty string, which the provider skips.
func envKey(s string) string {
	return envKeys[strings.TrimPrefix(s, EnvPrefix)]
}

// envValue skips empty variables so an exported-but-blank override does not
// erase a configured value.
func envValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envKey(key), value
}
