package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/benchlink/benchlink-cli/internal/errors"
)

// DefaultBaseURL targets a local platform instance.
const DefaultBaseURL = "http://localhost:8000"

// Config is the non-session client configuration.
//
// It lives in its own file, deliberately separate from the session file: the
// session is credentials, this is preferences. Clearing one never touches
// the other.
type Config struct {
	// BaseURL is the platform origin; calls go to BaseURL + /api.
	BaseURL string `yaml:"base_url"`

	// Theme is light, dark, or auto. The client persists it for the UI;
	// it carries no other meaning here.
	Theme string `yaml:"theme"`

	// Language is the UI locale, e.g. en-US or zh-CN.
	Language string `yaml:"language"`

	// Autosave toggles saving edits without an explicit action.
	Autosave bool `yaml:"autosave"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Theme:     "light",
		Language:  "en-US",
		Autosave:  true,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// DefaultPath returns the standard config file location,
// ~/.benchlink/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigLoad, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".benchlink", "config.yaml"), nil
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides. A .env file in the working directory
// is honored first.
func Load(path string) (Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: defaults plus environment.
	case err != nil:
		return cfg, errors.Wrap(errors.ErrCodeConfigLoad,
			fmt.Sprintf("cannot read config file: %s", path), err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeConfigLoad,
				fmt.Sprintf("config file is not valid YAML: %s", path), err).
				WithSuggestion("Fix the syntax or remove the file to start over")
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overlays BENCHLINK_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("BENCHLINK_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("BENCHLINK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BENCHLINK_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// Validate rejects values the rest of the client cannot work with.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.NewConfigInvalidError("base_url must not be empty")
	}

	switch c.Theme {
	case "light", "dark", "auto":
	default:
		return errors.NewConfigInvalidError(
			fmt.Sprintf("theme must be light, dark, or auto, got %q", c.Theme))
	}

	return nil
}

// Save writes the configuration to the given path.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeConfigSave, "cannot create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigSave, "cannot encode config", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeConfigSave,
			fmt.Sprintf("cannot write config file: %s", path), err)
	}

	return nil
}
