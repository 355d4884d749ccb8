package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log     LogConfig
	Store   StoreConfig
	Fixture FixtureConfig
	UI      UIConfig
}

// LogConfig holds logger settings. An empty File logs to stderr.
type LogConfig struct {
	Level string
	File  string
}

// StoreConfig holds board store settings.
type StoreConfig struct {
	StrictValues bool `mapstructure:"strict_values"`
}

// FixtureConfig selects the position a session starts from. Path wins over Demo.
type FixtureConfig struct {
	Path string
	Demo bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowOptions bool `mapstructure:"show_options"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// SUDOKUPAD_. An explicit path that does not exist is an error; the default
// location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("store.strict_values", true)
	v.SetDefault("fixture.path", "")
	v.SetDefault("fixture.demo", false)
	v.SetDefault("ui.show_options", true)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SUDOKUPAD_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "sudokupad"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SUDOKUPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
