// Package config loads application configuration and the user's settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ORGAI_LOGGING_LEVEL.
const EnvPrefix = "ORGAI"

// Config is the application configuration assembled from defaults, config.yaml,
// .env and ORGAI_* environment variables, in increasing precedence.
type Config struct {
	DataDir  string        `mapstructure:"data_dir"`
	Database string        `mapstructure:"database"` // defaults to <data_dir>/orgai.db
	Logging  LoggingConfig `mapstructure:"logging"`
	Server   ServerConfig  `mapstructure:"server"`
	Display  DisplayConfig `mapstructure:"display"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console, json
}

// ServerConfig configures "orgai serve".
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	Compact bool `mapstructure:"compact"`
}

// SetDefaults registers every key so environment overrides apply even without a
// config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("database", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("display.compact", false)
}

// DefaultDataDir is ~/.orgai, or ./.orgai when the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".orgai"
	}
	return filepath.Join(home, ".orgai")
}

// Load reads configuration into v. cfgFile, when set, must exist; otherwise
// $HOME/.config/orgai/config.yaml and ./config.yaml are searched and a missing file is
// not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "orgai"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	if cfg.Database == "" {
		cfg.Database = filepath.Join(cfg.DataDir, "orgai.db")
	}
	cfg.Database = expandHome(cfg.Database)
	return &cfg, nil
}

// SettingsPath is where the settings file lives inside the data directory.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "settings.yaml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
