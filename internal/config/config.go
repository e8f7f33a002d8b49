// Package config loads splitpane settings from defaults, an optional TOML
// file, SPLITPANE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	spErrors "github.com/matzehuels/splitpane/pkg/errors"
)

const (
	// EnvPrefix prefixes environment overrides: SPLITPANE_SERVER_ADDR sets
	// server.addr.
	EnvPrefix = "SPLITPANE"

	// FileName is the config file name searched for, without extension.
	FileName = "splitpane"
)

// Config is the resolved configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Keyboard KeyboardConfig `mapstructure:"keyboard"`
	Server   ServerConfig   `mapstructure:"server"`
	Render   RenderConfig   `mapstructure:"render"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// KeyboardConfig sets the divider steps of arrow keys. A group's own
// keyboard_step takes precedence over Step.
type KeyboardConfig struct {
	Step      float64 `mapstructure:"step"`
	ShiftStep float64 `mapstructure:"shift_step"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RenderConfig is the drawing area used when the terminal size is unknown.
type RenderConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("keyboard.step", 5.0)
	v.SetDefault("keyboard.shift_step", 100.0)

	v.SetDefault("server.addr", "127.0.0.1:8420")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("render.width", 80)
	v.SetDefault("render.height", 10)
}

// New returns a viper instance with defaults and environment overrides
// wired up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the config file into v. An explicit path must exist.
// Without one, splitpane.toml is looked up in the working directory and in
// the user config directory; not finding it is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return spErrors.Wrap(spErrors.ErrCodeInvalidConfig, err, "read config")
	}
	return nil
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, spErrors.Wrap(spErrors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is New, ReadFile and FromViper in one call.
func Load(path string) (*Config, *viper.Viper, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, nil, err
	}
	cfg, err := FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Default returns the configuration with nothing but defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Keyboard.Step <= 0 || c.Keyboard.Step > 100 {
		return spErrors.New(spErrors.ErrCodeInvalidConfig, "keyboard.step must be in (0, 100], got %v", c.Keyboard.Step)
	}
	if c.Keyboard.ShiftStep <= 0 || c.Keyboard.ShiftStep > 100 {
		return spErrors.New(spErrors.ErrCodeInvalidConfig, "keyboard.shift_step must be in (0, 100], got %v", c.Keyboard.ShiftStep)
	}
	if c.Server.Addr == "" {
		return spErrors.New(spErrors.ErrCodeInvalidConfig, "server.addr is required")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return spErrors.New(spErrors.ErrCodeInvalidConfig, "server timeouts must not be negative")
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return spErrors.New(spErrors.ErrCodeInvalidConfig, "render.width and render.height must be positive")
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, spErrors.Wrap(spErrors.ErrCodeInvalidConfig, err, "log.level")
	}
	return level, nil
}
