package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/willibrandon/pgprobe/internal/conninfo"
)

// Config is the optional on-disk configuration. Everything in it can be
// overridden per invocation by command-line arguments.
type Config struct {
	Connection ConnectionConfig `mapstructure:"connection"`
	Debug      bool             `mapstructure:"debug"`
	LogPath    string           `mapstructure:"log_path"`
}

// ConnectionConfig supplies default connection fields. Values stay strings so
// that "unset" remains distinguishable from every real value; the client
// library owns all defaulting for unset fields.
type ConnectionConfig struct {
	Host     string `mapstructure:"host"`
	HostAddr string `mapstructure:"hostaddr"`
	Port     string `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Timeout  string `mapstructure:"timeout"`
}

// Load reads config.yaml from ~/.config/pgprobe or the working directory,
// with PGPROBE_* environment variable overrides. A missing file is not an
// error: with nothing configured and no arguments the probe must run with an
// entirely empty specification.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/pgprobe")
	v.AddConfigPath(".")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("PGPROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Register every key so environment-only values survive Unmarshal.
	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values that could never produce a usable probe. Only
// locally checkable properties are enforced; everything else is the server's
// call.
func Validate(cfg *Config) error {
	if p := conninfo.Trim(cfg.Connection.Port); p != "" {
		// Non-numeric ports are service names and pass through untouched.
		if n, err := strconv.Atoi(p); err == nil && (n < 1 || n > 65535) {
			return fmt.Errorf("connection.port must be between 1 and 65535, got %d", n)
		}
	}
	if t := conninfo.Trim(cfg.Connection.Timeout); t != "" {
		if n, err := strconv.Atoi(t); err != nil || n < 0 {
			return fmt.Errorf("connection.timeout must be a non-negative integer, got %q", t)
		}
	}
	return nil
}

// Seed builds the base specification that command-line arguments overwrite
// field by field. Values are trimmed on the way in so the specification
// invariant (absent or trimmed non-empty) holds regardless of source.
func (c *Config) Seed() conninfo.Spec {
	return conninfo.Spec{
		Database: conninfo.Trim(c.Connection.Database),
		User:     conninfo.Trim(c.Connection.User),
		Host:     conninfo.Trim(c.Connection.Host),
		HostAddr: conninfo.Trim(c.Connection.HostAddr),
		Port:     conninfo.Trim(c.Connection.Port),
		Timeout:  conninfo.Trim(c.Connection.Timeout),
	}
}

// applyDefaults registers default (empty) values for every known key.
func applyDefaults(v *viper.Viper) {
	v.SetDefault("connection.host", "")
	v.SetDefault("connection.hostaddr", "")
	v.SetDefault("connection.port", "")
	v.SetDefault("connection.database", "")
	v.SetDefault("connection.user", "")
	v.SetDefault("connection.timeout", "")
	v.SetDefault("debug", false)
	v.SetDefault("log_path", "")
}
