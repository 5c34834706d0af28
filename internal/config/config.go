// Package config loads application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// StorageConfig locates the sqlite snapshot database.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// SeedConfig locates reference seed data. An empty file means the
// built-in demo dataset.
type SeedConfig struct {
	File string `mapstructure:"file"`
}

// LoggingConfig controls structured logging output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load reads configuration from the YAML file at path; an empty path
// yields defaults. Environment variables prefixed CORELEDGER_ override
// file values (CORELEDGER_SERVER_ADDR and so on).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("storage.path", "ledgers.db")
	v.SetDefault("seed.file", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetEnvPrefix("CORELEDGER")
	v.SetEnvKeyReplacer(replacer())
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func replacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}
