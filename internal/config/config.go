// Package config loads service configuration from defaults, an optional
// YAML file and PARADIGM_* environment variables, in increasing order of
// precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable: server.addr is read
// from PARADIGM_SERVER_ADDR.
const EnvPrefix = "PARADIGM"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Lexicon LexiconConfig `mapstructure:"lexicon"`
	Index   IndexConfig   `mapstructure:"index"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr" validate:"required"`
	LogLevel     string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
}

// LexiconConfig names the lexicon files (or directories of them) to load.
type LexiconConfig struct {
	Paths []string `mapstructure:"paths" validate:"dive,required"`
}

// IndexConfig controls the paradigm indexer. An empty Database keeps the
// index in memory only.
type IndexConfig struct {
	Workers  int    `mapstructure:"workers" validate:"gte=1,lte=256"`
	Database string `mapstructure:"database"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("lexicon.paths", []string{})
	v.SetDefault("index.workers", 4)
	v.SetDefault("index.database", "")
}

// Load builds the configuration. configFile may be empty.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
