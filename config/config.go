package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"geohash-kit/geohash"
)

type Config struct {
	Geohash GeohashConfig
	Output  OutputConfig
	Log     LogConfig
}

type GeohashConfig struct {
	Precision int
}

type OutputConfig struct {
	Format string // text or json
}

type LogConfig struct {
	Level  string
	Format string // text or json
}

const EnvPrefix = "GEOHASH"

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("geohash.precision", geohash.DefaultPrecision)
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from path, or from ./config.yaml when path is
// empty. A missing ./config.yaml is fine; a missing explicit path is not.
// GEOHASH_* environment variables override file values, with dots in key
// names replaced by underscores (GEOHASH_GEOHASH_PRECISION).
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the commands cannot act on.
func (c *Config) Validate() error {
	if c.Geohash.Precision <= 0 {
		return fmt.Errorf("geohash.precision: %w", &geohash.PrecisionError{Precision: c.Geohash.Precision})
	}
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("output.format: unknown format %q, want text or json", c.Output.Format)
	}
	if !validFormat(c.Log.Format) {
		return fmt.Errorf("log.format: unknown format %q, want text or json", c.Log.Format)
	}
	return nil
}

func validFormat(f string) bool {
	return f == "text" || f == "json"
}
