// Package config loads runtime settings from defaults, an optional YAML file,
// LOSTFOUND_* environment variables and command line flags, in rising priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// EnvPrefix namespaces environment overrides, e.g. LOSTFOUND_SERVER_PORT
const EnvPrefix = "LOSTFOUND"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Latency  LatencyConfig  `mapstructure:"latency"`
	Items    ItemsConfig    `mapstructure:"items"`
	Auctions AuctionsConfig `mapstructure:"auctions"`
	Stats    StatsConfig    `mapstructure:"stats"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// Addr is the listen address for gin
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type LatencyConfig struct {
	Min time.Duration `mapstructure:"min"`
	Max time.Duration `mapstructure:"max"`
}

type ItemsConfig struct {
	AutoApprove bool `mapstructure:"auto_approve"`
}

type AuctionsConfig struct {
	RejectEndedBids  bool          `mapstructure:"reject_ended_bids"`
	EndingSoonWindow time.Duration `mapstructure:"ending_soon_window"`
}

type StatsConfig struct {
	ReturnedBaseline int `mapstructure:"returned_baseline"`
}

type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers every key so that environment variables are picked up by Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("latency.min", 300*time.Millisecond)
	v.SetDefault("latency.max", 1000*time.Millisecond)
	v.SetDefault("items.auto_approve", false)
	v.SetDefault("auctions.reject_ended_bids", true)
	v.SetDefault("auctions.ending_soon_window", 24*time.Hour)
	v.SetDefault("stats.returned_baseline", 247)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("log.level", "info")
}

// Load reads configuration into a Config. An empty path searches ./config.yaml
// and tolerates its absence; an explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read config.yaml: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Latency.Min < 0 || c.Latency.Max < c.Latency.Min {
		errs = append(errs, fmt.Errorf("latency range [%s, %s] is invalid", c.Latency.Min, c.Latency.Max))
	}
	if c.Auctions.EndingSoonWindow <= 0 {
		errs = append(errs, errors.New("auctions.ending_soon_window must be positive"))
	}
	if c.Stats.ReturnedBaseline < 0 {
		errs = append(errs, errors.New("stats.returned_baseline must not be negative"))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost %d outside [%d, %d]", c.Auth.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
