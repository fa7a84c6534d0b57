// Package config loads the networth settings from a yaml file, the
// environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Name is the default config file name, without extension.
const Name = "networth"

// EnvPrefix prefixes every environment variable: NETWORTH_CURRENCY_CODE.
const EnvPrefix = "NETWORTH"

// Config is the whole nw configuration.
type Config struct {
	Currency   CurrencyConfig   `mapstructure:"currency"`
	Allocation AllocationConfig `mapstructure:"allocation"`
	Data       DataConfig       `mapstructure:"data"`
	Timeframe  string           `mapstructure:"timeframe"`
	Log        LogConfig        `mapstructure:"log"`
}

// CurrencyConfig is the dashboard currency. An empty Symbol means the
// currency's own, see networth.NewFormatter.
type CurrencyConfig struct {
	Code   string `mapstructure:"code"`
	Symbol string `mapstructure:"symbol"`
}

// AllocationConfig sets the allocation colors.
type AllocationConfig struct {
	Palette      []string `mapstructure:"palette"`
	StableColors bool     `mapstructure:"stable_colors"`
}

// DataConfig locates the backend records.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig sets the logger level and console output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads the config file named configName (networth.yaml by default) from
// the current directory, ./config or $HOME/.config/networth. A missing file
// is not an error, defaults and environment apply.
func Load(configName string) (*Config, error) {
	if configName == "" {
		configName = Name
	}
	// .env only feeds the environment, real variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", Name))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("currency.code", networth.DefaultCurrency)
	v.SetDefault("currency.symbol", "")

	v.SetDefault("allocation.palette", networth.DefaultPalette)
	v.SetDefault("allocation.stable_colors", false)

	v.SetDefault("data.dir", ".")
	v.SetDefault("timeframe", string(date.DefaultTimeframe))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	if _, err := date.ParseTimeframe(c.Timeframe); err != nil {
		return fmt.Errorf("invalid config timeframe: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config log level: %w", err)
	}
	if len(c.Allocation.Palette) == 0 {
		c.Allocation.Palette = networth.DefaultPalette
	}
	return nil
}

// Formatter returns the money formatter for the configured currency.
func (c *Config) Formatter() networth.Formatter {
	return networth.NewFormatter(c.Currency.Code, c.Currency.Symbol)
}

// Allocator returns the allocator with the configured palette.
func (c *Config) Allocator() networth.Allocator {
	return networth.Allocator{Palette: c.Allocation.Palette, StableColors: c.Allocation.StableColors}
}
