// Package config loads server settings from an optional config file and
// STOREFRONT_* environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full server configuration.
type Config struct {
	Addr           string  `mapstructure:"addr"`
	PublicDir      string  `mapstructure:"public_dir"`
	ProductsPath   string  `mapstructure:"products_path"`
	PageSize       int     `mapstructure:"page_size"`
	RedisAddr      string  `mapstructure:"redis_addr"`
	APIBaseURL     string  `mapstructure:"api_base_url"`
	DatabaseURL    string  `mapstructure:"database_url"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Load reads storefront.yaml from the working directory when present, then
// applies environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("public_dir", "public")
	v.SetDefault("products_path", "public/data/products.json")
	v.SetDefault("page_size", 12)
	v.SetDefault("redis_addr", "")
	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("database_url", "")
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_limit_burst", 10)

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("storefront")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
