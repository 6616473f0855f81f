package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port                string
	LogLevel            string
	DebounceQuietPeriod time.Duration
	ChartTopN           int
}

// Load reads configuration from the environment, after loading a .env file if present.
// Environment variables win over the .env file, which wins over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEBOUNCE_QUIET_PERIOD", "300ms")
	v.SetDefault("CHART_TOP_N", 8)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:     v.GetString("PORT"),
		LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	quiet, err := time.ParseDuration(v.GetString("DEBOUNCE_QUIET_PERIOD"))
	if err != nil {
		return nil, fmt.Errorf("DEBOUNCE_QUIET_PERIOD: %w", err)
	}
	if quiet < 0 {
		return nil, fmt.Errorf("DEBOUNCE_QUIET_PERIOD: negative duration %v", quiet)
	}
	cfg.DebounceQuietPeriod = quiet

	cfg.ChartTopN = v.GetInt("CHART_TOP_N")
	if cfg.ChartTopN <= 0 {
		return nil, fmt.Errorf("CHART_TOP_N: must be positive, got %q", v.GetString("CHART_TOP_N"))
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL: unknown level %q", cfg.LogLevel)
	}

	return cfg, nil
}
