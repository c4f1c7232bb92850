// Package config loads the tunables of progresskit from an optional file
// and PROGRESSKIT_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/agbru/progresskit/errors"
)

// EnvPrefix is the prefix of every environment variable read by Load, e.g.
// PROGRESSKIT_FORECAST_MAX_SPAN.
const EnvPrefix = "PROGRESSKIT"

// Config holds every tunable of the module.
type Config struct {
	Forecast Forecast `mapstructure:"forecast"`
}

// Forecast tunes linear prediction and termination solving.
type Forecast struct {
	// MinSamples is the number of samples a predictor window always keeps.
	MinSamples int `mapstructure:"min_samples"`
	// MaxSpan is the time span beyond which samples in excess of
	// MinSamples are evicted.
	MaxSpan time.Duration `mapstructure:"max_span"`
	// InitialStep is the first secant step of the termination solver.
	InitialStep time.Duration `mapstructure:"initial_step"`
	// MaxIterations bounds the secant iterations.
	MaxIterations int `mapstructure:"max_iterations"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Forecast: Forecast{
			MinSamples:    100,
			MaxSpan:       10 * time.Second,
			InitialStep:   time.Second,
			MaxIterations: 1000,
		},
	}
}

// Load builds a Config from the defaults, the file at path when path is not
// empty, then the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("forecast.min_samples", d.Forecast.MinSamples)
	v.SetDefault("forecast.max_span", d.Forecast.MaxSpan)
	v.SetDefault("forecast.initial_step", d.Forecast.InitialStep)
	v.SetDefault("forecast.max_iterations", d.Forecast.MaxIterations)
}

// Validate enforces reasonable limits.
func (c Config) Validate() error {
	f := c.Forecast
	if f.MinSamples < 1 {
		return apperrors.NewConfigError("forecast.min_samples must be >= 1, got %d", f.MinSamples)
	}
	if f.MaxSpan < 0 {
		return apperrors.NewConfigError("forecast.max_span must not be negative, got %s", f.MaxSpan)
	}
	if f.InitialStep <= 0 {
		return apperrors.NewConfigError("forecast.initial_step must be > 0, got %s", f.InitialStep)
	}
	if f.MaxIterations < 1 {
		return apperrors.NewConfigError("forecast.max_iterations must be >= 1, got %d", f.MaxIterations)
	}
	return nil
}
