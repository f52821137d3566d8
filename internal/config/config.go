// Package config holds the searchlab runtime configuration, resolved by
// viper from defaults, an optional searchlab.yaml and SEARCHLAB_* variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" json:"logger" yaml:"logger"`
	Search SearchConfig `mapstructure:"search" json:"search" yaml:"search"`
}

// ColorConfig maps log levels to console color names.
type ColorConfig struct {
	Debug string `mapstructure:"debug" json:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" json:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" json:"warn" yaml:"warn"`
	Error string `mapstructure:"error" json:"error" yaml:"error"`
}

// LoggerConfig configures the console logger and the optional rotated
// JSON log file.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" json:"level" yaml:"level"`
	Format      string      `mapstructure:"format" json:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" json:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" json:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" json:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" json:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" json:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" json:"colors" yaml:"colors"`
}

// SearchConfig holds defaults for search runs. CLI flags override them.
type SearchConfig struct {
	// MaxExpansions caps visits per run; 0 means unlimited.
	MaxExpansions int `mapstructure:"max_expansions" json:"max_expansions" yaml:"max_expansions"`
	// Weight is the heuristic weight of CUS2.
	Weight float64 `mapstructure:"weight" json:"weight" yaml:"weight"`
	// ShowTrace prints the exploration trace after the result.
	ShowTrace bool `mapstructure:"show_trace" json:"show_trace" yaml:"show_trace"`
	// TraceFormat is text, json or yaml.
	TraceFormat string `mapstructure:"trace_format" json:"trace_format" yaml:"trace_format"`
	// FirstEdgeWins keeps the first of duplicate edges instead of failing.
	FirstEdgeWins bool `mapstructure:"first_edge_wins" json:"first_edge_wins" yaml:"first_edge_wins"`
}

// SetDefaults registers every default on v so the tool runs without a
// config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "searchlab")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	v.SetDefault("search.max_expansions", 0)
	v.SetDefault("search.weight", 1.5)
	v.SetDefault("search.show_trace", false)
	v.SetDefault("search.trace_format", "text")
	v.SetDefault("search.first_edge_wins", false)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		errs = append(errs, fmt.Errorf("logger.level: %q", c.Logger.Level))
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logger.format: %q (want console or json)", c.Logger.Format))
	}
	if c.Logger.MaxSize < 0 || c.Logger.MaxBackups < 0 || c.Logger.MaxAge < 0 {
		errs = append(errs, errors.New("logger: rotation limits cannot be negative"))
	}
	if c.Search.MaxExpansions < 0 {
		errs = append(errs, fmt.Errorf("search.max_expansions: %d", c.Search.MaxExpansions))
	}
	if math.IsNaN(c.Search.Weight) || math.IsInf(c.Search.Weight, 0) || c.Search.Weight < 1 {
		errs = append(errs, fmt.Errorf("search.weight: %v (want finite >= 1)", c.Search.Weight))
	}
	switch strings.ToLower(c.Search.TraceFormat) {
	case "text", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("search.trace_format: %q (want text, json or yaml)", c.Search.TraceFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}
