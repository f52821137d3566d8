package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "searchlab", cfg.Logger.ServiceName)
	assert.Equal(t, 0, cfg.Search.MaxExpansions)
	assert.Equal(t, 1.5, cfg.Search.Weight)
	assert.Equal(t, "text", cfg.Search.TraceFormat)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	yamlConfig := []byte(`
logger:
  level: debug
  format: json
search:
  max_expansions: 50
  weight: 2
  trace_format: yaml
  show_trace: true
`)
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlConfig)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 50, cfg.Search.MaxExpansions)
	assert.Equal(t, 2.0, cfg.Search.Weight)
	assert.True(t, cfg.Search.ShowTrace)
	// untouched keys keep their defaults
	assert.Equal(t, 10, cfg.Logger.MaxSize)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SEARCHLAB_SEARCH_MAX_EXPANSIONS", "7")
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Search.MaxExpansions)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		v := viper.New()
		SetDefaults(v)
		cfg, err := Load(v)
		require.NoError(t, err)
		return *cfg
	}

	cases := map[string]func(c *Config){
		"bad level":        func(c *Config) { c.Logger.Level = "loud" },
		"bad format":       func(c *Config) { c.Logger.Format = "xml" },
		"negative backups": func(c *Config) { c.Logger.MaxBackups = -1 },
		"negative limit":   func(c *Config) { c.Search.MaxExpansions = -3 },
		"weight below one": func(c *Config) { c.Search.Weight = 0.9 },
		"trace format":     func(c *Config) { c.Search.TraceFormat = "csv" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	c := valid()
	c.Search.TraceFormat = "JSON"
	assert.NoError(t, c.Validate())
}
