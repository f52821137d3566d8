package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g.
// SEARCHLAB_SEARCH_MAX_EXPANSIONS.
const EnvPrefix = "SEARCHLAB"

// BindEnv enables SEARCHLAB_* environment overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
