// internal/config/config.go

// Package config resolves nucalign's extension-stage defaults from an
// optional settings file and HELIXALIGN_* environment variables. Flags set
// on the command line still win; these values only replace the built-in
// defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"helixalign-core/align"
)

// Extension mirrors the tunable extension-stage lengths. Booleans stay
// flag-only: negated switches translate poorly into settings files.
type Extension struct {
	BreakLength int     `mapstructure:"break-length"`
	MinCluster  int     `mapstructure:"min-cluster"`
	DiagDiff    int     `mapstructure:"diag-diff"`
	DiagFactor  float64 `mapstructure:"diag-factor"`
	MaxGap      int     `mapstructure:"max-gap"`
}

// LoadExtension reads the extension defaults. With path == "" only the
// built-in defaults and environment overrides apply; a named file that is
// missing or malformed is an error.
func LoadExtension(path string) (Extension, error) {
	v := viper.New()
	def := align.DefaultExtension()
	v.SetDefault("break-length", def.BreakLength)
	v.SetDefault("min-cluster", def.MinCluster)
	v.SetDefault("diag-diff", def.DiagDiff)
	v.SetDefault("diag-factor", def.DiagFactor)
	v.SetDefault("max-gap", def.MaxGap)

	v.SetEnvPrefix("HELIXALIGN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Extension{}, fmt.Errorf("config: %w", err)
		}
	}

	var e Extension
	if err := v.Unmarshal(&e); err != nil {
		return Extension{}, fmt.Errorf("config: %w", err)
	}
	return e, nil
}
