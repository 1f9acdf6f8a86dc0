// Package config wraps github.com/spf13/viper with the defaults and
// environment-variable prefix the HTTP server reads its settings from.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config embeds *viper.Viper so callers get GetBool/GetInt/GetString for
// free, pre-loaded with this server's defaults.
type Config struct {
	*viper.Viper
}

// New returns a Config seeded with defaults, then overridden by a
// lazyq.yaml (or .json) file in the working directory if present, then by
// LAZYQ_-prefixed environment variables (e.g. LAZYQ_DEBUG=true).
func New() *Config {
	v := viper.New()

	v.SetDefault("debug", false)
	v.SetDefault("port", 8080)
	v.SetDefault("shots", 1000)
	v.SetDefault("max_qubits", 10)
	v.SetDefault("workers", 4)

	v.SetConfigName("lazyq")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // no config file on disk is not an error

	v.SetEnvPrefix("LAZYQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{Viper: v}
}
