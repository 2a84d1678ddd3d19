package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load.
// For example, the database host is read from SIGNUP_DATABASE_HOST.
const envPrefix = "SIGNUP"

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Returns a populated Config or an error if a
// required setting is missing or invalid, so the process fails at startup
// rather than leaking connection errors as per-request storage failures.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for settings that have a sensible one. The database identity
	// parameters deliberately have no defaults: they must come from the
	// environment.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so bind
	// each key explicitly.
	keys := []string{
		"server.port", "server.log_level",
		"database.host", "database.port", "database.name",
		"database.user", "database.password", "database.ssl_mode",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
