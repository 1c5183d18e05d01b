package flagresolve

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// DefaultAPIURL is the hosted resolver endpoint used when no URL is
// configured.
const DefaultAPIURL = "https://resolver.flagresolve.dev"

// Config holds the creation-time parameters of a Provider.
// Configuration priority: explicit struct fields > environment variables >
// .env file > defaults.
type Config struct {
	APIURL       string // Base URL of the flag resolver API
	ClientSecret string // Client credential issued for the consuming application
	Debug        bool   // Log resolve calls at debug level to stderr
}

// LoadConfig reads configuration from environment variables and an optional
// .env file. Environment variables take precedence over .env values.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env") // Optional; silently ignored if file doesn't exist
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	v.SetDefault("FLAGRESOLVE_API_URL", DefaultAPIURL)
	v.SetDefault("FLAGRESOLVE_CLIENT_SECRET", "")
	v.SetDefault("FLAGRESOLVE_DEBUG", false)

	return &Config{
		APIURL:       v.GetString("FLAGRESOLVE_API_URL"),
		ClientSecret: v.GetString("FLAGRESOLVE_CLIENT_SECRET"),
		Debug:        v.GetBool("FLAGRESOLVE_DEBUG"),
	}, nil
}

// ValidationError represents a configuration validation error with details
// about what failed.
type ValidationError struct {
	Field   string // Name of the configuration field
	Message string // Human-readable error message
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed [%s]: %s", e.Field, e.Message)
}

// Validate checks that the configuration can produce a working Provider.
func (c *Config) Validate() error {
	if c.ClientSecret == "" {
		return ValidationError{
			Field:   "FLAGRESOLVE_CLIENT_SECRET",
			Message: "client secret must be a non-empty string",
		}
	}
	if c.APIURL == "" {
		return ValidationError{
			Field:   "FLAGRESOLVE_API_URL",
			Message: "resolver API URL cannot be empty",
		}
	}
	if _, err := url.Parse(c.APIURL); err != nil {
		return ValidationError{
			Field:   "FLAGRESOLVE_API_URL",
			Message: fmt.Sprintf("invalid resolver API URL: %v", err),
		}
	}
	return nil
}
