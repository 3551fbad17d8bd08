package config

import (
	"time"

	shared "github.com/tasktime/task-predictor/shared/config"
)

type Config struct {
	Port               string
	GinMode            string
	LogLevel           string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load reads the service settings from the environment, after loading a
// .env file when one is present.
func Load() (*Config, error) {
	if err := shared.LoadDotEnv(); err != nil {
		return nil, err
	}

	return &Config{
		Port:               shared.GetEnv("PORT", "8000"),
		GinMode:            shared.GetEnv("GIN_MODE", "release"),
		LogLevel:           shared.GetEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: shared.GetEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout:    shared.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// AllowsAnyOrigin reports whether CORS should answer with a wildcard.
func (c *Config) AllowsAnyOrigin() bool {
	if len(c.CORSAllowedOrigins) == 0 {
		return true
	}
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
