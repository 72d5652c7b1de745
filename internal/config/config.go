package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds shared settings for the CLI and the MCP server.
// Environment variables are parsed from the MBZ_ prefix.
type Config struct {
	// ServiceURL is the web service root; defaults to the production endpoint.
	ServiceURL string `envconfig:"SERVICE_URL" default:"https://musicbrainz.org/ws/2/"`

	// UserAgent overrides the SDK's default client identification string.
	UserAgent string `envconfig:"USER_AGENT" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load parses configuration from MBZ_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("mbz", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Init wires configuration into the process: logger format and level.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(ParseLogLevel(c.LogLevel))

	log.Debug().
		Str("service_url", c.ServiceURL).
		Str("log_level", c.LogLevel).
		Msg("configuration loaded")
}

// ParseLogLevel maps a level name to a zerolog level, defaulting to info.
func ParseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
