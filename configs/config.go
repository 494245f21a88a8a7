// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	_ "codeberg.org/varnantar/varnantar/core/audit" // setup better logging format
)

// Global exposes the server configuration.
var Global ServerConfig

// Possible values for Backend.Kind.
const (
	BackendHTTP       BackendKind = "http"
	BackendDictionary BackendKind = "dictionary"
)

// BackendKind selects the heavy translation backend implementation.
type BackendKind string

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host string `env:"VARNANTAR_HOST" yaml:"host"`
		Port string `env:"VARNANTAR_PORT" yaml:"port"`
	} `yaml:"basic"`

	Engine struct {
		// CacheSize bounds each cache tier (detection, transliteration,
		// translation).
		CacheSize int `env:"VARNANTAR_CACHE_SIZE" yaml:"cacheSize"`
		// CompressCaches stores cached strings zstd-compressed.
		CompressCaches bool `env:"VARNANTAR_CACHE_COMPRESS" yaml:"compressCaches"`
		// MaxConcurrency caps simultaneous backend translation calls.
		MaxConcurrency int `env:"VARNANTAR_MAX_CONCURRENCY" yaml:"maxConcurrency"`
		// MessageIndexSize bounds the in-flight message index.
		MessageIndexSize int `env:"VARNANTAR_MESSAGE_INDEX_SIZE" yaml:"messageIndexSize"`
	} `yaml:"engine"`

	Backend struct {
		Kind BackendKind `env:"VARNANTAR_BACKEND" yaml:"kind"`
		// URL is the chat-completions endpoint; required for the http kind.
		URL     string        `env:"VARNANTAR_BACKEND_URL" yaml:"url"`
		Model   string        `env:"VARNANTAR_BACKEND_MODEL" yaml:"model"`
		APIKey  string        `env:"VARNANTAR_BACKEND_API_KEY" yaml:"apiKey"`
		Timeout time.Duration `env:"VARNANTAR_BACKEND_TIMEOUT" yaml:"timeout"`
	} `yaml:"backend"`

	Limiter struct {
		Enabled           bool    `env:"VARNANTAR_LIMITER_ENABLED" yaml:"enabled"`
		RequestsPerSecond float64 `env:"VARNANTAR_LIMITER_RPS" yaml:"requestsPerSecond"`
		Burst             int     `env:"VARNANTAR_LIMITER_BURST" yaml:"burst"`
	} `yaml:"limiter"`

	Log struct {
		Level   string   `env:"VARNANTAR_LOG_LEVEL" yaml:"level"`
		Outputs []string `env:"VARNANTAR_LOG_OUTPUTS" yaml:"outputs"`
		Format  string   `env:"VARNANTAR_LOG_FORMAT" yaml:"format"`
	} `yaml:"log"`

	Development struct {
		InDevelopment bool `env:"VARNANTAR_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`
}

// LoadConfig populates the global configuration from defaults, the YAML
// file, and environment variables, in that order of increasing precedence.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (VARNANTAR_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("VARNANTAR_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue
		// Then, perform a fallback check for "./config.yml".
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := cfg.readEnv(); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	// Heuristically check for containerized environment and warn if host is not a wildcard address.
	if isContainerized() && cfg.Basic.Host != "0.0.0.0" && cfg.Basic.Host != "::" {
		log.Warn().
			Str("host", cfg.Basic.Host).
			Msg("Running in a containerized environment but host is not a wildcard address (e.g., '0.0.0.0' or '::'). This may prevent the service from being accessible outside the container.")
	}

	return nil
}

var staticSkippedPathPrefixes = []string{"/healthz"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// isContainerized checks for common indicators of a containerized environment.
//
// This is a heuristic and may not be 100% accurate.
func isContainerized() bool {
	// Check for a Kubernetes-injected environment variable.
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	// Check for the presence of the /.dockerenv file.
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	return false
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
