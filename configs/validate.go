// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/rs/zerolog/log"
)

// validation errors.
var (
	errInvalidBackendKind    = errors.New("invalid Backend.Kind value")
	errBackendURLRequired    = errors.New("Backend.URL is required when Backend.Kind is http")
	errBackendURLInvalid     = errors.New("Backend.URL is not a valid absolute URL")
	errInvalidLogLevel       = errors.New("invalid Log.Level value")
	errInvalidLogFormat      = errors.New("invalid Log.Format value")
	errInvalidLimiterRate    = errors.New("Limiter.RequestsPerSecond must be positive when the limiter is enabled")
	errInvalidLimiterBurst   = errors.New("Limiter.Burst must be positive when the limiter is enabled")
	errInvalidEngineCapacity = errors.New("Engine sizes must be positive")
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateAndSet validates the server configuration and populates some fields.
func (cfg *ServerConfig) validateAndSet() error {
	if cfg.Basic.Host == "" {
		cfg.Basic.Host = "localhost"
		log.Info().
			Str("host", cfg.Basic.Host).
			Msg("Binding to default host")
	}

	if cfg.Basic.Port == "" {
		cfg.Basic.Port = "8484"
		log.Info().
			Str("port", cfg.Basic.Port).
			Msg("Using default port")
	}

	if cfg.Engine.CacheSize <= 0 || cfg.Engine.MaxConcurrency <= 0 || cfg.Engine.MessageIndexSize <= 0 {
		return errInvalidEngineCapacity
	}

	switch cfg.Backend.Kind {
	case BackendDictionary:
	case BackendHTTP:
		if cfg.Backend.URL == "" {
			return errBackendURLRequired
		}

		parsed, err := url.Parse(cfg.Backend.URL)
		if err != nil || !parsed.IsAbs() {
			return fmt.Errorf("%w: %q", errBackendURLInvalid, cfg.Backend.URL)
		}
	default:
		return fmt.Errorf("%w: %q", errInvalidBackendKind, cfg.Backend.Kind)
	}

	if cfg.Limiter.Enabled {
		if cfg.Limiter.RequestsPerSecond <= 0 {
			return errInvalidLimiterRate
		}

		if cfg.Limiter.Burst <= 0 {
			return errInvalidLimiterBurst
		}
	}

	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}
