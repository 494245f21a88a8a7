// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"time"

	"codeberg.org/varnantar/varnantar/core/jobs"
	"codeberg.org/varnantar/varnantar/core/pipeline"
)

const (
	// Default sustained request rate per client IP.
	defaultLimiterRequestsPerSecond = 20
	// Default burst allowance per client IP.
	defaultLimiterBurst = 40
	// Default backend round-trip timeout in seconds.
	defaultBackendTimeoutSeconds = 30
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8484"

	cfg.Engine.CacheSize = pipeline.DefaultCacheSize
	cfg.Engine.CompressCaches = false
	cfg.Engine.MaxConcurrency = jobs.DefaultMaxConcurrency
	cfg.Engine.MessageIndexSize = pipeline.DefaultMessageIndexSize

	cfg.Backend.Kind = BackendDictionary
	cfg.Backend.Timeout = defaultBackendTimeoutSeconds * time.Second

	cfg.Limiter.Enabled = false
	cfg.Limiter.RequestsPerSecond = defaultLimiterRequestsPerSecond
	cfg.Limiter.Burst = defaultLimiterBurst

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
