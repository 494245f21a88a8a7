// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// readEnv overlays environment variables onto the configuration.
// Variables are declared through `env` struct tags on ServerConfig.
func (cfg *ServerConfig) readEnv() error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return nil
}
