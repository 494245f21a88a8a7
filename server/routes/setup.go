// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package routes implements the JSON API handlers.
package routes

import (
	"codeberg.org/varnantar/varnantar/core/pipeline"
)

// engine is the shared pipeline instance behind every handler.
var engine *pipeline.Engine

// Setup wires the handlers to a pipeline engine. Must be called before
// any route is served.
func Setup(e *pipeline.Engine) {
	engine = e
}
