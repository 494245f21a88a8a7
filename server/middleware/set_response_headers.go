// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"

	"codeberg.org/varnantar/varnantar/configs"
)

// baseHeaders defines the default headers to be set in responses.
//
// Varnantar-Version and Varnantar-Revision are added dynamically in SetResponseHeaders.
//
// NOTE: we intentionally don't set CORP or HSTS headers.
var baseHeaders = http.Header{
	"Referrer-Policy":         {"no-referrer"},
	"X-Frame-Options":         {"DENY"},
	"X-Content-Type-Options":  {"nosniff"},
	"Cache-Control":           {"private, no-cache"},
	"Content-Security-Policy": {"default-src 'none'; frame-ancestors 'none';"},
}

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	headers.Set("Varnantar-Version", config.BuildVersion)
	headers.Set("Varnantar-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}
