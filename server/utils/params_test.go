// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetQueryParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/detect?text=hola&hint=", nil)

	assert.Equal(t, "hola", GetQueryParam(r, "text"))
	assert.Equal(t, "es", GetQueryParam(r, "hint", "es"))
	assert.Equal(t, "", GetQueryParam(r, "missing"))
}

func TestGetPathVar(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", GetPathVar(r, "id"))
		assert.Equal(t, "fallback", GetPathVar(r, "missing", "fallback"))
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/messages/abc123", nil))
}
