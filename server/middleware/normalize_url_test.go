// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantRedirect bool
		wantLocation string
	}{
		{
			name: "Root",
			path: "/",
		},
		{
			name: "NoTrailingSlash",
			path: "/api/languages",
		},
		{
			name:         "TrailingSlash",
			path:         "/api/languages/",
			wantRedirect: true,
			wantLocation: "/api/languages",
		},
		{
			name:         "TrailingSlashWithQuery",
			path:         "/api/detect/?text=hello",
			wantRedirect: true,
			wantLocation: "/api/detect?text=hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			nextCalled := false
			NormalizeURL(w, r, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				nextCalled = true
			}))

			if tt.wantRedirect {
				assert.False(t, nextCalled)
				assert.Equal(t, http.StatusPermanentRedirect, w.Code)
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			} else {
				assert.True(t, nextCalled)
			}
		})
	}
}
