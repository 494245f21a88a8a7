// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"codeberg.org/varnantar/varnantar/server/request_context"
)

func runCatchError(t *testing.T, handler func(w http.ResponseWriter, r *http.Request) error) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	r = r.WithContext(request_context.WithRequestContext(r.Context()))
	w := httptest.NewRecorder()

	CatchError(handler)(w, r)

	return w
}

func TestCatchErrorSuccessPassthrough(t *testing.T) {
	w := runCatchError(t, func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		_, err := w.Write([]byte(`{"ok":true}`))

		return err
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, gjson.Get(w.Body.String(), "ok").Bool())
}

func TestCatchErrorStatusError(t *testing.T) {
	w := runCatchError(t, func(_ http.ResponseWriter, _ *http.Request) error {
		return NewStatusError(http.StatusBadRequest, errors.New("text is required"))
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	body := w.Body.String()
	assert.Equal(t, "text is required", gjson.Get(body, "error").String())
	assert.NotEmpty(t, gjson.Get(body, "request_id").String())
}

func TestCatchErrorWrappedStatusError(t *testing.T) {
	inner := NewStatusError(http.StatusNotFound, errors.New("message not found"))

	w := runCatchError(t, func(_ http.ResponseWriter, _ *http.Request) error {
		return inner
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "message not found", gjson.Get(w.Body.String(), "error").String())
}

func TestCatchErrorUnhandledError(t *testing.T) {
	w := runCatchError(t, func(w http.ResponseWriter, _ *http.Request) error {
		// Partial output before the failure must not reach the client.
		_, _ = w.Write([]byte("partial"))

		return errors.New("database exploded")
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "partial")
	assert.NotContains(t, body, "database exploded")
	assert.Equal(t, "internal server error", gjson.Get(body, "error").String())
}

func TestCatchErrorDefaultsToOK(t *testing.T) {
	w := runCatchError(t, func(w http.ResponseWriter, _ *http.Request) error {
		_, err := w.Write([]byte("hello"))

		return err
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())
}
