// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"codeberg.org/varnantar/varnantar/server/middleware"
)

// maxRequestBodySize bounds request bodies to keep a hostile client from
// exhausting memory.
const maxRequestBodySize = 1 << 20 // 1 MiB

var errEmptyBody = errors.New("request body is required")

// decodeJSON reads a JSON request body into v. Malformed input maps to a
// 400 so CatchError renders it as a client error.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return middleware.NewStatusError(http.StatusBadRequest, errEmptyBody)
		}

		return middleware.NewStatusError(http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err))
	}

	return nil
}

// writeJSON renders v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	return nil
}

// badRequest builds a 400 from a validation message.
func badRequest(format string, args ...any) error {
	return middleware.NewStatusError(http.StatusBadRequest, fmt.Errorf(format, args...))
}
