// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	config "codeberg.org/varnantar/varnantar/configs"
	"codeberg.org/varnantar/varnantar/core/audit"
	"codeberg.org/varnantar/varnantar/server/request_context"
)

// StatusError carries an HTTP status code alongside an error. Handlers
// return it when a request fails for a reason the client should see.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// NewStatusError pairs an error with the HTTP status code it should render
// as.
func NewStatusError(code int, err error) *StatusError {
	return &StatusError{Code: code, Err: err}
}

// errorPayload is the JSON body rendered for failed requests.
type errorPayload struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// It operates as follows:
//  1. It times the request for logging purposes.
//  2. It wraps the execution of the given handler, which has the signature
//     `func(w http.ResponseWriter, r *http.Request) error`. The handler's
//     output is buffered using an httptest.ResponseRecorder.
//  3. Any error returned by the handler is stored in the request context.
//
// After the handler runs, it decides on the final response:
//   - If the handler returns a *StatusError, the middleware renders a JSON
//     error body with that status code.
//   - If the handler returns any other error without writing an HTTP error
//     status code (i.e., status < 400), it's treated as an unhandled internal
//     error. The buffered response is discarded and a generic 500 JSON error
//     is rendered.
//   - In all other cases (e.g., a successful response), the buffered response
//     is written to the client.
//
// Finally, it logs the completed request details (status, duration, error, etc.)
// via the audit package.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			Destination: audit.ToUser,
			RequestID:   ctx.RequestID,
			Method:      r.Method,
			URL:         r.URL.String(),
		}

		_ = span.Begin(r.Context())
		defer span.End()

		recorder := httptest.NewRecorder()

		// Execute the handler, capturing its output and any returned error.
		err := handler(recorder, r)

		ctx.RequestError = err

		var statusErr *StatusError

		switch {
		case errors.As(err, &statusErr):
			// A handler signaled a client-visible failure. Discard the
			// recorder's content and render the JSON error.
			ctx.StatusCode = statusErr.Code

			writeErrorJSON(w, ctx.StatusCode, statusErr.Error(), ctx.RequestID)

		case err != nil && recorder.Code < http.StatusBadRequest:
			// An unhandled error occurred. Discard the recorder's contents
			// and render a generic error without leaking internals.
			ctx.StatusCode = http.StatusInternalServerError

			writeErrorJSON(w, ctx.StatusCode, "internal server error", ctx.RequestID)

		default:
			// This is a successful response or a handled error. We trust the recorder's output.
			if recorder.Code == 0 {
				recorder.Code = http.StatusOK
			}

			ctx.StatusCode = recorder.Code // Ensure ctx.StatusCode reflects the actual code for logging.
			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError
		span.BodyLen = recorder.Body.Len()

		// Log the application response if not excluded.
		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}

func writeErrorJSON(w http.ResponseWriter, code int, message, requestID string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(errorPayload{Error: message, RequestID: requestID}); err != nil {
		log.Err(err).Msg("Failed to write error response")
	}
}
