// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
)

// Languages lists every language profile the engine supports.
func Languages(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, engine.Languages())
}

// QueueStats reports the background job queue's counters.
func QueueStats(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, engine.QueueStats())
}

// cancelRequest is the body for CancelConversation.
type cancelRequest struct {
	Conversation string `json:"conversation"`
}

// cancelResponse reports how many queued jobs were dropped.
type cancelResponse struct {
	Cancelled int `json:"cancelled"`
}

// CancelConversation drops every pending translation job tagged with the
// given conversation. Jobs already running are not interrupted.
func CancelConversation(w http.ResponseWriter, r *http.Request) error {
	var req cancelRequest

	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	if req.Conversation == "" {
		return badRequest("conversation is required")
	}

	return writeJSON(w, http.StatusOK, cancelResponse{
		Cancelled: engine.CancelConversation(req.Conversation),
	})
}

// ClearCaches empties the engine's translation caches. Processed message
// state survives so in-flight polls keep working.
func ClearCaches(w http.ResponseWriter, _ *http.Request) error {
	engine.ClearCaches()

	return writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Healthz is the liveness probe. Registered outside CatchError so it
// stays out of the request log.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
