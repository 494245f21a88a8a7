// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
)

// previewRequest is the body for Preview.
type previewRequest struct {
	Partial      string `json:"partial"`
	MotherTongue string `json:"mother_tongue"`
}

// previewResponse carries the live native-script rendering of a partial
// message.
type previewResponse struct {
	Preview string `json:"preview"`
}

// Preview renders a partially typed message in the composer's native
// script. Cheap enough to call per keystroke; never touches the job
// queue.
func Preview(w http.ResponseWriter, r *http.Request) error {
	var req previewRequest

	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	if req.MotherTongue == "" {
		return badRequest("mother_tongue is required")
	}

	return writeJSON(w, http.StatusOK, previewResponse{
		Preview: engine.LivePreview(req.Partial, req.MotherTongue),
	})
}

// detectRequest is the body for Detect.
type detectRequest struct {
	Text string `json:"text"`
	Hint string `json:"hint"`
}

// Detect classifies the script and likely language of a text.
func Detect(w http.ResponseWriter, r *http.Request) error {
	var req detectRequest

	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	if req.Text == "" {
		return badRequest("text is required")
	}

	return writeJSON(w, http.StatusOK, engine.Detect(req.Text, req.Hint))
}
