// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"

	"codeberg.org/varnantar/varnantar/core/pipeline"
	"codeberg.org/varnantar/varnantar/server/middleware"
	"codeberg.org/varnantar/varnantar/server/utils"
)

var errMessageNotFound = errors.New("message not found")

// OutgoingMessage accepts one outgoing message and starts its pipeline
// run. The sender view is returned immediately; when translation is
// needed the receiver view resolves in the background and the response
// carries a pending status, so clients poll GetMessage for completion.
func OutgoingMessage(w http.ResponseWriter, r *http.Request) error {
	var req pipeline.OutgoingRequest

	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	if req.Text == "" {
		return badRequest("text is required")
	}

	if req.Sender.MotherTongue == "" || req.Receiver.MotherTongue == "" {
		return badRequest("sender and receiver mother tongues are required")
	}

	msg := engine.ProcessOutgoing(req, pipeline.Callbacks{})

	code := http.StatusOK
	if msg.Status == pipeline.StatusPending {
		code = http.StatusAccepted
	}

	return writeJSON(w, code, msg)
}

// incomingRequest is the body for IncomingMessage.
type incomingRequest struct {
	Text         string `json:"text"`
	SenderLang   string `json:"sender_lang"`
	ReceiverLang string `json:"receiver_lang"`
}

// IncomingMessage renders a received message into the reader's language.
// The response carries the rendered text plus the resolution method and
// its confidence.
func IncomingMessage(w http.ResponseWriter, r *http.Request) error {
	var req incomingRequest

	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	if req.Text == "" {
		return badRequest("text is required")
	}

	return writeJSON(w, http.StatusOK, engine.ProcessIncoming(req.Text, req.SenderLang, req.ReceiverLang))
}

// GetMessage returns the current state of a processed message by ID.
func GetMessage(w http.ResponseWriter, r *http.Request) error {
	id := utils.GetPathVar(r, "id")

	msg, ok := engine.GetMessage(id)
	if !ok {
		return middleware.NewStatusError(http.StatusNotFound, errMessageNotFound)
	}

	return writeJSON(w, http.StatusOK, msg)
}
