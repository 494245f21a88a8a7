// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"codeberg.org/varnantar/varnantar/core/audit"
	"codeberg.org/varnantar/varnantar/core/lang"
)

// DefaultHTTPTimeout bounds one backend round trip.
const DefaultHTTPTimeout = 30 * time.Second

// maxResponseSize caps how much of a backend response is read.
const maxResponseSize = 1 << 20

// HTTPConfig configures an OpenAI-compatible chat-completions backend.
type HTTPConfig struct {
	// URL is the full chat-completions endpoint, e.g.
	// https://api.example.com/v1/chat/completions.
	URL string
	// Model names the model requested from the endpoint.
	Model string
	// APIKey, when set, is sent as a bearer token.
	APIKey string
	// Timeout bounds one round trip; zero means DefaultHTTPTimeout.
	Timeout time.Duration
}

// HTTPTranslator calls an OpenAI-compatible chat-completions endpoint.
type HTTPTranslator struct {
	cfg    HTTPConfig
	reg    *lang.Registry
	client *http.Client
}

func NewHTTPTranslator(cfg HTTPConfig, reg *lang.Registry) *HTTPTranslator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	return &HTTPTranslator{
		cfg:    cfg,
		reg:    reg,
		client: &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Translate sends one chat-completion request and extracts the first
// choice's message content. Any fault maps to ErrTranslationFailed.
func (t *HTTPTranslator) Translate(ctx context.Context, text string, source, target lang.ID) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: t.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: t.prompt(source, target)},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")

	if t.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
	}

	span := audit.Span{
		Destination: audit.ToBackend,
		Method:      http.MethodPost,
		URL:         t.cfg.URL,
	}
	_ = span.Begin(ctx)

	resp, err := t.client.Do(req)

	span.End()

	if err != nil {
		span.Error = err
		span.Log()

		return "", fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))

	span.StatusCode = resp.StatusCode
	span.BodyLen = len(body)
	span.Error = err
	span.Log()

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status code %d", ErrTranslationFailed, resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: response contained invalid JSON", ErrTranslationFailed)
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("%w: response contained no completion", ErrTranslationFailed)
	}

	return strings.TrimSpace(content.String()), nil
}

// prompt builds the system instruction for one language pair.
func (t *HTTPTranslator) prompt(source, target lang.ID) string {
	return fmt.Sprintf(
		"You are a translation engine. Translate the user's message from %s to %s. Reply with only the translated text.",
		t.languageName(source), t.languageName(target),
	)
}

func (t *HTTPTranslator) languageName(id lang.ID) string {
	if profile, ok := t.reg.Info(t.reg.Effective(id)); ok {
		return profile.Name
	}

	return string(id)
}
