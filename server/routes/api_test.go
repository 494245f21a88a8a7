// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"codeberg.org/varnantar/varnantar/core/backend"
	"codeberg.org/varnantar/varnantar/core/cache"
	"codeberg.org/varnantar/varnantar/core/dict"
	"codeberg.org/varnantar/varnantar/core/lang"
	"codeberg.org/varnantar/varnantar/core/pipeline"
	"codeberg.org/varnantar/varnantar/core/pivot"
	"codeberg.org/varnantar/varnantar/core/translit"
	"codeberg.org/varnantar/varnantar/server/router"
	"codeberg.org/varnantar/varnantar/server/routes"
)

func newTestServer(t *testing.T) *router.Router {
	t.Helper()

	reg := lang.NewRegistry()

	store, err := dict.Load(reg)
	require.NoError(t, err)

	pvCache, err := cache.New(256, false)
	require.NoError(t, err)

	trCache, err := cache.New(256, false)
	require.NoError(t, err)

	translator := backend.NewDictionaryTranslator(
		pivot.NewResolver(reg, store, translit.NewEngine(reg, trCache), pvCache),
	)

	e, err := pipeline.NewEngine(pipeline.Options{Backend: translator})
	require.NoError(t, err)
	t.Cleanup(e.Close)

	routes.Setup(e)

	rt := router.NewRouter()
	rt.DefineRoutes()
	rt.RegisterMiddleware()

	return rt
}

func doJSON(rt *router.Router, method, path, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	rt.ServeHTTP(w, r)

	return w
}

func TestHealthz(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestOutgoingMessageSameLanguage(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodPost, "/api/messages/outgoing", `{
		"conversation": "c1",
		"text": "namaste",
		"sender": {"id": "u1", "mother_tongue": "Hindi"},
		"receiver": {"id": "u2", "mother_tongue": "hi"}
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "not_needed", gjson.Get(body, "status").String())
	assert.Equal(t, "नमस्ते", gjson.Get(body, "sender_native_text").String())
	assert.NotEmpty(t, gjson.Get(body, "id").String())
}

func TestOutgoingMessageCrossLanguage(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodPost, "/api/messages/outgoing", `{
		"conversation": "c1",
		"text": "bagunnava",
		"sender": {"id": "u1", "mother_tongue": "Telugu"},
		"receiver": {"id": "u2", "mother_tongue": "English"}
	}`)

	require.Equal(t, http.StatusAccepted, w.Code)

	body := w.Body.String()
	assert.Equal(t, "pending", gjson.Get(body, "status").String())
	assert.Equal(t, "బాగున్నావా", gjson.Get(body, "sender_native_text").String())

	id := gjson.Get(body, "id").String()
	require.NotEmpty(t, id)

	// Poll until the background translation resolves.
	require.Eventually(t, func() bool {
		w := doJSON(rt, http.MethodGet, "/api/messages/"+id, "")
		if w.Code != http.StatusOK {
			return false
		}

		return gjson.Get(w.Body.String(), "status").String() == "complete"
	}, 5*time.Second, 10*time.Millisecond)

	w = doJSON(rt, http.MethodGet, "/api/messages/"+id, "")
	assert.Equal(t, "how are you", gjson.Get(w.Body.String(), "receiver_native_text").String())
}

func TestOutgoingMessageValidation(t *testing.T) {
	rt := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "EmptyBody",
			body: "",
		},
		{
			name: "MissingText",
			body: `{"conversation": "c1", "sender": {"mother_tongue": "hi"}, "receiver": {"mother_tongue": "te"}}`,
		},
		{
			name: "MissingLanguages",
			body: `{"conversation": "c1", "text": "hello", "sender": {"id": "u1"}, "receiver": {"id": "u2"}}`,
		},
		{
			name: "MalformedJSON",
			body: `{"text": `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(rt, http.MethodPost, "/api/messages/outgoing", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, gjson.Get(w.Body.String(), "error").String())
		})
	}
}

func TestGetMessageNotFound(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodGet, "/api/messages/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "message not found", gjson.Get(w.Body.String(), "error").String())
}

func TestIncomingMessage(t *testing.T) {
	rt := newTestServer(t)

	// Same language passes through untouched.
	w := doJSON(rt, http.MethodPost, "/api/messages/incoming", `{
		"text": "नमस्ते",
		"sender_lang": "hi",
		"receiver_lang": "hi"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "नमस्ते", gjson.Get(w.Body.String(), "text").String())
	assert.Equal(t, "passthrough", gjson.Get(w.Body.String(), "method").String())

	// Cross language renders into the receiver's language.
	w = doJSON(rt, http.MethodPost, "/api/messages/incoming", `{
		"text": "బాగున్నావా",
		"sender_lang": "te",
		"receiver_lang": "en"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "how are you", gjson.Get(w.Body.String(), "text").String())
	assert.True(t, gjson.Get(w.Body.String(), "translated").Bool())
}

func TestPreview(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodPost, "/api/preview", `{
		"partial": "namaste",
		"mother_tongue": "hi"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "नमस्ते", gjson.Get(w.Body.String(), "preview").String())
}

func TestDetect(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodPost, "/api/detect", `{"text": "आप कैसे हैं"}`)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "hi", gjson.Get(body, "language").String())
	assert.False(t, gjson.Get(body, "isLatin").Bool())
}

func TestLanguages(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodGet, "/api/languages", "")

	require.Equal(t, http.StatusOK, w.Code)

	profiles := gjson.Parse(w.Body.String()).Array()
	assert.NotEmpty(t, profiles)

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.Get("id").String())
	}

	assert.Contains(t, ids, "en")
	assert.Contains(t, ids, "hi")
	assert.Contains(t, ids, "te")
}

func TestQueueStats(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodGet, "/api/queue/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "pending").Exists())
}

func TestCancelConversation(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodPost, "/api/queue/cancel", `{"conversation": "nothing-queued"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), gjson.Get(w.Body.String(), "cancelled").Int())
}

func TestCancelConversationValidation(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodPost, "/api/queue/cancel", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCaches(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodPost, "/api/caches/clear", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", gjson.Get(w.Body.String(), "status").String())
}

func TestTrailingSlashRedirect(t *testing.T) {
	rt := newTestServer(t)

	w := doJSON(rt, http.MethodGet, "/api/languages/", "")

	assert.Equal(t, http.StatusPermanentRedirect, w.Code)
	assert.Equal(t, "/api/languages", w.Header().Get("Location"))
}
