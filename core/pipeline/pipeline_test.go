// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/varnantar/varnantar/core/backend"
	"codeberg.org/varnantar/varnantar/core/cache"
	"codeberg.org/varnantar/varnantar/core/dict"
	"codeberg.org/varnantar/varnantar/core/jobs"
	"codeberg.org/varnantar/varnantar/core/lang"
	"codeberg.org/varnantar/varnantar/core/pivot"
	"codeberg.org/varnantar/varnantar/core/translit"
)

const waitTimeout = 5 * time.Second

func dictionaryBackend(t *testing.T) backend.Translator {
	t.Helper()

	reg := lang.NewRegistry()

	store, err := dict.Load(reg)
	require.NoError(t, err)

	pvCache, err := cache.New(256, false)
	require.NoError(t, err)

	trCache, err := cache.New(256, false)
	require.NoError(t, err)

	return backend.NewDictionaryTranslator(
		pivot.NewResolver(reg, store, translit.NewEngine(reg, trCache), pvCache),
	)
}

func newEngine(t *testing.T, b backend.Translator) *Engine {
	t.Helper()

	e, err := NewEngine(Options{Backend: b})
	require.NoError(t, err)
	t.Cleanup(e.Close)

	return e
}

// failingTranslator rejects every job.
type failingTranslator struct{}

func (failingTranslator) Translate(context.Context, string, lang.ID, lang.ID) (string, error) {
	return "", backend.ErrTranslationFailed
}

// gatedTranslator blocks every call until release is closed.
type gatedTranslator struct {
	release <-chan struct{}
}

func (g gatedTranslator) Translate(_ context.Context, text string, _, _ lang.ID) (string, error) {
	<-g.release

	return text, nil
}

func TestSameLanguageConversation(t *testing.T) {
	t.Parallel()

	e := newEngine(t, dictionaryBackend(t))

	msg := e.ProcessOutgoing(OutgoingRequest{
		Conversation: "c1",
		Text:         "namaste",
		Sender:       Participant{ID: "u1", MotherTongue: "Hindi"},
		Receiver:     Participant{ID: "u2", MotherTongue: "Hindi"},
	}, Callbacks{})

	assert.Equal(t, StatusNotNeeded, msg.Status)
	assert.Equal(t, "नमस्ते", msg.SenderNativeText)
	assert.Equal(t, msg.SenderNativeText, msg.ReceiverNativeText)
}

func TestCrossLanguageConversation(t *testing.T) {
	t.Parallel()

	e := newEngine(t, dictionaryBackend(t))

	ready := make(chan Message, 1)

	msg := e.ProcessOutgoing(OutgoingRequest{
		Conversation: "c1",
		Text:         "bagunnava",
		Sender:       Participant{ID: "u1", MotherTongue: "Telugu"},
		Receiver:     Participant{ID: "u2", MotherTongue: "English"},
	}, Callbacks{
		OnReceiverReady: func(m Message) { ready <- m },
	})

	// Sender view is synchronous: typo-corrected phonetic input rendered
	// in Telugu script.
	assert.Equal(t, StatusPending, msg.Status)
	assert.Equal(t, "బాగున్నావా", msg.SenderNativeText)
	assert.NotEmpty(t, msg.Corrections)
	assert.Empty(t, msg.ReceiverNativeText)

	select {
	case done := <-ready:
		assert.Equal(t, StatusComplete, done.Status)
		assert.Equal(t, "how are you", done.ReceiverNativeText)
	case <-time.After(waitTimeout):
		t.Fatal("receiver view never arrived")
	}

	stored, ok := e.GetMessage(msg.ID)
	require.True(t, ok)
	assert.Equal(t, StatusComplete, stored.Status)
	assert.Equal(t, "how are you", stored.ReceiverNativeText)
}

func TestNativeScriptInput(t *testing.T) {
	t.Parallel()

	e := newEngine(t, dictionaryBackend(t))

	ready := make(chan Message, 1)

	msg := e.ProcessOutgoing(OutgoingRequest{
		Conversation: "c1",
		Text:         "आप कैसे हैं",
		Sender:       Participant{ID: "u1", MotherTongue: "Hindi"},
		Receiver:     Participant{ID: "u2", MotherTongue: "Telugu"},
	}, Callbacks{
		OnReceiverReady: func(m Message) { ready <- m },
	})

	assert.GreaterOrEqual(t, msg.Detected.Confidence, 0.9)
	assert.False(t, msg.Detected.IsLatin)
	// Native input skips phonetic correction entirely.
	assert.Empty(t, msg.Corrections)
	assert.Equal(t, "आप कैसे हैं", msg.SenderNativeText)

	select {
	case done := <-ready:
		assert.Equal(t, StatusComplete, done.Status)
		assert.Equal(t, "బాగున్నావా", done.ReceiverNativeText)
	case <-time.After(waitTimeout):
		t.Fatal("receiver view never arrived")
	}
}

func TestBackendFailureFallsBack(t *testing.T) {
	t.Parallel()

	e := newEngine(t, failingTranslator{})

	failed := make(chan Message, 1)

	msg := e.ProcessOutgoing(OutgoingRequest{
		Conversation: "c1",
		Text:         "namaste",
		Sender:       Participant{ID: "u1", MotherTongue: "Hindi"},
		Receiver:     Participant{ID: "u2", MotherTongue: "Telugu"},
	}, Callbacks{
		OnFailure: func(m Message, err error) {
			assert.ErrorIs(t, err, backend.ErrTranslationFailed)
			failed <- m
		},
	})

	select {
	case done := <-failed:
		assert.Equal(t, StatusFailed, done.Status)
		assert.Equal(t, msg.SenderNativeText, done.ReceiverNativeText)
	case <-time.After(waitTimeout):
		t.Fatal("failure callback never fired")
	}
}

func TestCancelConversation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	e, err := NewEngine(Options{
		Backend:        gatedTranslator{release: release},
		MaxConcurrency: 1,
	})
	require.NoError(t, err)
	t.Cleanup(e.Close)

	cancelled := make(chan error, 2)
	cb := Callbacks{
		OnFailure: func(_ Message, err error) { cancelled <- err },
	}

	send := func(conversation string) {
		e.ProcessOutgoing(OutgoingRequest{
			Conversation: conversation,
			Text:         "namaste",
			Sender:       Participant{ID: "u1", MotherTongue: "Hindi"},
			Receiver:     Participant{ID: "u2", MotherTongue: "Telugu"},
		}, cb)
	}

	// The first job occupies the single worker slot; the rest stay queued.
	send("busy")
	send("doomed")
	send("doomed")

	require.Eventually(t, func() bool {
		return e.QueueStats().Pending == 2
	}, waitTimeout, 10*time.Millisecond)

	assert.Equal(t, 2, e.CancelConversation("doomed"))

	for range 2 {
		select {
		case err := <-cancelled:
			assert.ErrorIs(t, err, jobs.ErrCancelled)
		case <-time.After(waitTimeout):
			t.Fatal("cancellation callback never fired")
		}
	}

	close(release)
}

func TestProcessIncoming(t *testing.T) {
	t.Parallel()

	e := newEngine(t, dictionaryBackend(t))

	same := e.ProcessIncoming("hello there", "en", "en")
	assert.Equal(t, "hello there", same.Text)
	assert.Equal(t, pivot.MethodPassthrough, same.Method)
	assert.Equal(t, 1.0, same.Confidence)

	assert.Equal(t, "आप कैसे हैं", e.ProcessIncoming("how are you", "en", "hi").Text)
	assert.Equal(t, "how are you", e.ProcessIncoming("బాగున్నావా", "te", "en").Text)
}

func TestLivePreview(t *testing.T) {
	t.Parallel()

	e := newEngine(t, dictionaryBackend(t))

	assert.Equal(t, "नमस्ते", e.LivePreview("namaste", "Hindi"))
	assert.Equal(t, "", e.LivePreview("", "Hindi"))
	// Native input previews as-is.
	assert.Equal(t, "नमस्ते", e.LivePreview("नमस्ते", "Hindi"))
	// Latin mother tongues never transform.
	assert.Equal(t, "hello", e.LivePreview("hello", "English"))

	// Preview must not touch the background queue.
	assert.Equal(t, 0, e.QueueStats().Pending+e.QueueStats().Active)
}

func TestUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	e := newEngine(t, dictionaryBackend(t))

	msg := e.ProcessOutgoing(OutgoingRequest{
		Conversation: "c1",
		Text:         "hello",
		Sender:       Participant{ID: "u1", MotherTongue: "klingon"},
		Receiver:     Participant{ID: "u2", MotherTongue: "klingon"},
	}, Callbacks{})

	assert.Equal(t, lang.English, msg.SenderLang)
	assert.Equal(t, StatusNotNeeded, msg.Status)
	assert.Equal(t, "hello", msg.SenderNativeText)
}

func TestClearCaches(t *testing.T) {
	t.Parallel()

	e := newEngine(t, dictionaryBackend(t))

	e.LivePreview("namaste", "Hindi")
	e.ClearCaches()

	// Cleared caches recompute identically.
	assert.Equal(t, "नमस्ते", e.LivePreview("namaste", "Hindi"))
}

func TestGetMessageUnknown(t *testing.T) {
	t.Parallel()

	e := newEngine(t, dictionaryBackend(t))

	_, ok := e.GetMessage("nope")
	assert.False(t, ok)
}
