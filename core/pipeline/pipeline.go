// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pipeline is the engine facade tying detection, correction,
transliteration, pivot resolution, and the background job queue into the
bidirectional message flow.

Sender views are always produced synchronously. Receiver views for a
different-language receiver are resolved by a background job; the message
transitions pending → complete (or failed, falling back to the sender's
native text). Live preview is synchronous, cache-first, and never enqueues
background work.
*/
package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"codeberg.org/varnantar/varnantar/core/backend"
	"codeberg.org/varnantar/varnantar/core/cache"
	"codeberg.org/varnantar/varnantar/core/dict"
	"codeberg.org/varnantar/varnantar/core/jobs"
	"codeberg.org/varnantar/varnantar/core/lang"
	"codeberg.org/varnantar/varnantar/core/phonetic"
	"codeberg.org/varnantar/varnantar/core/pivot"
	"codeberg.org/varnantar/varnantar/core/script"
	"codeberg.org/varnantar/varnantar/core/translit"
)

// Status is the per-message state. pending is transient; the rest are
// terminal.
type Status string

const (
	StatusNotNeeded Status = "not_needed"
	StatusPending   Status = "pending"
	StatusComplete  Status = "complete"
	StatusFailed    Status = "failed"
)

// outgoingPriority is the queue priority for outgoing messages. Callers
// needing strict per-conversation ordering must serialize sends themselves.
const outgoingPriority = 1

// Participant identifies one side of a conversation.
type Participant struct {
	ID string `json:"id"`
	// MotherTongue is the participant's declared language, in any form the
	// registry can normalize (name, ISO code, or dialect code).
	MotherTongue string `json:"mother_tongue"`
}

// OutgoingRequest describes one message to process.
type OutgoingRequest struct {
	// Conversation tags the message's background job so a whole
	// conversation can be cancelled at once.
	Conversation string      `json:"conversation"`
	Text         string      `json:"text"`
	Sender       Participant `json:"sender"`
	Receiver     Participant `json:"receiver"`
}

// Message is one processed outgoing message. Sender fields are populated
// synchronously; receiver fields arrive when the background job resolves.
type Message struct {
	ID           string                `json:"id"`
	Conversation string                `json:"conversation"`
	Input        string                `json:"input"`
	SenderLang   lang.ID               `json:"sender_lang"`
	ReceiverLang lang.ID               `json:"receiver_lang"`
	Detected     script.Detection      `json:"detected"`
	Corrections  []phonetic.Correction `json:"corrections,omitempty"`
	// SenderNativeText is the sender's view, rendered in the sender's
	// script.
	SenderNativeText string `json:"sender_native_text"`
	// ReceiverNativeText is the receiver's view. Empty while Status is
	// pending.
	ReceiverNativeText string    `json:"receiver_native_text,omitempty"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// Callbacks deliver asynchronous receiver-view outcomes. Either field may
// be nil.
type Callbacks struct {
	// OnReceiverReady fires once when the receiver view completes.
	OnReceiverReady func(Message)
	// OnFailure fires once when the background job fails or is cancelled;
	// the message already carries its fallback receiver text. Cancellation
	// is distinguishable via errors.Is(err, jobs.ErrCancelled).
	OnFailure func(Message, error)
}

// Options configures a pipeline Engine.
type Options struct {
	// Backend performs heavy translations for the job queue. Required.
	Backend backend.Translator
	// CacheSize bounds each internal cache. Zero means DefaultCacheSize.
	CacheSize int
	// CompressCaches enables zstd compression of cached strings.
	CompressCaches bool
	// MaxConcurrency caps simultaneous backend calls.
	MaxConcurrency int
	// MessageIndexSize bounds the in-flight message index. Zero means
	// DefaultMessageIndexSize.
	MessageIndexSize int
}

const (
	DefaultCacheSize        = 2048
	DefaultMessageIndexSize = 1024
)

var errNoBackend = errors.New("pipeline requires a translation backend")

// Engine is the process-wide pipeline instance. All dependencies are
// explicit service objects owned by the engine; safe for concurrent use.
type Engine struct {
	reg       *lang.Registry
	detector  *script.Detector
	corrector *phonetic.Corrector
	translit  *translit.Engine
	dict      *dict.Store
	resolver  *pivot.Resolver
	queue     *jobs.Queue

	detectCache   *cache.Store
	translitCache *cache.Store
	pivotCache    *cache.Store

	// mu guards the fields of indexed messages; messages points at live
	// structs shared with background waiters.
	mu       sync.Mutex
	messages *cache.Store
}

// NewEngine constructs the engine and all its service objects.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Backend == nil {
		return nil, errNoBackend
	}

	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	indexSize := opts.MessageIndexSize
	if indexSize <= 0 {
		indexSize = DefaultMessageIndexSize
	}

	reg := lang.NewRegistry()

	e := &Engine{
		reg:       reg,
		corrector: phonetic.NewCorrector(),
	}

	caches := []struct {
		dst      **cache.Store
		compress bool
	}{
		{&e.detectCache, false},
		{&e.translitCache, opts.CompressCaches},
		{&e.pivotCache, opts.CompressCaches},
	}

	for _, c := range caches {
		store, err := cache.New(size, c.compress)
		if err != nil {
			return nil, err
		}

		*c.dst = store
	}

	// The message index shares the cache bound, not the cache size.
	messages, err := cache.New(indexSize, false)
	if err != nil {
		return nil, err
	}

	e.messages = messages

	var g errgroup.Group

	g.Go(func() error {
		store, err := dict.Load(reg)
		if err != nil {
			return err
		}

		e.dict = store

		return nil
	})

	g.Go(func() error {
		e.translit = translit.NewEngine(reg, e.translitCache)
		e.detector = script.NewDetector(reg, e.detectCache)

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.resolver = pivot.NewResolver(reg, e.dict, e.translit, e.pivotCache)

	worker := func(ctx context.Context, job jobs.Job) (string, error) {
		return opts.Backend.Translate(ctx, job.Text, job.Source, job.Target)
	}
	e.queue = jobs.NewQueue(worker, opts.MaxConcurrency)

	return e, nil
}
