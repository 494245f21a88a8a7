// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package jobs runs heavy translation work in the background.

Jobs wait in an in-memory binary heap ordered by descending priority, FIFO
among equal priorities. Draining dispatches jobs to the configured worker
while the active count stays under a small concurrency cap; each completion
resolves the job's future and immediately drains further. Queued jobs can be
cancelled by predicate; dispatched jobs always run to completion.
*/
package jobs

import (
	"container/heap"
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"codeberg.org/varnantar/varnantar/core/lang"
)

// ErrCancelled rejects the future of a job removed from the queue before
// dispatch. Distinct from worker failure.
var ErrCancelled = errors.New("job cancelled")

// ErrQueueClosed rejects jobs enqueued after Close.
var ErrQueueClosed = errors.New("job queue closed")

// DefaultMaxConcurrency caps simultaneous worker calls.
const DefaultMaxConcurrency = 3

// Job describes one translation request.
type Job struct {
	ID       string
	Text     string
	Source   lang.ID
	Target   lang.ID
	Priority int
	// Tag scopes a job for predicate cancellation, typically a
	// conversation identifier.
	Tag string

	seq uint64
}

// Result carries a resolved or rejected job outcome.
type Result struct {
	Text string
	Err  error
}

// Future delivers a job's result exactly once.
type Future struct {
	job Job
	ch  chan Result
}

// Job returns the job this future belongs to.
func (f *Future) Job() Job {
	return f.job
}

// Done returns the channel the result is delivered on.
func (f *Future) Done() <-chan Result {
	return f.ch
}

// Wait blocks until the job resolves or ctx is done.
func (f *Future) Wait(ctx context.Context) (string, error) {
	select {
	case res := <-f.ch:
		return res.Text, res.Err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (f *Future) resolve(res Result) {
	f.ch <- res
	close(f.ch)
}

// Worker performs the heavy translation for one job.
type Worker func(ctx context.Context, job Job) (string, error)

// Stats is a point-in-time snapshot of queue state.
type Stats struct {
	// Pending counts queued jobs not yet dispatched.
	Pending int `json:"pending"`
	// Active counts jobs currently running in the worker.
	Active int `json:"active"`
	// Ready counts jobs resolved since the queue started.
	Ready int `json:"ready"`
}

// Queue is the background job queue. Safe for concurrent use.
type Queue struct {
	worker         Worker
	maxConcurrency int

	mu      sync.Mutex
	heap    jobHeap
	active  int
	ready   int
	nextSeq uint64
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewQueue creates a queue dispatching to worker with at most
// maxConcurrency jobs in flight. A non-positive cap falls back to
// DefaultMaxConcurrency.
func NewQueue(worker Worker, maxConcurrency int) *Queue {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Queue{
		worker:         worker,
		maxConcurrency: maxConcurrency,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Enqueue queues a translation job and triggers draining. The returned
// future resolves when the job completes, fails, or is cancelled.
func (q *Queue) Enqueue(text string, source, target lang.ID, priority int, tag string) *Future {
	fut := &Future{
		job: Job{
			ID:       uuid.NewString(),
			Text:     text,
			Source:   source,
			Target:   target,
			Priority: priority,
			Tag:      tag,
		},
		ch: make(chan Result, 1),
	}

	q.mu.Lock()

	if q.closed {
		q.mu.Unlock()
		fut.resolve(Result{Err: ErrQueueClosed})

		return fut
	}

	fut.job.seq = q.nextSeq
	q.nextSeq++

	heap.Push(&q.heap, &queued{job: fut.job, fut: fut})
	q.drainLocked()
	q.mu.Unlock()

	return fut
}

// Cancel removes queued jobs matching the predicate and rejects their
// futures with ErrCancelled. Jobs already dispatched run to completion.
// Returns the number of jobs cancelled.
func (q *Queue) Cancel(match func(Job) bool) int {
	q.mu.Lock()

	var (
		kept      jobHeap
		cancelled []*queued
	)

	for _, item := range q.heap {
		if match(item.job) {
			cancelled = append(cancelled, item)

			continue
		}

		kept = append(kept, item)
	}

	q.heap = kept
	heap.Init(&q.heap)
	q.mu.Unlock()

	for _, item := range cancelled {
		item.fut.resolve(Result{Err: ErrCancelled})
	}

	return len(cancelled)
}

// Stats reports queue counters.
func (q *Queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()

	return Stats{
		Pending: q.heap.Len(),
		Active:  q.active,
		Ready:   q.ready,
	}
}

// Close rejects all queued jobs and stops accepting new ones. Active jobs
// finish on their own.
func (q *Queue) Close() {
	q.mu.Lock()

	q.closed = true

	pending := make([]*queued, len(q.heap))
	copy(pending, q.heap)
	q.heap = nil

	q.mu.Unlock()
	q.cancel()

	for _, item := range pending {
		item.fut.resolve(Result{Err: ErrCancelled})
	}
}

// drainLocked dispatches jobs while capacity remains. Caller holds q.mu.
func (q *Queue) drainLocked() {
	for q.active < q.maxConcurrency && q.heap.Len() > 0 {
		item, _ := heap.Pop(&q.heap).(*queued)
		q.active++

		go q.run(item)
	}
}

func (q *Queue) run(item *queued) {
	text, err := q.worker(q.ctx, item.job)
	if err != nil {
		log.Warn().
			Err(err).
			Str("job_id", item.job.ID).
			Str("source", string(item.job.Source)).
			Str("target", string(item.job.Target)).
			Msg("Background translation failed")
	}

	item.fut.resolve(Result{Text: text, Err: err})

	q.mu.Lock()
	q.active--
	q.ready++
	q.drainLocked()
	q.mu.Unlock()
}
