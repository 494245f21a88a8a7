// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter provides per-client rate limiting for HTTP requests.

Clients are keyed by IP address, each holding its own token bucket.
Buckets that stay idle past LimiterExpiryDuration are discarded by a
periodic cleanup pass.
*/
package limiter

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	config "codeberg.org/varnantar/varnantar/configs"
)

const (
	LimiterExpiryDuration = time.Hour       // How long to keep limiters in memory before cleanup.
	CleanupInterval       = 5 * time.Minute // Interval between limiter cleanup runs.
)

var (
	limiters sync.Map   // In-memory storage for rate limiters.
	timeNow  = time.Now // Wrapper for time.Now, which allows us to mock it in tests.
)

// limiterWrapper holds a rate limiter and additional metadata.
//
// Limiters are associated with a client IP and persist in the limiters sync.Map.
type limiterWrapper struct {
	limiter *rate.Limiter

	mu         sync.Mutex
	lastAccess time.Time
}

// getLimiter returns the limiter for ip, creating one if needed.
func getLimiter(ip string) *limiterWrapper {
	if v, ok := limiters.Load(ip); ok {
		w, _ := v.(*limiterWrapper)
		w.touch()

		return w
	}

	w := &limiterWrapper{
		limiter: rate.NewLimiter(
			rate.Limit(config.Global.Limiter.RequestsPerSecond),
			config.Global.Limiter.Burst,
		),
		lastAccess: timeNow(),
	}

	actual, _ := limiters.LoadOrStore(ip, w)
	wrapper, _ := actual.(*limiterWrapper)
	wrapper.touch()

	return wrapper
}

func (w *limiterWrapper) touch() {
	w.mu.Lock()
	w.lastAccess = timeNow()
	w.mu.Unlock()
}

func (w *limiterWrapper) expired(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return now.Sub(w.lastAccess) > LimiterExpiryDuration
}

func cleanupExpiredLimiters() int {
	now := timeNow()
	removed := 0

	limiters.Range(func(key, value any) bool {
		if w, ok := value.(*limiterWrapper); ok && w.expired(now) {
			limiters.Delete(key)
			removed++
		}

		return true
	})

	return removed
}

// Init starts the background cleanup loop.
func Init() {
	go func() {
		for range time.Tick(CleanupInterval) {
			start := timeNow()
			removed := cleanupExpiredLimiters()
			log.Info().
				Int("removed", removed).
				Dur("dur", time.Since(start)).
				Msg("limiter cleanup")
		}
	}()
}

// Fini discards all tracked limiters.
func Fini() {
	limiters.Range(func(key, _ any) bool {
		limiters.Delete(key)

		return true
	})
}
