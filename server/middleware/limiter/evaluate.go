// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	config "codeberg.org/varnantar/varnantar/configs"
)

// Rate limiting header names.
//
// ref: https://www.ietf.org/archive/id/draft-polli-ratelimit-headers-02.html
const (
	HeaderRateLimitLimit     string = "RateLimit-Limit"
	HeaderRateLimitRemaining string = "RateLimit-Remaining"
	HeaderRateLimitStatus    string = "RateLimit-Status" // Non-standard.
)

// excludedPaths won't have traffic filtered by the limiter middleware.
var excludedPaths = []string{
	"/healthz",
}

func isExcludedPath(path string) bool {
	for _, prefix := range excludedPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// Evaluate is the entrypoint to the limiter middleware.
func Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if !config.Global.Limiter.Enabled || isExcludedPath(r.URL.Path) {
		next.ServeHTTP(w, r)

		return
	}

	ip := getClientIP(r)
	wrapper := getLimiter(ip)

	limit := strconv.Itoa(config.Global.Limiter.Burst)
	remaining := strconv.Itoa(int(math.Max(0, math.Floor(wrapper.limiter.Tokens()))))

	w.Header().Set(HeaderRateLimitLimit, limit)
	w.Header().Set(HeaderRateLimitRemaining, remaining)

	if !wrapper.limiter.Allow() {
		log.Warn().
			Str("ip", ip).
			Str("path", r.URL.Path).
			Msg("Rate limit exceeded")

		w.Header().Set(HeaderRateLimitStatus, "exceeded")
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)

		return
	}

	next.ServeHTTP(w, r)
}
