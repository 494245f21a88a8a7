// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"time"

	config "codeberg.org/varnantar/varnantar/configs"
	"codeberg.org/varnantar/varnantar/server/middleware"
	"codeberg.org/varnantar/varnantar/server/routes"
)

// DefineRoutes sets up all the routes for the application using our custom Router.
//
// It returns a *Router without middleware.
func (router *Router) DefineRoutes() {
	// Health check route, excluded from request logging.
	router.HandleFunc("GET /healthz", routes.Healthz)

	// Message routes
	router.HandleFunc("POST /api/messages/outgoing", middleware.CatchError(routes.OutgoingMessage))
	router.HandleFunc("POST /api/messages/incoming", middleware.CatchError(routes.IncomingMessage))
	router.HandleFunc("GET /api/messages/{id}", middleware.CatchError(routes.GetMessage))

	// Composition routes
	router.HandleFunc("POST /api/preview", middleware.CatchError(routes.Preview))
	router.HandleFunc("POST /api/detect", middleware.CatchError(routes.Detect))

	// Language routes
	router.HandleFunc("GET /api/languages", middleware.CatchError(routes.Languages))

	// Queue routes
	router.HandleFunc("GET /api/queue/stats", middleware.CatchError(routes.QueueStats))
	router.HandleFunc("POST /api/queue/cancel", middleware.CatchError(routes.CancelConversation))

	// Cache routes
	router.HandleFunc("POST /api/caches/clear", middleware.CatchError(routes.ClearCaches))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	err := flightRecorder.Start()
	if err != nil {
		panic(err)
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, r *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
