// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Varnantar is a transliteration and translation engine for multilingual chat.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	config "codeberg.org/varnantar/varnantar/configs"
	"codeberg.org/varnantar/varnantar/core/audit"
	"codeberg.org/varnantar/varnantar/core/backend"
	"codeberg.org/varnantar/varnantar/core/cache"
	"codeberg.org/varnantar/varnantar/core/dict"
	"codeberg.org/varnantar/varnantar/core/lang"
	"codeberg.org/varnantar/varnantar/core/pipeline"
	"codeberg.org/varnantar/varnantar/core/pivot"
	"codeberg.org/varnantar/varnantar/core/translit"
	"codeberg.org/varnantar/varnantar/server/middleware/limiter"
	"codeberg.org/varnantar/varnantar/server/router"
	"codeberg.org/varnantar/varnantar/server/routes"
)

const (
	// Values for http.Server timeouts.
	// ref: gosec: G112
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 10 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second
)

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run orchestrates the application startup and graceful shutdown.
func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	translator, err := buildTranslator()
	if err != nil {
		return fmt.Errorf("failed to build translation backend: %w", err)
	}

	engine, err := pipeline.NewEngine(pipeline.Options{
		Backend:          translator,
		CacheSize:        config.Global.Engine.CacheSize,
		CompressCaches:   config.Global.Engine.CompressCaches,
		MaxConcurrency:   config.Global.Engine.MaxConcurrency,
		MessageIndexSize: config.Global.Engine.MessageIndexSize,
	})
	if err != nil {
		return fmt.Errorf("failed to build pipeline engine: %w", err)
	}

	log.Info().
		Str("backend", string(config.Global.Backend.Kind)).
		Int("languages", len(engine.Languages())).
		Msg("Initialized pipeline engine")

	routes.Setup(engine)

	router := router.NewRouter()
	router.DefineRoutes()
	router.RegisterMiddleware()

	// Create http.Server instance
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	// Channel to listen for server errors
	serverErrors := make(chan error, 1)

	// Start main server in a goroutine
	go func() {
		listener, err := chooseListener()
		if err != nil {
			serverErrors <- fmt.Errorf("failed to create listener: %w", err)

			return
		}

		serverErrors <- server.Serve(listener)
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until a shutdown signal or a server error is received
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case s := <-quit:
		log.Info().Str("signal", s.String()).Msg("Shutdown signal received")
		log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)

		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	engine.Close()
	limiter.Fini()

	log.Info().Msg("Server exited gracefully")

	return nil
}

// buildTranslator constructs the heavy translation backend the job queue
// calls into. The dictionary backend resolves everything locally and is
// the default; the http backend talks to an OpenAI-compatible endpoint.
func buildTranslator() (backend.Translator, error) {
	cfg := config.Global.Backend

	switch cfg.Kind {
	case config.BackendHTTP:
		return backend.NewHTTPTranslator(backend.HTTPConfig{
			URL:     cfg.URL,
			Model:   cfg.Model,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
		}, lang.NewRegistry()), nil

	case config.BackendDictionary:
		reg := lang.NewRegistry()

		store, err := dict.Load(reg)
		if err != nil {
			return nil, err
		}

		pvCache, err := cache.New(config.Global.Engine.CacheSize, config.Global.Engine.CompressCaches)
		if err != nil {
			return nil, err
		}

		trCache, err := cache.New(config.Global.Engine.CacheSize, config.Global.Engine.CompressCaches)
		if err != nil {
			return nil, err
		}

		return backend.NewDictionaryTranslator(
			pivot.NewResolver(reg, store, translit.NewEngine(reg, trCache), pvCache),
		), nil

	default:
		return nil, fmt.Errorf("unknown backend kind %q", cfg.Kind)
	}
}

func chooseListener() (net.Listener, error) {
	addr := net.JoinHostPort(config.Global.Basic.Host, config.Global.Basic.Port)

	tcpListener, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	addr = tcpListener.Addr().String()

	// Extract the port for logging
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = tcpListener.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	// Log the address and convenient URL for local development
	log.Info().
		Str("address", addr).
		Str("port", port).
		Str("url", fmt.Sprintf("http://localhost:%v/", port)).
		Msg("Listening on address")

	return tcpListener, nil
}
