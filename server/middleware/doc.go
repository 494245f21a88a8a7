// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides HTTP request handling functionality for Varnantar.

Middlewares run in the order they are registered on the router; CatchError
wraps individual handlers and converts returned errors into JSON responses.
*/
package middleware
