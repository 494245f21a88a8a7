// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package backend provides the heavy translation backends driven by the
background job queue.

Two implementations exist: an HTTP client for OpenAI-compatible
chat-completions endpoints, and a dictionary-backed local translator used
for offline operation and tests. Both satisfy Translator and fail with
ErrTranslationFailed on any internal fault.
*/
package backend

import (
	"context"
	"errors"

	"codeberg.org/varnantar/varnantar/core/lang"
	"codeberg.org/varnantar/varnantar/core/pivot"
)

// ErrTranslationFailed is the generic failure for any backend fault.
var ErrTranslationFailed = errors.New("translation failed")

// Translator turns text in the source language into text in the target
// language.
type Translator interface {
	Translate(ctx context.Context, text string, source, target lang.ID) (string, error)
}

// DictionaryTranslator resolves translations locally through the pivot
// resolver. It never fails; unresolvable text degrades to the resolver's
// best-effort output.
type DictionaryTranslator struct {
	resolver *pivot.Resolver
}

func NewDictionaryTranslator(resolver *pivot.Resolver) *DictionaryTranslator {
	return &DictionaryTranslator{resolver: resolver}
}

func (t *DictionaryTranslator) Translate(_ context.Context, text string, source, target lang.ID) (string, error) {
	return t.resolver.Translate(text, source, target).Text, nil
}
