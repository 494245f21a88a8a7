// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package phonetic rewrites common Latin typos to a canonical phonetic spelling
per language before transliteration and translation.

Correction is a pure function over per-language lookup tables: exact token
matches only, applied once. Re-applying to already-corrected text is a no-op
because every table value is itself canonical.
*/
package phonetic

import (
	"strings"

	"codeberg.org/varnantar/varnantar/core/lang"
)

// trailingPunctuation is stripped from a token before lookup and reattached
// afterwards.
const trailingPunctuation = ".,!?;:…"

// Correction records one applied replacement.
type Correction struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Result is the output of [Corrector.Correct].
type Result struct {
	Text        string       `json:"text"`
	Corrections []Correction `json:"corrections,omitempty"`
}

// Corrector holds the per-language correction tables. Immutable after
// construction; safe for concurrent use.
type Corrector struct {
	tables map[lang.ID]map[string]string
}

// NewCorrector builds the corrector from the static tables.
func NewCorrector() *Corrector {
	return &Corrector{tables: corrections}
}

// Correct tokenizes on whitespace, replaces each lowercase token on exact
// table match, and reattaches trailing punctuation. A language without a
// table, or text without matches, yields the input with an empty corrections
// list, never an error.
func (c *Corrector) Correct(text string, id lang.ID) Result {
	table, ok := c.tables[id]
	if !ok || text == "" {
		return Result{Text: text}
	}

	tokens := strings.Split(text, " ")

	var applied []Correction

	for i, token := range tokens {
		word := strings.TrimRight(token, trailingPunctuation)
		if word == "" {
			continue
		}

		suffix := token[len(word):]

		canonical, ok := table[strings.ToLower(word)]
		if !ok {
			continue
		}

		tokens[i] = canonical + suffix

		applied = append(applied, Correction{From: word, To: canonical})
	}

	if len(applied) == 0 {
		return Result{Text: text}
	}

	return Result{Text: strings.Join(tokens, " "), Corrections: applied}
}
