// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import (
	"sort"

	"codeberg.org/varnantar/varnantar/core/lang"
)

// Table holds the grapheme maps for one script family.
//
// Keys are lowercase Latin phonetic syllables. Matras map the same vowel keys
// as Vowels but to the dependent sign attached to a preceding consonant; the
// inherent vowel maps to the empty string. Scripts without consonant clusters
// (Arabic, Cyrillic) carry an empty Virama, which turns cluster handling into
// a no-op.
type Table struct {
	Script     lang.Script
	Virama     string
	Vowels     map[string]string // independent vowel glyphs
	Consonants map[string]string
	Matras     map[string]string // dependent vowel signs; "" for the inherent vowel
	Digits     map[rune]rune

	maxKey int
	rev    *reverseTable
}

// reverseTable inverts a Table for native→Latin phonetic approximation.
// Every glyph in the forward tables is a single rune, so reversal walks the
// native text rune by rune.
type reverseTable struct {
	consonants map[rune]string
	matras     map[rune]string
	vowels     map[rune]string
	digits     map[rune]rune
	virama     rune
}

// finalize computes the longest phonetic key and builds the reverse table.
// Called once per script at engine construction.
func (t *Table) finalize() {
	for _, m := range []map[string]string{t.Vowels, t.Consonants, t.Matras} {
		for k := range m {
			if len(k) > t.maxKey {
				t.maxKey = len(k)
			}
		}
	}

	t.rev = &reverseTable{
		consonants: invert(t.Consonants),
		matras:     invert(t.Matras),
		vowels:     invert(t.Vowels),
		digits:     make(map[rune]rune, len(t.Digits)),
	}

	for latin, native := range t.Digits {
		t.rev.digits[native] = latin
	}

	if t.Virama != "" {
		t.rev.virama = []rune(t.Virama)[0]
	}
}

// invert builds glyph→phonetic maps. Several phonetic keys can share a glyph
// ("ee" and "ii" both yield the long i sign), so the reverse mapping picks the
// shortest key, breaking ties lexicographically, to stay deterministic
// regardless of map iteration order.
func invert(forward map[string]string) map[rune]string {
	keys := make([]string, 0, len(forward))
	for k := range forward {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}

		return keys[i] < keys[j]
	})

	out := make(map[rune]string, len(forward))

	for _, k := range keys {
		glyph := forward[k]
		if glyph == "" {
			continue // inherent vowel has no standalone sign
		}

		r := []rune(glyph)[0]
		if _, taken := out[r]; !taken {
			out[r] = k
		}
	}

	return out
}
