// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package translit converts canonical Latin phonetic text into native-script
text using per-script grapheme tables, and approximates the reverse mapping.

The forward direction is a longest-match tokenizer over syllables: consonant
matches look ahead for a vowel to attach as a dependent sign, and two
consonants with no vowel between them are joined by the script's virama.
Both directions are deterministic and total; unmapped sequences pass through
unchanged.
*/
package translit

import (
	"strings"
	"unicode"

	"codeberg.org/varnantar/varnantar/core/cache"
	"codeberg.org/varnantar/varnantar/core/lang"
)

// latinInputThreshold is the Latin-character ratio above which input counts
// as phonetic Latin text. Anything at or below it is already native and
// passes through untouched.
const latinInputThreshold = 0.7

// Engine transliterates between Latin phonetic text and native scripts.
// Construct with [NewEngine]; safe for concurrent use.
type Engine struct {
	reg    *lang.Registry
	tables map[lang.Script]*Table
	store  *cache.Store // optional; nil disables caching
}

// NewEngine builds the engine with every bundled script table.
// store may be nil to disable result caching.
func NewEngine(reg *lang.Registry, store *cache.Store) *Engine {
	e := &Engine{
		reg:    reg,
		tables: make(map[lang.Script]*Table),
		store:  store,
	}

	for _, t := range []*Table{
		devanagariTable(),
		teluguTable(),
		tamilTable(),
		kannadaTable(),
		malayalamTable(),
		bengaliTable(),
		gujaratiTable(),
		gurmukhiTable(),
		arabicTable(),
		cyrillicTable(),
	} {
		t.finalize()
		e.tables[t.Script] = t
	}

	return e
}

// TableFor exposes the grapheme table for a script, mainly for tests.
func (e *Engine) TableFor(s lang.Script) (*Table, bool) {
	t, ok := e.tables[s]

	return t, ok
}

// Transliterate converts Latin phonetic text into the target language's
// native script. It returns the input unchanged when the input is empty, the
// target writes in Latin script, or the input is already majority non-Latin.
func (e *Engine) Transliterate(text string, target lang.ID) string {
	if text == "" {
		return text
	}

	target = e.reg.Effective(target)
	if e.reg.IsLatinScript(target) {
		return text
	}

	profile, ok := e.reg.Info(target)
	if !ok {
		return text
	}

	table, ok := e.tables[profile.Script]
	if !ok {
		return text
	}

	if !isLatinInput(text) {
		return text
	}

	key := cache.Key("tr", text, string(target))
	if e.store != nil {
		if cached, ok := e.store.GetString(key); ok {
			return cached
		}
	}

	out := table.apply(text)

	if e.store != nil {
		e.store.Add(key, out)
	}

	return out
}

// Reverse approximates the Latin phonetic form of native-script text.
// Latin input passes through unchanged.
func (e *Engine) Reverse(text string, source lang.ID) string {
	if text == "" {
		return text
	}

	source = e.reg.Effective(source)

	profile, ok := e.reg.Info(source)
	if !ok || profile.IsLatinScript() {
		return text
	}

	table, ok := e.tables[profile.Script]
	if !ok {
		return text
	}

	if isLatinInput(text) {
		return text
	}

	key := cache.Key("rev", text, string(source))
	if e.store != nil {
		if cached, ok := e.store.GetString(key); ok {
			return cached
		}
	}

	out := table.reverse(text)

	if e.store != nil {
		e.store.Add(key, out)
	}

	return out
}

// apply runs the longest-match tokenizer over the phonetic input.
func (t *Table) apply(text string) string {
	runes := []rune(squeezeRepeats(strings.ToLower(text)))

	var b strings.Builder

	// pending means the previous emit was a consonant whose vowel is not yet
	// resolved: a following vowel attaches as a matra, a following consonant
	// forms a cluster through the virama.
	pending := false

	i := 0
	for i < len(runes) {
		longest := t.maxKey
		if rem := len(runes) - i; rem < longest {
			longest = rem
		}

		consumed := 0

		for l := longest; l >= 1; l-- {
			seg := string(runes[i : i+l])

			if pending {
				if matra, ok := t.Matras[seg]; ok {
					b.WriteString(matra)

					pending = false
					consumed = l

					break
				}
			}

			if glyph, ok := t.Consonants[seg]; ok {
				if pending {
					b.WriteString(t.Virama)
				}

				b.WriteString(glyph)

				pending = true
				consumed = l

				break
			}

			if glyph, ok := t.Vowels[seg]; ok {
				b.WriteString(glyph)

				pending = false
				consumed = l

				break
			}
		}

		if consumed == 0 {
			// No grapheme match: pass the character through, converting
			// digits when the script has its own digit forms.
			r := runes[i]
			if d, ok := t.Digits[r]; ok {
				b.WriteRune(d)
			} else {
				b.WriteRune(r)
			}

			pending = false
			consumed = 1
		}

		i += consumed
	}

	return b.String()
}

// reverse walks native text rune by rune, emitting the phonetic key for each
// known glyph. Consonants in virama scripts carry an implicit inherent vowel,
// emitted unless a matra or virama follows.
func (t *Table) reverse(text string) string {
	var b strings.Builder

	inherent := false // a consonant's inherent vowel is still owed

	flush := func() {
		if inherent {
			b.WriteString("a")

			inherent = false
		}
	}

	for _, r := range text {
		switch {
		case t.rev.virama != 0 && r == t.rev.virama:
			// Cluster: the consonant before the virama has no vowel.
			inherent = false

		case t.rev.consonants[r] != "":
			flush()
			b.WriteString(t.rev.consonants[r])

			inherent = t.Virama != ""

		case t.rev.matras[r] != "":
			b.WriteString(t.rev.matras[r])

			inherent = false

		case t.rev.vowels[r] != "":
			flush()
			b.WriteString(t.rev.vowels[r])

		default:
			flush()

			if d, ok := t.rev.digits[r]; ok {
				b.WriteRune(d)
			} else {
				b.WriteRune(r)
			}
		}
	}

	flush()

	return b.String()
}

// squeezeRepeats caps runs of the same character at two, so pathological
// inputs like "aaaa" cannot produce runaway ambiguous matches.
func squeezeRepeats(text string) string {
	var b strings.Builder

	var prev rune

	run := 0

	for _, r := range text {
		if r == prev {
			run++
			if run > 2 {
				continue
			}
		} else {
			prev = r
			run = 1
		}

		b.WriteRune(r)
	}

	return b.String()
}

// isLatinInput reports whether the text is majority Latin, computed over
// letters and digits only so punctuation and spaces do not skew the ratio.
func isLatinInput(text string) bool {
	var latin, total int

	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}

		total++

		if r <= unicode.MaxASCII || unicode.In(r, unicode.Latin) {
			latin++
		}
	}

	if total == 0 {
		return false
	}

	return float64(latin)/float64(total) > latinInputThreshold
}
