// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pivot resolves translations between any two supported languages,
using English as the pivot when no direct path exists.

Five mutually exclusive directions are checked in order: same language,
English source, English target, both Latin-script, and full pivot through
English. Every path is synchronous and pure; resolution degrades through
dictionary phrase lookup, per-word substitution, and finally transliteration
of the literal text, never failing outright.
*/
package pivot

import (
	"strings"

	"codeberg.org/varnantar/varnantar/core/cache"
	"codeberg.org/varnantar/varnantar/core/dict"
	"codeberg.org/varnantar/varnantar/core/lang"
	"codeberg.org/varnantar/varnantar/core/translit"
)

// Method names the strategy that produced a Result.
type Method string

const (
	MethodPassthrough   Method = "passthrough"
	MethodTransliterate Method = "transliterate"
	MethodReverse       Method = "reverse_transliterate"
	MethodPhrase        Method = "phrase"
	MethodWordByWord    Method = "word_by_word"
	MethodPivot         Method = "pivot"
)

// Heuristic confidence levels per strategy. Tunable thresholds, not
// calibrated probabilities.
const (
	phraseConfidence      = 0.95
	wordConfidenceCeiling = 0.9
	reverseConfidence     = 0.6
	fallbackConfidence    = 0.5
	pivotPenalty          = 0.9
)

// Result is the outcome of one resolution.
type Result struct {
	// Text is the resolved output in the target language's script.
	Text string `json:"text"`
	// Translated reports whether an actual cross-language translation
	// happened, as opposed to pass-through or script conversion only.
	Translated bool `json:"translated"`
	// Confidence is a heuristic quality estimate in (0, 1].
	Confidence float64 `json:"confidence"`
	// Method names the strategy that produced Text.
	Method Method `json:"method"`
}

// Resolver translates between language pairs. Safe for concurrent use.
type Resolver struct {
	reg   *lang.Registry
	store *dict.Store
	tr    *translit.Engine
	cache *cache.Store
}

func NewResolver(reg *lang.Registry, store *dict.Store, tr *translit.Engine, c *cache.Store) *Resolver {
	return &Resolver{
		reg:   reg,
		store: store,
		tr:    tr,
		cache: c,
	}
}

// Translate resolves text from source to target. It never fails; the worst
// case is a pass-through Result at low confidence.
func (r *Resolver) Translate(text string, source, target lang.ID) Result {
	if text == "" {
		return Result{Text: "", Confidence: 1, Method: MethodPassthrough}
	}

	source = r.reg.Effective(source)
	target = r.reg.Effective(target)

	key := cache.Key("pv", text, string(source), string(target))
	if cached, ok := r.cache.Get(key); ok {
		if res, ok := cached.(Result); ok {
			return res
		}
	}

	res := r.resolve(text, source, target)
	r.cache.Add(key, res)

	return res
}

func (r *Resolver) resolve(text string, source, target lang.ID) Result {
	switch {
	case r.reg.IsSame(source, target):
		return r.sameLanguage(text, target)
	case source == lang.English:
		return r.fromEnglish(text, target)
	case target == lang.English:
		return r.toEnglish(text, source)
	case r.reg.IsLatinScript(source) && r.reg.IsLatinScript(target):
		return r.betweenLatin(text, source, target)
	default:
		return r.throughPivot(text, source, target)
	}
}

// sameLanguage converts between scripts without translating.
func (r *Resolver) sameLanguage(text string, target lang.ID) Result {
	if !r.reg.IsLatinScript(target) {
		if native := r.tr.Transliterate(text, target); native != text {
			return Result{Text: native, Confidence: 1, Method: MethodTransliterate}
		}

		return Result{Text: text, Confidence: 1, Method: MethodPassthrough}
	}

	if latin := r.tr.Reverse(text, target); latin != text {
		return Result{Text: latin, Confidence: 1, Method: MethodReverse}
	}

	return Result{Text: text, Confidence: 1, Method: MethodPassthrough}
}

// fromEnglish resolves English text into the target language.
func (r *Resolver) fromEnglish(text string, target lang.ID) Result {
	if phrase, ok := r.store.Lookup(text, target); ok {
		return Result{Text: phrase, Translated: true, Confidence: phraseConfidence, Method: MethodPhrase}
	}

	if res, ok := r.wordByWord(text, target); ok {
		return res
	}

	// Best effort: render the literal English in the target script.
	rendered := r.tr.Transliterate(text, target)

	return Result{Text: rendered, Confidence: fallbackConfidence, Method: MethodTransliterate}
}

// toEnglish resolves native or Latin text back to English.
func (r *Resolver) toEnglish(text string, source lang.ID) Result {
	if english, ok := r.store.ReverseLookup(text, source); ok {
		return Result{Text: english, Translated: true, Confidence: phraseConfidence, Method: MethodPhrase}
	}

	if r.reg.IsLatinScript(source) {
		return Result{Text: text, Confidence: fallbackConfidence, Method: MethodPassthrough}
	}

	words := strings.Fields(text)
	out := make([]string, len(words))
	matched := 0

	for i, word := range words {
		core, suffix := splitTrailing(word)

		if english, ok := r.store.ReverseLookup(core, source); ok {
			out[i] = english + suffix
			matched++

			continue
		}

		out[i] = r.tr.Reverse(core, source) + suffix
	}

	joined := strings.Join(out, " ")

	if matched > 0 {
		conf := wordConfidenceCeiling * float64(matched) / float64(len(words))

		return Result{Text: joined, Translated: true, Confidence: conf, Method: MethodWordByWord}
	}

	return Result{Text: joined, Confidence: reverseConfidence, Method: MethodReverse}
}

// betweenLatin resolves between two Latin-script languages without an
// English pivot.
func (r *Resolver) betweenLatin(text string, source, target lang.ID) Result {
	if direct, ok := r.store.Direct(text, source, target); ok {
		return Result{Text: direct, Translated: true, Confidence: phraseConfidence, Method: MethodPhrase}
	}

	words := strings.Fields(text)
	out := make([]string, len(words))
	matched := 0

	for i, word := range words {
		core, suffix := splitTrailing(word)

		if direct, ok := r.store.Direct(core, source, target); ok {
			out[i] = direct + suffix
			matched++

			continue
		}

		out[i] = word
	}

	if matched > 0 {
		conf := wordConfidenceCeiling * float64(matched) / float64(len(words))

		return Result{Text: strings.Join(out, " "), Translated: true, Confidence: conf, Method: MethodWordByWord}
	}

	return Result{Text: text, Confidence: fallbackConfidence, Method: MethodPassthrough}
}

// throughPivot converts the source text to an English pivot string, then
// resolves English into the target language.
func (r *Resolver) throughPivot(text string, source, target lang.ID) Result {
	pivoted := r.toEnglish(text, source)
	resolved := r.fromEnglish(pivoted.Text, target)

	conf := resolved.Confidence
	if pivoted.Method == MethodReverse {
		// The pivot string is only a phonetic approximation, so the final
		// confidence takes an extra haircut.
		conf *= pivotPenalty
	}

	return Result{
		Text:       resolved.Text,
		Translated: pivoted.Translated || resolved.Translated,
		Confidence: conf,
		Method:     MethodPivot,
	}
}

// wordByWord substitutes each English word individually into the target
// language, transliterating untranslated words when the target is
// non-Latin.
func (r *Resolver) wordByWord(text string, target lang.ID) (Result, bool) {
	words := strings.Fields(text)
	out := make([]string, len(words))
	matched := 0

	for i, word := range words {
		core, suffix := splitTrailing(word)

		if translated, ok := r.store.Lookup(core, target); ok {
			out[i] = translated + suffix
			matched++

			continue
		}

		out[i] = r.tr.Transliterate(core, target) + suffix
	}

	if matched == 0 {
		return Result{}, false
	}

	conf := wordConfidenceCeiling * float64(matched) / float64(len(words))

	return Result{
		Text:       strings.Join(out, " "),
		Translated: true,
		Confidence: conf,
		Method:     MethodWordByWord,
	}, true
}

const trailingPunctuation = ".,!?;:…"

// splitTrailing separates a token into its core and any trailing
// punctuation so lookups match punctuated chat text.
func splitTrailing(word string) (core, suffix string) {
	core = strings.TrimRight(word, trailingPunctuation)

	return core, word[len(core):]
}
