// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package script classifies raw text as a specific non-Latin script or as Latin
phonetic text, and guesses the intended language of Latin input.

Non-Latin detection wins over phonetic guessing: glyphs identify a script
unambiguously, while Latin phonetics only suggest a language. Phonetic
guessing scores text against per-language keyword and pattern sets and is
inherently heuristic; the confidence constants below are tunable thresholds,
not calibrated probabilities.
*/
package script

import (
	"strings"
	"unicode"

	"codeberg.org/varnantar/varnantar/core/cache"
	"codeberg.org/varnantar/varnantar/core/lang"
)

// Heuristic confidence constants.
const (
	// nativeConfidence applies when non-Latin glyphs identify the script.
	nativeConfidence = 0.95

	// phoneticThreshold is the minimum normalized score for a phonetic guess.
	phoneticThreshold = 0.3

	// defaultConfidence applies to the English fallback.
	defaultConfidence = 0.4

	// maxPhoneticConfidence caps a phonetic guess.
	maxPhoneticConfidence = 0.9

	// hintBoost multiplies the score of the caller's declared mother tongue.
	hintBoost = 1.5

	keywordWeight = 1.0
	patternWeight = 0.5
)

// scriptRanges pairs each supported script with its Unicode range table.
var scriptRanges = []struct {
	script lang.Script
	table  *unicode.RangeTable
}{
	{lang.ScriptDevanagari, unicode.Devanagari},
	{lang.ScriptTelugu, unicode.Telugu},
	{lang.ScriptTamil, unicode.Tamil},
	{lang.ScriptKannada, unicode.Kannada},
	{lang.ScriptMalayalam, unicode.Malayalam},
	{lang.ScriptBengali, unicode.Bengali},
	{lang.ScriptGujarati, unicode.Gujarati},
	{lang.ScriptGurmukhi, unicode.Gurmukhi},
	{lang.ScriptArabic, unicode.Arabic},
	{lang.ScriptCyrillic, unicode.Cyrillic},
}

// Detection is the outcome of classifying one text.
type Detection struct {
	Script     lang.Script `json:"script"`
	Language   lang.ID     `json:"language"`
	IsLatin    bool        `json:"isLatin"`
	Confidence float64     `json:"confidence"`
}

// Detector classifies text. Construct with [NewDetector]; safe for
// concurrent use.
type Detector struct {
	reg   *lang.Registry
	store *cache.Store // optional; nil disables caching
}

// NewDetector builds a detector over the given registry.
// store may be nil to disable result caching.
func NewDetector(reg *lang.Registry, store *cache.Store) *Detector {
	return &Detector{reg: reg, store: store}
}

// Detect classifies text with no language hint.
func (d *Detector) Detect(text string) Detection {
	return d.DetectWithHint(text, lang.Unknown)
}

// DetectWithHint classifies text, boosting the phonetic score of the hinted
// language (typically the user's declared mother tongue). The hint never
// overrides script-based detection.
func (d *Detector) DetectWithHint(text string, hint lang.ID) Detection {
	key := cache.Key("det", text, string(hint))
	if d.store != nil {
		if v, ok := d.store.Get(key); ok {
			if det, ok := v.(Detection); ok {
				return det
			}
		}
	}

	det := d.detect(text, hint)

	if d.store != nil {
		d.store.Add(key, det)
	}

	return det
}

func (d *Detector) detect(text string, hint lang.ID) Detection {
	if s, ok := dominantScript(text); ok {
		id := d.languageForScript(s, hint)

		return Detection{Script: s, Language: id, Confidence: nativeConfidence}
	}

	id, confidence := d.scorePhonetic(text, hint)

	return Detection{Script: lang.ScriptLatin, Language: id, IsLatin: true, Confidence: confidence}
}

// dominantScript returns the non-Latin script with the most glyphs in text,
// if any glyph falls inside a known non-Latin block.
func dominantScript(text string) (lang.Script, bool) {
	counts := make(map[lang.Script]int)

	for _, r := range text {
		for _, sr := range scriptRanges {
			if unicode.In(r, sr.table) {
				counts[sr.script]++

				break
			}
		}
	}

	var (
		best  lang.Script
		most  int
		found bool
	)

	for _, sr := range scriptRanges {
		if n := counts[sr.script]; n > most {
			best = sr.script
			most = n
			found = true
		}
	}

	return best, found
}

// languageForScript maps a detected script to a language, preferring the
// hint when the hint's language writes in that script (Devanagari could be
// Hindi or Marathi; the declared mother tongue disambiguates).
func (d *Detector) languageForScript(s lang.Script, hint lang.ID) lang.ID {
	if hint != lang.Unknown {
		if p, ok := d.reg.Info(d.reg.Effective(hint)); ok && p.Script == s {
			return p.ID
		}
	}

	if id, ok := d.reg.PrimaryForScript(s); ok {
		return id
	}

	return lang.English
}

// scorePhonetic scores Latin text against each language's keyword and
// pattern sets, returning the best language above the threshold, or English
// at low confidence.
func (d *Detector) scorePhonetic(text string, hint lang.ID) (lang.ID, float64) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return lang.English, defaultConfidence
	}

	hint = d.reg.Effective(hint)

	var (
		bestID    lang.ID
		bestScore float64
	)

	// Iterate in fixed order so score ties resolve deterministically.
	for _, id := range phoneticOrder {
		profile := phoneticProfiles[id]

		var score float64

		for _, w := range words {
			word := strings.TrimRight(w, ".,!?;:…")

			if profile.keywords[word] {
				score += keywordWeight

				continue
			}

			for _, p := range profile.patterns {
				if p.MatchString(word) {
					score += patternWeight

					break
				}
			}
		}

		score /= float64(len(words))

		if id == hint {
			score *= hintBoost
		}

		if score > bestScore {
			bestID = id
			bestScore = score
		}
	}

	if bestScore < phoneticThreshold {
		return lang.English, defaultConfidence
	}

	if bestScore > maxPhoneticConfidence {
		bestScore = maxPhoneticConfidence
	}

	return bestID, bestScore
}
