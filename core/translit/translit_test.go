// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import (
	"strings"
	"testing"

	"codeberg.org/varnantar/varnantar/core/lang"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	return NewEngine(lang.NewRegistry(), nil)
}

func TestTransliterateBasics(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	tests := []struct {
		name   string
		input  string
		target lang.ID
		want   string
	}{
		{"HindiGreeting", "namaste", lang.Hindi, "नमस्ते"},
		{"HindiWord", "kitaab", lang.Hindi, "किताब"},
		{"TeluguGreeting", "baagunnaavaa", lang.Telugu, "బాగున్నావా"},
		{"TamilGreeting", "vanakkam", lang.Tamil, "வநக்கம"},
		{"RussianGreeting", "privet", lang.Russian, "привет"},
		{"UrduGreeting", "salaam", lang.Urdu, "سلام"},
		{"Empty", "", lang.Hindi, ""},
		{"LatinTargetPassthrough", "hello there", lang.English, "hello there"},
		{"SpanishTargetPassthrough", "hola", lang.Spanish, "hola"},
		{"NativeInputPassthrough", "नमस्ते", lang.Hindi, "नमस्ते"},
		{"PunctuationPreserved", "namaste!", lang.Hindi, "नमस्ते!"},
		{"DigitsConverted", "123", lang.Hindi, "१२३"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := e.Transliterate(tt.input, tt.target); got != tt.want {
				t.Errorf("Transliterate(%q, %s) = %q, want %q", tt.input, tt.target, got, tt.want)
			}
		})
	}
}

// TestDeterminism: transliterating the same word twice yields identical output.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	words := []string{"namaste", "dhanyavad", "baagunnaavaa", "vanakkam", "kaise ho"}
	targets := []lang.ID{lang.Hindi, lang.Telugu, lang.Tamil, lang.Kannada, lang.Malayalam}

	for _, target := range targets {
		for _, w := range words {
			first := e.Transliterate(w, target)
			second := e.Transliterate(w, target)

			if first != second {
				t.Errorf("Transliterate(%q, %s) not deterministic: %q vs %q", w, target, first, second)
			}
		}
	}
}

// TestVirama: a consonant-consonant sequence with no vowel between them gets
// the script's virama; consonant-vowel-consonant does not.
func TestVirama(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	table, ok := e.TableFor(lang.ScriptDevanagari)
	if !ok {
		t.Fatal("missing Devanagari table")
	}

	cluster := e.Transliterate("kt", lang.Hindi)
	if !strings.Contains(cluster, table.Virama) {
		t.Errorf("Transliterate(\"kt\") = %q, expected virama %q between consonants", cluster, table.Virama)
	}

	if want := "क" + table.Virama + "त"; cluster != want {
		t.Errorf("Transliterate(\"kt\") = %q, want %q", cluster, want)
	}

	sep := e.Transliterate("kat", lang.Hindi)
	if strings.Contains(sep, table.Virama) {
		t.Errorf("Transliterate(\"kat\") = %q, virama must not appear across a vowel", sep)
	}
}

func TestMatraVersusIndependentVowel(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	// Word-initial vowel is independent; the same vowel after a consonant is
	// a dependent sign.
	if got := e.Transliterate("aam", lang.Hindi); got != "आम" {
		t.Errorf("Transliterate(\"aam\") = %q, want %q", got, "आम")
	}

	if got := e.Transliterate("maa", lang.Hindi); got != "मा" {
		t.Errorf("Transliterate(\"maa\") = %q, want %q", got, "मा")
	}
}

func TestSqueezeRepeats(t *testing.T) {
	t.Parallel()

	if got := squeezeRepeats("aaaa"); got != "aa" {
		t.Errorf("squeezeRepeats(\"aaaa\") = %q, want %q", got, "aa")
	}

	if got := squeezeRepeats("abbba"); got != "abba" {
		t.Errorf("squeezeRepeats(\"abbba\") = %q, want %q", got, "abba")
	}

	if got := squeezeRepeats("ab"); got != "ab" {
		t.Errorf("squeezeRepeats(\"ab\") = %q, want %q", got, "ab")
	}

	e := newTestEngine(t)

	// Runs beyond two collapse before tokenization.
	if e.Transliterate("naamaste", lang.Hindi) != e.Transliterate("naaamaste", lang.Hindi) {
		t.Error("runs longer than two should normalize to the same output")
	}
}

func TestReverse(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	tests := []struct {
		name   string
		input  string
		source lang.ID
		want   string
	}{
		{"HindiGreeting", "नमस्ते", lang.Hindi, "namaste"},
		{"RussianGreeting", "привет", lang.Russian, "privet"},
		{"LatinPassthrough", "hello", lang.Hindi, "hello"},
		{"Empty", "", lang.Telugu, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := e.Reverse(tt.input, tt.source); got != tt.want {
				t.Errorf("Reverse(%q, %s) = %q, want %q", tt.input, tt.source, got, tt.want)
			}
		})
	}
}

// TestReverseRoundTrip: forward then reverse recovers the canonical phonetic
// spelling for regular syllable structures.
func TestReverseRoundTrip(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	words := []string{"namaste", "kamala", "dipa"}

	for _, w := range words {
		native := e.Transliterate(w, lang.Hindi)

		if got := e.Reverse(native, lang.Hindi); got != w {
			t.Errorf("Reverse(Transliterate(%q)) = %q, want %q", w, got, w)
		}
	}
}

func TestIsLatinInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"AllLatin", "namaste friend", true},
		{"AllNative", "नमस्ते", false},
		{"MixedMajorityNative", "ok नमस्ते जी फिर", false},
		{"PunctuationOnly", "!!! ...", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isLatinInput(tt.text); got != tt.want {
				t.Errorf("isLatinInput(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
