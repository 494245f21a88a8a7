// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/varnantar/varnantar/core/lang"
)

func loadStore(t *testing.T) *Store {
	t.Helper()

	store, err := Load(lang.NewRegistry())
	require.NoError(t, err)

	return store
}

func TestLoad(t *testing.T) {
	t.Parallel()

	store := loadStore(t)

	assert.Greater(t, store.Size(), 40)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	store := loadStore(t)

	tests := []struct {
		name    string
		english string
		target  lang.ID
		want    string
		found   bool
	}{
		{
			name:    "HindiPhrase",
			english: "how are you",
			target:  lang.Hindi,
			want:    "आप कैसे हैं",
			found:   true,
		},
		{
			name:    "TeluguPhrase",
			english: "how are you",
			target:  lang.Telugu,
			want:    "బాగున్నావా",
			found:   true,
		},
		{
			name:    "CaseInsensitiveKey",
			english: "Thank You",
			target:  lang.Russian,
			want:    "спасибо",
			found:   true,
		},
		{
			name:    "EnglishTargetIsIdentity",
			english: "hello",
			target:  lang.English,
			want:    "hello",
			found:   true,
		},
		{
			name:    "UnknownPhrase",
			english: "quantum entanglement",
			target:  lang.Hindi,
			found:   false,
		},
		{
			name:    "MissingLanguagePair",
			english: "see you later",
			target:  lang.Malayalam,
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := store.Lookup(tt.english, tt.target)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReverseLookup(t *testing.T) {
	t.Parallel()

	store := loadStore(t)

	tests := []struct {
		name   string
		native string
		source lang.ID
		want   string
		found  bool
	}{
		{
			name:   "TeluguGreeting",
			native: "బాగున్నావా",
			source: lang.Telugu,
			want:   "how are you",
			found:  true,
		},
		{
			name:   "HindiThanks",
			native: "धन्यवाद",
			source: lang.Hindi,
			want:   "thank you",
			found:  true,
		},
		{
			name:   "SpanishCaseFolded",
			native: "Gracias",
			source: lang.Spanish,
			want:   "thank you",
			found:  true,
		},
		{
			name:   "WrongSourceLanguage",
			native: "धन्यवाद",
			source: lang.Telugu,
			found:  false,
		},
		{
			name:   "UnknownNative",
			native: "తెలియదు",
			source: lang.Telugu,
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := store.ReverseLookup(tt.native, tt.source)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirect(t *testing.T) {
	t.Parallel()

	store := loadStore(t)

	got, ok := store.Direct("नमस्ते", lang.Hindi, lang.Russian)
	require.True(t, ok)
	assert.Equal(t, "привет", got)

	got, ok = store.Direct("thank you", lang.English, lang.Tamil)
	require.True(t, ok)
	assert.Equal(t, "நன்றி", got)

	_, ok = store.Direct("नमस्ते", lang.Hindi, lang.Unknown)
	assert.False(t, ok)
}
