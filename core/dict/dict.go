// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package dict provides the phrase/word dictionary backing pivot translation.

Entries are keyed by a canonical English phrase and map language codes to
translated strings. A reverse index (native string → English) is built once
at load so native→English lookups are O(1) rather than a table scan.
*/
package dict

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"codeberg.org/varnantar/varnantar/core/lang"
)

//go:embed data/phrases.yaml
var phrasesYAML []byte

// Store is the loaded dictionary. Immutable after Load; safe for concurrent use.
type Store struct {
	forward map[string]map[lang.ID]string // lowercase English → translations
	reverse map[lang.ID]map[string]string // native string → English
}

type dataFile struct {
	Entries []map[string]string `yaml:"entries"`
}

// Load parses the embedded phrase data and builds both indexes.
func Load(reg *lang.Registry) (*Store, error) {
	var file dataFile

	if err := yaml.Unmarshal(phrasesYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse phrase data: %w", err)
	}

	s := &Store{
		forward: make(map[string]map[lang.ID]string, len(file.Entries)),
		reverse: make(map[lang.ID]map[string]string),
	}

	for i, entry := range file.Entries {
		english, ok := entry["en"]
		if !ok || english == "" {
			return nil, fmt.Errorf("phrase entry %d has no English key", i)
		}

		english = strings.ToLower(english)

		translations := make(map[lang.ID]string, len(entry))
		// English maps to itself so English-target lookups need no special case.
		translations[lang.English] = english

		for code, text := range entry {
			id, ok := reg.Normalize(code)
			if !ok {
				return nil, fmt.Errorf("phrase entry %q: unknown language %q", english, code)
			}

			if id == lang.English {
				continue
			}

			translations[id] = text

			rev, ok := s.reverse[id]
			if !ok {
				rev = make(map[string]string)
				s.reverse[id] = rev
			}

			rev[strings.ToLower(text)] = english
		}

		s.forward[english] = translations
	}

	return s, nil
}

// Lookup translates a canonical English phrase or word into the target
// language.
func (s *Store) Lookup(english string, target lang.ID) (string, bool) {
	translations, ok := s.forward[strings.ToLower(english)]
	if !ok {
		return "", false
	}

	text, ok := translations[target]

	return text, ok
}

// ReverseLookup maps a native phrase or word back to its canonical English
// form.
func (s *Store) ReverseLookup(native string, source lang.ID) (string, bool) {
	rev, ok := s.reverse[source]
	if !ok {
		return "", false
	}

	english, ok := rev[strings.ToLower(native)]

	return english, ok
}

// Direct translates between two languages in one step through the indexes.
func (s *Store) Direct(text string, source, target lang.ID) (string, bool) {
	if source == lang.English {
		return s.Lookup(text, target)
	}

	english, ok := s.ReverseLookup(text, source)
	if !ok {
		return "", false
	}

	return s.Lookup(english, target)
}

// Size returns the number of English entries loaded.
func (s *Store) Size() int {
	return len(s.forward)
}
