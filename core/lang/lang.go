// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package lang provides the language registry: a read-only table mapping
language names, ISO-like short codes, and common alternate spellings to
canonical language identifiers, together with per-language script metadata.

Everything here is constructed once by [NewRegistry] and never mutates
afterwards, so a single Registry is safe for concurrent use without locking.
*/
package lang

// ID is a canonical language identifier.
//
// Internal code operates on IDs only; raw user strings are resolved to an ID
// exactly once at the boundary via [Registry.Normalize].
type ID string

// Canonical identifiers for every supported language.
const (
	English   ID = "en"
	Hindi     ID = "hi"
	Marathi   ID = "mr"
	Nepali    ID = "ne"
	Telugu    ID = "te"
	Tamil     ID = "ta"
	Kannada   ID = "kn"
	Malayalam ID = "ml"
	Bengali   ID = "bn"
	Assamese  ID = "as"
	Gujarati  ID = "gu"
	Punjabi   ID = "pa"
	Urdu      ID = "ur"
	Arabic    ID = "ar"
	Russian   ID = "ru"
	Spanish   ID = "es"
	French    ID = "fr"
	German    ID = "de"
	Italian   ID = "it"
	Portuguese ID = "pt"
	Indonesian ID = "id"
	Swahili    ID = "sw"

	// Unknown is the zero ID, returned when normalization fails.
	Unknown ID = ""
)

// Script identifies a writing system.
type Script string

// Script families covered by the grapheme tables.
const (
	ScriptLatin      Script = "Latin"
	ScriptDevanagari Script = "Devanagari"
	ScriptTelugu     Script = "Telugu"
	ScriptTamil      Script = "Tamil"
	ScriptKannada    Script = "Kannada"
	ScriptMalayalam  Script = "Malayalam"
	ScriptBengali    Script = "Bengali"
	ScriptGujarati   Script = "Gujarati"
	ScriptGurmukhi   Script = "Gurmukhi"
	ScriptArabic     Script = "Arabic"
	ScriptCyrillic   Script = "Cyrillic"
)

// Profile describes a single supported language.
type Profile struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`       // English display name
	NativeName string `json:"nativeName"` // endonym in the language's own script
	Script     Script `json:"script"`
	RTL        bool   `json:"rtl"`
}

// IsLatinScript reports whether the language is written in Latin script.
func (p Profile) IsLatinScript() bool {
	return p.Script == ScriptLatin
}
