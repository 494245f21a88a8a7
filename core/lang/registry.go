// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lang

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// profiles is the canonical language table.
//
// Locale variants ("hi-IN", "pt_BR") are resolved in Normalize via base-tag
// fallback, and unsupported dialects through the dialects table below.
var profiles = []Profile{
	{ID: English, Name: "English", NativeName: "English", Script: ScriptLatin},
	{ID: Hindi, Name: "Hindi", NativeName: "हिन्दी", Script: ScriptDevanagari},
	{ID: Marathi, Name: "Marathi", NativeName: "मराठी", Script: ScriptDevanagari},
	{ID: Nepali, Name: "Nepali", NativeName: "नेपाली", Script: ScriptDevanagari},
	{ID: Telugu, Name: "Telugu", NativeName: "తెలుగు", Script: ScriptTelugu},
	{ID: Tamil, Name: "Tamil", NativeName: "தமிழ்", Script: ScriptTamil},
	{ID: Kannada, Name: "Kannada", NativeName: "ಕನ್ನಡ", Script: ScriptKannada},
	{ID: Malayalam, Name: "Malayalam", NativeName: "മലയാളം", Script: ScriptMalayalam},
	{ID: Bengali, Name: "Bengali", NativeName: "বাংলা", Script: ScriptBengali},
	{ID: Assamese, Name: "Assamese", NativeName: "অসমীয়া", Script: ScriptBengali},
	{ID: Gujarati, Name: "Gujarati", NativeName: "ગુજરાતી", Script: ScriptGujarati},
	{ID: Punjabi, Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ", Script: ScriptGurmukhi},
	{ID: Urdu, Name: "Urdu", NativeName: "اردو", Script: ScriptArabic, RTL: true},
	{ID: Arabic, Name: "Arabic", NativeName: "العربية", Script: ScriptArabic, RTL: true},
	{ID: Russian, Name: "Russian", NativeName: "Русский", Script: ScriptCyrillic},
	{ID: Spanish, Name: "Spanish", NativeName: "Español", Script: ScriptLatin},
	{ID: French, Name: "French", NativeName: "Français", Script: ScriptLatin},
	{ID: German, Name: "German", NativeName: "Deutsch", Script: ScriptLatin},
	{ID: Italian, Name: "Italian", NativeName: "Italiano", Script: ScriptLatin},
	{ID: Portuguese, Name: "Portuguese", NativeName: "Português", Script: ScriptLatin},
	{ID: Indonesian, Name: "Indonesian", NativeName: "Bahasa Indonesia", Script: ScriptLatin},
	{ID: Swahili, Name: "Swahili", NativeName: "Kiswahili", Script: ScriptLatin},
}

// aliases maps lowercase alternate spellings to canonical IDs.
//
// English display names, native names, and ISO 639-2/3 codes are added
// automatically in NewRegistry; only irregular spellings belong here.
var aliases = map[string]ID{
	"hin": Hindi, "hindustani": Hindi,
	"tel": Telugu, "telegu": Telugu,
	"tam": Tamil,
	"kan": Kannada, "canarese": Kannada,
	"mal": Malayalam,
	"ben": Bengali, "bangla": Bengali,
	"asm": Assamese, "asamiya": Assamese,
	"guj": Gujarati,
	"pan": Punjabi, "panjabi": Punjabi, "gurmukhi": Punjabi,
	"urd": Urdu,
	"ara": Arabic,
	"mar": Marathi,
	"nep": Nepali,
	"rus": Russian,
	"eng": English,
	"spa": Spanish, "castilian": Spanish,
	"fra": French, "fre": French,
	"deu": German, "ger": German,
	"ita": Italian,
	"por": Portuguese,
	"ind": Indonesian, "bahasa": Indonesian,
	"swa": Swahili,
}

// dialects maps unsupported dialects to their nearest script-family relative.
var dialects = map[string]ID{
	"bho": Hindi, "bhojpuri": Hindi,
	"mai": Hindi, "maithili": Hindi,
	"awa": Hindi, "awadhi": Hindi,
	"raj": Hindi, "rajasthani": Hindi,
	"doi": Hindi, "dogri": Hindi,
	"tcy": Kannada, "tulu": Kannada,
	"gom": Marathi, "konkani": Marathi,
}

// Registry resolves raw language strings to canonical IDs and serves
// per-language profiles. It is immutable after construction.
type Registry struct {
	byID     map[ID]Profile
	byAlias  map[string]ID
	byScript map[Script]ID // primary language per non-Latin script
}

// NewRegistry builds the registry from the static tables.
func NewRegistry() *Registry {
	r := &Registry{
		byID:     make(map[ID]Profile, len(profiles)),
		byAlias:  make(map[string]ID, len(profiles)*3+len(aliases)+len(dialects)),
		byScript: make(map[Script]ID),
	}

	for _, p := range profiles {
		r.byID[p.ID] = p
		r.byAlias[string(p.ID)] = p.ID
		r.byAlias[strings.ToLower(p.Name)] = p.ID
		r.byAlias[strings.ToLower(p.NativeName)] = p.ID

		// The first language listed for a script is its primary language.
		if p.Script != ScriptLatin {
			if _, ok := r.byScript[p.Script]; !ok {
				r.byScript[p.Script] = p.ID
			}
		}
	}

	for alias, id := range aliases {
		r.byAlias[alias] = id
	}

	for alias, id := range dialects {
		r.byAlias[alias] = id
	}

	return r
}

// Normalize resolves a language name, short code, or alias to a canonical ID.
//
// Lookup is case-insensitive and tolerant of BCP 47 locale variants:
// "hi-IN" and "pt_BR" resolve through their base language. The second result
// reports whether the input was recognized.
func (r *Registry) Normalize(input string) (ID, bool) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return Unknown, false
	}

	if id, ok := r.byAlias[key]; ok {
		return id, true
	}

	// Accept both underscore and hyphen locale separators, then fall back
	// to the base language of the parsed tag.
	tag, err := language.Parse(strings.ReplaceAll(key, "_", "-"))
	if err != nil {
		return Unknown, false
	}

	base, conf := tag.Base()
	if conf == language.No {
		return Unknown, false
	}

	if id, ok := r.byAlias[base.String()]; ok {
		return id, true
	}

	return Unknown, false
}

// Info returns the profile for a canonical ID.
func (r *Registry) Info(id ID) (Profile, bool) {
	p, ok := r.byID[id]

	return p, ok
}

// IsSame reports whether two IDs identify the same language.
func (r *Registry) IsSame(a, b ID) bool {
	return r.Effective(a) == r.Effective(b)
}

// IsLatinScript reports whether the language writes in Latin script.
//
// Unknown languages are treated as Latin per the engine's fallback policy:
// an unresolvable language degrades to English-like handling rather than
// surfacing an error.
func (r *Registry) IsLatinScript(id ID) bool {
	p, ok := r.byID[r.Effective(id)]
	if !ok {
		return true
	}

	return p.IsLatinScript()
}

// Effective maps an ID to the canonical ID used for processing. IDs already
// in the registry map to themselves; anything else maps to English.
func (r *Registry) Effective(id ID) ID {
	if _, ok := r.byID[id]; ok {
		return id
	}

	if mapped, ok := r.byAlias[string(id)]; ok {
		return mapped
	}

	return English
}

// PrimaryForScript returns the primary language written in the given script.
func (r *Registry) PrimaryForScript(s Script) (ID, bool) {
	id, ok := r.byScript[s]

	return id, ok
}

// Profiles returns all supported profiles sorted by ID.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
