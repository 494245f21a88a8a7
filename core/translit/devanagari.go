// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

// devanagariTable covers Hindi, Marathi, and Nepali.
func devanagariTable() *Table {
	return &Table{
		Script: lang.ScriptDevanagari,
		Virama: "्", // ्
		Vowels: map[string]string{
			"a": "अ", "aa": "आ", "i": "इ", "ii": "ई", "ee": "ई",
			"u": "उ", "uu": "ऊ", "oo": "ऊ", "e": "ए", "ai": "ऐ",
			"o": "ओ", "au": "औ", "ri": "ऋ",
		},
		Consonants: map[string]string{
			"k": "क", "kh": "ख", "g": "ग", "gh": "घ", "ng": "ङ",
			"ch": "च", "chh": "छ", "j": "ज", "jh": "झ", "ny": "ञ",
			"tt": "ट", "tth": "ठ", "dd": "ड", "ddh": "ढ",
			"t": "त", "th": "थ", "d": "द", "dh": "ध", "n": "न",
			"p": "प", "ph": "फ", "f": "फ़", "b": "ब", "bh": "भ", "m": "म",
			"y": "य", "r": "र", "l": "ल", "v": "व", "w": "व",
			"sh": "श", "s": "स", "h": "ह", "z": "ज़", "q": "क़", "x": "क्ष",
			"gy": "ज्ञ",
		},
		Matras: map[string]string{
			"a": "", "aa": "ा", "i": "ि", "ii": "ी", "ee": "ी",
			"u": "ु", "uu": "ू", "oo": "ू", "e": "े", "ai": "ै",
			"o": "ो", "au": "ौ", "ri": "ृ",
		},
		Digits: map[rune]rune{
			'0': '०', '1': '१', '2': '२', '3': '३', '4': '४',
			'5': '५', '6': '६', '7': '७', '8': '८', '9': '९',
		},
	}
}
