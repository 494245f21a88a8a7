// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

// tamilTable: Tamil has no aspirated/voiced consonant distinction, so several
// phonetic keys share a glyph.
func tamilTable() *Table {
	return &Table{
		Script: lang.ScriptTamil,
		Virama: "்", // ்
		Vowels: map[string]string{
			"a": "அ", "aa": "ஆ", "i": "இ", "ii": "ஈ", "ee": "ஈ",
			"u": "உ", "uu": "ஊ", "oo": "ஊ", "e": "எ", "ai": "ஐ",
			"o": "ஒ", "au": "ஔ",
		},
		Consonants: map[string]string{
			"k": "க", "g": "க", "kh": "க", "gh": "க", "ng": "ங",
			"ch": "ச", "s": "ஸ", "j": "ஜ", "ny": "ஞ",
			"tt": "ட", "dd": "ட", "t": "த", "th": "த", "d": "த", "dh": "த",
			"n": "ந", "nn": "ண", "p": "ப", "b": "ப", "bh": "ப", "ph": "ப",
			"f": "ஃப", "m": "ம", "y": "ய", "r": "ர", "rr": "ற",
			"l": "ல", "ll": "ள", "zh": "ழ", "v": "வ", "w": "வ",
			"sh": "ஷ", "h": "ஹ",
		},
		Matras: map[string]string{
			"a": "", "aa": "ா", "i": "ி", "ii": "ீ", "ee": "ீ",
			"u": "ு", "uu": "ூ", "oo": "ூ", "e": "ெ", "ai": "ை",
			"o": "ொ", "au": "ௌ",
		},
		Digits: map[rune]rune{
			'0': '௦', '1': '௧', '2': '௨', '3': '௩', '4': '௪',
			'5': '௫', '6': '௬', '7': '௭', '8': '௮', '9': '௯',
		},
	}
}
