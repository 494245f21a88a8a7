// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

func malayalamTable() *Table {
	return &Table{
		Script: lang.ScriptMalayalam,
		Virama: "്", // ്
		Vowels: map[string]string{
			"a": "അ", "aa": "ആ", "i": "ഇ", "ii": "ഈ", "ee": "ഈ",
			"u": "ഉ", "uu": "ഊ", "oo": "ഊ", "e": "എ", "ai": "ഐ",
			"o": "ഒ", "au": "ഔ",
		},
		Consonants: map[string]string{
			"k": "ക", "kh": "ഖ", "g": "ഗ", "gh": "ഘ", "ng": "ങ",
			"ch": "ച", "chh": "ഛ", "j": "ജ", "jh": "ഝ", "ny": "ഞ",
			"tt": "ട", "tth": "ഠ", "dd": "ഡ", "ddh": "ഢ",
			"t": "ത", "th": "ഥ", "d": "ദ", "dh": "ധ", "n": "ന",
			"p": "പ", "ph": "ഫ", "f": "ഫ", "b": "ബ", "bh": "ഭ", "m": "മ",
			"y": "യ", "r": "ര", "l": "ല", "ll": "ള", "zh": "ഴ",
			"v": "വ", "w": "വ", "sh": "ശ", "s": "സ", "h": "ഹ",
		},
		Matras: map[string]string{
			"a": "", "aa": "ാ", "i": "ി", "ii": "ീ", "ee": "ീ",
			"u": "ു", "uu": "ൂ", "oo": "ൂ", "e": "െ", "ai": "ൈ",
			"o": "ൊ", "au": "ൌ",
		},
		Digits: map[rune]rune{
			'0': '൦', '1': '൧', '2': '൨', '3': '൩', '4': '൪',
			'5': '൫', '6': '൬', '7': '൭', '8': '൮', '9': '൯',
		},
	}
}
