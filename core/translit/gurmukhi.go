// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

func gurmukhiTable() *Table {
	return &Table{
		Script: lang.ScriptGurmukhi,
		Virama: "੍", // ੍
		Vowels: map[string]string{
			"a": "ਅ", "aa": "ਆ", "i": "ਇ", "ii": "ਈ", "ee": "ਈ",
			"u": "ਉ", "uu": "ਊ", "oo": "ਊ", "e": "ਏ", "ai": "ਐ",
			"o": "ਓ", "au": "ਔ",
		},
		Consonants: map[string]string{
			"k": "ਕ", "kh": "ਖ", "g": "ਗ", "gh": "ਘ", "ng": "ਙ",
			"ch": "ਚ", "chh": "ਛ", "j": "ਜ", "jh": "ਝ", "ny": "ਞ",
			"tt": "ਟ", "tth": "ਠ", "dd": "ਡ", "ddh": "ਢ",
			"t": "ਤ", "th": "ਥ", "d": "ਦ", "dh": "ਧ", "n": "ਨ",
			"p": "ਪ", "ph": "ਫ", "f": "ਫ਼", "b": "ਬ", "bh": "ਭ", "m": "ਮ",
			"y": "ਯ", "r": "ਰ", "l": "ਲ", "v": "ਵ", "w": "ਵ",
			"sh": "ਸ਼", "s": "ਸ", "h": "ਹ", "z": "ਜ਼",
		},
		Matras: map[string]string{
			"a": "", "aa": "ਾ", "i": "ਿ", "ii": "ੀ", "ee": "ੀ",
			"u": "ੁ", "uu": "ੂ", "oo": "ੂ", "e": "ੇ", "ai": "ੈ",
			"o": "ੋ", "au": "ੌ",
		},
		Digits: map[rune]rune{
			'0': '੦', '1': '੧', '2': '੨', '3': '੩', '4': '੪',
			'5': '੫', '6': '੬', '7': '੭', '8': '੮', '9': '੯',
		},
	}
}
