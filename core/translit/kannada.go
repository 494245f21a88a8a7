// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

func kannadaTable() *Table {
	return &Table{
		Script: lang.ScriptKannada,
		Virama: "್", // ್
		Vowels: map[string]string{
			"a": "ಅ", "aa": "ಆ", "i": "ಇ", "ii": "ಈ", "ee": "ಈ",
			"u": "ಉ", "uu": "ಊ", "oo": "ಊ", "e": "ಎ", "ai": "ಐ",
			"o": "ಒ", "au": "ಔ",
		},
		Consonants: map[string]string{
			"k": "ಕ", "kh": "ಖ", "g": "ಗ", "gh": "ಘ", "ng": "ಙ",
			"ch": "ಚ", "chh": "ಛ", "j": "ಜ", "jh": "ಝ", "ny": "ಞ",
			"tt": "ಟ", "tth": "ಠ", "dd": "ಡ", "ddh": "ಢ",
			"t": "ತ", "th": "ಥ", "d": "ದ", "dh": "ಧ", "n": "ನ",
			"p": "ಪ", "ph": "ಫ", "f": "ಫ", "b": "ಬ", "bh": "ಭ", "m": "ಮ",
			"y": "ಯ", "r": "ರ", "l": "ಲ", "ll": "ಳ", "v": "ವ", "w": "ವ",
			"sh": "ಶ", "s": "ಸ", "h": "ಹ",
		},
		Matras: map[string]string{
			"a": "", "aa": "ಾ", "i": "ಿ", "ii": "ೀ", "ee": "ೀ",
			"u": "ು", "uu": "ೂ", "oo": "ೂ", "e": "ೆ", "ai": "ೈ",
			"o": "ೊ", "au": "ೌ",
		},
		Digits: map[rune]rune{
			'0': '೦', '1': '೧', '2': '೨', '3': '೩', '4': '೪',
			'5': '೫', '6': '೬', '7': '೭', '8': '೮', '9': '೯',
		},
	}
}
