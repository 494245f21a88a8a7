// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

// bengaliTable covers Bengali and Assamese.
func bengaliTable() *Table {
	return &Table{
		Script: lang.ScriptBengali,
		Virama: "্", // ্
		Vowels: map[string]string{
			"a": "অ", "aa": "আ", "i": "ই", "ii": "ঈ", "ee": "ঈ",
			"u": "উ", "uu": "ঊ", "oo": "ঊ", "e": "এ", "ai": "ঐ",
			"o": "ও", "au": "ঔ",
		},
		Consonants: map[string]string{
			"k": "ক", "kh": "খ", "g": "গ", "gh": "ঘ", "ng": "ঙ",
			"ch": "চ", "chh": "ছ", "j": "জ", "jh": "ঝ", "ny": "ঞ",
			"tt": "ট", "tth": "ঠ", "dd": "ড", "ddh": "ঢ",
			"t": "ত", "th": "থ", "d": "দ", "dh": "ধ", "n": "ন",
			"p": "প", "ph": "ফ", "f": "ফ", "b": "ব", "bh": "ভ", "m": "ম",
			"y": "য", "r": "র", "l": "ল", "v": "ব", "w": "ব",
			"sh": "শ", "s": "স", "h": "হ",
		},
		Matras: map[string]string{
			"a": "", "aa": "া", "i": "ি", "ii": "ী", "ee": "ী",
			"u": "ু", "uu": "ূ", "oo": "ূ", "e": "ে", "ai": "ৈ",
			"o": "ো", "au": "ৌ",
		},
		Digits: map[rune]rune{
			'0': '০', '1': '১', '2': '২', '3': '৩', '4': '৪',
			'5': '৫', '6': '৬', '7': '৭', '8': '৮', '9': '৯',
		},
	}
}
