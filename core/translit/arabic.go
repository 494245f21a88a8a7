// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

// arabicTable covers Urdu and Arabic. The script is an abjad: short vowels
// after a consonant are usually unwritten, so their matra entries are empty,
// and there is no virama.
func arabicTable() *Table {
	return &Table{
		Script: lang.ScriptArabic,
		Virama: "",
		Vowels: map[string]string{
			"a": "ا", "aa": "آ", "i": "ا", "ii": "ای", "ee": "ای",
			"u": "ا", "uu": "او", "oo": "او", "e": "اے", "o": "او",
			"ai": "اے", "au": "او",
		},
		Consonants: map[string]string{
			"b": "ب", "p": "پ", "t": "ت", "tt": "ٹ", "th": "تھ",
			"j": "ج", "ch": "چ", "kh": "خ", "d": "د", "dd": "ڈ",
			"z": "ز", "r": "ر", "rr": "ڑ", "s": "س", "sh": "ش",
			"f": "ف", "q": "ق", "k": "ک", "g": "گ", "l": "ل",
			"m": "م", "n": "ن", "v": "و", "w": "و", "h": "ہ",
			"y": "ی", "gh": "غ", "bh": "بھ", "dh": "دھ", "ph": "پھ",
		},
		Matras: map[string]string{
			"a": "", "aa": "ا", "i": "", "ii": "ی", "ee": "ی",
			"u": "", "uu": "و", "oo": "و", "e": "ے", "o": "و",
			"ai": "ے", "au": "و",
		},
		Digits: map[rune]rune{
			'0': '۰', '1': '۱', '2': '۲', '3': '۳', '4': '۴',
			'5': '۵', '6': '۶', '7': '۷', '8': '۸', '9': '۹',
		},
	}
}
