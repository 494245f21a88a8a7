// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

func teluguTable() *Table {
	return &Table{
		Script: lang.ScriptTelugu,
		Virama: "్", // ్
		Vowels: map[string]string{
			"a": "అ", "aa": "ఆ", "i": "ఇ", "ii": "ఈ", "ee": "ఈ",
			"u": "ఉ", "uu": "ఊ", "oo": "ఊ", "e": "ఎ", "ai": "ఐ",
			"o": "ఒ", "au": "ఔ",
		},
		Consonants: map[string]string{
			"k": "క", "kh": "ఖ", "g": "గ", "gh": "ఘ", "ng": "ఙ",
			"ch": "చ", "chh": "ఛ", "j": "జ", "jh": "ఝ", "ny": "ఞ",
			"tt": "ట", "tth": "ఠ", "dd": "డ", "ddh": "ఢ",
			"t": "త", "th": "థ", "d": "ద", "dh": "ధ", "n": "న",
			"p": "ప", "ph": "ఫ", "f": "ఫ", "b": "బ", "bh": "భ", "m": "మ",
			"y": "య", "r": "ర", "l": "ల", "ll": "ళ", "v": "వ", "w": "వ",
			"sh": "శ", "s": "స", "h": "హ",
		},
		Matras: map[string]string{
			"a": "", "aa": "ా", "i": "ి", "ii": "ీ", "ee": "ీ",
			"u": "ు", "uu": "ూ", "oo": "ూ", "e": "ె", "ai": "ై",
			"o": "ొ", "au": "ౌ",
		},
		Digits: map[rune]rune{
			'0': '౦', '1': '౧', '2': '౨', '3': '౩', '4': '౪',
			'5': '౫', '6': '౬', '7': '౭', '8': '౮', '9': '౯',
		},
	}
}
