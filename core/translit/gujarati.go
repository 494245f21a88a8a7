// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

func gujaratiTable() *Table {
	return &Table{
		Script: lang.ScriptGujarati,
		Virama: "્", // ્
		Vowels: map[string]string{
			"a": "અ", "aa": "આ", "i": "ઇ", "ii": "ઈ", "ee": "ઈ",
			"u": "ઉ", "uu": "ઊ", "oo": "ઊ", "e": "એ", "ai": "ઐ",
			"o": "ઓ", "au": "ઔ",
		},
		Consonants: map[string]string{
			"k": "ક", "kh": "ખ", "g": "ગ", "gh": "ઘ", "ng": "ઙ",
			"ch": "ચ", "chh": "છ", "j": "જ", "jh": "ઝ", "ny": "ઞ",
			"tt": "ટ", "tth": "ઠ", "dd": "ડ", "ddh": "ઢ",
			"t": "ત", "th": "થ", "d": "દ", "dh": "ધ", "n": "ન",
			"p": "પ", "ph": "ફ", "f": "ફ", "b": "બ", "bh": "ભ", "m": "મ",
			"y": "ય", "r": "ર", "l": "લ", "ll": "ળ", "v": "વ", "w": "વ",
			"sh": "શ", "s": "સ", "h": "હ",
		},
		Matras: map[string]string{
			"a": "", "aa": "ા", "i": "િ", "ii": "ી", "ee": "ી",
			"u": "ુ", "uu": "ૂ", "oo": "ૂ", "e": "ે", "ai": "ૈ",
			"o": "ો", "au": "ૌ",
		},
		Digits: map[rune]rune{
			'0': '૦', '1': '૧', '2': '૨', '3': '૩', '4': '૪',
			'5': '૫', '6': '૬', '7': '૭', '8': '૮', '9': '૯',
		},
	}
}
