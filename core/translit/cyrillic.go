// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package translit

import "codeberg.org/varnantar/varnantar/core/lang"

// cyrillicTable covers Russian. The script is alphabetic: vowels are full
// letters whether or not a consonant precedes them, so the matra map repeats
// the independent vowel glyphs and there is no virama.
func cyrillicTable() *Table {
	vowels := map[string]string{
		"a": "а", "e": "е", "i": "и", "ii": "и", "ee": "и",
		"o": "о", "u": "у", "oo": "у", "uu": "у",
		"ya": "я", "yu": "ю", "yo": "ё", "y": "ы", "eh": "э",
	}

	matras := make(map[string]string, len(vowels))
	for k, v := range vowels {
		matras[k] = v
	}

	return &Table{
		Script: lang.ScriptCyrillic,
		Virama: "",
		Vowels: vowels,
		Consonants: map[string]string{
			"b": "б", "v": "в", "w": "в", "g": "г", "d": "д",
			"zh": "ж", "z": "з", "k": "к", "l": "л", "m": "м",
			"n": "н", "p": "п", "r": "р", "s": "с", "t": "т",
			"f": "ф", "kh": "х", "h": "х", "ts": "ц", "c": "ц",
			"ch": "ч", "sh": "ш", "shch": "щ", "sch": "щ",
		},
		Matras: matras,
		Digits: map[rune]rune{},
	}
}
