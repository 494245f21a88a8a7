// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package phonetic

import "codeberg.org/varnantar/varnantar/core/lang"

// corrections maps common misspellings to canonical phonetic spellings per
// language. Values are canonical: looking up a value never produces a
// different value, which keeps Correct idempotent.
var corrections = map[lang.ID]map[string]string{
	lang.Hindi: {
		"nameste":   "namaste",
		"namste":    "namaste",
		"namastey":  "namaste",
		"kese":      "kaise",
		"kaese":     "kaise",
		"kasa":      "kaisa",
		"hy":        "hai",
		"hein":      "hain",
		"acha":      "achha",
		"accha":     "achha",
		"thik":      "theek",
		"tik":       "theek",
		"pyar":      "pyaar",
		"dhanyawad": "dhanyavad",
		"shukria":   "shukriya",
		"mei":       "main",
		"mera":      "meraa",
	},
	lang.Telugu: {
		"bagunnava":   "baagunnaavaa",
		"bagunava":    "baagunnaavaa",
		"baagunnava":  "baagunnaavaa",
		"ela":         "elaa",
		"unnavu":      "unnaavu",
		"unnava":      "unnaavaa",
		"namaskaram":  "namaskaaram",
		"dhanyavadam": "dhanyavaadaalu",
		"chala":       "chaalaa",
		"em":          "emi",
	},
	lang.Tamil: {
		"vanakam":   "vanakkam",
		"vannakam":  "vanakkam",
		"epdi":      "eppadi",
		"epadi":     "eppadi",
		"irukinga":  "irukkeenga",
		"irukkinga": "irukkeenga",
		"nandri":    "nanri",
		"romba":     "rombba",
	},
	lang.Kannada: {
		"hegiddira":  "heegiddiiraa",
		"hegidira":   "heegiddiiraa",
		"namaskara":  "namaskaara",
		"chennagide": "chennaagide",
		"dhanyavada": "dhanyavaada",
	},
	lang.Malayalam: {
		"sugamano":  "sukhamaano",
		"sughamano": "sukhamaano",
		"nanni":     "nandi",
		"namaskarm": "namaskaaram",
	},
	lang.Bengali: {
		"kamon":    "kemon",
		"kemn":     "kemon",
		"acho":     "aachho",
		"bhalo":    "bhaalo",
		"dhonnobad": "dhonyobaad",
	},
	lang.Gujarati: {
		"majama": "majaamaa",
		"saru":   "saaru",
		"aabhar": "aabhaar",
	},
	lang.Punjabi: {
		"kiddan": "kiddaan",
		"tusi":   "tussi",
		"vadia":  "vadhiya",
	},
	lang.Urdu: {
		"salam":   "salaam",
		"shukria": "shukriya",
		"kesy":    "kaise",
	},
	lang.Russian: {
		"privyet": "privet",
		"horosho": "khorosho",
	},
}
