// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package script

import (
	"regexp"
	"sort"

	"codeberg.org/varnantar/varnantar/core/lang"
)

// phoneticProfile holds the Latin-phonetic fingerprint of one language:
// high-frequency words as typed in Latin letters, plus spelling patterns
// characteristic of the language.
type phoneticProfile struct {
	keywords map[string]bool
	patterns []*regexp.Regexp
}

func words(ws ...string) map[string]bool {
	m := make(map[string]bool, len(ws))
	for _, w := range ws {
		m[w] = true
	}

	return m
}

func patterns(ps ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(ps))
	for i, p := range ps {
		out[i] = regexp.MustCompile(p)
	}

	return out
}

var phoneticProfiles = map[lang.ID]*phoneticProfile{
	lang.Hindi: {
		keywords: words(
			"namaste", "nameste", "kaise", "kese", "kaisa", "ho", "hai", "hain",
			"kya", "kyu", "kyon", "aap", "tum", "main", "mera", "tera", "achha",
			"acha", "theek", "thik", "nahi", "nahin", "haan", "bahut", "pyaar",
			"pyar", "dost", "dhanyavad", "shukriya", "chalo", "karo", "kaha",
			"kahan", "abhi", "aaj", "kal", "bhai", "didi", "ji",
		),
		patterns: patterns(`ain$`, `^ky`, `aa.*aa`, `chh`, `^bh`, `hain?$`),
	},
	lang.Telugu: {
		keywords: words(
			"bagunnava", "bagunnara", "baagunnaavaa", "ela", "elaa", "unnavu",
			"unnaru", "nenu", "meeru", "nuvvu", "emi", "enti", "enduku", "kada",
			"kadaa", "namaskaram", "dhanyavadalu", "chala", "chaalaa", "manchi",
			"manchidi", "vandanalu", "andi", "ledu", "avunu", "cheppu", "raa",
		),
		patterns: patterns(`nnava`, `unna`, `andi$`, `ndi$`, `amu$`, `lu$`),
	},
	lang.Tamil: {
		keywords: words(
			"vanakkam", "vanakam", "eppadi", "epdi", "irukkeenga", "irukinga",
			"nalla", "nandri", "nanri", "enna", "epo", "eppo", "yaru", "yaar",
			"naan", "neenga", "illa", "illai", "aama", "seri", "romba", "konjam",
		),
		patterns: patterns(`zh`, `nga$`, `kk`, `ai$`, `um$`),
	},
	lang.Kannada: {
		keywords: words(
			"hegiddira", "heegiddiiraa", "namaskara", "namaskaara", "chennagide",
			"hege", "yenu", "yake", "naanu", "neevu", "nimma", "illa", "houdu",
			"beku", "beda", "tumba", "dhanyavada", "guru", "madi",
		),
		patterns: patterns(`ide$`, `agide`, `annu$`, `alli$`),
	},
	lang.Malayalam: {
		keywords: words(
			"sukhamaano", "sugamano", "namaskaram", "engane", "entha", "enthu",
			"njan", "ningal", "illa", "aanu", "undu", "nandi", "nanni",
			"kollam", "adipoli", "mathi", "venam", "veno",
		),
		patterns: patterns(`aanu$`, `unnu$`, `^nj`, `kk`),
	},
	lang.Bengali: {
		keywords: words(
			"kemon", "kamon", "acho", "aachho", "bhalo", "bhaalo", "ami", "tumi",
			"apni", "ki", "keno", "kothay", "na", "hya", "khub", "dhonnobad",
			"dhonyobaad", "bondhu", "valo",
		),
		patterns: patterns(`chh`, `on$`, `alo$`),
	},
	lang.Gujarati: {
		keywords: words(
			"kem", "cho", "majama", "majaamaa", "saru", "saaru", "hu", "tame",
			"su", "kyare", "nathi", "ha", "bahu", "aabhar", "aabhaar", "maja",
		),
		patterns: patterns(`cho$`, `chhe$`, `aay$`),
	},
	lang.Punjabi: {
		keywords: words(
			"kiddan", "kiddaan", "tussi", "tusi", "ki", "haal", "changa", "vadhiya",
			"vadia", "nahi", "hanji", "bahut", "yaar", "paaji", "sat", "sri", "akaal",
		),
		patterns: patterns(`aan$`, `nji$`, `add`),
	},
	lang.Urdu: {
		keywords: words(
			"salaam", "salam", "aap", "kaise", "kesy", "ho", "hain", "kya",
			"nahi", "haan", "shukriya", "shukria", "theek", "acha", "janab",
			"mohabbat", "zindagi", "dil",
		),
		patterns: patterns(`^z`, `kh`, `gh`, `ain$`),
	},
	lang.Russian: {
		keywords: words(
			"privet", "privyet", "kak", "dela", "spasibo", "da", "net", "nyet",
			"khorosho", "horosho", "poka", "zdravstvuyte", "ochen", "drug",
		),
		patterns: patterns(`^zd`, `shch`, `^pri`),
	},
	lang.Spanish: {
		keywords: words(
			"hola", "como", "estas", "gracias", "bien", "amigo", "que", "donde",
			"bueno", "buenos", "dias", "noches", "por", "favor", "adios", "si",
		),
		patterns: patterns(`cion$`, `dad$`, `mos$`),
	},
	lang.French: {
		keywords: words(
			"bonjour", "salut", "comment", "merci", "bien", "ami", "oui", "non",
			"tres", "vous", "je", "suis", "avec", "pour", "bonne",
		),
		patterns: patterns(`eau$`, `oux$`, `ez$`, `^qu`),
	},
	lang.Indonesian: {
		keywords: words(
			"halo", "apa", "kabar", "terima", "kasih", "baik", "saya", "kamu",
			"tidak", "ya", "selamat", "pagi", "malam", "bagus", "teman",
		),
		patterns: patterns(`nya$`, `kan$`, `^men`, `^ber`),
	},
	lang.Swahili: {
		keywords: words(
			"jambo", "habari", "gani", "asante", "sana", "karibu", "ndiyo",
			"hapana", "rafiki", "nzuri", "pole", "safi", "mambo",
		),
		patterns: patterns(`^m[bw]`, `^ki`, `ni$`),
	},
}

// phoneticOrder fixes the iteration order of phoneticProfiles.
var phoneticOrder = func() []lang.ID {
	ids := make([]lang.ID, 0, len(phoneticProfiles))
	for id := range phoneticProfiles {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}()
