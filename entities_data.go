// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package htmltok

// xmlEntities is the fixed five-entry XML predefined entity set, used when
// XMLMode is enabled. Unlike the HTML table, this one is normatively fixed
// and will never grow, so it is simply a literal map rather than a
// generated resource.
var xmlEntities = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"apos": "'",
	"quot": "\"",
}

// htmlStrictEntities is a representative subset of the WHATWG named
// character reference table for references that require a trailing ';'.
// The full table has over two thousand entries and is ordinarily generated
// from the same source data the reference implementation ships (see the
// design notes); this hand-compiled subset covers the common prose,
// punctuation, and symbol entities exercised by real documents and by this
// package's tests.
var htmlStrictEntities = map[string]string{
	"amp":     "&",
	"lt":      "<",
	"gt":      ">",
	"apos":    "'",
	"quot":    "\"",
	"nbsp":    " ",
	"copy":    "©",
	"reg":     "®",
	"trade":   "™",
	"hellip":  "…",
	"mdash":   "—",
	"ndash":   "–",
	"lsquo":   "‘",
	"rsquo":   "’",
	"ldquo":   "“",
	"rdquo":   "”",
	"bull":    "•",
	"dagger":  "†",
	"Dagger":  "‡",
	"permil":  "‰",
	"lsaquo":  "‹",
	"rsaquo":  "›",
	"euro":    "€",
	"cent":    "¢",
	"pound":   "£",
	"yen":     "¥",
	"sect":    "§",
	"para":    "¶",
	"middot":  "·",
	"laquo":   "«",
	"raquo":   "»",
	"iexcl":   "¡",
	"iquest":  "¿",
	"times":   "×",
	"divide":  "÷",
	"plusmn":  "±",
	"sup1":    "¹",
	"sup2":    "²",
	"sup3":    "³",
	"frac14":  "¼",
	"frac12":  "½",
	"frac34":  "¾",
	"deg":     "°",
	"micro":   "µ",
	"ordf":    "ª",
	"ordm":    "º",
	"AElig":   "Æ",
	"aelig":   "æ",
	"Oslash":  "Ø",
	"oslash":  "ø",
	"szlig":   "ß",
	"ccedil":  "ç",
	"Ccedil":  "Ç",
	"ntilde":  "ñ",
	"Ntilde":  "Ñ",
	"uuml":    "ü",
	"Uuml":    "Ü",
	"ouml":    "ö",
	"Ouml":    "Ö",
	"auml":    "ä",
	"Auml":    "Ä",
	"eacute":  "é",
	"Eacute":  "É",
	"egrave":  "è",
	"Egrave":  "È",
	"ecirc":   "ê",
	"Ecirc":   "Ê",
	"agrave":  "à",
	"Agrave":  "À",
	"acirc":   "â",
	"Acirc":   "Â",
	"icirc":   "î",
	"Icirc":   "Î",
	"ocirc":   "ô",
	"Ocirc":   "Ô",
	"ucirc":   "û",
	"Ucirc":   "Û",
	"aring":   "å",
	"Aring":   "Å",
	"atilde":  "ã",
	"Atilde":  "Ã",
	"otilde":  "õ",
	"Otilde":  "Õ",
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"pi":      "π",
	"sigma":   "σ",
	"omega":   "ω",
	"infin":   "∞",
	"ne":      "≠",
	"le":      "≤",
	"ge":      "≥",
	"sum":     "∑",
	"prod":    "∏",
	"int":     "∫",
	"radic":   "√",
	"part":    "∂",
	"nabla":   "∇",
	"forall":  "∀",
	"exist":   "∃",
	"empty":   "∅",
	"isin":    "∈",
	"notin":   "∉",
	"cap":     "∩",
	"cup":     "∪",
	"sub":     "⊂",
	"sube":    "⊆",
	"supe":    "⊇",
	"oplus":   "⊕",
	"otimes":  "⊗",
	"perp":    "⊥",
	"sdot":    "⋅",
	"larr":    "←",
	"uarr":    "↑",
	"rarr":    "→",
	"darr":    "↓",
	"harr":    "↔",
	"crarr":   "↵",
	"spades":  "♠",
	"clubs":   "♣",
	"hearts":  "♥",
	"diams":   "♦",
	"loz":     "◊",
}

// legacyEntities are the historical HTML4-era names that WHATWG still
// recognises without a trailing ';' outside of XML mode. It is a subset of
// the full legacy list, chosen to cover the ASCII-adjacent references most
// likely to appear unterminated in the wild (the classic "&amp" without a
// semicolon being the canonical example in §8's boundary tests).
var legacyEntities = map[string]string{
	"amp":   "&",
	"AMP":   "&",
	"lt":    "<",
	"LT":    "<",
	"gt":    ">",
	"GT":    ">",
	"quot":  "\"",
	"QUOT":  "\"",
	"nbsp":  " ",
	"copy":  "©",
	"COPY":  "©",
	"reg":   "®",
	"REG":   "®",
	"yen":   "¥",
	"cent":  "¢",
	"pound": "£",
	"sect":  "§",
	"para":  "¶",
	"deg":   "°",
	"ordf":  "ª",
	"ordm":  "º",
	"micro": "µ",
	"times": "×",
}

// cp1252Remap is the HTML spec's fixed table of "disallowed" numeric
// character references in the 0x80-0x9F range that get remapped to their
// Windows-1252 equivalents instead of being passed through verbatim. It is
// small and normatively fixed, so it is compiled directly rather than
// generated from a larger source table (see the design notes for when the
// full replacement table would be worth generating).
var cp1252Remap = map[int]rune{
	0x80: 0x20ac,
	0x82: 0x201a,
	0x83: 0x0192,
	0x84: 0x201e,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02c6,
	0x89: 0x2030,
	0x8a: 0x0160,
	0x8b: 0x2039,
	0x8c: 0x0152,
	0x8e: 0x017d,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201c,
	0x94: 0x201d,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02dc,
	0x99: 0x2122,
	0x9a: 0x0161,
	0x9b: 0x203a,
	0x9c: 0x0153,
	0x9e: 0x017e,
	0x9f: 0x0178,
}

// decodeCodePoint maps a raw numeric character reference value to the rune
// it actually represents, applying the HTML spec's handling of surrogates,
// out-of-range values, null, and the cp1252Remap table.
func decodeCodePoint(cp int) rune {
	if cp == 0 || cp > 0x10ffff {
		return 0xfffd
	}
	if cp >= 0xd800 && cp <= 0xdfff {
		return 0xfffd
	}
	if r, ok := cp1252Remap[cp]; ok {
		return r
	}
	return rune(cp)
}
