/*
Copyright 2026 The Regexpand Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uprops

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/regexpand/regexpand/go/regexpand/internal/uset"
)

// categoryAliases maps loose General_Category value aliases to the
// canonical short code. Long names per PropertyValueAliases.txt.
var categoryAliases = map[string]string{
	"l": "L", "letter": "L",
	"lc": "LC", "casedletter": "LC",
	"lu": "Lu", "uppercaseletter": "Lu",
	"ll": "Ll", "lowercaseletter": "Ll",
	"lt": "Lt", "titlecaseletter": "Lt",
	"lm": "Lm", "modifierletter": "Lm",
	"lo": "Lo", "otherletter": "Lo",
	"m": "M", "mark": "M", "combiningmark": "M",
	"mn": "Mn", "nonspacingmark": "Mn",
	"mc": "Mc", "spacingmark": "Mc",
	"me": "Me", "enclosingmark": "Me",
	"n": "N", "number": "N",
	"nd": "Nd", "decimalnumber": "Nd", "digit": "Nd",
	"nl": "Nl", "letternumber": "Nl",
	"no": "No", "othernumber": "No",
	"p": "P", "punctuation": "P", "punct": "P",
	"pc": "Pc", "connectorpunctuation": "Pc",
	"pd": "Pd", "dashpunctuation": "Pd",
	"ps": "Ps", "openpunctuation": "Ps",
	"pe": "Pe", "closepunctuation": "Pe",
	"pi": "Pi", "initialpunctuation": "Pi",
	"pf": "Pf", "finalpunctuation": "Pf",
	"po": "Po", "otherpunctuation": "Po",
	"s": "S", "symbol": "S",
	"sm": "Sm", "mathsymbol": "Sm",
	"sc": "Sc", "currencysymbol": "Sc",
	"sk": "Sk", "modifiersymbol": "Sk",
	"so": "So", "othersymbol": "So",
	"z": "Z", "separator": "Z",
	"zs": "Zs", "spaceseparator": "Zs",
	"zl": "Zl", "lineseparator": "Zl",
	"zp": "Zp", "paragraphseparator": "Zp",
	"c": "C", "other": "C",
	"cc": "Cc", "control": "Cc", "cntrl": "Cc",
	"cf": "Cf", "format": "Cf",
	"cs": "Cs", "surrogate": "Cs",
	"co": "Co", "privateuse": "Co",
	"cn": "Cn", "unassigned": "Cn",
}

// scriptAliases maps loose Script value names to the canonical table
// key; populated from the script tables themselves.
var scriptAliases = make(map[string]string, len(unicode.Scripts))

func init() {
	for name := range unicode.Scripts {
		scriptAliases[looseKey(name)] = name
	}
}

func assignedTable() *unicode.RangeTable {
	return rangetable.Merge(
		unicode.L, unicode.M, unicode.N,
		unicode.P, unicode.S, unicode.Z,
		unicode.C, // Cc, Cf, Co, Cs; Cn is the complement of this merge
	)
}

// categoryBuilders returns the set builder for a canonical
// General_Category value. The grouped categories the standard tables do
// not carry are derived here: LC = Lu|Lt|Ll, Cn = complement of all
// assigned code points, C = Cc|Cf|Cn|Co|Cs.
func categoryBuilders(value string) (func() *uset.Set, bool) {
	switch value {
	case "LC":
		return func() *uset.Set {
			return setFromTable(rangetable.Merge(unicode.Lu, unicode.Lt, unicode.Ll))
		}, true
	case "Cn":
		return func() *uset.Set {
			s := setFromTable(assignedTable())
			s.Complement()
			return s
		}, true
	case "C":
		return func() *uset.Set {
			s := setFromTable(assignedTable())
			s.Complement() // Cn
			s.AddAll(setFromTable(unicode.C))
			return s
		}, true
	}
	table, ok := unicode.Categories[value]
	if !ok {
		return nil, false
	}
	return func() *uset.Set { return setFromTable(table) }, true
}

// binaryAliases maps loose binary-property aliases to canonical names.
// Besides the table names themselves (added by init below), the short
// aliases from PropertyAliases.txt are listed here.
var binaryAliases = map[string]string{
	"alpha":  "Alphabetic",
	"upper":  "Uppercase",
	"lower":  "Lowercase",
	"ids":    "ID_Start",
	"idc":    "ID_Continue",
	"ahex":   "ASCII_Hex_Digit",
	"hex":    "Hex_Digit",
	"wspace": "White_Space",
	"space":  "White_Space",
	"qmark":  "Quotation_Mark",
	"term":   "Terminal_Punctuation",
	"sterm":  "Sentence_Terminal",
	"dep":    "Deprecated",
	"dia":    "Diacritic",
	"ext":    "Extender",
	"joinc":  "Join_Control",
	"loe":    "Logical_Order_Exception",
	"nchar":  "Noncharacter_Code_Point",
	"patsyn": "Pattern_Syntax",
	"patws":  "Pattern_White_Space",
	"ri":     "Regional_Indicator",
	"sd":     "Soft_Dotted",
	"uideo":  "Unified_Ideograph",
	"vs":     "Variation_Selector",
}

// derivedBinary holds the derived core properties, composed from the
// base tables per DerivedCoreProperties.txt.
var derivedBinary = map[string]func() *uset.Set{
	"Alphabetic": func() *uset.Set {
		return setFromTable(rangetable.Merge(
			unicode.L, unicode.Nl, unicode.Other_Alphabetic))
	},
	"Uppercase": func() *uset.Set {
		return setFromTable(rangetable.Merge(unicode.Lu, unicode.Other_Uppercase))
	},
	"Lowercase": func() *uset.Set {
		return setFromTable(rangetable.Merge(unicode.Ll, unicode.Other_Lowercase))
	},
	"Cased": func() *uset.Set {
		return setFromTable(rangetable.Merge(
			unicode.Lu, unicode.Ll, unicode.Lt,
			unicode.Other_Uppercase, unicode.Other_Lowercase))
	},
	"Math": func() *uset.Set {
		return setFromTable(rangetable.Merge(unicode.Sm, unicode.Other_Math))
	},
	"ID_Start": func() *uset.Set {
		s := setFromTable(rangetable.Merge(
			unicode.L, unicode.Nl, unicode.Other_ID_Start))
		s.RemoveAll(setFromTable(unicode.Pattern_Syntax))
		s.RemoveAll(setFromTable(unicode.Pattern_White_Space))
		return s
	},
	"ID_Continue": func() *uset.Set {
		s := setFromTable(rangetable.Merge(
			unicode.L, unicode.Nl, unicode.Other_ID_Start,
			unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
			unicode.Other_ID_Continue))
		s.RemoveAll(setFromTable(unicode.Pattern_Syntax))
		s.RemoveAll(setFromTable(unicode.Pattern_White_Space))
		return s
	},
	"Any": func() *uset.Set {
		return rangeSet(0, uset.MaxValue)
	},
	"ASCII": func() *uset.Set {
		return rangeSet(0, 0x7f)
	},
	"Assigned": func() *uset.Set {
		return setFromTable(assignedTable())
	},
}

func init() {
	for name := range unicode.Properties {
		binaryAliases[looseKey(name)] = name
	}
	for name := range derivedBinary {
		binaryAliases[looseKey(name)] = name
	}
}

func binaryBuilders(property string) (func() *uset.Set, bool) {
	if build, ok := derivedBinary[property]; ok {
		return build, true
	}
	table, ok := unicode.Properties[property]
	if !ok {
		return nil, false
	}
	return func() *uset.Set { return setFromTable(table) }, true
}

func rangeSet(lo, hi rune) *uset.Set {
	s := uset.New()
	s.AddRuneRange(lo, hi)
	return s
}
