package unicodetables

import "unicode"

// Profile is a sorted pair of Unicode range tables: one that answers
// "may start an identifier" and one that answers "may continue an
// identifier" for a given language-version bucket.
type Profile struct {
	Start *unicode.RangeTable
	Part  *unicode.RangeTable
}

// ES3 identifiers, per the ECMA-262 3rd Edition IdentifierStart /
// IdentifierPart productions, are restricted to Unicode letter and
// combining-mark categories as they stood at the time — no Other_ID_Start /
// Other_ID_Continue additions, no emoji, no recent script additions. We
// approximate that narrower, older surface with the Latin-1 and general
// Letter/Mark/Decimal-Number categories restricted to the Basic Multilingual
// Plane, which is what ES3-era engines could represent (UTF-16 code units,
// no surrogate pairs in identifiers). This is a simplification: it is not
// a byte-for-byte Unicode-3.0 snapshot, but it
// rejects supplementary-plane and modern-script identifiers the way ES3
// parsers of the era did.
var ES3 = Profile{
	Start: bmpOnly(mergeTables(unicode.Letter)),
	Part: bmpOnly(mergeTables(
		unicode.Letter,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
	)),
}

// ES5 identifiers follow ECMA-262 5th Edition's IdentifierStart /
// IdentifierPart productions: Letter plus letter numbers (Nl) for start,
// and additionally combining marks, decimal digits, and connector
// punctuation for part. It differs from ES3 by adding Nl and by keeping
// supplementary-plane ranges; Other_ID_Start / Other_ID_Continue are not
// included.
var ES5 = Profile{
	Start: mergeTables(unicode.Letter, unicode.Nl),
	Part: mergeTables(
		unicode.Letter,
		unicode.Nl,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
	),
}

// ES2015Plus covers ES2015 and every later version named in spec.md §6
// ("ES2015+ is used for anything >= ES2015"). It matches the modern
// ECMAScript IdentifierStart / IdentifierPart productions, which track the
// Unicode ID_Start / ID_Continue derived properties. ZWNJ and ZWJ
// (U+200C, U+200D) are not in the Part table.
var ES2015Plus = Profile{
	Start: mergeTables(unicode.Letter, unicode.Nl, unicode.Other_ID_Start),
	Part: mergeTables(
		unicode.Letter,
		unicode.Nl,
		unicode.Other_ID_Start,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Continue,
	),
}

// bmpOnly drops every R32 (supplementary-plane) entry from t, modeling the
// UTF-16-code-unit view of identifiers that pre-ES2015 engines used: a
// surrogate half is never, by itself, a valid identifier character.
func bmpOnly(t *unicode.RangeTable) *unicode.RangeTable {
	return &unicode.RangeTable{
		R16:         t.R16,
		LatinOffset: t.LatinOffset,
	}
}

// mergeTables builds a single sorted RangeTable out of several stdlib
// category tables. It is evaluated once, at package init, not per scan: the
// lexer only ever binary-searches the finished tables (spec.md §4.2 "the
// core does binary search, not table construction").
func mergeTables(tables ...*unicode.RangeTable) *unicode.RangeTable {
	var r16 []unicode.Range16
	var r32 []unicode.Range32

	for _, t := range tables {
		if t == nil {
			continue
		}
		r16 = append(r16, t.R16...)
		r32 = append(r32, t.R32...)
	}

	sortRange16(r16)
	sortRange32(r32)

	return &unicode.RangeTable{
		R16:         r16,
		R32:         r32,
		LatinOffset: latinOffset(r16),
	}
}

func sortRange16(r []unicode.Range16) {
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && r[j-1].Lo > r[j].Lo; j-- {
			r[j-1], r[j] = r[j], r[j-1]
		}
	}
}

func sortRange32(r []unicode.Range32) {
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && r[j-1].Lo > r[j].Lo; j-- {
			r[j-1], r[j] = r[j], r[j-1]
		}
	}
}

func latinOffset(r16 []unicode.Range16) int {
	n := 0
	for _, rr := range r16 {
		if rr.Hi > 0xFF {
			break
		}
		n++
	}
	return n
}
