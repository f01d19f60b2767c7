package tslex

import (
	"github.com/tslex-project/tslex/internal/lexer"
	"github.com/tslex-project/tslex/internal/version"
)

// Language names the ECMAScript/TypeScript version that gates keyword
// recognition and regex flag availability (spec.md §6). The zero value,
// ES3, is the most conservative profile.
type Language = version.Language

// Language constants, re-exported so callers never need to import
// internal/version directly.
const (
	ES3    = version.ES3
	ES5    = version.ES5
	ES2015 = version.ES2015
	ES2016 = version.ES2016
	ES2017 = version.ES2017
	ES2018 = version.ES2018
	ES2019 = version.ES2019
	ES2020 = version.ES2020
	ES2021 = version.ES2021
	ES2022 = version.ES2022
	ESNext = version.ESNext
	JSON   = version.JSON
)

// Variant selects plain TypeScript or JSX/TSX surface syntax (spec.md §4.7).
type Variant = version.Variant

const (
	TypeScript = version.TypeScript
	JSX        = version.JSX
)

// ParseLanguage maps a case-insensitive version name (as found in a
// tsconfig "target" field or a CLI flag) to a Language. Unrecognized names
// return ok=false — see internal/version.Parse.
func ParseLanguage(name string) (Language, bool) {
	return version.Parse(name)
}

// Options configures a tokenization pass. The zero value is the most
// conservative profile — ES3, plain TypeScript (JSX off), strict
// (RFC-3629-only) UTF-8 decoding — matching version.Language's own
// zero-value convention; callers that want the common case should set
// Language explicitly to ESNext.
type Options struct {
	Language          Language
	Variant           Variant
	AllowObsoleteUTF8 bool
}

func (o Options) toInternal() lexer.Options {
	return lexer.Options{
		Lang:              o.Language,
		Variant:           o.Variant,
		AllowObsoleteUTF8: o.AllowObsoleteUTF8,
	}
}
