package lexer

import "github.com/tslex-project/tslex/internal/version"

// keywordEntry pairs a keyword's token type with the first language version
// it is recognized under (spec.md §6: "let, const, class >= ES2015; using
// >= ES2022").
type keywordEntry struct {
	tok TokenType
	min version.Language
}

// keywords is the full keyword table across every version; lookupKeyword
// filters by the active language so older targets see the identifier
// reading of a word not yet reserved (e.g. `let` as a plain identifier
// under ES3).
var keywords = map[string]keywordEntry{
	"break":      {Break, version.ES3},
	"case":       {Case, version.ES3},
	"catch":      {Catch, version.ES3},
	"continue":   {Continue, version.ES3},
	"debugger":   {Debugger, version.ES3},
	"default":    {Default, version.ES3},
	"delete":     {Delete, version.ES3},
	"do":         {Do, version.ES3},
	"else":       {Else, version.ES3},
	"false":      {False, version.ES3},
	"finally":    {Finally, version.ES3},
	"for":        {For, version.ES3},
	"function":   {Function, version.ES3},
	"if":         {If, version.ES3},
	"in":         {In, version.ES3},
	"instanceof": {Instanceof, version.ES3},
	"new":        {New, version.ES3},
	"null":       {Null, version.ES3},
	"return":     {Return, version.ES3},
	"switch":     {Switch, version.ES3},
	"this":       {This, version.ES3},
	"throw":      {Throw, version.ES3},
	"true":       {True, version.ES3},
	"try":        {Try, version.ES3},
	"typeof":     {Typeof, version.ES3},
	"var":        {Var, version.ES3},
	"void":       {Void, version.ES3},
	"while":      {While, version.ES3},
	"with":       {With, version.ES3},

	"class":   {Class, version.ES2015},
	"const":   {Const, version.ES2015},
	"enum":    {Enum, version.ES2015},
	"export":  {Export, version.ES2015},
	"extends": {Extends, version.ES2015},
	"import":  {Import, version.ES2015},
	"super":   {Super, version.ES2015},
	"yield":   {Yield, version.ES2015},
	"let":     {Let, version.ES2015},
	"static":  {Static, version.ES2015},

	"async":  {Async, version.ES2017},
	"await":  {Await, version.ES2017},

	"as":         {As, version.ES5},
	"declare":    {Declare, version.ES5},
	"interface":  {Interface, version.ES5},
	"module":     {Module, version.ES5},
	"namespace":  {Namespace, version.ES5},
	"of":         {Of, version.ES5},
	"package":    {Package, version.ES5},
	"private":    {Private, version.ES5},
	"protected":  {Protected, version.ES5},
	"public":     {Public, version.ES5},
	"readonly":   {Readonly, version.ES5},
	"require":    {Require, version.ES5},
	"type":       {TypeKeyword, version.ES5},
	"from":       {From, version.ES5},
	"implements": {Implements, version.ES5},
	"any":        {Any, version.ES5},
	"boolean":    {Boolean, version.ES5},
	"constructor": {Constructor, version.ES5},
	"get":        {Get, version.ES5},
	"set":        {Set, version.ES5},
	"never":      {Never, version.ES5},
	"unknown":    {Unknown, version.ES5},
	"string":     {StringKeyword, version.ES5},
	"number":     {NumberKeyword, version.ES5},
	"symbol":     {Symbol, version.ES5},
	"undefined":  {Undefined, version.ES5},

	"satisfies": {Satisfies, version.ES2022},
	"using":     {Using, version.ES2022},
}

// valuePositionKeyword marks the keywords that stand in a value position
// (spec.md §4.5: regex-allowed is false after these, same as after an
// identifier) rather than preceding an expression.
var valuePositionKeyword = map[TokenType]bool{
	This:      true,
	Super:     true,
	True:      true,
	False:     true,
	Null:      true,
	Undefined: true,
}

// lookupKeyword returns the keyword token for ident under lang, or Ident
// if ident is not a keyword (at all, or not yet under lang).
func lookupKeyword(ident string, lang version.Language) TokenType {
	entry, ok := keywords[ident]
	if !ok {
		return Ident
	}
	if !lang.AtLeast(entry.min) {
		return Ident
	}
	return entry.tok
}
