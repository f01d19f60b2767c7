// Package tslex is the public API for tslex's TypeScript/JavaScript/JSX
// lexical analyzer: a context-sensitive tokenizer plus a regular-expression
// literal sub-parser (spec.md §1). It is a thin, stable façade over
// internal/lexer — the internal package is free to change shape; this
// package is what external callers import.
//
// The common entry points are Tokenize (scan a whole source string at once)
// and NewLexer (pull tokens one at a time, the way a parser would).
package tslex
