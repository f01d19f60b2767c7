package tslex

import (
	"strings"

	"github.com/tslex-project/tslex/internal/lexer"
	"github.com/tslex-project/tslex/internal/source"
)

// Token is the tagged-union payload emitted for every lexical element
// (spec.md §3). It is a direct alias of internal/lexer.Token: the internal
// package already exposes exactly the public shape callers need.
type Token = lexer.Token

// TokenType discriminates a Token's Type field.
type TokenType = lexer.TokenType

// NumberValue is the payload of a Numeric token.
type NumberValue = lexer.NumberValue

// NumberBase is the radix a numeric literal was written in.
type NumberBase = lexer.NumberBase

// Token type constants re-exported from internal/lexer. Only the values
// listed here are available under this package's name.
const (
	EOF             = lexer.EOF
	Ident           = lexer.Ident
	Let             = lexer.Let
	Add             = lexer.Add
	JSXElementStart = lexer.JSXElementStart
	JSXSelfClose    = lexer.JSXSelfClose
)

const (
	Decimal = lexer.Decimal
	Binary  = lexer.Binary
	Octal   = lexer.Octal
	Hex     = lexer.Hex
)

// Error is the single closed error type every malformed-source condition
// surfaces as (spec.md §7): a numeric TypeScript-compatible code, a
// classification Kind, and a source location. It implements the error
// interface, so callers that only need a message can treat it as a plain
// error; callers that need to branch on failure kind should type-assert to
// *Error (or errors.As).
type Error = lexer.Error

// ErrorKind classifies an Error the way spec.md §7 groups failure modes.
type ErrorKind = lexer.ErrorKind

// ErrorCode re-exports the TypeScript-compatible numeric error codes.
type ErrorCode = lexer.ErrorCode

// Lexer is a lazy, single-threaded, non-restartable token iterator — the
// streaming counterpart to Tokenize, for callers (typically a parser) that
// want one token at a time instead of a fully materialized slice.
type Lexer struct {
	inner *lexer.Lexer
}

// NewLexer wraps src (identified by name for error locations) under opts.
func NewLexer(src string, name string, opts Options) *Lexer {
	return &Lexer{inner: lexer.New(strings.NewReader(src), source.NewFile(name), opts.toInternal())}
}

// Next returns the next token, or a non-nil *Error if the stream is
// malformed. Once an error is returned, every subsequent call returns the
// same error (spec.md §7: no recovery).
func (l *Lexer) Next() (Token, error) {
	return l.inner.Next()
}

// Tokenize scans src in full under opts and returns every token in order,
// including the trailing EOF token, or the first lex error encountered
// (spec.md §8 "Input (literal) | Tokens in order"). name is used only for
// error locations and source identity; pass "" for an anonymous source.
func Tokenize(src string, name string, opts Options) ([]Token, error) {
	l := NewLexer(src, name, opts)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Type == lexer.EOF {
			return toks, nil
		}
	}
}
