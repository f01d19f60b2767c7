package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tslex-project/tslex/internal/version"
)

func defaultOptions() Options {
	return Options{Lang: version.ESNext, Variant: version.TypeScript}
}

func jsxOptions() Options {
	return Options{Lang: version.ESNext, Variant: version.JSX}
}

func langOptions(lang version.Language) Options {
	return Options{Lang: lang, Variant: version.TypeScript}
}

// lexAll drives a Lexer to completion (inclusive of the terminal EOF token)
// or to its first error.
func lexAll(src string, opts Options) ([]Token, error) {
	l := NewFromString(src, opts)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

// requireTypes lexes src and asserts the resulting token type sequence
// (EOF included) equals want.
func requireTypes(t *testing.T, src string, opts Options, want ...TokenType) []Token {
	t.Helper()
	toks, err := lexAll(src, opts)
	require.NoError(t, err)
	require.Equal(t, want, tokenTypes(toks))
	return toks
}

// requireError lexes src and asserts it fails with the given code.
func requireError(t *testing.T, src string, opts Options, code ErrorCode) *Error {
	t.Helper()
	_, err := lexAll(src, opts)
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok, "expected *lexer.Error, got %T", err)
	require.Equal(t, code, lexErr.Code)
	return lexErr
}
