package lexer

import (
	"fmt"

	"github.com/tslex-project/tslex/internal/source"
)

// ErrorKind is the closed set of error categories from spec.md §7 "Error
// handling design" — every lexer error belongs to exactly one kind, and
// every kind is fatal for the stream: this lexer never recovers from an
// error, it fails fast with a typed value (spec.md §1 Non-goals).
type ErrorKind int

const (
	KindStructuralUnterminated ErrorKind = iota
	KindInvalidCharacter
	KindNumeric
	KindEscape
	KindRegexFlag
	KindJSX
	KindShebang
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructuralUnterminated:
		return "structural-unterminated"
	case KindInvalidCharacter:
		return "invalid-character"
	case KindNumeric:
		return "numeric"
	case KindEscape:
		return "escape"
	case KindRegexFlag:
		return "regex-flag"
	case KindJSX:
		return "jsx"
	case KindShebang:
		return "shebang"
	default:
		return "unknown"
	}
}

// ErrorCode is a TypeScript-compiler-compatible numeric code where one
// exists (spec.md §6); codes with no published TypeScript equivalent are
// assigned locally-consistent numbers above 9000, documented per-entry.
type ErrorCode int

const (
	ErrUnterminatedStringLiteral   ErrorCode = 1002
	ErrUnterminatedBlockComment    ErrorCode = 1010 // "*/" expected
	ErrUnexpectedEndOfText         ErrorCode = 1126
	ErrInvalidCharacter            ErrorCode = 1127
	ErrUnicodeValueOutOfRange      ErrorCode = 1198
	ErrUnterminatedUnicodeEscape   ErrorCode = 1199
	ErrUnterminatedTemplate        ErrorCode = 1160
	ErrUnterminatedRegex           ErrorCode = 1161
	ErrNumericSeparatorNotAllowed  ErrorCode = 6188
	ErrMultipleNumericSeparators   ErrorCode = 6189
	ErrJSXNoClosingTag             ErrorCode = 17008

	// No published TypeScript diagnostic exists for these; numbered above
	// 9000 to keep them visibly outside the real compiler's code space.
	ErrInvalidNumericLiteral      ErrorCode = 9001
	ErrUnterminatedJSXElement     ErrorCode = 9002
	ErrShebangNotAtStart          ErrorCode = 9003
	ErrUnterminatedCharacterClass ErrorCode = 9004
	ErrInvalidEscapeSequence      ErrorCode = 9005
)

// Error is the single typed error the lexer ever returns. The iterator is
// invalidated after producing one (spec.md §7: "there is no partial token
// emitted on error").
type Error struct {
	Kind    ErrorKind
	Code    ErrorCode
	Pos     source.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: TS%d: %s at %s", e.Kind, e.Code, e.Message, e.Pos)
}

func newError(kind ErrorKind, code ErrorCode, pos source.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
