package lexer

import (
	"github.com/tslex-project/tslex/internal/source"
)

// Lexer is the public-facing token iterator (spec.md §4.8): lazy,
// single-threaded, non-restartable. Next advances the cursor and returns
// exactly one token, or signals end-of-stream. Once Next returns an error
// (including the error for end of input reached inside an unterminated
// template/JSX construct) or an EOF token, the Lexer is permanently done:
// every subsequent call returns the same terminal state.
type Lexer struct {
	scan *Scanner
	done bool
	err  *Error
}

// New wraps src (identified by file for error locations) under opts.
func New(src source.ByteSource, file *source.File, opts Options) *Lexer {
	return &Lexer{scan: NewScanner(src, file, opts)}
}

// NewFromString is the common case for tests and tools operating on an
// already-materialized source string.
func NewFromString(src string, opts Options) *Lexer {
	return &Lexer{scan: NewScannerFromString(src, opts)}
}

// Next returns the next token, or a non-nil error if the stream is
// malformed. Per spec.md §7, there is no recovery: after an error, every
// subsequent call returns the same error.
func (l *Lexer) Next() (Token, error) {
	if l.done {
		if l.err != nil {
			return Token{}, l.err
		}
		return Token{Type: EOF, Pos: l.scan.pos(), End: l.scan.pos()}, nil
	}

	tok, err := l.scan.scanToken()
	if err != nil {
		l.done = true
		l.err = err
		return Token{}, err
	}
	if tok.Type == EOF {
		l.done = true
		if !l.scan.modes.empty() {
			bottom, _ := l.scan.modes.bottom()
			l.err = newError(KindStructuralUnterminated, unterminatedCodeFor(bottom.mode), bottom.pos,
				"unexpected end of input while in %s", bottom.mode)
			return Token{}, l.err
		}
	}
	return tok, nil
}

func unterminatedCodeFor(mode Mode) ErrorCode {
	switch mode {
	case ModeTemplateLiteral, ModeTemplateExpression:
		return ErrUnterminatedTemplate
	case ModeJSXElement, ModeJSXAttribute, ModeJSXText, ModeJSXExpression:
		return ErrUnterminatedJSXElement
	default:
		return ErrUnexpectedEndOfText
	}
}
