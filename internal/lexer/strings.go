package lexer

import (
	"strings"

	"github.com/tslex-project/tslex/internal/source"
)

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// scanStringLiteral consumes a plain single- or double-quoted string
// starting at the cursor, which must be positioned on the opening quote
// (spec.md §4.4).
func (s *Scanner) scanStringLiteral() (Token, *Error) {
	start := s.pos()
	quote := s.cur()
	s.advanceRune()

	var b strings.Builder
	for {
		if s.eof() {
			return Token{}, newError(KindStructuralUnterminated, ErrUnterminatedStringLiteral, start, "unterminated string literal")
		}
		c := s.cur()
		if c == quote {
			s.advanceRune()
			break
		}
		if isLineTerminator(c) {
			return Token{}, newError(KindStructuralUnterminated, ErrUnterminatedStringLiteral, start, "unterminated string literal")
		}
		if c == '\\' {
			s.advanceRune()
			if err := s.scanEscapeSequence(&b); err != nil {
				return Token{}, err
			}
			continue
		}
		b.WriteRune(c)
		s.advanceRune()
	}

	s.regexAllowed = false
	return Token{Type: String, Pos: start, End: s.pos(), Text: b.String()}, nil
}

// scanEscapeSequence decodes one escape after the backslash has already
// been consumed, appending its value (zero or one code point — a line
// continuation appends nothing, a surrogate pair appends one combined rune)
// to b (spec.md §4.4).
func (s *Scanner) scanEscapeSequence(b *strings.Builder) *Error {
	pos := s.pos()
	c := s.cur()
	switch c {
	case 'b':
		b.WriteRune('\b')
		s.advanceRune()
	case 'f':
		b.WriteRune('\f')
		s.advanceRune()
	case 'n':
		b.WriteRune('\n')
		s.advanceRune()
	case 'r':
		b.WriteRune('\r')
		s.advanceRune()
	case 't':
		b.WriteRune('\t')
		s.advanceRune()
	case 'v':
		b.WriteRune('\v')
		s.advanceRune()
	case 'x':
		s.advanceRune()
		v, ok := s.readFixedHex(2)
		if !ok {
			return newError(KindEscape, ErrInvalidEscapeSequence, pos, "\\x must be followed by two hex digits")
		}
		b.WriteRune(rune(v))
	case 'u':
		s.advanceRune()
		r, err := s.scanUnicodeEscape(pos)
		if err != nil {
			return err
		}
		b.WriteRune(r)
	case '0':
		s.advanceRune()
		if isOctalDigit(s.cur()) {
			b.WriteRune(s.scanOctalEscape("0"))
		} else {
			b.WriteRune(0)
		}
	case '1', '2', '3', '4', '5', '6', '7':
		first := string(c)
		s.advanceRune()
		b.WriteRune(s.scanOctalEscape(first))
	case '8', '9':
		// Not octal digits (tsclex/tsclex/lexer.cpp's is_octal_digit only
		// covers '0'-'7'); `\8` and `\9` decode to the literal character.
		b.WriteRune(c)
		s.advanceRune()
	case '\r':
		// advanceRune folds a CRLF pair into this single step already.
		s.advanceRune()
	case '\n':
		s.advanceRune()
	default:
		// A backslash before any other character -- `\`, `/`, the quote
		// characters, the syntactic punctuators, or an otherwise unknown
		// character -- yields that character literally (spec.md §4.4).
		b.WriteRune(c)
		s.advanceRune()
	}
	return nil
}

// scanOctalEscape consumes up to two further octal digits onto prefix
// (itself one octal digit already consumed) and returns the decoded byte
// value, which must fit in one byte (spec.md §4.4: "\<decimal> and
// \0<octal> -- octal escape (value must fit in one byte)").
func (s *Scanner) scanOctalEscape(prefix string) rune {
	digits := prefix
	for len(digits) < 3 && isOctalDigit(s.cur()) {
		digits += string(s.cur())
		s.advanceRune()
	}
	v := 0
	for _, d := range digits {
		v = v*8 + int(d-'0')
	}
	if v > 255 {
		v &= 0xFF
	}
	return rune(v)
}

// readFixedHex reads exactly n hex digits (ASCII only) and returns their
// value, or ok=false if fewer than n hex digits are available.
func (s *Scanner) readFixedHex(n int) (int, bool) {
	v := 0
	for i := 0; i < n; i++ {
		d := hexValue(s.cur())
		if d < 0 {
			return 0, false
		}
		v = v*16 + d
		s.advanceRune()
	}
	return v, true
}

// scanUnicodeEscape decodes `\uHHHH` or `\u{H...}` (the leading `\u` is
// already consumed), combining a UTF-16 surrogate pair formed by two
// consecutive `\uHHHH` escapes into a single code point (spec.md §4.4).
func (s *Scanner) scanUnicodeEscape(pos source.Position) (rune, *Error) {
	if s.cur() == '{' {
		s.advanceRune()
		digits := 0
		v := 0
		for isHexDigit(s.cur()) {
			v = v*16 + hexValue(s.cur())
			digits++
			s.advanceRune()
		}
		if digits == 0 || s.cur() != '}' {
			return 0, newError(KindEscape, ErrUnterminatedUnicodeEscape, pos, "unterminated unicode escape sequence")
		}
		s.advanceRune()
		if v > 0x10FFFF {
			return 0, newError(KindEscape, ErrUnicodeValueOutOfRange, pos, "unicode escape value out of range")
		}
		return rune(v), nil
	}

	v, ok := s.readFixedHex(4)
	if !ok {
		return 0, newError(KindEscape, ErrUnterminatedUnicodeEscape, pos, "unterminated unicode escape sequence")
	}
	if v >= 0xD800 && v <= 0xDBFF {
		if low, ok := s.tryConsumeLowSurrogate(); ok {
			return 0x10000 + rune(v-0xD800)*0x400 + rune(low-0xDC00), nil
		}
	}
	return rune(v), nil
}

// tryConsumeLowSurrogate peeks for a `\uHHHH` escape forming a low
// surrogate (0xDC00-0xDFFF) immediately ahead and consumes it if found,
// reporting ok=false (and consuming nothing) otherwise.
func (s *Scanner) tryConsumeLowSurrogate() (int, bool) {
	if s.cur() != '\\' || s.peekRune(1) != 'u' {
		return 0, false
	}
	v := 0
	for i := 0; i < 4; i++ {
		r := s.peekRune(2 + i)
		d := hexValue(r)
		if d < 0 {
			return 0, false
		}
		v = v*16 + d
	}
	if v < 0xDC00 || v > 0xDFFF {
		return 0, false
	}
	s.advanceRune() // '\'
	s.advanceRune() // 'u'
	s.advanceRune()
	s.advanceRune()
	s.advanceRune()
	s.advanceRune()
	return v, true
}

// scanTemplateChunk scans one literal chunk of a template (spec.md §4.4),
// handing off to scanTemplateEnd at the closing backtick and to
// scanTemplateExprStart at `${`. scan.go calls it while in_template_literal
// is the active mode.
func (s *Scanner) scanTemplateChunk(start source.Position) (Token, *Error) {
	var b strings.Builder
	for {
		if s.eof() {
			return Token{}, newError(KindStructuralUnterminated, ErrUnterminatedTemplate, start, "unterminated template literal")
		}
		if s.cur() == '`' {
			if b.Len() == 0 {
				return s.scanTemplateEnd()
			}
			return Token{Type: TemplateStringChunk, Pos: start, End: s.pos(), Text: b.String()}, nil
		}
		if s.cur() == '$' && s.peekRune(1) == '{' {
			if b.Len() == 0 {
				return s.scanTemplateExprStart()
			}
			return Token{Type: TemplateStringChunk, Pos: start, End: s.pos(), Text: b.String()}, nil
		}
		if s.cur() == '\\' {
			s.advanceRune()
			if err := s.scanEscapeSequence(&b); err != nil {
				return Token{}, err
			}
			continue
		}
		if s.cur() == '\r' {
			b.WriteRune('\n')
			s.advanceRune()
			continue
		}
		b.WriteRune(s.cur())
		s.advanceRune()
	}
}

func (s *Scanner) scanTemplateStart() (Token, *Error) {
	start := s.pos()
	s.advanceRune() // '`'
	s.modes.push(ModeTemplateLiteral, start, "")
	s.regexAllowed = false
	return Token{Type: TemplateStringStart, Pos: start, End: s.pos()}, nil
}

func (s *Scanner) scanTemplateEnd() (Token, *Error) {
	start := s.pos()
	s.advanceRune() // '`'
	s.modes.pop()
	s.regexAllowed = false
	return Token{Type: TemplateStringEnd, Pos: start, End: s.pos()}, nil
}

func (s *Scanner) scanTemplateExprStart() (Token, *Error) {
	start := s.pos()
	s.advanceRune() // '$'
	s.advanceRune() // '{'
	s.modes.push(ModeTemplateExpression, start, "")
	s.regexAllowed = true
	return Token{Type: TemplateExprStart, Pos: start, End: s.pos()}, nil
}
