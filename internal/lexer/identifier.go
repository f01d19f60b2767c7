package lexer

import "strings"

// isASCIIIdentStart/Part fast-path plain identifiers before falling back
// to the Unicode tables (spec.md §4.2: "ASCII is fast-pathed").
func isASCIIIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}

func isASCIIIdentPart(r rune) bool {
	return isASCIIIdentStart(r) || (r >= '0' && r <= '9')
}

func (s *Scanner) isIdentStart(r rune) bool {
	if r < 0x80 {
		return isASCIIIdentStart(r)
	}
	return s.idProfile().IsIDStart(r)
}

func (s *Scanner) isIdentPart(r rune) bool {
	if r < 0x80 {
		return isASCIIIdentPart(r)
	}
	return s.idProfile().IsIDPart(r)
}

// scanIdentifier consumes an identifier or keyword starting at the
// cursor, which must already satisfy isIdentStart. A leading `#` marks a
// private field name (spec.md §3: "a leading # marks a private field");
// the `#` itself is not part of Name.
//
// The buffer compacts past a threshold (internal/source), so token text
// is built incrementally as runes are consumed rather than sliced back
// out of the buffer after the fact.
func (s *Scanner) scanIdentifier() (Token, *Error) {
	start := s.pos()
	private := false
	if s.cur() == '#' {
		private = true
		s.advanceRune()
		if !s.isIdentStart(s.cur()) {
			return Token{}, newError(KindInvalidCharacter, ErrInvalidCharacter, start, "'#' not followed by an identifier start")
		}
	}

	var b strings.Builder
	b.WriteRune(s.advanceRune())
	for s.isIdentPart(s.cur()) {
		b.WriteRune(s.advanceRune())
	}
	name := b.String()

	tokType := Ident
	if !private && !s.forceIdentifier {
		tokType = lookupKeyword(name, s.opts.Lang)
	}
	s.forceIdentifier = false
	if private {
		tokType = PrivateIdent
	}

	// spec.md §4.5: regex-allowed is false after identifiers and after
	// keywords used in value position (this, super, literals); it stays
	// true after keywords that precede an expression (return, typeof, …).
	s.regexAllowed = tokType != Ident && tokType != PrivateIdent && !valuePositionKeyword[tokType]

	raw := name
	if private {
		raw = "#" + name
	}
	return Token{Type: tokType, Pos: start, End: s.pos(), Raw: raw, Name: name}, nil
}
