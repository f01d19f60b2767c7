package lexer

import (
	"strings"
)

// scanLineComment consumes `//...` to end-of-line; the body is right-trimmed
// of trailing whitespace (spec.md §4.6).
func (s *Scanner) scanLineComment() (Token, *Error) {
	start := s.pos()
	s.advanceRune() // '/'
	s.advanceRune() // '/'
	var b strings.Builder
	for !s.eof() && !isLineTerminator(s.cur()) {
		b.WriteRune(s.cur())
		s.advanceRune()
	}
	return Token{Type: LineComment, Pos: start, End: s.pos(), CommentBody: strings.TrimRight(b.String(), " \t")}, nil
}

// scanBlockComment consumes `/*...*/`, recognizing the JSDoc form `/**...*/`
// (exactly two opening stars; `/***` is a plain block comment) and decomposing its body
// line-by-line (spec.md §4.6).
func (s *Scanner) scanBlockComment() (Token, *Error) {
	start := s.pos()
	s.advanceRune() // '/'
	s.advanceRune() // '*'

	isJSDoc := s.cur() == '*' && s.peekRune(1) != '*' && s.peekRune(1) != '/'

	var b strings.Builder
	if isJSDoc {
		s.advanceRune() // the second '*'
	}
	for {
		if s.eof() {
			return Token{}, newError(KindStructuralUnterminated, ErrUnterminatedBlockComment, start, "unterminated block comment")
		}
		if s.cur() == '*' && s.peekRune(1) == '/' {
			s.advanceRune()
			s.advanceRune()
			break
		}
		b.WriteRune(s.cur())
		s.advanceRune()
	}

	body := b.String()
	tok := Token{Pos: start, End: s.pos(), CommentBody: body}
	if isJSDoc {
		tok.Type = JSDocComment
		tok.JSDocLines = splitJSDocLines(body)
	} else {
		tok.Type = BlockComment
	}
	return tok, nil
}

func splitJSDocLines(body string) []JSDocLine {
	rawLines := strings.Split(body, "\n")
	lines := make([]JSDocLine, len(rawLines))
	for i, raw := range rawLines {
		lines[i] = splitJSDocLine(strings.TrimSuffix(raw, "\r"))
	}
	return lines
}

// splitJSDocLine decomposes one line of a JSDoc body into literal text,
// `@tag` block tags (only valid as the first non-space token), and `{type}`
// fragments immediately following a tag, plus the known inline tags `@link`
// and `@tutorial` (spec.md §4.6).
func splitJSDocLine(raw string) JSDocLine {
	t := stripJSDocGutter(raw)
	n := len(t)
	var parts []JSDocPart

	i := 0
	if n > 0 && t[0] == '@' {
		j := 1
		for j < n && isTagNameByte(t[j]) {
			j++
		}
		parts = append(parts, JSDocPart{Kind: JSDocTag, Text: t[0:j]})
		i = j
		k := i
		for k < n && t[k] == ' ' {
			k++
		}
		if k < n && t[k] == '{' {
			if end := strings.IndexByte(t[k:], '}'); end >= 0 {
				if k > i {
					parts = append(parts, JSDocPart{Kind: JSDocText, Text: t[i:k]})
				}
				parts = append(parts, JSDocPart{Kind: JSDocType, Text: t[k : k+end+1]})
				i = k + end + 1
			}
		}
	}

	for i < n {
		if t[i] == '{' && isKnownInlineTag(t[i:]) {
			end := strings.IndexByte(t[i:], '}')
			if end < 0 {
				parts = append(parts, JSDocPart{Kind: JSDocTag, Text: t[i:]})
				i = n
				break
			}
			parts = append(parts, JSDocPart{Kind: JSDocTag, Text: t[i : i+end+1]})
			i += end + 1
			continue
		}
		j := i
		for j < n && !(t[j] == '{' && isKnownInlineTag(t[j:])) {
			j++
		}
		if j == i {
			j = i + 1
		}
		parts = append(parts, JSDocPart{Kind: JSDocText, Text: t[i:j]})
		i = j
	}

	return JSDocLine{Parts: parts}
}

func isKnownInlineTag(rest string) bool {
	return strings.HasPrefix(rest, "{@link") || strings.HasPrefix(rest, "{@tutorial")
}

func isTagNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// stripJSDocGutter trims the conventional leading whitespace and a single
// `*` (plus the space after it) that precedes most JSDoc body lines.
func stripJSDocGutter(line string) string {
	t := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(t, "*") && !strings.HasPrefix(t, "*/") {
		t = strings.TrimPrefix(t, "*")
		t = strings.TrimPrefix(t, " ")
	}
	return t
}

// scanShebang consumes a `#!...` line; only valid at byte offset 0
// (spec.md §4.6). The caller is expected to have already checked that.
func (s *Scanner) scanShebang() (Token, *Error) {
	start := s.pos()
	s.advanceRune() // '#'
	s.advanceRune() // '!'
	var b strings.Builder
	for !s.eof() && !isLineTerminator(s.cur()) {
		b.WriteRune(s.cur())
		s.advanceRune()
	}
	// The newline terminating the shebang line is consumed but not emitted
	// as its own token (spec.md §4.6); advanceRune folds a CRLF pair into
	// one step already.
	if isLineTerminator(s.cur()) {
		s.advanceRune()
	}
	return Token{Type: Shebang, Pos: start, End: s.pos(), ShebangCommand: b.String()}, nil
}

// conflictMarkerChars are the four Git conflict-marker characters (spec.md
// §4.6); a marker is exactly 7 of one of them.
var conflictMarkerChars = []byte{'<', '=', '|', '>'}

// detectConflictMarker reports whether the cursor, which must be at the
// start of a line, sits on a 7-character conflict-marker run followed by a
// space or line end.
func (s *Scanner) detectConflictMarker() (byte, bool) {
	for _, c := range conflictMarkerChars {
		if s.cur() != rune(c) {
			continue
		}
		matched := true
		for i := 1; i < 7; i++ {
			if s.peekByte(i) != c {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		after := s.peekByte(7)
		if after == ' ' || after == 0 || after == '\n' || after == '\r' {
			return c, true
		}
	}
	return 0, false
}

func (s *Scanner) scanConflictMarker(marker byte) (Token, *Error) {
	start := s.pos()
	for i := 0; i < 7; i++ {
		s.advanceRune()
	}
	if s.cur() == ' ' {
		s.advanceRune()
	}
	var b strings.Builder
	for !s.eof() && !isLineTerminator(s.cur()) {
		b.WriteRune(s.cur())
		s.advanceRune()
	}
	return Token{Type: ConflictMarker, Pos: start, End: s.pos(), ConflictChar: marker, ConflictRest: b.String()}, nil
}

// scanNewline consumes one or more consecutive line terminators and emits a
// single collapsed Newline token (spec.md §4.6).
func (s *Scanner) scanNewline() (Token, *Error) {
	start := s.pos()
	for !s.eof() && isLineTerminator(s.cur()) {
		s.advanceRune()
	}
	return Token{Type: Newline, Pos: start, End: s.pos()}, nil
}
