package lexer

import (
	"github.com/tslex-project/tslex/internal/regexp"
	"github.com/tslex-project/tslex/internal/version"
)

// scanToken produces exactly one token (or EOF) per call, in the dispatch
// order of spec.md §4.8.
func (s *Scanner) scanToken() (Token, *Error) {
	if mode, ok := s.modes.top(); ok {
		switch mode.mode {
		case ModeTemplateLiteral:
			return s.scanTemplateChunk(s.pos())
		case ModeJSXElement:
			if tok, err, handled := s.scanJSXElementMode(); handled {
				return tok, err
			}
		case ModeJSXAttribute:
			if tok, err, handled := s.scanJSXAttributeMode(); handled {
				return tok, err
			}
		case ModeJSXText:
			if tok, err, handled := s.scanJSXTextMode(); handled {
				return tok, err
			}
		}
	}

	if s.offset == 0 && s.cur() == '#' && s.peekRune(1) == '!' {
		return s.scanShebang()
	}

	if err := s.skipWhitespace(); err != nil {
		return Token{}, err
	}
	if tok, handled := s.tryNewline(); handled {
		return tok, nil
	}

	if s.eof() {
		return Token{Type: EOF, Pos: s.pos(), End: s.pos()}, nil
	}

	if marker, ok := s.atLineStartConflictMarker(); ok {
		return s.scanConflictMarker(marker)
	}

	c := s.cur()

	if c == '#' && s.peekRune(1) == '!' {
		return Token{}, newError(KindShebang, ErrShebangNotAtStart, s.pos(), "'#!' is only permitted at the very start of a source file")
	}
	if s.isIdentStart(c) || c == '#' {
		return s.scanIdentifier()
	}
	if (c >= '0' && c <= '9') || (c >= 0xFF10 && c <= 0xFF19) {
		return s.scanNumericLiteral()
	}
	if c == '.' && s.peekRune(1) >= '0' && s.peekRune(1) <= '9' {
		return s.scanNumericLiteral()
	}
	if c == '"' || c == '\'' {
		return s.scanStringLiteral()
	}
	if c == '`' {
		return s.scanTemplateStart()
	}
	if c == '/' {
		return s.scanSlash()
	}
	if c == '<' && s.opts.Variant == version.JSX && s.jsxStartEligible() {
		return s.scanJSXElementStart()
	}
	if c == '@' {
		return s.scanAt()
	}

	return s.scanPunctuator()
}

func (s *Scanner) scanJSXElementMode() (Token, *Error, bool) {
	c := s.cur()
	switch {
	case c == '>':
		tok, err := s.scanJSXElementEnd()
		return tok, err, true
	case c == '/' && s.peekRune(1) == '>':
		tok, err := s.scanJSXSelfClose()
		return tok, err, true
	case c == '=':
		s.advanceRune()
		s.modes.push(ModeJSXAttribute, s.pos(), "")
		tok, err := s.scanToken()
		return tok, err, true
	case isWhitespace(c) || isLineTerminator(c):
		for isWhitespace(s.cur()) || isLineTerminator(s.cur()) {
			s.advanceRune()
		}
		tok, err := s.scanToken()
		return tok, err, true
	case s.isIdentStart(c):
		tok, err := s.scanJSXAttributeName()
		return tok, err, true
	}
	return Token{}, nil, false
}

func (s *Scanner) scanJSXAttributeMode() (Token, *Error, bool) {
	c := s.cur()
	switch {
	case c == '"' || c == '\'':
		tok, err := s.scanJSXAttributeValueQuoted()
		return tok, err, true
	case c == '{':
		tok, err := s.scanJSXAttributeValueStart()
		return tok, err, true
	case isWhitespace(c) || isLineTerminator(c):
		for isWhitespace(s.cur()) || isLineTerminator(s.cur()) {
			s.advanceRune()
		}
		tok, err := s.scanToken()
		return tok, err, true
	}
	return Token{}, nil, false
}

func (s *Scanner) scanJSXTextMode() (Token, *Error, bool) {
	if s.cur() == '<' && s.peekRune(1) == '/' {
		tok, err := s.scanJSXElementClose()
		return tok, err, true
	}
	if s.cur() == '<' {
		tok, err := s.scanJSXElementStart()
		return tok, err, true
	}
	if s.cur() == '{' {
		start := s.pos()
		s.advanceRune()
		s.modes.push(ModeJSXExpression, start, jsxExprChild)
		s.regexAllowed = true
		return Token{Type: TemplateExprStart, Pos: start, End: s.pos()}, nil, true
	}
	tok, err := s.scanJSXText()
	return tok, err, true
}

// skipWhitespace advances past whitespace that is not a line terminator
// (spec.md §4.8 step 2); newline collapsing is handled by tryNewline.
func (s *Scanner) skipWhitespace() *Error {
	for isWhitespace(s.cur()) {
		s.advanceRune()
	}
	return nil
}

func (s *Scanner) tryNewline() (Token, bool) {
	if !isLineTerminator(s.cur()) {
		return Token{}, false
	}
	tok, _ := s.scanNewline()
	return tok, true
}

func (s *Scanner) atLineStartConflictMarker() (byte, bool) {
	if s.column != 0 {
		return 0, false
	}
	return s.detectConflictMarker()
}

// scanAt handles `@`, including the force-identifier one-shot flag a
// decorator sets so the following token is never read as a keyword
// (spec.md §4.8 step 4: "`@readonly` yields an `@` token followed by an
// identifier, not an `@` and a keyword").
func (s *Scanner) scanAt() (Token, *Error) {
	start := s.pos()
	s.advanceRune()
	if s.isIdentStart(s.cur()) {
		s.forceIdentifier = true
	}
	s.regexAllowed = true
	return Token{Type: At, Pos: start, End: s.pos()}, nil
}

// scanSlash disambiguates `/` among line comment, block comment, regex
// literal, `/=`, and plain division (spec.md §4.8 step 4).
func (s *Scanner) scanSlash() (Token, *Error) {
	if s.peekRune(1) == '/' {
		return s.scanLineComment()
	}
	if s.peekRune(1) == '*' {
		return s.scanBlockComment()
	}
	if s.regexAllowed {
		return s.scanRegexLiteral()
	}
	start := s.pos()
	s.advanceRune()
	if s.cur() == '=' {
		s.advanceRune()
		s.regexAllowed = true
		return Token{Type: QuoAssign, Pos: start, End: s.pos()}, nil
	}
	s.regexAllowed = true
	return Token{Type: Quo, Pos: start, End: s.pos()}, nil
}

// scanRegexLiteral consumes the pattern body (honoring `[...]` as a
// character class where `/` is literal) and the trailing flag letters,
// then delegates structural/grammar parsing to internal/regexp (spec.md
// §4.5).
func (s *Scanner) scanRegexLiteral() (Token, *Error) {
	start := s.pos()
	s.advanceRune() // opening '/'

	var pattern []rune
	inClass := false
	for {
		if s.eof() || isLineTerminator(s.cur()) {
			return Token{}, newError(KindStructuralUnterminated, ErrUnterminatedRegex, start, "unterminated regular expression literal")
		}
		c := s.cur()
		if c == '\\' {
			pattern = append(pattern, c)
			s.advanceRune()
			if s.eof() || isLineTerminator(s.cur()) {
				return Token{}, newError(KindStructuralUnterminated, ErrUnterminatedRegex, start, "unterminated regular expression literal")
			}
			pattern = append(pattern, s.cur())
			s.advanceRune()
			continue
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			s.advanceRune()
			break
		}
		pattern = append(pattern, c)
		s.advanceRune()
	}

	var flags []rune
	for s.isIdentPart(s.cur()) {
		flags = append(flags, s.cur())
		s.advanceRune()
	}

	ast, parsedFlags, rerr := regexp.Parse(string(pattern), string(flags), start.Offset+1, s.opts.Lang)
	if rerr != nil {
		return Token{}, newError(regexErrorKind(rerr), regexErrorCode(rerr), start, "%s", rerr.Message)
	}
	s.regexAllowed = false
	return Token{
		Type: Regex, Pos: start, End: s.pos(),
		RegexAST: ast, RegexFlags: parsedFlags,
	}, nil
}

// regexErrorKind/regexErrorCode translate internal/regexp's error taxonomy
// into the lexer's own (spec.md §7): unterminated literals and classes map to
// KindStructuralUnterminated, flag errors to KindRegexFlag, and every other
// regex error to KindEscape; the reported code carries the finer distinction.
func regexErrorKind(e *regexp.Error) ErrorKind {
	switch e.Code {
	case regexp.ErrUnterminatedRegularExpressionLiteral, regexp.ErrUnterminatedCharacterClass:
		return KindStructuralUnterminated
	case regexp.ErrRegexFlagUnavailable, regexp.ErrConflictingRegexFlags, regexp.ErrDuplicateRegexFlag:
		return KindRegexFlag
	default:
		return KindEscape
	}
}

func regexErrorCode(e *regexp.Error) ErrorCode {
	switch e.Code {
	case regexp.ErrUnterminatedRegularExpressionLiteral:
		return ErrUnterminatedRegex
	case regexp.ErrUnterminatedCharacterClass:
		return ErrUnterminatedCharacterClass
	default:
		return ErrorCode(e.TSCode)
	}
}
