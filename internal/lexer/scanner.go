package lexer

import (
	"github.com/tslex-project/tslex/internal/source"
	"github.com/tslex-project/tslex/internal/unicodetables"
	"github.com/tslex-project/tslex/internal/version"
)

// Options configures a Scanner (spec.md §6 External Interfaces).
type Options struct {
	Lang              version.Language
	Variant           version.Variant
	AllowObsoleteUTF8 bool // tolerate pre-RFC-3629 5/6-byte UTF-8 sequences
}

// Scanner is the byte-cursor wrapper around internal/source.Buffer that
// C2-C8 share: running position, the mode stack, and the one-shot flags
// the top-level dispatch consults (spec.md §4.8).
type Scanner struct {
	buf  *source.Buffer
	file *source.File
	opts Options

	offset int
	line   int
	column int

	modes modeStack

	regexAllowed    bool
	forceIdentifier bool
}

// NewScanner wraps src for file under opts.
func NewScanner(src source.ByteSource, file *source.File, opts Options) *Scanner {
	return &Scanner{
		buf:          source.NewBuffer(src),
		file:         file,
		opts:         opts,
		line:         1,
		regexAllowed: true,
	}
}

// NewScannerFromString is the common case for tests.
func NewScannerFromString(src string, opts Options) *Scanner {
	return &Scanner{
		buf:          source.NewBufferFromString(src),
		file:         source.NewFile("<string>"),
		opts:         opts,
		line:         1,
		regexAllowed: true,
	}
}

func (s *Scanner) idProfile() unicodetables.Profile {
	switch {
	case s.opts.Lang == version.ES3:
		return unicodetables.ES3
	case s.opts.Lang.AtLeast(version.ES2015):
		return unicodetables.ES2015Plus
	default:
		return unicodetables.ES5
	}
}

func (s *Scanner) pos() source.Position {
	return source.Position{File: s.file, Line: s.line, Column: s.column, Offset: s.offset}
}

// cur decodes the code point at the cursor, or -1 at end-of-stream.
func (s *Scanner) cur() rune {
	r, size := s.buf.PeekAt(0, s.opts.AllowObsoleteUTF8)
	if size == 0 {
		return -1
	}
	return r
}

func (s *Scanner) curSize() int {
	_, size := s.buf.PeekAt(0, s.opts.AllowObsoleteUTF8)
	return size
}

// peekRune decodes the code point starting n bytes ahead of the cursor.
func (s *Scanner) peekRune(n int) rune {
	r, size := s.buf.PeekAt(n, s.opts.AllowObsoleteUTF8)
	if size == 0 {
		return -1
	}
	return r
}

// peekByte returns the raw byte n positions ahead of the cursor, for fixed
// ASCII lookahead (every TypeScript punctuator and delimiter is ASCII).
func (s *Scanner) peekByte(n int) byte {
	return s.buf.PeekByte(n)
}

func (s *Scanner) eof() bool {
	return s.curSize() == 0
}

// advanceRune consumes exactly one code point, updating offset/line/column.
// A CRLF pair is normalized to a single line increment (spec.md §4.1).
func (s *Scanner) advanceRune() rune {
	r, size := s.buf.PeekAt(0, s.opts.AllowObsoleteUTF8)
	if size == 0 {
		return -1
	}
	s.buf.Advance(size)
	s.offset += size

	switch r {
	case '\n':
		s.line++
		s.column = 0
	case '\r':
		s.line++
		s.column = 0
		if nr, nsize := s.buf.PeekAt(0, s.opts.AllowObsoleteUTF8); nr == '\n' {
			s.buf.Advance(nsize)
			s.offset += nsize
		}
	default:
		s.column++
	}
	return r
}

// advanceBytes consumes n raw bytes of pure-ASCII punctuator text.
func (s *Scanner) advanceBytes(n int) {
	for i := 0; i < n; i++ {
		s.advanceRune()
	}
}


func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r'
}

// isWhitespace recognizes the full Unicode space set from spec.md §4.8
// (ASCII tab/VT/FF/space, NBSP, every U+2000-U+200B space, U+202F,
// U+205F, U+3000, U+FEFF), excluding line terminators -- those collapse
// into a newline token instead of being silently skipped.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', 0x00A0, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200B
}
