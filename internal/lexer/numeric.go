package lexer

import (
	"math/big"
	"strings"

	"github.com/tslex-project/tslex/internal/source"
)

// digitValue maps an ASCII or fullwidth digit/hex-letter to its numeric
// value under base, or -1 if r does not belong to base. Fullwidth digits
// (U+FF10-FF19) and fullwidth hex letters (U+FF21-FF26, U+FF41-FF46) are
// accepted equivalently to their ASCII forms (spec.md §4.3).
func digitValue(r rune, base NumberBase) int {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 0xFF10 && r <= 0xFF19:
		v = int(r - 0xFF10)
	case r >= 'a' && r <= 'f':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		v = int(r-'A') + 10
	case r >= 0xFF41 && r <= 0xFF46:
		v = int(r-0xFF41) + 10
	case r >= 0xFF21 && r <= 0xFF26:
		v = int(r-0xFF21) + 10
	default:
		return -1
	}
	maxDigit := map[NumberBase]int{Binary: 2, Octal: 8, Decimal: 10, Hex: 16}[base]
	if v >= maxDigit {
		return -1
	}
	return v
}

// asciiDigit normalizes a fullwidth digit/hex-letter to its ASCII form, for
// feeding into big.Int.SetString and FloatText.
func asciiDigit(r rune) rune {
	switch {
	case r >= 0xFF10 && r <= 0xFF19:
		return '0' + (r - 0xFF10)
	case r >= 0xFF41 && r <= 0xFF46:
		return 'a' + (r - 0xFF41)
	case r >= 0xFF21 && r <= 0xFF26:
		return 'A' + (r - 0xFF21)
	default:
		return r
	}
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// scanDigitRun consumes a run of base digits with `_` separators (spec.md
// §4.3: a separator may not lead, trail, double up, or sit next to the
// radix prefix/decimal point/exponent marker/BigInt suffix). justAfterPrefix
// is true immediately after a radix prefix or decimal point, where a leading
// separator is also rejected. Returns the normalized ASCII digit text.
func (s *Scanner) scanDigitRun(base NumberBase, justAfterPrefix bool) (string, *Error) {
	var b strings.Builder
	sawDigit := false
	lastWasSeparator := false
	for {
		r := s.cur()
		if r == '_' {
			pos := s.pos()
			if !sawDigit || justAfterPrefix {
				return "", newError(KindNumeric, ErrNumericSeparatorNotAllowed, pos, "numeric separator is not allowed here")
			}
			if lastWasSeparator {
				return "", newError(KindNumeric, ErrMultipleNumericSeparators, pos, "multiple consecutive numeric separators are not allowed")
			}
			s.advanceRune()
			lastWasSeparator = true
			justAfterPrefix = false
			continue
		}
		if digitValue(r, base) < 0 {
			break
		}
		b.WriteRune(asciiDigit(r))
		s.advanceRune()
		sawDigit = true
		lastWasSeparator = false
		justAfterPrefix = false
	}
	if lastWasSeparator {
		return "", newError(KindNumeric, ErrNumericSeparatorNotAllowed, s.pos(), "numeric separator is not allowed here")
	}
	return b.String(), nil
}

// tryBigIntSuffix consumes a trailing `n` only if it immediately follows the
// last significant digit with no separator in between (spec.md §4.3).
func (s *Scanner) tryBigIntSuffix() bool {
	if s.cur() == 'n' {
		s.advanceRune()
		return true
	}
	return false
}

// scanNumericLiteral dispatches on the prefix at the cursor (spec.md §4.3
// entry points: decimal, hex, binary, octal).
func (s *Scanner) scanNumericLiteral() (Token, *Error) {
	start := s.pos()

	if s.cur() == '0' && (s.peekRune(1) == 'x' || s.peekRune(1) == 'X') {
		return s.scanRadixLiteral(start, Hex)
	}
	if s.cur() == '0' && (s.peekRune(1) == 'b' || s.peekRune(1) == 'B') {
		return s.scanRadixLiteral(start, Binary)
	}
	if s.cur() == '0' && (s.peekRune(1) == 'o' || s.peekRune(1) == 'O') {
		return s.scanRadixLiteral(start, Octal)
	}
	if s.cur() == '0' && isOctalDigit(s.peekRune(1)) && s.looksLikeLegacyOctal() {
		return s.scanLegacyOctal(start)
	}
	return s.scanDecimalLiteral(start)
}

// looksLikeLegacyOctal peeks (without consuming) the run of ASCII decimal
// digits following the leading `0`: it is legacy octal only if every digit
// in that run is 0-7 (spec.md §4.3: "if any is 8 or 9, the number is treated
// as decimal").
func (s *Scanner) looksLikeLegacyOctal() bool {
	offset := 1
	count := 0
	allOctal := true
	for {
		c := s.peekByte(offset)
		if c < '0' || c > '9' {
			break
		}
		if c > '7' {
			allOctal = false
		}
		count++
		offset++
	}
	return count > 0 && allOctal
}

func (s *Scanner) scanLegacyOctal(start source.Position) (Token, *Error) {
	s.advanceRune() // leading '0'
	var b strings.Builder
	for isOctalDigit(s.cur()) {
		b.WriteRune(s.cur())
		s.advanceRune()
	}
	i := new(big.Int)
	i.SetString(b.String(), 8)
	s.regexAllowed = false
	return Token{
		Type: Numeric, Pos: start, End: s.pos(),
		Number: NumberValue{Base: Octal, Int: i},
	}, nil
}

func (s *Scanner) scanRadixLiteral(start source.Position, base NumberBase) (Token, *Error) {
	s.advanceRune() // '0'
	s.advanceRune() // x/b/o
	digits, err := s.scanDigitRun(base, true)
	if err != nil {
		return Token{}, err
	}
	if digits == "" {
		return Token{}, newError(KindNumeric, ErrInvalidNumericLiteral, start, "expected at least one digit after radix prefix")
	}
	isBig := s.tryBigIntSuffix()
	i := new(big.Int)
	i.SetString(digits, radixOf(base))
	s.regexAllowed = false
	return Token{
		Type: Numeric, Pos: start, End: s.pos(),
		Number: NumberValue{Base: base, Int: i, IsBigInt: isBig},
	}, nil
}

// scanDecimalLiteral handles the general decimal/float/exponent grammar
// (spec.md §4.3): optional integer part, optional fraction, optional
// exponent, optional BigInt suffix (only on a plain integer).
func (s *Scanner) scanDecimalLiteral(start source.Position) (Token, *Error) {
	intPart, err := s.scanDigitRun(Decimal, false)
	if err != nil {
		return Token{}, err
	}

	isFloat := false
	var frac string
	if s.cur() == '.' {
		isFloat = true
		s.advanceRune()
		frac, err = s.scanDigitRun(Decimal, true)
		if err != nil {
			return Token{}, err
		}
		if s.cur() == '.' {
			return Token{}, newError(KindNumeric, ErrInvalidNumericLiteral, s.pos(), "a numeric literal may not contain two decimal points")
		}
	}

	hasExponent := false
	exponentUpper := false
	var expSign, expDigits string
	if s.cur() == 'e' || s.cur() == 'E' {
		exponentUpper = s.cur() == 'E'
		hasExponent = true
		s.advanceRune()
		if s.cur() == '+' || s.cur() == '-' {
			expSign = string(s.cur())
			s.advanceRune()
		}
		expDigits, err = s.scanDigitRun(Decimal, true)
		if err != nil {
			return Token{}, err
		}
		if expDigits == "" {
			return Token{}, newError(KindNumeric, ErrInvalidNumericLiteral, s.pos(), "exponent must have at least one digit")
		}
	}

	if !isFloat && !hasExponent {
		isBig := s.tryBigIntSuffix()
		i := new(big.Int)
		if intPart == "" {
			intPart = "0"
		}
		i.SetString(intPart, 10)
		s.regexAllowed = false
		return Token{
			Type: Numeric, Pos: start, End: s.pos(),
			Number: NumberValue{Base: Decimal, Int: i, IsBigInt: isBig},
		}, nil
	}

	var text strings.Builder
	if intPart == "" {
		text.WriteByte('0')
	} else {
		text.WriteString(intPart)
	}
	if isFloat {
		text.WriteByte('.')
		text.WriteString(frac)
	}
	if hasExponent {
		if exponentUpper {
			text.WriteByte('E')
		} else {
			text.WriteByte('e')
		}
		text.WriteString(expSign)
		text.WriteString(expDigits)
	}
	s.regexAllowed = false
	return Token{
		Type: Numeric, Pos: start, End: s.pos(),
		Number: NumberValue{
			IsFloat: true, Base: Decimal, FloatText: text.String(),
			HasExponent: hasExponent, ExponentUpper: exponentUpper,
		},
	}, nil
}
