package regexp

import (
	"fmt"
	"strings"
)

// Render re-renders a RegularExpression's AST back into `pattern` text
// (without the delimiting slashes). It exists for the round-trip property
// in spec.md §8 ("parse a regex literal → render its AST → re-parse → the
// two ASTs are structurally equal") and is not required to reproduce the
// original source text byte-for-byte — only to produce *a* pattern that
// re-parses to an equal AST.
func Render(re *RegularExpression) string {
	var b strings.Builder
	renderDisjunction(&b, re.Root)
	return b.String()
}

func renderDisjunction(b *strings.Builder, d Disjunction) {
	for i, alt := range d.Alternatives {
		if i > 0 {
			b.WriteByte('|')
		}
		renderAlternative(b, alt)
	}
}

func renderAlternative(b *strings.Builder, a Alternative) {
	for _, t := range a.Terms {
		renderTerm(b, t)
	}
}

func renderTerm(b *strings.Builder, t Term) {
	if t.IsAssertion {
		renderAssertion(b, t.Assertion)
		return
	}
	renderAtom(b, t.Atom)
	if t.Quantifier != nil {
		renderQuantifier(b, *t.Quantifier)
	}
}

func renderAssertion(b *strings.Builder, a Assertion) {
	switch a.Kind {
	case AssertStartOfLine:
		b.WriteByte('^')
	case AssertEndOfLine:
		b.WriteByte('$')
	case AssertWordBoundary:
		b.WriteString(`\b`)
	case AssertNotWordBoundary:
		b.WriteString(`\B`)
	}
}

func renderAtom(b *strings.Builder, a Atom) {
	switch a.Kind {
	case AtomCharacter:
		renderLiteralChar(b, a.Character)
	case AtomAny:
		b.WriteByte('.')
	case AtomBuiltinClass:
		b.WriteString(renderBuiltinClass(a.Builtin))
	case AtomCharacterClass:
		renderCharacterClass(b, a.Class)
	case AtomGroup:
		renderGroup(b, a.Group)
	}
}

func renderLiteralChar(b *strings.Builder, r rune) {
	switch r {
	case '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|', '^', '$', '\\', '/':
		b.WriteByte('\\')
		b.WriteRune(r)
	default:
		b.WriteRune(r)
	}
}

func renderBuiltinClass(c BuiltinClass) string {
	switch c {
	case BuiltinWord:
		return `\w`
	case BuiltinNotWord:
		return `\W`
	case BuiltinDigit:
		return `\d`
	case BuiltinNotDigit:
		return `\D`
	case BuiltinSpace:
		return `\s`
	case BuiltinNotSpace:
		return `\S`
	default:
		return ""
	}
}

func renderCharacterClass(b *strings.Builder, c *CharacterClass) {
	b.WriteByte('[')
	if c.Negated {
		b.WriteByte('^')
	}
	for _, ch := range c.Chars {
		renderClassChar(b, ch)
	}
	for _, r := range c.Ranges {
		renderClassChar(b, r.Lo)
		b.WriteByte('-')
		renderClassChar(b, r.Hi)
	}
	b.WriteByte(']')
}

func renderClassChar(b *strings.Builder, r rune) {
	if r == ']' || r == '\\' || r == '^' || r == '-' {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

func renderGroup(b *strings.Builder, g *Group) {
	switch g.Kind {
	case GroupCapturing:
		if g.Name != "" {
			fmt.Fprintf(b, "(?<%s>", g.Name)
		} else {
			b.WriteByte('(')
		}
	case GroupNonCapturing:
		b.WriteString("(?:")
	case GroupLookaheadPositive:
		b.WriteString("(?=")
	case GroupLookaheadNegative:
		b.WriteString("(?!")
	case GroupLookbehindPositive:
		b.WriteString("(?<=")
	case GroupLookbehindNegative:
		b.WriteString("(?<!")
	}
	renderDisjunction(b, g.Body)
	b.WriteByte(')')
}

func renderQuantifier(b *strings.Builder, q Quantifier) {
	switch q.Kind {
	case QuantifierStar:
		b.WriteByte('*')
	case QuantifierPlus:
		b.WriteByte('+')
	case QuantifierQuestion:
		b.WriteByte('?')
	case QuantifierRange:
		switch {
		case q.MaxUnbounded:
			fmt.Fprintf(b, "{%d,}", q.Min)
		case q.Min == q.Max:
			fmt.Fprintf(b, "{%d}", q.Min)
		default:
			fmt.Fprintf(b, "{%d,%d}", q.Min, q.Max)
		}
	}
	if q.Lazy {
		b.WriteByte('?')
	}
}
