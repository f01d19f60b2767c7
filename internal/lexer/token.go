package lexer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/tslex-project/tslex/internal/regexp"
	"github.com/tslex-project/tslex/internal/source"
)

// TokenType discriminates the tagged-union Token (spec.md §3 "Token",
// spec.md §4.9 component C9: "a closed set of variants discriminates on a
// type tag").
type TokenType int

const (
	EOF TokenType = iota
	Newline
	Shebang
	ConflictMarker

	LineComment
	BlockComment
	JSDocComment

	Ident
	PrivateIdent
	Numeric
	String
	Regex

	TemplateStringStart
	TemplateStringChunk
	TemplateStringEnd
	TemplateExprStart
	TemplateExprEnd

	JSXElementStart
	JSXElementEnd
	JSXSelfClose
	JSXElementClose
	JSXAttributeName
	JSXAttributeValue
	JSXAttributeValueStart
	JSXAttributeValueEnd
	JSXText

	// Keywords
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Enum
	Export
	Extends
	False
	Finally
	For
	Function
	If
	Import
	In
	Instanceof
	New
	Null
	Return
	Super
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	While
	With
	Yield
	Let
	Static
	Async
	Await
	As
	Declare
	Interface
	Module
	Namespace
	Of
	Package
	Private
	Protected
	Public
	Readonly
	Require
	TypeKeyword
	From
	Satisfies
	Implements
	Any
	Boolean
	Constructor
	Get
	Set
	Never
	Unknown
	StringKeyword
	NumberKeyword
	Symbol
	Undefined
	Using

	// Punctuators
	Add
	Sub
	Mul
	Quo
	Rem
	And
	Or
	Xor
	BNot
	Shl
	Shr
	ShrUnsigned
	Power
	AddAssign
	SubAssign
	MulAssign
	QuoAssign
	RemAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
	ShrUnsignedAssign
	PowerAssign
	Land
	Lor
	Inc
	Dec
	Nullish
	NullishAssign
	LandAssign
	LorAssign
	Eql
	Lss
	Gtr
	Assign
	Not
	Neq
	Leq
	Geq
	EqlStrict
	NeqStrict
	LParen
	LBrack
	LBrace
	Comma
	Period
	RParen
	RBrack
	RBrace
	Semicolon
	Colon
	Question
	Arrow
	Ellipsis
	Optional
	At
	Tilde
)

// Token is the tagged-union payload carried by every emitted value. Exactly
// the fields relevant to Type are meaningful; the rest are zero. This
// mirrors the project's sum-type convention elsewhere (internal/regexp):
// a discriminator field plus one flat struct, not an interface hierarchy.
type Token struct {
	Type TokenType
	Pos  source.Position
	End  source.Position
	Raw  string

	// Ident / PrivateIdent
	Name string

	// Numeric
	Number NumberValue

	// String / template chunk / JSX attribute value / JSX text
	Text string

	// Comment
	CommentBody string
	JSDocLines  []JSDocLine

	// Shebang
	ShebangCommand string

	// ConflictMarker
	ConflictChar byte
	ConflictRest string

	// Regex
	RegexAST   *regexp.RegularExpression
	RegexFlags regexp.Flags

	// JSX
	JSXAttrQuote byte
}

// NumberBase is the radix a numeric literal was written in.
type NumberBase int

const (
	Decimal NumberBase = iota
	Binary
	Octal
	Hex
)

// NumberValue is the payload for a Numeric token: either an integer (with
// base and a BigInt flag) or a float (optionally with an exponent),
// per spec.md §3 "constant value ... integer (with base ... and size) OR
// float (optionally with a scientific exponent and upper-case-E flag)".
type NumberValue struct {
	IsFloat       bool
	Base          NumberBase
	Int           *big.Int // valid when !IsFloat
	IsBigInt      bool
	FloatText     string // normalized digits, no separators, no "n" suffix
	HasExponent   bool
	ExponentUpper bool
}

// JSDocLine is one decomposed line of a `/** ... */` comment (spec.md §4.6).
type JSDocLine struct {
	Parts []JSDocPart
}

// JSDocPartKind discriminates a JSDocPart.
type JSDocPartKind int

const (
	JSDocText JSDocPartKind = iota
	JSDocTag
	JSDocType
)

// JSDocPart is one literal-text / @tag / {type} fragment of a JSDoc line.
type JSDocPart struct {
	Kind JSDocPartKind
	Text string
}

func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// render produces the lexically reconstructable text for a token, used by
// the round-trip property in spec.md §8 and by MarshalJSON below.
func (t Token) render() string {
	switch t.Type {
	case Ident, PrivateIdent:
		return t.Name
	case String:
		return jsonQuote(t.Text)
	case Regex:
		return "/" + regexp.Render(t.RegexAST) + "/" + renderRegexFlags(t.RegexFlags)
	case LineComment:
		return "//" + t.CommentBody
	case BlockComment:
		return "/*" + t.CommentBody + "*/"
	case JSDocComment:
		return "/**" + t.CommentBody + "*/"
	case Newline:
		return "\n"
	case Shebang:
		return "#!" + t.ShebangCommand
	case ConflictMarker:
		return strings.Repeat(string(t.ConflictChar), 7) + " " + t.ConflictRest
	case Numeric:
		return t.Number.render()
	case TemplateStringChunk:
		return t.Text
	case JSXText, JSXAttributeValue:
		esc := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;").Replace(t.Text)
		if t.Type == JSXAttributeValue {
			return string(t.JSXAttrQuote) + esc + string(t.JSXAttrQuote)
		}
		return esc
	default:
		if s, ok := tokenLexemes[t.Type]; ok {
			return s
		}
		return t.Raw
	}
}

func (n NumberValue) render() string {
	var prefix string
	switch n.Base {
	case Binary:
		prefix = "0b"
	case Octal:
		prefix = "0o"
	case Hex:
		prefix = "0x"
	}
	var body string
	if n.IsFloat {
		body = n.FloatText
	} else if n.Int != nil {
		if n.Base == Decimal {
			body = n.Int.String()
		} else {
			body = n.Int.Text(radixOf(n.Base))
		}
	}
	suffix := ""
	if n.IsBigInt {
		suffix = "n"
	}
	return prefix + body + suffix
}

func radixOf(b NumberBase) int {
	switch b {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hex:
		return 16
	default:
		return 10
	}
}

func renderRegexFlags(f regexp.Flags) string {
	var b strings.Builder
	if f.Global {
		b.WriteByte('g')
	}
	if f.IgnoreCase {
		b.WriteByte('i')
	}
	if f.Multiline {
		b.WriteByte('m')
	}
	if f.DotAll {
		b.WriteByte('s')
	}
	if f.Unicode {
		b.WriteByte('u')
	}
	if f.Sticky {
		b.WriteByte('y')
	}
	if f.UnicodeSets {
		b.WriteByte('v')
	}
	return b.String()
}

func jsonQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// MarshalJSON renders a token the way downstream reporters expect (spec.md
// §4.9): strings/regex/comments use JSON-style quoting, JSX text/attribute
// values are XML-escaped, and numeric constants render in their lexical
// base with any BigInt suffix or exponent.
func (t Token) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `{"type":%q,"pos":{"line":%d,"column":%d,"offset":%d},"text":%s}`,
		t.Type.String(), t.Pos.Line, t.Pos.Column, t.Pos.Offset, jsonQuote(t.render()))
	return []byte(b.String()), nil
}
