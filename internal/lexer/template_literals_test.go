package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateLiteralNoSubstitution(t *testing.T) {
	toks := requireTypes(t, "`hello world`", defaultOptions(),
		TemplateStringStart, TemplateStringChunk, TemplateStringEnd, EOF)
	require.Equal(t, "hello world", toks[1].Text)
}

func TestTemplateLiteralEmpty(t *testing.T) {
	requireTypes(t, "``", defaultOptions(), TemplateStringStart, TemplateStringEnd, EOF)
}

func TestTemplateLiteralSingleSubstitution(t *testing.T) {
	toks := requireTypes(t, "`a${x}b`", defaultOptions(),
		TemplateStringStart, TemplateStringChunk, TemplateExprStart, Ident, TemplateExprEnd,
		TemplateStringChunk, TemplateStringEnd, EOF)
	require.Equal(t, "a", toks[1].Text)
	require.Equal(t, "b", toks[5].Text)
}

func TestTemplateLiteralMultipleSubstitutions(t *testing.T) {
	requireTypes(t, "`${a}-${b}`", defaultOptions(),
		TemplateStringStart,
		TemplateExprStart, Ident, TemplateExprEnd,
		TemplateStringChunk,
		TemplateExprStart, Ident, TemplateExprEnd,
		TemplateStringEnd, EOF)
}

func TestTemplateLiteralNestedExpression(t *testing.T) {
	requireTypes(t, "`${ `${y}` }`", defaultOptions(),
		TemplateStringStart,
		TemplateExprStart,
		TemplateStringStart, TemplateExprStart, Ident, TemplateExprEnd, TemplateStringEnd,
		TemplateExprEnd,
		TemplateStringEnd, EOF)
}

func TestTemplateLiteralNestedBraceInsideExpression(t *testing.T) {
	// A `{...}` object literal nested inside a `${...}` must not be mistaken
	// for the closing brace of the template expression.
	requireTypes(t, "`${ {a:1} }`", defaultOptions(),
		TemplateStringStart,
		TemplateExprStart,
		LBrace, Ident, Colon, Numeric, RBrace,
		TemplateExprEnd,
		TemplateStringEnd, EOF)
}

func TestTemplateLiteralEscapes(t *testing.T) {
	toks := requireTypes(t, "`line1\\nline2`", defaultOptions(),
		TemplateStringStart, TemplateStringChunk, TemplateStringEnd, EOF)
	require.Equal(t, "line1\nline2", toks[1].Text)

	toks = requireTypes(t, "`a\\tb${c}`", defaultOptions(),
		TemplateStringStart, TemplateStringChunk, TemplateExprStart, Ident, TemplateExprEnd, TemplateStringEnd, EOF)
	require.Equal(t, "a\tb", toks[1].Text)
}

func TestTemplateLiteralCRLFNormalizedToLF(t *testing.T) {
	toks := requireTypes(t, "`a\r\nb${c}`", defaultOptions(),
		TemplateStringStart, TemplateStringChunk, TemplateExprStart, Ident, TemplateExprEnd, TemplateStringEnd, EOF)
	require.Equal(t, "a\nb", toks[1].Text)
}

func TestTemplateLiteralUnterminated(t *testing.T) {
	requireError(t, "`abc", defaultOptions(), ErrUnterminatedTemplate)
	requireError(t, "`abc${x}", defaultOptions(), ErrUnterminatedTemplate)
}

func TestTemplateLiteralRegexAllowedAfterExprStart(t *testing.T) {
	requireTypes(t, "`${/x/}`", defaultOptions(),
		TemplateStringStart, TemplateExprStart, Regex, TemplateExprEnd, TemplateStringEnd, EOF)
}
