package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineComment(t *testing.T) {
	toks := requireTypes(t, "// hello\nx", defaultOptions(), LineComment, Newline, Ident, EOF)
	require.Equal(t, " hello", toks[0].CommentBody)
}

func TestLineCommentTrailingWhitespaceTrimmed(t *testing.T) {
	toks := requireTypes(t, "//hi   \nx", defaultOptions(), LineComment, Newline, Ident, EOF)
	require.Equal(t, "hi", toks[0].CommentBody)
}

func TestLineCommentAtEOF(t *testing.T) {
	requireTypes(t, "// no trailing newline", defaultOptions(), LineComment, EOF)
}

func TestBlockComment(t *testing.T) {
	toks := requireTypes(t, "/* a block */x", defaultOptions(), BlockComment, Ident, EOF)
	require.Equal(t, " a block ", toks[0].CommentBody)
}

func TestBlockCommentUnterminated(t *testing.T) {
	requireError(t, "/* oops", defaultOptions(), ErrUnterminatedBlockComment)
}

func TestBlockCommentSpanningLines(t *testing.T) {
	requireTypes(t, "/* line1\nline2 */x", defaultOptions(), BlockComment, Ident, EOF)
}

func TestJSDocCommentRecognizedByExactlyTwoStars(t *testing.T) {
	requireTypes(t, "/** jsdoc */x", defaultOptions(), JSDocComment, Ident, EOF)
	// /*** ... is NOT a JSDoc comment -- a plain block comment instead.
	requireTypes(t, "/*** not jsdoc */x", defaultOptions(), BlockComment, Ident, EOF)
}

func TestJSDocCommentTags(t *testing.T) {
	src := "/**\n * @param {string} name the name\n * plain text\n */x"
	toks := requireTypes(t, src, defaultOptions(), JSDocComment, Ident, EOF)
	lines := toks[0].JSDocLines
	require.Len(t, lines, 4)

	// Line 1 ("@param {string} name the name") decomposes into a leading
	// block tag followed somewhere by its `{type}` fragment.
	parts := lines[1].Parts
	require.NotEmpty(t, parts)
	require.Equal(t, JSDocTag, parts[0].Kind)
	require.Equal(t, "@param", parts[0].Text)

	var sawType bool
	for _, p := range parts[1:] {
		if p.Kind == JSDocType {
			require.Equal(t, "{string}", p.Text)
			sawType = true
		}
	}
	require.True(t, sawType)
}

func TestJSDocInlineLinkTag(t *testing.T) {
	src := "/** see {@link Foo} for details */x"
	toks := requireTypes(t, src, defaultOptions(), JSDocComment, Ident, EOF)
	var sawInlineTag bool
	for _, part := range toks[0].JSDocLines[0].Parts {
		if part.Kind == JSDocTag && part.Text == "{@link Foo}" {
			sawInlineTag = true
		}
	}
	require.True(t, sawInlineTag)
}

func TestConflictMarkers(t *testing.T) {
	src := "<<<<<<< HEAD\na\n=======\nb\n>>>>>>> branch\n"
	toks, err := lexAll(src, defaultOptions())
	require.NoError(t, err)

	var markers []Token
	for _, tok := range toks {
		if tok.Type == ConflictMarker {
			markers = append(markers, tok)
		}
	}
	require.Len(t, markers, 3)
	require.Equal(t, byte('<'), markers[0].ConflictChar)
	require.Equal(t, "HEAD", markers[0].ConflictRest)
	require.Equal(t, byte('='), markers[1].ConflictChar)
	require.Equal(t, byte('>'), markers[2].ConflictChar)
	require.Equal(t, "branch", markers[2].ConflictRest)
}

func TestConflictMarkerOnlyAtLineStart(t *testing.T) {
	// A run of `=` that isn't at column 0 is ordinary (maximal-munch)
	// punctuator text, not a conflict marker.
	requireTypes(t, "a =======b", defaultOptions(),
		Ident, EqlStrict, EqlStrict, Assign, Ident, EOF)
}

func TestNewlineCollapsesConsecutiveLineTerminators(t *testing.T) {
	requireTypes(t, "a\n\n\nb", defaultOptions(), Ident, Newline, Ident, EOF)
	requireTypes(t, "a\r\n\r\nb", defaultOptions(), Ident, Newline, Ident, EOF)
}
