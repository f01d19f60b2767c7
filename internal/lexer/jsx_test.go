package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSXSimpleElement(t *testing.T) {
	toks := requireTypes(t, "<div></div>", jsxOptions(),
		JSXElementStart, JSXElementEnd, JSXElementClose, EOF)
	require.Equal(t, "div", toks[0].Name)
	require.Equal(t, "div", toks[2].Name)
}

func TestJSXSelfClosingElement(t *testing.T) {
	requireTypes(t, "<br/>", jsxOptions(), JSXElementStart, JSXSelfClose, EOF)
}

func TestJSXElementWithText(t *testing.T) {
	toks := requireTypes(t, "<p>hello</p>", jsxOptions(),
		JSXElementStart, JSXElementEnd, JSXText, JSXElementClose, EOF)
	require.Equal(t, "hello", toks[2].Text)
}

func TestJSXElementWithAttribute(t *testing.T) {
	toks := requireTypes(t, `<a href="x">link</a>`, jsxOptions(),
		JSXElementStart, JSXAttributeName, JSXAttributeValue, JSXElementEnd,
		JSXText, JSXElementClose, EOF)
	require.Equal(t, "href", toks[1].Name)
	require.Equal(t, "x", toks[2].Text)
}

func TestJSXAttributeValueExpression(t *testing.T) {
	requireTypes(t, "<a href={url}>link</a>", jsxOptions(),
		JSXElementStart, JSXAttributeName, JSXAttributeValueStart, Ident, JSXAttributeValueEnd,
		JSXElementEnd, JSXText, JSXElementClose, EOF)
}

func TestJSXExpressionChild(t *testing.T) {
	requireTypes(t, "<p>{value}</p>", jsxOptions(),
		JSXElementStart, JSXElementEnd, TemplateExprStart, Ident, TemplateExprEnd, JSXElementClose, EOF)
}

func TestJSXNestedElements(t *testing.T) {
	requireTypes(t, "<div><span></span></div>", jsxOptions(),
		JSXElementStart, JSXElementEnd,
		JSXElementStart, JSXElementEnd, JSXElementClose,
		JSXElementClose, EOF)
}

func TestJSXFragment(t *testing.T) {
	requireTypes(t, "<></>", jsxOptions(), JSXElementStart, JSXElementEnd, JSXElementClose, EOF)
}

func TestJSXMismatchedClosingTagErrors(t *testing.T) {
	requireError(t, "<div></span>", jsxOptions(), ErrJSXNoClosingTag)
}

func TestJSXAttributeEntityDecoding(t *testing.T) {
	toks := requireTypes(t, `<a title="A &amp; B">x</a>`, jsxOptions(),
		JSXElementStart, JSXAttributeName, JSXAttributeValue, JSXElementEnd, JSXText, JSXElementClose, EOF)
	require.Equal(t, "A & B", toks[2].Text)
}

func TestJSXTextEntityDecoding(t *testing.T) {
	toks := requireTypes(t, "<p>A &lt; B</p>", jsxOptions(),
		JSXElementStart, JSXElementEnd, JSXText, JSXElementClose, EOF)
	require.Equal(t, "A < B", toks[2].Text)
}

func TestJSXNotActivatedOutsideJSXVariant(t *testing.T) {
	// Under the plain TypeScript variant, `<` is always relational/generic
	// punctuation, never a JSX element start.
	requireTypes(t, "a < b", defaultOptions(), Ident, Lss, Ident, EOF)
}

func TestJSXRegexNotAllowedAfterElementEnd(t *testing.T) {
	requireTypes(t, "<div>/x/</div>", jsxOptions(),
		JSXElementStart, JSXElementEnd, JSXText, JSXElementClose, EOF)
}
