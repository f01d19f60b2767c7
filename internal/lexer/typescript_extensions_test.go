package lexer

import "testing"

func TestTypeAnnotationTokens(t *testing.T) {
	requireTypes(t, "let x: number = 1;", defaultOptions(),
		Let, Ident, Colon, NumberKeyword, Assign, Numeric, Semicolon, EOF)
}

func TestInterfaceDeclarationTokens(t *testing.T) {
	requireTypes(t, "interface Foo {\n  readonly name: string;\n}", defaultOptions(),
		Interface, Ident, LBrace, Newline,
		Readonly, Ident, Colon, StringKeyword, Semicolon, Newline,
		RBrace, EOF)
}

func TestSatisfiesOperator(t *testing.T) {
	requireTypes(t, "const x = {} satisfies Config;", defaultOptions(),
		Const, Ident, Assign, LBrace, RBrace, Satisfies, Ident, Semicolon, EOF)
}

func TestAsCastExpression(t *testing.T) {
	requireTypes(t, "x as unknown as string", defaultOptions(),
		Ident, As, Unknown, As, StringKeyword, EOF)
}

func TestOptionalChainingAndNullishCoalescing(t *testing.T) {
	requireTypes(t, "a?.b ?? c", defaultOptions(), Ident, Optional, Ident, Nullish, Ident, EOF)
}

func TestNamespaceAndModuleKeywords(t *testing.T) {
	requireTypes(t, "namespace NS {}", defaultOptions(), Namespace, Ident, LBrace, RBrace, EOF)
	requireTypes(t, "declare module \"m\" {}", defaultOptions(), Declare, Module, String, LBrace, RBrace, EOF)
}

func TestGenericArrowFunctionPunctuation(t *testing.T) {
	requireTypes(t, "const f = <T>(x: T): T => x;", defaultOptions(),
		Const, Ident, Assign, Lss, Ident, Gtr, LParen, Ident, Colon, Ident, RParen,
		Colon, Ident, Arrow, Ident, Semicolon, EOF)
}

func TestArrowFunctionWithRegexBody(t *testing.T) {
	requireTypes(t, "const f = () => /x/;", defaultOptions(),
		Const, Ident, Assign, LParen, RParen, Arrow, Regex, Semicolon, EOF)
}

func TestUsingDeclaration(t *testing.T) {
	requireTypes(t, "using resource = acquire();", defaultOptions(),
		Using, Ident, Assign, Ident, LParen, RParen, Semicolon, EOF)
}
