package lexer

// tokenTypeNames is consulted by TokenType.String, mainly for error
// messages and the JSON token rendering's "type" field.
var tokenTypeNames = map[TokenType]string{
	EOF:            "EOF",
	Newline:        "NEWLINE",
	Shebang:        "SHEBANG",
	ConflictMarker: "CONFLICT_MARKER",
	LineComment:    "LINE_COMMENT",
	BlockComment:   "BLOCK_COMMENT",
	JSDocComment:   "JSDOC_COMMENT",
	Ident:          "IDENT",
	PrivateIdent:   "PRIVATE_IDENT",
	Numeric:        "NUMERIC",
	String:         "STRING",
	Regex:          "REGEX",

	TemplateStringStart: "TEMPLATE_STRING_START",
	TemplateStringChunk: "TEMPLATE_STRING_CHUNK",
	TemplateStringEnd:   "TEMPLATE_STRING_END",
	TemplateExprStart:   "TEMPLATE_EXPR_START",
	TemplateExprEnd:     "TEMPLATE_EXPR_END",

	JSXElementStart:        "JSX_ELEMENT_START",
	JSXElementEnd:          "JSX_ELEMENT_END",
	JSXSelfClose:           "JSX_SELF_CLOSE",
	JSXElementClose:        "JSX_ELEMENT_CLOSE",
	JSXAttributeName:       "JSX_ATTRIBUTE_NAME",
	JSXAttributeValue:      "JSX_ATTRIBUTE_VALUE",
	JSXAttributeValueStart: "JSX_ATTRIBUTE_VALUE_START",
	JSXAttributeValueEnd:   "JSX_ATTRIBUTE_VALUE_END",
	JSXText:                "JSX_TEXT",

	Break: "break", Case: "case", Catch: "catch", Class: "class", Const: "const",
	Continue: "continue", Debugger: "debugger", Default: "default", Delete: "delete",
	Do: "do", Else: "else", Enum: "enum", Export: "export", Extends: "extends",
	False: "false", Finally: "finally", For: "for", Function: "function", If: "if",
	Import: "import", In: "in", Instanceof: "instanceof", New: "new", Null: "null",
	Return: "return", Super: "super", Switch: "switch", This: "this", Throw: "throw",
	True: "true", Try: "try", Typeof: "typeof", Var: "var", Void: "void",
	While: "while", With: "with", Yield: "yield", Let: "let", Static: "static",
	Async: "async", Await: "await", As: "as", Declare: "declare", Interface: "interface",
	Module: "module", Namespace: "namespace", Of: "of", Package: "package",
	Private: "private", Protected: "protected", Public: "public", Readonly: "readonly",
	Require: "require", TypeKeyword: "type", From: "from", Satisfies: "satisfies",
	Implements: "implements", Any: "any", Boolean: "boolean", Constructor: "constructor",
	Get: "get", Set: "set", Never: "never", Unknown: "unknown",
	StringKeyword: "string", NumberKeyword: "number", Symbol: "symbol",
	Undefined: "undefined", Using: "using",

	Add: "ADD", Sub: "SUB", Mul: "MUL", Quo: "QUO", Rem: "REM",
	And: "AND", Or: "OR", Xor: "XOR", BNot: "BNOT", Shl: "SHL", Shr: "SHR",
	ShrUnsigned: "SHR_UNSIGNED", Power: "POWER",
	AddAssign: "ADD_ASSIGN", SubAssign: "SUB_ASSIGN", MulAssign: "MUL_ASSIGN",
	QuoAssign: "QUO_ASSIGN", RemAssign: "REM_ASSIGN", AndAssign: "AND_ASSIGN",
	OrAssign: "OR_ASSIGN", XorAssign: "XOR_ASSIGN", ShlAssign: "SHL_ASSIGN",
	ShrAssign: "SHR_ASSIGN", ShrUnsignedAssign: "SHR_UNSIGNED_ASSIGN", PowerAssign: "POWER_ASSIGN",
	Land: "LAND", Lor: "LOR", Inc: "INC", Dec: "DEC", Nullish: "NULLISH",
	NullishAssign: "NULLISH_ASSIGN", LandAssign: "LAND_ASSIGN", LorAssign: "LOR_ASSIGN",
	Eql: "EQL", Lss: "LSS", Gtr: "GTR", Assign: "ASSIGN", Not: "NOT",
	Neq: "NEQ", Leq: "LEQ", Geq: "GEQ", EqlStrict: "EQL_STRICT", NeqStrict: "NEQ_STRICT",
	LParen: "LPAREN", LBrack: "LBRACK", LBrace: "LBRACE", Comma: "COMMA", Period: "PERIOD",
	RParen: "RPAREN", RBrack: "RBRACK", RBrace: "RBRACE", Semicolon: "SEMICOLON",
	Colon: "COLON", Question: "QUESTION", Arrow: "ARROW", Ellipsis: "ELLIPSIS",
	Optional: "OPTIONAL", At: "AT", Tilde: "TILDE",
}

// tokenLexemes gives the fixed source text of every empty-payload token
// (keywords and punctuators), used by Token.render's default case.
var tokenLexemes = map[TokenType]string{
	Break: "break", Case: "case", Catch: "catch", Class: "class", Const: "const",
	Continue: "continue", Debugger: "debugger", Default: "default", Delete: "delete",
	Do: "do", Else: "else", Enum: "enum", Export: "export", Extends: "extends",
	False: "false", Finally: "finally", For: "for", Function: "function", If: "if",
	Import: "import", In: "in", Instanceof: "instanceof", New: "new", Null: "null",
	Return: "return", Super: "super", Switch: "switch", This: "this", Throw: "throw",
	True: "true", Try: "try", Typeof: "typeof", Var: "var", Void: "void",
	While: "while", With: "with", Yield: "yield", Let: "let", Static: "static",
	Async: "async", Await: "await", As: "as", Declare: "declare", Interface: "interface",
	Module: "module", Namespace: "namespace", Of: "of", Package: "package",
	Private: "private", Protected: "protected", Public: "public", Readonly: "readonly",
	Require: "require", TypeKeyword: "type", From: "from", Satisfies: "satisfies",
	Implements: "implements", Any: "any", Boolean: "boolean", Constructor: "constructor",
	Get: "get", Set: "set", Never: "never", Unknown: "unknown",
	StringKeyword: "string", NumberKeyword: "number", Symbol: "symbol",
	Undefined: "undefined", Using: "using",

	Add: "+", Sub: "-", Mul: "*", Quo: "/", Rem: "%",
	And: "&", Or: "|", Xor: "^", BNot: "~", Shl: "<<", Shr: ">>", ShrUnsigned: ">>>",
	Power: "**",
	AddAssign: "+=", SubAssign: "-=", MulAssign: "*=", QuoAssign: "/=", RemAssign: "%=",
	AndAssign: "&=", OrAssign: "|=", XorAssign: "^=", ShlAssign: "<<=", ShrAssign: ">>=",
	ShrUnsignedAssign: ">>>=", PowerAssign: "**=",
	Land: "&&", Lor: "||", Inc: "++", Dec: "--", Nullish: "??",
	NullishAssign: "??=", LandAssign: "&&=", LorAssign: "||=",
	Eql: "==", Lss: "<", Gtr: ">", Assign: "=", Not: "!",
	Neq: "!=", Leq: "<=", Geq: ">=", EqlStrict: "===", NeqStrict: "!==",
	LParen: "(", LBrack: "[", LBrace: "{", Comma: ",", Period: ".",
	RParen: ")", RBrack: "]", RBrace: "}", Semicolon: ";",
	Colon: ":", Question: "?", Arrow: "=>", Ellipsis: "...",
	Optional: "?.", At: "@", Tilde: "~",
}
