// Package lexer implements tslex's context-sensitive tokenizer: a
// single-pass, mode-stack-driven scanner over TypeScript/TSX source that
// produces one token per call with no lookahead beyond what a token's own
// grammar requires.
package lexer
