// Package unicodetables supplies the sorted code-point range tables the
// lexer's identifier classifier (spec.md §4.2, component C2) binary-searches
// against. It builds no tables at scan time — every table here is a
// package-level constant, safe to share read-only across lexer instances
// (spec.md §5 Concurrency & Resource Model).
//
// Three profiles are provided, one per language-version bucket named in
// spec.md §4.2: ES3, ES5, and ES2015Plus. Each profile has an id-start and an
// id-part table. Selection between them is the caller's job
// (internal/lexer/scanner.go, idProfile); this package only classifies a single code
// point against a single, already-chosen profile.
package unicodetables
