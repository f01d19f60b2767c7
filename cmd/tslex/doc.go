// Command tslex tokenizes TypeScript/JavaScript/JSX source files from the
// command line, printing the resulting token stream as JSON (spec.md §6
// "External Interfaces": an output token sink is an external collaborator,
// not core scope).
package main
