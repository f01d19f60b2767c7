// Package source implements the UTF-8 lookahead buffer the lexer scans
// over (spec.md component C1) and the source-identity handle carried by
// every token and error location (spec.md §3 "Source location").
package source

import "io"

// ByteSource is the external producer of raw bytes the lexer pulls from. Any
// io.Reader satisfies it; the lexer never assumes the whole source is
// resident in memory up front, though the common case (scanning a string or
// a fully-read string) is wrapped by NewBufferFromString in buffer.go.
type ByteSource = io.Reader

// File is the opaque source-identity handle bound into every token and
// error location (spec.md §3). It carries no scanning state of its own —
// the lexer treats it as a value carried by reference and never mutates it.
type File struct {
	// Name is the display name for this source (a file path, "<stdin>", or
	// a synthetic name for in-memory sources).
	Name string
}

// NewFile creates a source-identity handle for the given display name.
func NewFile(name string) *File {
	return &File{Name: name}
}

func (f *File) String() string {
	if f == nil {
		return "<unknown>"
	}
	return f.Name
}
