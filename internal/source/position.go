package source

import "strconv"

// Position is the `{ source, line, column, offset }` tuple spec.md §3
// attaches to every token and error ("Source location"). It is immutable
// once constructed and cheap to copy — callers pass it by value.
type Position struct {
	File   *File
	Line   int // 1-based
	Column int // 0-based
	Offset int // byte offset from the start of the source
}

func (p Position) String() string {
	name := "<unknown>"
	if p.File != nil {
		name = p.File.String()
	}
	return name + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
