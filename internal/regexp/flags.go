package regexp

import "github.com/tslex-project/tslex/internal/version"

// Flags is the parsed flag set trailing a `/pattern/flags` literal
// (spec.md §4.5 "Flag letters and their version gates").
type Flags struct {
	Global      bool // g
	IgnoreCase  bool // i
	Multiline   bool // m
	DotAll      bool // s, >= ES2018
	Unicode     bool // u, >= ES2015
	Sticky      bool // y, >= ES2015
	UnicodeSets bool // v, >= ES2024 (modeled as ESNext; there is no ES2024 Language)
}

// parseFlags reads the flag letters following the closing `/` of a regex
// literal body and validates them against lang. offset is the byte offset
// of the first flag letter, used to locate flag errors.
func parseFlags(flags string, offset int, lang version.Language) (Flags, *Error) {
	var f Flags
	seen := make(map[byte]bool, len(flags))

	for i := 0; i < len(flags); i++ {
		c := flags[i]
		if seen[c] {
			return f, newError(ErrDuplicateRegexFlag, offset+i, "duplicate regex flag %q", c)
		}
		seen[c] = true

		switch c {
		case 'g':
			f.Global = true
		case 'i':
			f.IgnoreCase = true
		case 'm':
			f.Multiline = true
		case 's':
			if !lang.AtLeast(version.ES2018) {
				return f, newError(ErrRegexFlagUnavailable, offset+i, "flag %q requires ES2018 or later", c)
			}
			f.DotAll = true
		case 'u':
			if !lang.AtLeast(version.ES2015) {
				return f, newError(ErrRegexFlagUnavailable, offset+i, "flag %q requires ES2015 or later", c)
			}
			f.Unicode = true
		case 'y':
			if !lang.AtLeast(version.ES2015) {
				return f, newError(ErrRegexFlagUnavailable, offset+i, "flag %q requires ES2015 or later", c)
			}
			f.Sticky = true
		case 'v':
			if !lang.AtLeast(version.ESNext) {
				return f, newError(ErrRegexFlagUnavailable, offset+i, "flag %q requires ES2024 or later", c)
			}
			f.UnicodeSets = true
		default:
			return f, newError(ErrRegexFlagUnavailable, offset+i, "unknown regex flag %q", c)
		}
	}

	if f.Unicode && f.UnicodeSets {
		return f, newError(ErrConflictingRegexFlags, offset, "flags \"u\" and \"v\" cannot be combined")
	}

	return f, nil
}
