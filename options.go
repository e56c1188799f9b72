// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "strings"

// Flags is a bit set of tolerance toggles controlling which non-standard
// extensions and laxities a Reader accepts, and whether accepted extensions
// are reported as warnings (bit set) or errors (bit clear).
type Flags uint

// Individual tolerance bits. Each corresponds to one extension or laxity,
// described beside it.
const (
	// AllowComments accepts C and C++ style comments with a warning; if
	// clear, a comment is reported as an error.
	AllowComments Flags = 1 << iota
	// StoreComments attaches accepted comments to the value they annotate;
	// if clear, comments are discarded after being warned about or erroring.
	StoreComments
	// CaseInsensitiveLiterals accepts mixed-case null/true/false with a
	// warning; if clear, non-lowercase spellings are errors.
	CaseInsensitiveLiterals
	// TolerateMissingClose treats a mismatched or absent closing bracket as
	// a warning instead of an error.
	TolerateMissingClose
	// MultilineStrings accepts two adjacent quoted strings as an implicit
	// concatenation, with a warning; if clear, the second string is an
	// error.
	MultilineStrings
	// CommentsAfter attaches a floating comment to the previously parsed
	// value instead of the upcoming one.
	CommentsAfter
	// NoUTF8Stream treats stream input bytes as raw 8-bit data instead of
	// UTF-8; has no effect on the text-input surface, which always
	// transcodes to UTF-8 first.
	NoUTF8Stream
	// AllowMemBuf accepts single-quoted hex-pair memory buffers with a
	// warning.
	AllowMemBuf
)

// Strict is the preset that treats every extension as an error: standard
// JSON only.
const Strict Flags = 0

// Tolerant is the preset accepting comments, case-insensitive literals,
// mismatched closers, and multi-line string concatenation, all as warnings.
const Tolerant = AllowComments | CaseInsensitiveLiterals | TolerateMissingClose | MultilineStrings

// Has reports whether every bit set in want is also set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

var flagNames = [...]struct {
	bit  Flags
	name string
}{
	{AllowComments, "AllowComments"},
	{StoreComments, "StoreComments"},
	{CaseInsensitiveLiterals, "CaseInsensitiveLiterals"},
	{TolerateMissingClose, "TolerateMissingClose"},
	{MultilineStrings, "MultilineStrings"},
	{CommentsAfter, "CommentsAfter"},
	{NoUTF8Stream, "NoUTF8Stream"},
	{AllowMemBuf, "AllowMemBuf"},
}

// String renders f as a pipe-separated list of its set bit names, or
// "Strict" if none are set.
func (f Flags) String() string {
	if f == Strict {
		return "Strict"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.bit) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
