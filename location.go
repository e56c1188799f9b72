// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// Position describes a location in source text as the reader tracks it.
//
// Columns are 1-based and reset to 1 immediately after a line feed; a CR
// immediately followed by LF is collapsed into a single line break, so the
// two forms of line ending are indistinguishable in a Position. ByteCol
// counts raw input bytes, matching the byte-granular tracking this reader
// inherits from its C++ ancestor; RuneCol additionally counts decoded UTF-8
// code points on the same line, for callers who need code-point-accurate
// columns instead (see the Design Notes on byte-granular column tracking).
type Position struct {
	Line    int // 1-based line number
	ByteCol int // 1-based byte offset within the line
	RuneCol int // 1-based code-point offset within the line
}
