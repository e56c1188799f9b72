// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape renders Go strings as quoted JSON string literals.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// controlEsc maps a C0 control byte to its single-letter JSON escape, or 0
// if the byte has none and must fall back to a \u00XX escape.
var controlEsc = [' ']byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

const hexDigit = "0123456789abcdef"

// Quote returns src rendered as a complete double-quoted JSON string
// literal. Control characters, the backslash, and the double quote are
// escaped; everything else is copied through verbatim, since JSON strings
// are otherwise UTF-8 text. A byte that does not begin a valid UTF-8
// sequence is written as U+FFFD.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r < utf8.RuneSelf:
			buf = append(buf, byte(r))
		default:
			var rbuf [utf8.UTFMax]byte
			buf = append(buf, rbuf[:utf8.EncodeRune(rbuf[:], r)]...)
		}
	}
	return append(buf, '"')
}
