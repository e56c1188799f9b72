// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// readMemBuf is the MemBufDecoder. It is entered once doRead has already
// consumed the opening single quote of a '<hex pairs>' memory buffer
// extension; it reads pairs of hex digits into a byte blob, stores the
// result into value, and returns the next unconsumed character.
//
// Unlike the tool this extension is modeled on, both upper- and lower-case
// hex digits are accepted (see Design Notes on case sensitivity in the
// memory buffer reader; DESIGN.md records this as a deliberate deviation).
func (r *Reader) readMemBuf(value Value) int {
	startPos := r.src.position()
	r.diag.addWarning(AllowMemBuf, startPos.Line, startPos.ByteCol, "single-quoted memory buffers are not valid JSON text")

	var buf []byte
	invalid := 0
	ch := r.src.read()
	for ch >= 0 && ch != '\'' {
		hi, hiOK := hexVal(ch)
		ch = r.src.read()
		if ch < 0 {
			break
		}
		lo, loOK := hexVal(ch)
		if !hiOK || !loOK {
			invalid++
		} else {
			buf = append(buf, byte(hi<<4|lo))
		}
		ch = r.src.read()
	}

	if invalid > 0 {
		pos := r.src.position()
		r.diag.addErrorf(pos.Line, pos.ByteCol, "the memory buffer contains %d invalid hex digit(s)", invalid)
	}

	line := r.src.position().Line
	switch {
	case !value.IsValid():
		value.SetMemBuf(buf)
	case value.IsMemBuf():
		value.AppendMemBuf(buf)
	default:
		r.diag.addError(line, r.src.position().ByteCol, "memory buffer value cannot follow another value")
	}
	value.SetLine(line)

	if ch >= 0 {
		ch = r.src.read()
	}
	return ch
}
