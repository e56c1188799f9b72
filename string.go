// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "unicode/utf8"

// readString is the StringDecoder. It is entered once doRead has already
// consumed the opening '"'; it reads and decodes the string body, stores
// the result into value (assigning it fresh, concatenating onto an
// existing string with a MULTISTRING warning, or reporting an error if
// value already holds something else), and returns the next unconsumed
// character.
func (r *Reader) readString(value Value) int {
	var buf []byte
	ch := r.src.read()
	for ch >= 0 {
		if ch == '\\' {
			esc := r.src.read()
			switch esc {
			case -1:
				ch = -1
				continue
			case 't':
				buf = append(buf, '\t')
			case 'n':
				buf = append(buf, '\n')
			case 'b':
				buf = append(buf, '\b')
			case 'r':
				buf = append(buf, '\r')
			case 'f':
				buf = append(buf, '\f')
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			case '/':
				buf = append(buf, '/')
			case 'u':
				if ok, unit := r.readHex4(); ok {
					buf = appendCodeUnit(buf, unit)
				}
			default:
				pos := r.src.position()
				r.diag.addErrorf(pos.Line, pos.ByteCol, "unknown escaped character '\\%c'", esc)
			}
			ch = r.src.read()
			continue
		}
		if ch == '"' {
			break
		}
		buf = append(buf, byte(ch))
		ch = r.src.read()
	}

	line := r.src.position().Line
	s := r.decodeStringBytes(buf, line)
	r.storeString(value, s, line)

	if ch >= 0 {
		ch = r.src.read()
	}
	return ch
}

// readHex4 reads exactly four hex digits following a \u escape. On success
// it reports the decoded 16-bit code unit; on failure (a non-hex digit or
// EOF) it reports an "Invalid Unicode Escaped Sequence" error and the
// escape is simply dropped. Surrogate pairs are never composed; each
// \uXXXX is encoded independently.
func (r *Reader) readHex4() (ok bool, unit rune) {
	var v int32
	for i := 0; i < 4; i++ {
		ch := r.src.read()
		d, isHex := hexVal(ch)
		if !isHex {
			pos := r.src.position()
			r.diag.addError(pos.Line, pos.ByteCol, "Invalid Unicode Escaped Sequence")
			return false, 0
		}
		v = v<<4 | int32(d)
	}
	return true, rune(v)
}

func hexVal(ch int) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

func appendCodeUnit(buf []byte, unit rune) []byte {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], unit)
	return append(buf, tmp[:n]...)
}

// decodeStringBytes converts the raw decoded bytes into the text the Value
// will hold. When NoUTF8Stream is in effect the bytes are copied through
// unexamined; otherwise they must already be valid UTF-8 (every \u escape
// was independently re-encoded above), and a validation failure produces a
// placeholder string plus an error rather than silently accepting bad
// input.
func (r *Reader) decodeStringBytes(buf []byte, line int) string {
	if r.effectiveNoUTF8 {
		return string(buf)
	}
	if !utf8.Valid(buf) {
		pos := r.src.position()
		r.diag.addError(line, pos.ByteCol, "the string value is not valid UTF-8")
		return "<UTF-8 stream not valid>"
	}
	return string(buf)
}

func (r *Reader) storeString(value Value, s string, line int) {
	switch {
	case !value.IsValid():
		value.SetString(s)
	case value.IsString():
		r.diag.addWarning(MultilineStrings, line, r.src.position().ByteCol, "adjacent string literals are concatenated")
		value.AppendString(s)
	default:
		r.diag.addErrorf(line, r.src.position().ByteCol, "string value %q cannot follow another value", s)
	}
	value.SetLine(line)
}
