// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"strconv"
	"strings"

	"go4.org/mem"
)

// isTokenStop reports whether ch terminates an unquoted token: whitespace
// or one of the structural punctuation characters.
func isTokenStop(ch int) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\b', ',', ':', '[', ']', '{', '}':
		return true
	}
	return false
}

// readToken accumulates a maximal run of bytes starting with ch (already
// read from the source) up to the next token-stopping character, which is
// read but not included in the token. It returns the token text and the
// terminating character (or -1 at EOF).
func (r *Reader) readToken(ch int) (string, int) {
	var buf []byte
	for ch >= 0 && !isTokenStop(ch) {
		buf = append(buf, byte(ch))
		ch = r.src.read()
	}
	return string(buf), ch
}

// readValue is the NumberLiteralReader: it reads an unquoted token starting
// at ch and classifies it as null/true/false or a number, storing the
// result into value. It returns the next unconsumed character.
func (r *Reader) readValue(ch int, value Value) int {
	startLine := r.src.position().Line
	tok, next := r.readToken(ch)

	if value.IsValid() {
		pos := r.src.position()
		r.diag.addErrorf(pos.Line, pos.ByteCol, "value %q cannot follow a value: ',' or ':' missing?", tok)
		return next
	}

	switch {
	case mem.S(tok).Equal(mem.S("null")):
		value.SetKind(Null)
	case strings.EqualFold(tok, "null"):
		r.diag.addWarning(CaseInsensitiveLiterals, startLine, r.src.position().ByteCol, "the 'null' literal must be lowercase")
		value.SetKind(Null)
	case mem.S(tok).Equal(mem.S("true")):
		value.SetBool(true)
	case strings.EqualFold(tok, "true"):
		r.diag.addWarning(CaseInsensitiveLiterals, startLine, r.src.position().ByteCol, "the 'true' literal must be lowercase")
		value.SetBool(true)
	case mem.S(tok).Equal(mem.S("false")):
		value.SetBool(false)
	case strings.EqualFold(tok, "false"):
		r.diag.addWarning(CaseInsensitiveLiterals, startLine, r.src.position().ByteCol, "the 'false' literal must be lowercase")
		value.SetBool(false)
	default:
		r.readNumber(tok, value, startLine)
	}
	value.SetLine(startLine)
	return next
}

// readNumber runs the sign-driven conversion ladder: digit-led tokens try
// signed, then unsigned, then double; '-'-led tokens skip unsigned;
// '+'-led tokens skip signed.
func (r *Reader) readNumber(tok string, value Value, line int) {
	if tok == "" {
		r.badLiteral(tok, line)
		return
	}

	trySigned, tryUnsigned := true, true
	switch tok[0] {
	case '+':
		trySigned = false
	case '-':
		tryUnsigned = false
	default:
		if tok[0] < '0' || tok[0] > '9' {
			r.badLiteral(tok, line)
			return
		}
	}

	if trySigned {
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			value.SetSigned(i)
			return
		}
	}
	if tryUnsigned {
		if u, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64); err == nil {
			value.SetUnsigned(u)
			return
		}
	}
	if d, err := strconv.ParseFloat(tok, 64); err == nil {
		value.SetDouble(d)
		return
	}
	r.badLiteral(tok, line)
}

func (r *Reader) badLiteral(tok string, line int) {
	pos := r.src.position()
	r.diag.addErrorf(line, pos.ByteCol, "literal %q is incorrect, did you forget quotes?", tok)
}
