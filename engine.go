// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// Reader holds all state for one parse: the tolerance flags, the
// diagnostics collected so far, the byte source, and the three cursor
// pointers (current, next, lastStored) that the comment attacher consults
// to decide where a floating comment belongs. A Reader is reusable across
// calls to Parse or ParseStream, but not concurrently; each call resets the
// cursor and diagnostic state.
type Reader struct {
	flags     Flags
	maxErrors int
	maxDepth  int

	diag *diagnosticsSink
	src  *byteSource

	level int
	depth int

	effectiveNoUTF8 bool

	next, current, lastStored Value
	comment                   string
	commentLine               int
}

const (
	defaultMaxErrors = 30
	defaultMaxDepth  = 512
)

// NewReader returns a Reader configured with Strict flags, a maximum error
// count of 30 and a maximum nesting depth of 512, matching the defaults of
// the tool this package is modeled on (see Design Notes for the depth
// guard, which that tool does not have).
func NewReader() *Reader {
	return &Reader{flags: Strict, maxErrors: defaultMaxErrors, maxDepth: defaultMaxDepth}
}

// getStart is the EntryPoint's initial scan: it consumes bytes (including
// any leading comments) until it finds the '{' or '[' that opens the
// document, and returns that character or -1 at EOF.
func (r *Reader) getStart() int {
	ch := r.src.read()
	for ch >= 0 {
		switch ch {
		case '{', '[':
			return ch
		case '/':
			ch = r.scanComment()
			r.attachComment(nil)
		default:
			ch = r.src.read()
		}
	}
	return ch
}

// doRead consumes the body of parent (an Object or Array whose opening
// bracket has already been read) until its matching closing bracket or
// EOF, storing each member or element it finds. It returns the first
// character following the close, or -1 at EOF.
func (r *Reader) doRead(parent Value) int {
	r.level++
	if r.depth < r.level {
		r.depth = r.level
	}
	defer func() { r.level-- }()

	if r.level > r.maxDepth {
		return r.skipBalanced(parent)
	}

	value := parent.New()
	r.next = value
	r.current = parent
	r.current.SetLine(r.src.position().Line)
	r.lastStored = nil

	var key string

	ch := r.src.read()
	for ch >= 0 {
		switch ch {
		case ' ', '\t', '\n', '\r', '\b':
			ch = r.src.read()

		case '/':
			ch = r.scanComment()
			r.attachComment(parent)

		case '{':
			r.checkContainerStart(parent, value, key, '{')
			value.SetKind(Object)
			ch = r.doRead(value)

		case '}':
			if !parent.IsObject() {
				pos := r.src.position()
				r.diag.addWarning(TolerateMissingClose, pos.Line, pos.ByteCol, "trying to close an array using the '}' (close-object) character")
			}
			r.storeValue(ch, key, value, parent)
			r.current, r.next = parent, nil
			r.current.SetLine(r.src.position().Line)
			return r.src.read()

		case '[':
			r.checkContainerStart(parent, value, key, '[')
			value.SetKind(Array)
			ch = r.doRead(value)

		case ']':
			if !parent.IsArray() {
				pos := r.src.position()
				r.diag.addWarning(TolerateMissingClose, pos.Line, pos.ByteCol, "trying to close an object using the ']' (close-array) character")
			}
			r.storeValue(ch, key, value, parent)
			r.current, r.next = parent, nil
			r.current.SetLine(r.src.position().Line)
			return r.src.read()

		case ',':
			r.storeValue(ch, key, value, parent)
			key = ""
			value = parent.New()
			r.next = value
			ch = r.src.read()

		case '"':
			ch = r.readString(value)
			r.current, r.next = value, nil

		case '\'':
			ch = r.readMemBuf(value)
			r.current, r.next = value, nil

		case ':':
			r.current, r.next = value, nil
			r.current.SetLine(r.src.position().Line)
			pos := r.src.position()
			switch {
			case !parent.IsObject():
				r.diag.addError(pos.Line, pos.ByteCol, "':' can only be used in an object's values")
			case !value.IsString():
				r.diag.addError(pos.Line, pos.ByteCol, "':' follows a value which is not a string")
			case key != "":
				r.diag.addError(pos.Line, pos.ByteCol, "':' not allowed, a name was already given")
			default:
				key = value.AsString()
				value.SetKind(Invalid)
			}
			ch = r.src.read()

		default:
			r.current, r.next = value, nil
			ch = r.readValue(ch, value)
		}
	}

	pos := r.src.position()
	switch {
	case parent.IsArray():
		r.diag.addWarning(TolerateMissingClose, pos.Line, pos.ByteCol, "']' missing at end of input")
	case parent.IsObject():
		r.diag.addWarning(TolerateMissingClose, pos.Line, pos.ByteCol, "'}' missing at end of input")
	}
	r.storeValue(ch, key, value, parent)
	return ch
}

// checkContainerStart reports the errors that apply when parent already
// disallows a nested object or array at this point: a missing key in an
// object, or a second value appearing without an intervening separator.
func (r *Reader) checkContainerStart(parent, value Value, key string, open byte) {
	pos := r.src.position()
	switch {
	case parent.IsObject():
		if key == "" {
			r.diag.addErrorf(pos.Line, pos.ByteCol, "'%c' is not allowed here ('name' is missing)", open)
		}
		if value.IsValid() {
			r.diag.addErrorf(pos.Line, pos.ByteCol, "'%c' cannot follow a value", open)
		}
	case parent.IsArray():
		if value.IsValid() {
			r.diag.addErrorf(pos.Line, pos.ByteCol, "'%c' cannot follow a value", open)
		}
	}
}

// storeValue files value into parent, under key if parent is an Object or
// appended if parent is an Array, then updates the cursor trio so the
// comment attacher can find whatever was just stored. Unlike the tool this
// is modeled on, it never resets value for reuse: every element gets its
// own Value from parent.New(), so there is nothing to alias.
func (r *Reader) storeValue(ch int, key string, value, parent Value) {
	r.current, r.next, r.lastStored = nil, value, nil

	if !value.IsValid() && key == "" {
		if ch != '}' && ch != ']' {
			pos := r.src.position()
			r.diag.addError(pos.Line, pos.ByteCol, "key or value is missing for a JSON value")
		}
		return
	}

	pos := r.src.position()
	switch {
	case parent.IsObject():
		switch {
		case !value.IsValid():
			r.diag.addError(pos.Line, pos.ByteCol, "cannot store the member: the value is missing")
		case key == "":
			r.diag.addError(pos.Line, pos.ByteCol, "cannot store the member: the key is missing")
		default:
			parent.InsertKey(key, value)
			value.SetLine(pos.Line)
			r.lastStored = value
		}
	case parent.IsArray():
		if !value.IsValid() {
			r.diag.addError(pos.Line, pos.ByteCol, "cannot store the item: the value is missing")
		}
		if key != "" {
			r.diag.addErrorf(pos.Line, pos.ByteCol, "cannot store the item: a key %q is not permitted in an array", key)
		}
		parent.AppendChild(value)
		value.SetLine(pos.Line)
		r.lastStored = value
	}
}

// skipBalanced is entered once r.level exceeds maxDepth. It reports one
// error for the over-deep container and then discards the remainder of the
// current container by tracking bracket balance, without building any
// Value for what it skips, so a pathologically deep input cannot grow the
// Go call stack or the result tree without bound. String and memory-buffer
// literals are skipped whole so a bracket inside one doesn't miscount.
func (r *Reader) skipBalanced(parent Value) int {
	pos := r.src.position()
	r.diag.addErrorf(pos.Line, pos.ByteCol, "input exceeds the maximum nesting depth of %d", r.maxDepth)

	depth := 1
	ch := r.src.read()
	for ch >= 0 && depth > 0 {
		switch ch {
		case '"':
			ch = r.skipQuoted('"')
			continue
		case '\'':
			ch = r.skipQuoted('\'')
			continue
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		}
		ch = r.src.read()
	}
	return ch
}

// skipQuoted consumes a string or memory-buffer literal up to and
// including its closing quote, honoring backslash escapes, and returns the
// character following it.
func (r *Reader) skipQuoted(quote int) int {
	ch := r.src.read()
	for ch >= 0 && ch != quote {
		if ch == '\\' && quote == '"' {
			if ch = r.src.read(); ch < 0 {
				return -1
			}
		}
		ch = r.src.read()
	}
	if ch >= 0 {
		ch = r.src.read()
	}
	return ch
}
