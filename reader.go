// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"io"
	"strings"
)

// SetFlags replaces the Reader's tolerance flags wholesale. Strict and
// Tolerant are convenient starting points.
func (r *Reader) SetFlags(f Flags) { r.flags = f }

// Flags reports the Reader's current tolerance flags.
func (r *Reader) Flags() Flags { return r.flags }

// AllowComments toggles AllowComments.
func (r *Reader) AllowComments(ok bool) { r.setFlag(AllowComments, ok) }

// StoreComments toggles StoreComments.
func (r *Reader) StoreComments(ok bool) { r.setFlag(StoreComments, ok) }

// CaseInsensitiveLiterals toggles CaseInsensitiveLiterals.
func (r *Reader) CaseInsensitiveLiterals(ok bool) { r.setFlag(CaseInsensitiveLiterals, ok) }

// TolerateMissingClose toggles TolerateMissingClose.
func (r *Reader) TolerateMissingClose(ok bool) { r.setFlag(TolerateMissingClose, ok) }

// MultilineStrings toggles MultilineStrings.
func (r *Reader) MultilineStrings(ok bool) { r.setFlag(MultilineStrings, ok) }

// CommentsAfter toggles CommentsAfter.
func (r *Reader) CommentsAfter(ok bool) { r.setFlag(CommentsAfter, ok) }

// NoUTF8Stream toggles NoUTF8Stream.
func (r *Reader) NoUTF8Stream(ok bool) { r.setFlag(NoUTF8Stream, ok) }

// AllowMemBuf toggles AllowMemBuf.
func (r *Reader) AllowMemBuf(ok bool) { r.setFlag(AllowMemBuf, ok) }

func (r *Reader) setFlag(bit Flags, ok bool) {
	if ok {
		r.flags |= bit
	} else {
		r.flags &^= bit
	}
}

// SetMaxErrors sets the number of error (and, independently, warning)
// messages the Reader collects before it starts replacing further ones
// with a single "too many messages" sentinel. n must not be negative.
func (r *Reader) SetMaxErrors(n int) {
	if n < 0 {
		panic("laxjson: max error count must not be negative")
	}
	r.maxErrors = n
}

// SetMaxDepth sets the deepest nesting of objects and arrays the Reader
// will build a Value tree for; a container nested deeper is left empty, its
// contents skipped with a single error rather than recursed into. n must be
// positive.
func (r *Reader) SetMaxDepth(n int) {
	if n <= 0 {
		panic("laxjson: max depth must be positive")
	}
	r.maxDepth = n
}

// Depth reports the deepest level of nesting seen by the most recent call
// to Parse or ParseStream.
func (r *Reader) Depth() int { return r.depth }

// Errors returns the flat rendering of every error collected by the most
// recent parse, in "Error: line L, col C - message" form.
func (r *Reader) Errors() []string { return r.diag.errorStrings() }

// Warnings returns the flat rendering of every warning collected by the
// most recent parse, in "Warning: line L, col C - message" form.
func (r *Reader) Warnings() []string { return r.diag.warningStrings() }

// ErrorCount reports the number of errors collected by the most recent
// parse.
func (r *Reader) ErrorCount() int { return len(r.diag.errors) }

// WarningCount reports the number of warnings collected by the most recent
// parse.
func (r *Reader) WarningCount() int { return len(r.diag.warnings) }

// Diagnostics returns the structured errors and warnings collected by the
// most recent parse, for callers that want more than the flat strings.
func (r *Reader) Diagnostics() (errors, warnings []Diagnostic) {
	return r.diag.errors, r.diag.warnings
}

func (r *Reader) reset() {
	r.level, r.depth = 0, 0
	r.diag = newDiagnosticsSink(r.flags, r.maxErrors)
	r.next, r.current, r.lastStored = nil, nil, nil
	r.comment, r.commentLine = "", 0
}

// Parse reads a complete JSON text out of a string and stores it into root,
// which must not be nil. Unlike ParseStream, Parse always treats the input
// as UTF-8 text: NoUTF8Stream has no effect here, and string values that
// are not valid UTF-8 are reported as errors. It returns the number of
// errors collected; Errors and Warnings report their contents.
func (r *Reader) Parse(text string, root Value) (int, error) {
	r.reset()
	r.effectiveNoUTF8 = false
	r.src = newByteSource(strings.NewReader(text))
	return r.run(root)
}

// ParseStream reads a complete JSON text out of in and stores it into root,
// which must not be nil. NoUTF8Stream controls whether string bytes are
// validated and interpreted as UTF-8. It returns
// the number of errors collected; Errors and Warnings report their
// contents.
func (r *Reader) ParseStream(in io.Reader, root Value) (int, error) {
	r.reset()
	r.effectiveNoUTF8 = r.flags.Has(NoUTF8Stream)
	r.src = newByteSource(in)
	return r.run(root)
}

func (r *Reader) run(root Value) (int, error) {
	if root == nil {
		panic("laxjson: Parse/ParseStream called with a nil root value")
	}

	r.next = root
	root.SetLine(-1)

	ch := r.getStart()
	switch ch {
	case '{':
		root.SetKind(Object)
	case '[':
		root.SetKind(Array)
	default:
		if err := r.src.Err(); err != nil {
			return len(r.diag.errors), &ReadError{Pos: r.src.position(), Err: err}
		}
		pos := r.src.position()
		r.diag.addError(pos.Line, pos.ByteCol, "cannot find a start object/array character")
		return len(r.diag.errors), nil
	}

	r.doRead(root)
	if err := r.src.Err(); err != nil {
		return len(r.diag.errors), &ReadError{Pos: r.src.position(), Err: err}
	}
	return len(r.diag.errors), nil
}
