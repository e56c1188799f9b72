// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package laxjson implements a best-effort JSON reader: one that never
// stops at the first syntax error, but instead records a diagnostic and
// keeps going, producing as complete a result as the input allows.
//
// # Reading
//
// The Reader type drives the parse. Construct one with NewReader, set
// whichever tolerance flags the input calls for, and call Parse or
// ParseStream against a destination Value:
//
//	r := laxjson.NewReader()
//	r.SetFlags(laxjson.Tolerant)
//	root := value.New()
//	if n, err := r.Parse(text, root); err != nil {
//		log.Fatalf("Parse: %v", err)
//	} else if n > 0 {
//		log.Printf("parsed with %d error(s): %v", n, r.Errors())
//	}
//
// Parse reads a string, always as already-decoded UTF-8 text.
// ParseStream reads an io.Reader, honoring NoUTF8Stream.
// Both report the number of errors collected and consult Errors and
// Warnings for the flat message surface, or Diagnostics for the
// structured form.
//
// # Tolerance flags
//
// A Reader's flags (see SetFlags) control which non-standard constructs it
// accepts, and whether accepting one produces a warning instead of an
// error. Strict disables every extension; Tolerant enables comments,
// case-insensitive literals, mismatched closing brackets and implicit
// string concatenation. Flags can also be toggled individually, using the
// same imperative-setter names as the flag constants themselves:
//
//	r.AllowComments(true)
//	r.StoreComments(true)
//
// # Values
//
// The Reader builds its result into whatever satisfies the Value
// interface; it never constructs a concrete tree of its own. The value
// package provides a ready-made implementation, including the AddComment
// bookkeeping a Reader needs when StoreComments is set.
//
// # Depth
//
// SetMaxDepth bounds how deeply nested an object or array the Reader will
// recurse into; past that depth it reports one error and discards the
// remainder of the over-deep container, rather than growing the result
// tree (or the call stack) without limit.
package laxjson
