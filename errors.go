// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "fmt"

// ReadError wraps a non-EOF failure of the underlying io.Reader passed to
// ParseStream. It is distinct from the Diagnostics a Reader collects:
// those describe malformed JSON text, while a ReadError means the input
// itself could not be read to completion.
type ReadError struct {
	Pos Position
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("laxjson: read error at line %d, col %d: %v", e.Pos.Line, e.Pos.ByteCol, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
