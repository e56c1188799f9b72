// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"go4.org/mem"

	"github.com/laxjson/laxjson/internal/escape"
)

// Quote renders src as a complete double-quoted JSON string literal, with
// control characters, backslashes and quote marks escaped. The value
// package's Formatter calls this to render String-kind nodes back to text.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }
