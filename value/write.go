// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/laxjson/laxjson"
)

// Formatter renders a Node back to JSON text, including any comments a
// Reader attached to it. The zero Formatter is ready to use.
type Formatter struct {
	// Indent is the string used for each level of nesting. If empty,
	// Formatter uses two spaces.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Format writes n to w using the default Formatter settings.
func Format(w io.Writer, n *Node) error {
	var f Formatter
	return f.Format(w, n)
}

// FormatToString renders n with default settings, returning "" if
// formatting fails.
func FormatToString(n *Node) string {
	var sb strings.Builder
	if err := Format(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

// Format writes n to w as indented JSON text.
func (f Formatter) Format(w io.Writer, n *Node) error {
	fw := &failWriter{w: w}
	f.writeValue(fw, n, "")
	return fw.err
}

// failWriter lets writeValue's tree of calls ignore individual write errors
// and just check once at the end, the way indent.go's Formatter does.
type failWriter struct {
	w   io.Writer
	err error
}

func (fw *failWriter) puts(s string) {
	if fw.err != nil {
		return
	}
	_, fw.err = io.WriteString(fw.w, s)
}

func (f Formatter) writeValue(w *failWriter, n *Node, indent string) {
	f.writeComments(w, n, laxjson.Before, indent)
	switch n.Kind() {
	case laxjson.Object:
		f.writeObject(w, n, indent)
	case laxjson.Array:
		f.writeArray(w, n, indent)
	case laxjson.Null:
		w.puts("null")
	case laxjson.Bool:
		w.puts(strconv.FormatBool(n.Bool()))
	case laxjson.Signed:
		w.puts(strconv.FormatInt(n.Int64(), 10))
	case laxjson.Unsigned:
		w.puts(strconv.FormatUint(n.Uint64(), 10))
	case laxjson.Double:
		w.puts(strconv.FormatFloat(n.Float64(), 'g', -1, 64))
	case laxjson.String:
		w.puts(laxjson.Quote(n.Text()))
	case laxjson.MemBuf:
		w.puts(fmt.Sprintf("'%x'", n.MemBuf()))
	default:
		w.puts("null")
	}
	f.writeComments(w, n, laxjson.Inline, "")
	f.writeComments(w, n, laxjson.After, indent)
}

func (f Formatter) writeComments(w *failWriter, n *Node, pos laxjson.CommentPos, indent string) {
	for _, c := range n.Comments() {
		if c.Pos != pos {
			continue
		}
		switch pos {
		case laxjson.Before:
			w.puts(indent)
			w.puts(c.Text)
			w.puts("\n")
		case laxjson.Inline:
			w.puts(" ")
			w.puts(c.Text)
			w.puts("\n")
		case laxjson.After:
			w.puts("\n")
			w.puts(indent)
			w.puts(c.Text)
		}
	}
}

func (f Formatter) writeObject(w *failWriter, n *Node, indent string) {
	members := n.Members()
	if len(members) == 0 {
		w.puts("{}")
		return
	}
	child := indent + f.indent()
	w.puts("{\n")
	for i, m := range members {
		w.puts(child)
		w.puts(laxjson.Quote(m.Key))
		w.puts(": ")
		f.writeValue(w, m.Value, child)
		if i < len(members)-1 {
			w.puts(",")
		}
		w.puts("\n")
	}
	w.puts(indent)
	w.puts("}")
}

func (f Formatter) writeArray(w *failWriter, n *Node, indent string) {
	items := n.Items()
	if len(items) == 0 {
		w.puts("[]")
		return
	}
	child := indent + f.indent()
	w.puts("[\n")
	for i, it := range items {
		w.puts(child)
		f.writeValue(w, it, child)
		if i < len(items)-1 {
			w.puts(",")
		}
		w.puts("\n")
	}
	w.puts(indent)
	w.puts("]")
}
