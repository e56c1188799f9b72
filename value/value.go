// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package value provides a ready-made implementation of laxjson.Value, for
// callers who don't need their own tree representation.
package value

import (
	"golang.org/x/exp/slices"

	"github.com/laxjson/laxjson"
)

// Comment is a single comment attached to a Node, at the position it was
// found relative to the Node's own text.
type Comment struct {
	Pos  laxjson.CommentPos
	Text string
}

// Member is a single key-value pair belonging to an Object-kind Node.
type Member struct {
	Key   string
	Value *Node
}

// A Node is a JSON value: an object, array, scalar, or memory buffer,
// together with whatever comments a Reader attached to it. The zero Node
// is Invalid, satisfying laxjson.Value so it can serve as a Reader's root
// or as a scratch value during parsing.
type Node struct {
	kind laxjson.Kind
	line int

	comments []Comment

	b   bool
	i64 int64
	u64 uint64
	f64 float64
	str string
	buf []byte

	members []*Member
	items   []*Node
}

// New returns a fresh Node, usable as a Reader's root value.
func New() *Node { return &Node{line: -1} }

// New satisfies laxjson.Value: it returns a fresh sibling Node.
func (n *Node) New() laxjson.Value { return New() }

// SetKind satisfies laxjson.Value.
func (n *Node) SetKind(k laxjson.Kind) {
	if k == laxjson.Object || k == laxjson.Array {
		n.members, n.items = nil, nil
	}
	n.kind = k
}

// Kind satisfies laxjson.Value.
func (n *Node) Kind() laxjson.Kind { return n.kind }

// SetLine satisfies laxjson.Value.
func (n *Node) SetLine(line int) { n.line = line }

// Line satisfies laxjson.Value.
func (n *Node) Line() int { return n.line }

// AppendChild satisfies laxjson.Value.
func (n *Node) AppendChild(v laxjson.Value) { n.items = append(n.items, v.(*Node)) }

// InsertKey satisfies laxjson.Value, overwriting any existing member with
// the same key in place so its position in Members is preserved.
func (n *Node) InsertKey(key string, v laxjson.Value) {
	child := v.(*Node)
	if i := slices.IndexFunc(n.members, func(m *Member) bool { return m.Key == key }); i >= 0 {
		n.members[i].Value = child
		return
	}
	n.members = append(n.members, &Member{Key: key, Value: child})
}

// SetBool satisfies laxjson.Value.
func (n *Node) SetBool(b bool) { n.kind, n.b = laxjson.Bool, b }

// SetSigned satisfies laxjson.Value.
func (n *Node) SetSigned(i int64) { n.kind, n.i64 = laxjson.Signed, i }

// SetUnsigned satisfies laxjson.Value.
func (n *Node) SetUnsigned(u uint64) { n.kind, n.u64 = laxjson.Unsigned, u }

// SetDouble satisfies laxjson.Value.
func (n *Node) SetDouble(f float64) { n.kind, n.f64 = laxjson.Double, f }

// SetString satisfies laxjson.Value.
func (n *Node) SetString(s string) { n.kind, n.str = laxjson.String, s }

// SetMemBuf satisfies laxjson.Value.
func (n *Node) SetMemBuf(b []byte) { n.kind, n.buf = laxjson.MemBuf, append([]byte(nil), b...) }

// AsString satisfies laxjson.Value.
func (n *Node) AsString() string { return n.str }

// AppendString satisfies laxjson.Value.
func (n *Node) AppendString(s string) { n.str += s }

// AppendMemBuf satisfies laxjson.Value.
func (n *Node) AppendMemBuf(b []byte) { n.buf = append(n.buf, b...) }

// AddComment satisfies laxjson.Value.
func (n *Node) AddComment(pos laxjson.CommentPos, text string) {
	n.comments = append(n.comments, Comment{Pos: pos, Text: text})
}

// ClearComments satisfies laxjson.Value.
func (n *Node) ClearComments() { n.comments = nil }

// IsValid satisfies laxjson.Value.
func (n *Node) IsValid() bool { return n.kind != laxjson.Invalid }

// IsObject satisfies laxjson.Value.
func (n *Node) IsObject() bool { return n.kind == laxjson.Object }

// IsArray satisfies laxjson.Value.
func (n *Node) IsArray() bool { return n.kind == laxjson.Array }

// IsString satisfies laxjson.Value.
func (n *Node) IsString() bool { return n.kind == laxjson.String }

// IsMemBuf satisfies laxjson.Value.
func (n *Node) IsMemBuf() bool { return n.kind == laxjson.MemBuf }

// Bool returns the value of a Bool-kind Node.
func (n *Node) Bool() bool { return n.b }

// Int64 returns the value of a Signed-kind Node.
func (n *Node) Int64() int64 { return n.i64 }

// Uint64 returns the value of an Unsigned-kind Node.
func (n *Node) Uint64() uint64 { return n.u64 }

// Float64 returns the value of a Double-kind Node.
func (n *Node) Float64() float64 { return n.f64 }

// Text returns the decoded text of a String-kind Node.
func (n *Node) Text() string { return n.str }

// MemBuf returns the decoded bytes of a MemBuf-kind Node.
func (n *Node) MemBuf() []byte { return n.buf }

// Members returns the key-value pairs of an Object-kind Node, in the order
// they were first inserted.
func (n *Node) Members() []*Member { return n.members }

// Items returns the elements of an Array-kind Node, in order.
func (n *Node) Items() []*Node { return n.items }

// Comments returns the comments attached to this Node, in the order a
// Reader attached them.
func (n *Node) Comments() []Comment { return n.comments }

// Find returns the value of the first member of n with the given key, or
// nil if n is not an Object or has no such member.
func (n *Node) Find(key string) *Node {
	if i := slices.IndexFunc(n.members, func(m *Member) bool { return m.Key == key }); i >= 0 {
		return n.members[i].Value
	}
	return nil
}
