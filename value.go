// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// Kind identifies the type currently held by a Value.
type Kind byte

// Constants defining the valid Kind values a Value may carry.
const (
	Invalid  Kind = iota // no type assigned yet
	Object               // key/value container
	Array                // ordered sequence of values
	Null                 // the null literal
	Bool                 // true or false
	Signed               // a signed 64-bit integer
	Unsigned             // an unsigned 64-bit integer
	Double               // a floating-point number
	String               // a decoded UTF-8 string
	MemBuf               // an opaque byte blob (the 'hex' extension)
)

var kindStr = [...]string{
	Invalid:  "invalid",
	Object:   "object",
	Array:    "array",
	Null:     "null",
	Bool:     "bool",
	Signed:   "signed",
	Unsigned: "unsigned",
	Double:   "double",
	String:   "string",
	MemBuf:   "membuf",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// CommentPos identifies where, relative to the value it decorates, a
// comment was found in the source text.
type CommentPos byte

// The three positions at which a comment can attach to a value.
const (
	Before CommentPos = iota // comment precedes the value's own text
	Inline                   // comment appears on the same source line
	After                    // comment follows the value's own text
)

// Value is the capability set the reader needs from whatever in-memory tree
// it is building. The reader never constructs or interprets a concrete
// value type of its own; it only calls these methods, so any container that
// satisfies Value can serve as the destination of a parse. A ready-made
// implementation lives in the sibling value package; the caller always
// supplies the root, and a nil root makes Parse and ParseStream panic.
//
// A method's receiver is only ever touched by one Reader at a time, and
// never concurrently; see Reader.
type Value interface {
	// New returns a freshly zero-valued Value of the same concrete
	// implementation as the receiver. The reader calls this to obtain scratch
	// values for array elements and object members; it never constructs a
	// value type of its own.
	New() Value

	// SetKind assigns the value's type. Assigning Object or Array resets any
	// existing children; assigning any other kind discards a prior value.
	SetKind(Kind)
	// Kind reports the value's current type.
	Kind() Kind

	// SetLine records the 1-based source line the value's defining token
	// (delimiter, opening bracket, or literal) appeared on.
	SetLine(int)
	// Line reports the line last set by SetLine, or a negative number if
	// SetLine has not yet been called for this value.
	Line() int

	// AppendChild appends v as the next element of an Array-kind value.
	AppendChild(v Value)
	// InsertKey inserts v under key in an Object-kind value, overwriting
	// any previous member with the same key.
	InsertKey(key string, v Value)

	// SetBool, SetSigned, SetUnsigned, SetDouble, SetString and SetMemBuf
	// assign a scalar value and its matching Kind in one step.
	SetBool(bool)
	SetSigned(int64)
	SetUnsigned(uint64)
	SetDouble(float64)
	SetString(string)
	SetMemBuf([]byte)

	// AsString returns the decoded text of a String-kind value. The engine
	// calls this exactly once per object member, to recover a just-parsed
	// key string before the scratch value that held it is repurposed for
	// the member's actual value.
	AsString() string

	// AppendString concatenates s onto an existing String-kind value, for
	// multi-line string concatenation (see StringDecoder).
	AppendString(s string)
	// AppendMemBuf concatenates b onto an existing MemBuf-kind value.
	AppendMemBuf(b []byte)

	// AddComment attaches a comment to the value at the given position.
	AddComment(pos CommentPos, text string)
	// ClearComments discards any comments attached so far. The reader does
	// not call it: every stored element is its own Value obtained from New,
	// so a stored value keeps the comments attached to it.
	ClearComments()

	// IsValid reports whether SetKind (or an SetXxx scalar setter) has been
	// called; a freshly zero-valued Value is not valid.
	IsValid() bool
	IsObject() bool
	IsArray() bool
	IsString() bool
	IsMemBuf() bool
}
