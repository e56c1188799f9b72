// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/laxjson/laxjson"
	"github.com/laxjson/laxjson/value"
)

// These are worked end-to-end scenarios of the reader's behavior, one test
// per scenario.

func TestScenario_trailingJunkIgnored(t *testing.T) {
	const input = "  \n  { \"a\" : 1, \"b\" : [true, false] }  trailing junk\n"

	r := laxjson.NewReader()
	r.SetFlags(laxjson.Tolerant)
	root := value.New()
	n, err := r.Parse(input, root)
	if err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if n != 0 {
		t.Errorf("Parse(%q): got %d errors under Tolerant, want 0: %v", input, n, r.Errors())
	}
	if !root.IsObject() || len(root.Members()) != 2 {
		t.Fatalf("Parse(%q): root = %+v, want a 2-member object", input, root)
	}

	a := root.Find("a")
	if a == nil || a.Kind() != laxjson.Signed || a.Int64() != 1 {
		t.Errorf("Parse(%q): member a = %+v, want signed 1", input, a)
	}
	b := root.Find("b")
	if b == nil || !b.IsArray() || len(b.Items()) != 2 {
		t.Fatalf("Parse(%q): member b = %+v, want a 2-element array", input, b)
	}
	if !b.Items()[0].Bool() || b.Items()[1].Bool() {
		t.Errorf("Parse(%q): member b = %v, want [true, false]", input, b.Items())
	}
}

func TestScenario_lineCommentEndsOnLoneCR(t *testing.T) {
	const input = "// note\r{}"

	r := laxjson.NewReader()
	r.AllowComments(true)
	root := value.New()
	n, err := r.Parse(input, root)
	if err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if n != 0 {
		t.Errorf("Parse(%q): got %d errors, want 0: %v", input, n, r.Errors())
	}
	if !root.IsObject() || len(root.Members()) != 0 {
		t.Fatalf("Parse(%q): root = %+v, want an empty object (the lone CR must end the comment, not swallow '{}')", input, root)
	}
}

func TestScenario_blockCommentAttachesBeforeDefault(t *testing.T) {
	const input = `{ /*hi*/ "x": 1 }`

	r := laxjson.NewReader()
	r.AllowComments(true)
	r.StoreComments(true)
	root := value.New()
	if _, err := r.Parse(input, root); err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if len(r.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want exactly one", r.Warnings())
	}

	x := root.Find("x")
	if x == nil || x.Kind() != laxjson.Signed || x.Int64() != 1 {
		t.Fatalf("Parse(%q): member x = %+v, want signed 1", input, x)
	}
	want := []value.Comment{{Pos: laxjson.Before, Text: "/*hi*/"}}
	if diff := cmp.Diff(want, x.Comments()); diff != "" {
		t.Errorf("Comments on x (-want, +got):\n%s", diff)
	}
	// The comment must not have been misattached to the root object itself.
	if len(root.Comments()) != 0 {
		t.Errorf("root.Comments() = %v, want none", root.Comments())
	}
}

func TestScenario_multilineStringConcatenation(t *testing.T) {
	const input = "[\"foo\"\n\"bar\"]"

	r := laxjson.NewReader()
	r.MultilineStrings(true)
	root := value.New()
	n, err := r.Parse(input, root)
	if err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if n != 0 {
		t.Errorf("Parse(%q): got %d errors, want 0: %v", input, n, r.Errors())
	}
	if len(r.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want exactly one", r.Warnings())
	}
	if len(root.Items()) != 1 || root.Items()[0].Text() != "foobar" {
		t.Fatalf("Parse(%q): items = %+v, want [\"foobar\"]", input, root.Items())
	}
}

func TestScenario_unicodeEscape(t *testing.T) {
	const input = `{ "k": "` + "\x5c" + `u00E9" }` // the \u escape for U+00E9

	r := laxjson.NewReader()
	root := value.New()
	n, err := r.Parse(input, root)
	if err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if n != 0 {
		t.Errorf("Parse(%q): got %d errors, want 0: %v", input, n, r.Errors())
	}
	k := root.Find("k")
	if k == nil || k.Text() != "é" {
		t.Fatalf("Parse(%q): member k = %+v, want %q", input, k, "é")
	}
	if got := []byte(k.Text()); len(got) != 2 || got[0] != 0xC3 || got[1] != 0xA9 {
		t.Errorf("Parse(%q): k bytes = %v, want [0xC3 0xA9]", input, got)
	}
}

func TestScenario_mismatchedCloser(t *testing.T) {
	const input = `[1,2,3}`

	strict := laxjson.NewReader()
	strictRoot := value.New()
	n, err := strict.Parse(input, strictRoot)
	if err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if n != 1 {
		t.Errorf("Parse(%q) under Strict: got %d errors, want 1: %v", input, n, strict.Errors())
	}
	if len(strictRoot.Items()) != 3 {
		t.Fatalf("Parse(%q) under Strict: items = %+v, want 3 elements", input, strictRoot.Items())
	}

	tolerant := laxjson.NewReader()
	tolerant.TolerateMissingClose(true)
	tolerantRoot := value.New()
	n, err = tolerant.Parse(input, tolerantRoot)
	if err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if n != 0 {
		t.Errorf("Parse(%q) under TolerateMissingClose: got %d errors, want 0: %v", input, n, tolerant.Errors())
	}
	if len(tolerant.Warnings()) != 1 {
		t.Errorf("Parse(%q) under TolerateMissingClose: warnings = %v, want 1", input, tolerant.Warnings())
	}
	if len(tolerantRoot.Items()) != 3 {
		t.Fatalf("Parse(%q) under TolerateMissingClose: items = %+v, want 3 elements", input, tolerantRoot.Items())
	}
}

func TestScenario_memBufHexBlob(t *testing.T) {
	const input = `{ "k": 'DEAD' }`

	r := laxjson.NewReader()
	r.AllowMemBuf(true)
	root := value.New()
	n, err := r.Parse(input, root)
	if err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if n != 0 {
		t.Errorf("Parse(%q): got %d errors, want 0: %v", input, n, r.Errors())
	}
	if len(r.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want exactly one", r.Warnings())
	}
	k := root.Find("k")
	if k == nil || !k.IsMemBuf() {
		t.Fatalf("Parse(%q): member k = %+v, want a memory buffer", input, k)
	}
	want := []byte{0xDE, 0xAD}
	if diff := cmp.Diff(want, k.MemBuf()); diff != "" {
		t.Errorf("MemBuf (-want, +got):\n%s", diff)
	}
}

func TestScenario_emptyInputIsInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  \n", "// just a comment\n"} {
		r := laxjson.NewReader()
		r.AllowComments(true)
		root := value.New()
		n, err := r.Parse(input, root)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected read error: %v", input, err)
		}
		if n != 1 {
			t.Errorf("Parse(%q): got %d errors, want exactly 1", input, n)
		}
		if root.IsValid() {
			t.Errorf("Parse(%q): root = %+v, want Invalid", input, root)
		}
	}
}

func TestScenario_emptyContainers(t *testing.T) {
	for _, tc := range []struct {
		input string
		kind  laxjson.Kind
	}{
		{"{}", laxjson.Object},
		{"[]", laxjson.Array},
	} {
		r := laxjson.NewReader()
		root := value.New()
		n, err := r.Parse(tc.input, root)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected read error: %v", tc.input, err)
		}
		if n != 0 {
			t.Errorf("Parse(%q): got %d errors, want 0: %v", tc.input, n, r.Errors())
		}
		if len(r.Warnings()) != 0 {
			t.Errorf("Parse(%q): got %d warnings under Strict, want 0: %v", tc.input, len(r.Warnings()), r.Warnings())
		}
		if root.Kind() != tc.kind {
			t.Errorf("Parse(%q): root kind = %v, want %v", tc.input, root.Kind(), tc.kind)
		}
	}
}

func TestScenario_numericLadder(t *testing.T) {
	tests := []struct {
		input string
		kind  laxjson.Kind
		check func(*value.Node) bool
	}{
		{"-9223372036854775808", laxjson.Signed, func(n *value.Node) bool { return n.Int64() == -9223372036854775808 }},
		{"9223372036854775807", laxjson.Signed, func(n *value.Node) bool { return n.Int64() == 9223372036854775807 }},
		{"9223372036854775808", laxjson.Unsigned, func(n *value.Node) bool { return n.Uint64() == 9223372036854775808 }},
		{"18446744073709551616", laxjson.Double, func(n *value.Node) bool { return n.Float64() > 0 }},
		{"+1", laxjson.Unsigned, func(n *value.Node) bool { return n.Uint64() == 1 }},
		{"-1", laxjson.Signed, func(n *value.Node) bool { return n.Int64() == -1 }},
	}
	for _, test := range tests {
		r := laxjson.NewReader()
		root := value.New()

		n, err := r.Parse("["+test.input+"]", root)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected read error: %v", test.input, err)
		}
		if n != 0 {
			t.Errorf("Parse(%q): got %d errors, want 0: %v", test.input, n, r.Errors())
		}
		got := root.Items()
		if len(got) != 1 {
			t.Fatalf("Parse(%q): items = %+v, want 1 element", test.input, got)
		}
		if got[0].Kind() != test.kind {
			t.Errorf("Parse(%q): kind = %v, want %v", test.input, got[0].Kind(), test.kind)
		}
		if !test.check(got[0]) {
			t.Errorf("Parse(%q): value check failed for %+v", test.input, got[0])
		}
	}
}

func TestScenario_caseInsensitiveLiterals(t *testing.T) {
	const input = `[Null]`

	strict := laxjson.NewReader()
	if n, err := strict.Parse(input, value.New()); err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	} else if n != 1 {
		t.Errorf("Parse(%q) under Strict: got %d errors, want 1", input, n)
	}

	tolerant := laxjson.NewReader()
	tolerant.CaseInsensitiveLiterals(true)
	root := value.New()
	n, err := tolerant.Parse(input, root)
	if err != nil {
		t.Fatalf("Parse: unexpected read error: %v", err)
	}
	if n != 0 {
		t.Errorf("Parse(%q) under CaseInsensitiveLiterals: got %d errors, want 0: %v", input, n, tolerant.Errors())
	}
	if len(root.Items()) != 1 || root.Items()[0].Kind() != laxjson.Null {
		t.Errorf("Parse(%q): items = %+v, want [Null]", input, root.Items())
	}
	if len(tolerant.Warnings()) != 1 {
		t.Errorf("Parse(%q): warnings = %v, want exactly 1", input, tolerant.Warnings())
	}
}
