// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// scanComment is entered when doRead reads a '/'. It classifies the
// comment, slurps its body, and leaves the result in r.comment /
// r.commentLine for attachComment to pick up. It returns the first
// character following the comment, or -1 at EOF.
func (r *Reader) scanComment() int {
	const warnText = "comments are not part of standard JSON syntax"

	ch := r.src.read()
	if ch < 0 {
		return -1
	}

	switch ch {
	case '/': // line comment, runs to LF, a lone CR, or EOF
		pos := r.src.position()
		r.diag.addWarning(AllowComments, pos.Line, pos.ByteCol, warnText)
		r.commentLine = pos.Line
		var text []byte
		text = append(text, '/', '/')
		// byteSource.read already collapses a CR immediately followed by
		// LF into a single '\n'; a bare '\r' reaching us here is therefore
		// a lone-CR line ending on its own, and must end the comment just
		// like '\n' does, not be swallowed into its text.
		for ch >= 0 && ch != '\n' && ch != '\r' {
			ch = r.src.read()
			if ch >= 0 && ch != '\n' && ch != '\r' {
				text = append(text, byte(ch))
			}
		}
		r.comment = string(text)
		if ch >= 0 {
			ch = r.src.read()
		}
		return ch

	case '*': // block comment, runs to "*/"
		pos := r.src.position()
		r.diag.addWarning(AllowComments, pos.Line, pos.ByteCol, warnText)
		r.commentLine = pos.Line
		text := []byte("/*")
		for {
			ch = r.src.read()
			if ch < 0 {
				break
			}
			if ch == '*' && r.src.peek() == '/' {
				r.src.read()
				text = append(text, '*', '/')
				ch = r.src.read()
				break
			}
			text = append(text, byte(ch))
		}
		r.comment = string(text)
		return ch

	default:
		pos := r.src.position()
		r.diag.addError(pos.Line, pos.ByteCol, "stray '/' (did you mean to start a comment?)")
		for ch >= 0 && ch != '\n' {
			if ch == '*' && r.src.peek() == '/' {
				r.src.read()
				return r.src.read()
			}
			ch = r.src.read()
		}
		if ch >= 0 {
			ch = r.src.read()
		}
		return ch
	}
}

// attachComment implements the CommentAttacher priority order: Inline to
// whichever of current/next/lastStored shares the comment's line, then
// Before or After to next/current depending on the CommentsAfter flag.
// parent is the frame's own container value, used to detect the
// "nowhere to attach" case for the After fallback.
//
// current is seeded to the frame's own parent at frame entry (see doRead),
// purely so the After fallback below can recognize "no real value has
// become active in this frame yet". That placeholder doesn't count as a
// genuinely active current for the Inline check: a comment that lands on
// the same line as an untouched container's opening bracket, before any
// colon or comma inside it, still falls through to the Before/After
// fallback rather than decorating the container itself.
func (r *Reader) attachComment(parent Value) {
	defer func() { r.comment = "" }()

	if !r.flags.Has(StoreComments) {
		return
	}

	if r.current != nil && r.current != parent && r.current.Line() == r.commentLine {
		r.current.AddComment(Inline, r.comment)
		return
	}
	if r.next != nil && r.next.Line() == r.commentLine {
		r.next.AddComment(Inline, r.comment)
		return
	}
	if r.lastStored != nil && r.lastStored.Line() == r.commentLine {
		r.lastStored.AddComment(Inline, r.comment)
		return
	}

	pos := r.src.position()
	if r.flags.Has(CommentsAfter) {
		switch {
		case r.current != nil && r.current != parent && r.current.IsValid():
			r.current.AddComment(After, r.comment)
		case r.lastStored != nil:
			r.lastStored.AddComment(After, r.comment)
		default:
			r.diag.addError(pos.Line, pos.ByteCol, "no value found to attach a trailing comment to")
		}
		return
	}

	if r.next != nil {
		r.next.AddComment(Before, r.comment)
		return
	}
	r.diag.addError(pos.Line, pos.ByteCol, "no value found to attach a leading comment to")
}
