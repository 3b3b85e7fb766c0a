/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package shrink narrows a slice or string binding to a subrange of itself, in place.
//
// Most of the time re-slicing is all one needs:
//
//	s = s[1:]
//
// The functions in this package do the same thing on the variable that holds the slice, which is
// handy when the variable is captured by a closure or lives in a struct field, and they report an
// invalid range as an error instead of a runtime panic:
//
//	buf := []byte("Hello, world!")
//	if err := shrink.TryShrink(&buf, shrink.Span(1, len(buf)-1)); err != nil {
//		return err
//	}
//	// buf is now "ello, world"
//
// Every operation comes in two forms. TryShrink-style functions return an *Error (which wraps
// ErrBounds) and leave the binding untouched when the range is invalid; Shrink-style functions
// panic instead and are meant for call sites where an invalid range is a bug.
//
// Text views (TryShrinkString, TryShrinkUTF8, Text and MutText) additionally require both ends of
// the range to fall on character boundaries of the UTF-8 encoded text.
//
// Ranges are relative to the current length of the view, so shrinking is composable:
//
//	shrink.Shrink(&s, shrink.From(1))
//	shrink.Shrink(&s, shrink.To(len(s)-1))
//
// has the same effect as
//
//	shrink.Shrink(&s, shrink.Span(1, len(s)-1))
//
// A shrink never allocates, copies elements or grows a view.
package shrink
