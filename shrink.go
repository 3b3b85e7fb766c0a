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

package shrink

// TryShrink narrows the slice held in *s to the sub-slice selected by r. If r is not valid for the
// slice, an *Error is returned and *s is left unchanged.
//
// The narrowed slice shares storage with the original one. Its capacity is clipped to its length
// so an append through it never writes past the end of the selected range.
func TryShrink[S ~[]E, E any](s *S, r Range) error {
	return shrinkSlice(s, r, "shrink.TryShrink")
}

// Shrink is like TryShrink but panics if r is not valid for the slice.
func Shrink[S ~[]E, E any](s *S, r Range) {
	if err := shrinkSlice(s, r, "shrink.Shrink"); err != nil {
		fail(err)
	}
}

// TryShrinkString narrows the string held in *s to the substring selected by r. Both ends of the
// selected range must fall on character boundaries. If r is not valid for the string, an *Error is
// returned and *s is left unchanged.
func TryShrinkString[S ~string](s *S, r Range) error {
	return shrinkString(s, r, "shrink.TryShrinkString")
}

// ShrinkString is like TryShrinkString but panics if r is not valid for the string.
func ShrinkString[S ~string](s *S, r Range) {
	if err := shrinkString(s, r, "shrink.ShrinkString"); err != nil {
		fail(err)
	}
}

// TryShrinkUTF8 narrows the UTF-8 encoded text held in *s. It's the byte slice counterpart of
// TryShrinkString: both ends of the selected range must fall on character boundaries.
func TryShrinkUTF8[S ~[]byte](s *S, r Range) error {
	return shrinkUTF8(s, r, "shrink.TryShrinkUTF8")
}

// ShrinkUTF8 is like TryShrinkUTF8 but panics if r is not valid for the text.
func ShrinkUTF8[S ~[]byte](s *S, r Range) {
	if err := shrinkUTF8(s, r, "shrink.ShrinkUTF8"); err != nil {
		fail(err)
	}
}

func shrinkSlice[S ~[]E, E any](s *S, r Range, op Op) error {
	// Take the slice out of the binding, leaving an empty one in its place. It's put back as it was
	// if r turns out to be invalid.
	taken := *s
	*s = nil

	start, end, reason := r.resolve(len(taken))
	if reason != reasonNone {
		*s = taken
		return &Error{
			Op:     op,
			Range:  r,
			Len:    len(taken),
			Reason: reason,
		}
	}

	*s = taken[start:end:end]
	return nil
}

func shrinkString[S ~string](s *S, r Range, op Op) error {
	// Strings are immutable so there's no need to take it out of the binding.
	t := *s

	start, end, err := resolveText(t, r, op)
	if err != nil {
		return err
	}

	*s = t[start:end]
	return nil
}

func shrinkUTF8[S ~[]byte](s *S, r Range, op Op) error {
	taken := *s
	*s = nil

	start, end, err := resolveText(taken, r, op)
	if err != nil {
		*s = taken
		return err
	}

	*s = taken[start:end:end]
	return nil
}

// resolveText resolves r against text and checks that both resulting offsets are character
// boundaries.
func resolveText[T ~string | ~[]byte](text T, r Range, op Op) (int, int, error) {
	n := len(text)
	start, end, reason := r.resolve(n)
	if reason != reasonNone {
		return 0, 0, &Error{
			Op:     op,
			Range:  r,
			Len:    n,
			Reason: reason,
		}
	}

	for _, offset := range [2]int{start, end} {
		if !isCharBoundary(text, offset) {
			return 0, 0, &Error{
				Op:     op,
				Range:  r,
				Len:    n,
				Reason: ReasonNotCharBoundary,
				Offset: offset,
			}
		}
	}

	return start, end, nil
}
