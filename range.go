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

import (
	"math"
	"strconv"
)

// BoundKind specifies how a Bound limits one end of a Range.
type BoundKind uint8

// Enumeration of BoundKind
const (
	Unbounded BoundKind = iota // No limit on this end.
	Included                   // Offset is part of the range.
	Excluded                   // Offset is not part of the range.
)

// Bound is one end of a Range. Offset is ignored when Kind is Unbounded.
type Bound struct {
	Kind   BoundKind
	Offset int
}

// Range selects a sub-run of a view. Offsets are relative to the view's current length, not to the
// storage the view was originally taken from. The zero value selects the whole view.
type Range struct {
	Start Bound
	End   Bound
}

// Full returns the range "..".
func Full() Range {
	return Range{}
}

// From returns the range "start..".
func From(start int) Range {
	return Range{
		Start: Bound{Included, start},
	}
}

// To returns the range "..end".
func To(end int) Range {
	return Range{
		End: Bound{Excluded, end},
	}
}

// ToInclusive returns the range "..=end".
func ToInclusive(end int) Range {
	return Range{
		End: Bound{Included, end},
	}
}

// Span returns the range "start..end".
func Span(start, end int) Range {
	return Range{
		Start: Bound{Included, start},
		End:   Bound{Excluded, end},
	}
}

// SpanInclusive returns the range "start..=end".
func SpanInclusive(start, end int) Range {
	return Range{
		Start: Bound{Included, start},
		End:   Bound{Included, end},
	}
}

// Resolve computes the half-open offsets [start, end) the range selects from a view of length n.
// ok is false when the offsets do not satisfy 0 <= start <= end <= n.
func (r Range) Resolve(n int) (start int, end int, ok bool) {
	start, end, reason := r.resolve(n)
	return start, end, reason == reasonNone
}

// resolve is the Reason-reporting version of Resolve. On failure, start and end hold whatever could
// be computed before the problem was found.
func (r Range) resolve(n int) (start int, end int, reason Reason) {
	// Offsets are checked before the +1 adjustment of Excluded start and Included end bounds so a
	// negative offset can never be turned into a valid one.
	if r.Start.Kind != Unbounded && r.Start.Offset < 0 {
		return 0, 0, ReasonOutOfRange
	}
	if r.End.Kind != Unbounded && r.End.Offset < 0 {
		return 0, 0, ReasonOutOfRange
	}

	switch r.Start.Kind {
	case Unbounded:
		start = 0
	case Included:
		start = r.Start.Offset
	case Excluded:
		if r.Start.Offset == math.MaxInt {
			return 0, 0, ReasonOutOfRange
		}
		start = r.Start.Offset + 1
	}

	switch r.End.Kind {
	case Unbounded:
		end = n
	case Included:
		if r.End.Offset == math.MaxInt {
			return start, 0, ReasonOutOfRange
		}
		end = r.End.Offset + 1
	case Excluded:
		end = r.End.Offset
	}

	switch {
	case start > n || end > n:
		return start, end, ReasonOutOfRange
	case start > end:
		return start, end, ReasonReversed
	}
	return start, end, reasonNone
}

// String renders the range in the familiar "1..", "..=4" or "2..5" notation.
func (r Range) String() string {
	var buf []byte
	switch r.Start.Kind {
	case Included:
		buf = strconv.AppendInt(buf, int64(r.Start.Offset), 10)
	case Excluded:
		// Excluded start has no notation of its own. Print the inclusive equivalent.
		if r.Start.Offset == math.MaxInt {
			buf = append(buf, '(')
			buf = strconv.AppendInt(buf, int64(r.Start.Offset), 10)
			buf = append(buf, ')')
		} else {
			buf = strconv.AppendInt(buf, int64(r.Start.Offset)+1, 10)
		}
	}

	buf = append(buf, ".."...)

	switch r.End.Kind {
	case Included:
		buf = append(buf, '=')
		buf = strconv.AppendInt(buf, int64(r.End.Offset), 10)
	case Excluded:
		buf = strconv.AppendInt(buf, int64(r.End.Offset), 10)
	}

	return string(buf)
}
