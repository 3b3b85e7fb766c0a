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
	"errors"
	"strconv"
	"strings"
	"unsafe"

	"github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "shrink.Text.TryShrink".
type Op string

// Reason tells why a Range was rejected. All reasons are details of the same error: the range is
// not valid for the view.
type Reason uint8

// Enumeration of Reason
const (
	reasonNone            Reason = iota // Zero value, the range is valid.
	ReasonOutOfRange                    // An offset is negative, overflows or exceeds the view's length.
	ReasonReversed                      // The start offset is past the end offset.
	ReasonNotCharBoundary               // An offset falls inside an encoded character (text views only).
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfRange:
		return "offset out of range"
	case ReasonReversed:
		return "start is after end"
	case ReasonNotCharBoundary:
		return "not a character boundary"
	}
	return ""
}

// boundsError is defined to serve as type for ErrBounds so that it can be an immutable global.
type boundsError int

// Error implements Go's error interface for "boundsError".
func (boundsError) Error() string {
	return "slice index out of bounds"
}

var _ error = boundsError(0)

// ErrBounds is the only kind of error returned by a shrink operation. Every *Error wraps it so
// callers can check for it with errors.Is.
const ErrBounds boundsError = 0

// ErrInvalidUTF8 is returned by NewMutText when the given bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

// An Error describes a rejected shrink. It reports the range relative to the view as it was at the
// time of the call.
type Error struct {
	// Op is the operation that rejected the range.
	Op Op

	// Range is the range that was requested.
	Range Range

	// Len is the length of the view the range was applied to.
	Len int

	// Reason tells why the range was rejected.
	Reason Reason

	// Offset is the byte offset that falls inside a character. It is only meaningful when Reason is
	// ReasonNotCharBoundary.
	Offset int
}

var _ error = (*Error)(nil)

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
		b.WriteString(": ")
	}
	b.WriteString(ErrBounds.Error())
	b.WriteString(": range ")
	b.WriteString(e.Range.String())
	b.WriteString(" on length ")
	b.WriteString(strconv.Itoa(e.Len))

	switch e.Reason {
	case ReasonNotCharBoundary:
		b.WriteString(" (byte offset ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteString(" is ")
		b.WriteString(e.Reason.String())
		b.WriteString(")")
	case ReasonOutOfRange, ReasonReversed:
		b.WriteString(" (")
		b.WriteString(e.Reason.String())
		b.WriteString(")")
	}

	return b.String()
}

// Unwrap returns ErrBounds.
func (e *Error) Unwrap() error {
	return ErrBounds
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(ErrBounds.Error())

	if len(err.Op) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("op")
		stream.WriteString(string(err.Op))
	}

	stream.WriteMore()
	stream.WriteObjectField("range")
	stream.WriteString(err.Range.String())

	stream.WriteMore()
	stream.WriteObjectField("len")
	stream.WriteInt(err.Len)

	stream.WriteMore()
	stream.WriteObjectField("reason")
	stream.WriteString(err.Reason.String())

	if err.Reason == ReasonNotCharBoundary {
		stream.WriteMore()
		stream.WriteObjectField("offset")
		stream.WriteInt(err.Offset)
	}

	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("shrink.Error", errorMarshaller{})
}

// fail is called by the panicking forms when the fallible form returned an error.
func fail(err error) {
	panic("cannot index slice by this range: " + err.Error())
}
