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
	"unicode/utf8"

	"github.com/botobag/shrink/internal/unsafe"
)

// Kind identifies one of the four kinds of View.
type Kind uint8

// Enumeration of Kind
const (
	KindShared    Kind = iota // Read-only view over elements
	KindExclusive             // Writable view over elements
	KindText                  // Read-only view over UTF-8 text
	KindMutText               // Writable view over UTF-8 text
)

func (k Kind) String() string {
	switch k {
	case KindShared:
		return "shared"
	case KindExclusive:
		return "exclusive"
	case KindText:
		return "text"
	case KindMutText:
		return "mutable text"
	}
	return "unknown view kind"
}

// View is a non-owning reference to a contiguous run of elements or UTF-8 text that can be narrowed
// in place. The set of views is closed: Shared, Exclusive, Text and MutText are the only
// implementations.
//
// A view never grows. After a successful shrink it refers to a sub-run of what it referred to
// before; after a failed one it is left exactly as it was.
type View interface {
	// Len returns the number of elements (bytes for text views) in the view.
	Len() int

	// Kind returns the kind of the view.
	Kind() Kind

	// TryShrink narrows the view to the sub-run selected by r. It returns an *Error if r is not
	// valid for the view.
	TryShrink(r Range) error

	// Shrink is like TryShrink but panics if r is not valid for the view.
	Shrink(r Range)

	// isView puts a special mark on the four view types so that the set can't be extended from
	// outside this package.
	isView()
}

var (
	_ View = (*Shared[byte])(nil)
	_ View = (*Exclusive[byte])(nil)
	_ View = (*Text)(nil)
	_ View = (*MutText)(nil)
)

//===----------------------------------------------------------------------------------------====//
// Shared
//===----------------------------------------------------------------------------------------====//

// Shared is a read-only view over a slice of elements. Several Shared views may refer to the same
// storage at once.
type Shared[E any] struct {
	s []E
}

// SharedOf creates a Shared view over s. The caller should not modify s through other references
// while the view is in use.
func SharedOf[E any](s []E) *Shared[E] {
	return &Shared[E]{s}
}

func (*Shared[E]) isView() {}

// Len implements View.
func (v *Shared[E]) Len() int {
	return len(v.s)
}

// Kind implements View.
func (*Shared[E]) Kind() Kind {
	return KindShared
}

// At returns the i-th element in the view.
func (v *Shared[E]) At(i int) E {
	return v.s[i]
}

// Clone returns a copy of the elements in the view.
func (v *Shared[E]) Clone() []E {
	return append([]E(nil), v.s...)
}

// AppendTo appends the elements in the view to dst and returns the extended slice.
func (v *Shared[E]) AppendTo(dst []E) []E {
	return append(dst, v.s...)
}

// TryShrink implements View.
func (v *Shared[E]) TryShrink(r Range) error {
	return v.tryShrink(r, "shrink.Shared.TryShrink")
}

// Shrink implements View.
func (v *Shared[E]) Shrink(r Range) {
	if err := v.tryShrink(r, "shrink.Shared.Shrink"); err != nil {
		fail(err)
	}
}

func (v *Shared[E]) tryShrink(r Range, op Op) error {
	// A shared view can be copied freely so index it in place.
	start, end, reason := r.resolve(len(v.s))
	if reason != reasonNone {
		return &Error{
			Op:     op,
			Range:  r,
			Len:    len(v.s),
			Reason: reason,
		}
	}
	v.s = v.s[start:end:end]
	return nil
}

// Chunks returns an iterator over consecutive pieces of the view, each size elements long except
// possibly the last one. It panics if size is not positive.
func (v *Shared[E]) Chunks(size int) *ChunkIterator[E] {
	return newChunkIterator(v.s, size)
}

//===----------------------------------------------------------------------------------------====//
// Exclusive
//===----------------------------------------------------------------------------------------====//

// Exclusive is a writable view over a slice of elements. Writes through the view land in the
// underlying storage; the storage itself is never resized.
type Exclusive[E any] struct {
	s []E
}

// ExclusiveOf creates an Exclusive view over s. The caller should hand s over to the view and
// access the elements only through the view while it's in use.
func ExclusiveOf[E any](s []E) *Exclusive[E] {
	return &Exclusive[E]{s[:len(s):len(s)]}
}

func (*Exclusive[E]) isView() {}

// Len implements View.
func (v *Exclusive[E]) Len() int {
	return len(v.s)
}

// Kind implements View.
func (*Exclusive[E]) Kind() Kind {
	return KindExclusive
}

// At returns the i-th element in the view.
func (v *Exclusive[E]) At(i int) E {
	return v.s[i]
}

// Set stores e as the i-th element in the view.
func (v *Exclusive[E]) Set(i int, e E) {
	v.s[i] = e
}

// Slice returns the elements in the view. The returned slice aliases the view's storage and is
// only valid until the next shrink.
func (v *Exclusive[E]) Slice() []E {
	return v.s
}

// Shared returns a read-only view over the same elements.
func (v *Exclusive[E]) Shared() *Shared[E] {
	return SharedOf(v.s)
}

// TryShrink implements View.
func (v *Exclusive[E]) TryShrink(r Range) error {
	return shrinkSlice(&v.s, r, "shrink.Exclusive.TryShrink")
}

// Shrink implements View.
func (v *Exclusive[E]) Shrink(r Range) {
	if err := shrinkSlice(&v.s, r, "shrink.Exclusive.Shrink"); err != nil {
		fail(err)
	}
}

// Chunks returns an iterator over consecutive pieces of the view. Writes to the returned pieces land
// in the view's storage. It panics if size is not positive.
func (v *Exclusive[E]) Chunks(size int) *ChunkIterator[E] {
	return newChunkIterator(v.s, size)
}

//===----------------------------------------------------------------------------------------====//
// Text
//===----------------------------------------------------------------------------------------====//

// Text is a read-only view over UTF-8 text. Offsets given to TryShrink and Shrink are byte offsets
// and must fall on character boundaries.
type Text struct {
	s string
}

// TextOf creates a Text view over s.
func TextOf(s string) *Text {
	return &Text{s}
}

// BorrowText creates a Text view over the bytes in b without copying them. The caller must not
// modify b while the view (or any string obtained from it) is in use.
func BorrowText(b []byte) *Text {
	return &Text{unsafe.String(b)}
}

func (*Text) isView() {}

// Len implements View.
func (v *Text) Len() int {
	return len(v.s)
}

// Kind implements View.
func (*Text) Kind() Kind {
	return KindText
}

// String returns the text in the view.
func (v *Text) String() string {
	return v.s
}

// Bytes returns a copy of the text in the view.
func (v *Text) Bytes() []byte {
	return []byte(v.s)
}

// BorrowBytes returns the bytes backing the view without copying. The caller must not modify the
// returned bytes.
func (v *Text) BorrowBytes() []byte {
	return unsafe.Bytes(v.s)
}

// TryShrink implements View.
func (v *Text) TryShrink(r Range) error {
	return shrinkString(&v.s, r, "shrink.Text.TryShrink")
}

// Shrink implements View.
func (v *Text) Shrink(r Range) {
	if err := shrinkString(&v.s, r, "shrink.Text.Shrink"); err != nil {
		fail(err)
	}
}

// Chunks returns an iterator over consecutive pieces of the text. A piece is at least size bytes
// long (except the last one) and extends to the next character boundary so that no character is
// split. It panics if size is not positive.
func (v *Text) Chunks(size int) *TextChunkIterator {
	checkChunkSize(size)
	return &TextChunkIterator{
		rest: v.s,
		size: size,
	}
}

//===----------------------------------------------------------------------------------------====//
// MutText
//===----------------------------------------------------------------------------------------====//

// MutText is a writable view over UTF-8 text stored in a byte slice. The view only writes through
// methods that keep the text valid UTF-8, and never hands out its bytes for writing: Bytes returns
// a copy and the pieces from Chunks are MutText views themselves.
type MutText struct {
	b []byte
}

// NewMutText creates a MutText view over b. It returns ErrInvalidUTF8 if b is not valid UTF-8.
func NewMutText(b []byte) (*MutText, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return &MutText{b[:len(b):len(b)]}, nil
}

func (*MutText) isView() {}

// Len implements View.
func (v *MutText) Len() int {
	return len(v.b)
}

// Kind implements View.
func (*MutText) Kind() Kind {
	return KindMutText
}

// String returns the text in the view without copying. The string is only valid until the next
// write through the view.
func (v *MutText) String() string {
	return unsafe.String(v.b)
}

// Bytes returns a copy of the text in the view.
func (v *MutText) Bytes() []byte {
	return append([]byte(nil), v.b...)
}

// ToUpperASCII converts all ASCII letters in the view to upper case in place. Non-ASCII characters
// are left untouched.
func (v *MutText) ToUpperASCII() {
	for i, c := range v.b {
		if 'a' <= c && c <= 'z' {
			v.b[i] = c - ('a' - 'A')
		}
	}
}

// ToLowerASCII converts all ASCII letters in the view to lower case in place. Non-ASCII characters
// are left untouched.
func (v *MutText) ToLowerASCII() {
	for i, c := range v.b {
		if 'A' <= c && c <= 'Z' {
			v.b[i] = c + ('a' - 'A')
		}
	}
}

// TryShrink implements View.
func (v *MutText) TryShrink(r Range) error {
	return shrinkUTF8(&v.b, r, "shrink.MutText.TryShrink")
}

// Shrink implements View.
func (v *MutText) Shrink(r Range) {
	if err := shrinkUTF8(&v.b, r, "shrink.MutText.Shrink"); err != nil {
		fail(err)
	}
}

// Chunks returns an iterator over consecutive pieces of the text. Pieces never split a character
// and are returned as MutText views over the same storage. It panics if size is not positive.
func (v *MutText) Chunks(size int) *UTF8ChunkIterator {
	checkChunkSize(size)
	return &UTF8ChunkIterator{
		rest: v.b,
		size: size,
	}
}
