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
	"io"
)

// Writer fills a fixed byte slice from the front. Each write copies into the unwritten part of the
// slice and then shrinks it past what was written. Writer never allocates or grows the slice.
//
//	buf := make([]byte, 100)
//	w := shrink.NewWriter(buf)
//	for i := 0; i < 100; i++ {
//		w.WriteByte(byte(i))
//	}
type Writer struct {
	buf  []byte
	rest []byte
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
)

// NewWriter creates a Writer that writes into buf.
func NewWriter(buf []byte) *Writer {
	w := &Writer{buf: buf}
	w.Reset()
	return w
}

// Write copies as much of p as fits into the unwritten part of the buffer. It returns
// io.ErrShortWrite if p doesn't fit entirely.
func (w *Writer) Write(p []byte) (int, error) {
	n := copy(w.rest, p)
	Shrink(&w.rest, From(n))
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteString is like Write but takes a string.
func (w *Writer) WriteString(s string) (int, error) {
	n := copy(w.rest, s)
	Shrink(&w.rest, From(n))
	if n < len(s) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteByte writes a single byte. It returns io.ErrShortWrite if the buffer is full.
func (w *Writer) WriteByte(c byte) error {
	if len(w.rest) == 0 {
		return io.ErrShortWrite
	}
	w.rest[0] = c
	Shrink(&w.rest, From(1))
	return nil
}

// Written returns the part of the buffer that has been written.
func (w *Writer) Written() []byte {
	return w.buf[:len(w.buf)-len(w.rest)]
}

// Available returns the number of bytes that can still be written.
func (w *Writer) Available() int {
	return len(w.rest)
}

// Reset discards everything written so that the whole buffer is available again.
func (w *Writer) Reset() {
	w.rest = w.buf[:len(w.buf):len(w.buf)]
}
