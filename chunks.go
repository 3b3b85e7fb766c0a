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
	"github.com/botobag/shrink/iterator"
)

func checkChunkSize(size int) {
	if size <= 0 {
		panic("shrink: chunk size must be positive")
	}
}

// ChunkIterator iterates consecutive pieces of a slice. It works by shrinking its cursor past each
// piece it hands out.
type ChunkIterator[E any] struct {
	rest []E
	size int
}

func newChunkIterator[E any](s []E, size int) *ChunkIterator[E] {
	checkChunkSize(size)
	return &ChunkIterator[E]{
		rest: s,
		size: size,
	}
}

// Next returns the next piece in the iteration. It returns an error iterator.Done to indicate that
// there're no more pieces.
func (iter *ChunkIterator[E]) Next() ([]E, error) {
	if len(iter.rest) == 0 {
		return nil, iterator.Done
	}

	n := min(iter.size, len(iter.rest))
	chunk := iter.rest
	Shrink(&chunk, To(n))
	Shrink(&iter.rest, From(n))
	return chunk, nil
}

// TextChunkIterator iterates consecutive pieces of a string without splitting characters.
type TextChunkIterator struct {
	rest string
	size int
}

// Next returns the next piece in the iteration. It returns an error iterator.Done to indicate that
// there're no more pieces.
func (iter *TextChunkIterator) Next() (string, error) {
	if len(iter.rest) == 0 {
		return "", iterator.Done
	}

	n := nextCharBoundary(iter.rest, min(iter.size, len(iter.rest)))
	chunk := iter.rest
	ShrinkString(&chunk, To(n))
	ShrinkString(&iter.rest, From(n))
	return chunk, nil
}

// UTF8ChunkIterator iterates consecutive pieces of a MutText without splitting characters. Each
// piece is itself a MutText so writes through it stay UTF-8 preserving.
type UTF8ChunkIterator struct {
	rest []byte
	size int
}

// Next returns the next piece in the iteration. It returns an error iterator.Done to indicate that
// there're no more pieces.
func (iter *UTF8ChunkIterator) Next() (*MutText, error) {
	if len(iter.rest) == 0 {
		return nil, iterator.Done
	}

	n := nextCharBoundary(iter.rest, min(iter.size, len(iter.rest)))
	chunk := iter.rest
	ShrinkUTF8(&chunk, To(n))
	ShrinkUTF8(&iter.rest, From(n))
	return &MutText{chunk}, nil
}
