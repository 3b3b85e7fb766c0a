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

package shrink_test

import (
	"errors"

	"github.com/botobag/shrink"
	. "github.com/botobag/shrink/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TryShrink", func() {
	var slice []byte

	BeforeEach(func() {
		slice = []byte("hello, world!")
	})

	It("narrows from the front and then from the back", func() {
		Expect(shrink.TryShrink(&slice, shrink.From(1))).Should(Succeed())
		Expect(string(slice)).Should(Equal("ello, world!"))
		Expect(slice).Should(HaveLen(12))

		Expect(shrink.TryShrink(&slice, shrink.To(len(slice)-1))).Should(Succeed())
		Expect(string(slice)).Should(Equal("ello, world"))
		Expect(slice).Should(HaveLen(11))
	})

	It("keeps referring to the same storage", func() {
		storage := slice
		Expect(shrink.TryShrink(&slice, shrink.Span(7, 12))).Should(Succeed())
		Expect(string(slice)).Should(Equal("world"))

		slice[0] = 'W'
		Expect(string(storage)).Should(Equal("hello, World!"))
	})

	It("clips capacity to the selected range", func() {
		Expect(shrink.TryShrink(&slice, shrink.Span(0, 5))).Should(Succeed())
		Expect(cap(slice)).Should(Equal(5))

		storage := []byte("hello, world!")
		slice = storage
		Expect(shrink.TryShrink(&slice, shrink.To(5))).Should(Succeed())
		_ = append(slice, 'X')
		Expect(string(storage)).Should(Equal("hello, world!"))
	})

	It("leaves the slice unchanged for the full range", func() {
		Expect(shrink.TryShrink(&slice, shrink.Full())).Should(Succeed())
		Expect(string(slice)).Should(Equal("hello, world!"))
		Expect(shrink.TryShrink(&slice, shrink.Span(0, len(slice)))).Should(Succeed())
		Expect(string(slice)).Should(Equal("hello, world!"))
	})

	It("can shrink to zero length and keep shrinking", func() {
		Expect(shrink.TryShrink(&slice, shrink.From(13))).Should(Succeed())
		Expect(slice).Should(BeEmpty())
		Expect(shrink.TryShrink(&slice, shrink.Full())).Should(Succeed())
		Expect(slice).Should(BeEmpty())
		Expect(shrink.TryShrink(&slice, shrink.From(1))).ShouldNot(Succeed())
	})

	It("works on nil slices", func() {
		var s []int
		Expect(shrink.TryShrink(&s, shrink.Full())).Should(Succeed())
		Expect(s).Should(BeEmpty())
		Expect(shrink.TryShrink(&s, shrink.To(1))).ShouldNot(Succeed())
	})

	It("works on named slice types", func() {
		type Path []string
		p := Path{"a", "b", "c"}
		Expect(shrink.TryShrink(&p, shrink.From(1))).Should(Succeed())
		Expect(p).Should(Equal(Path{"b", "c"}))
	})

	It("composes like a single shrink with the combined range", func() {
		for a := 0; a <= len(slice); a++ {
			for b := a; b <= len(slice); b++ {
				for c := 0; c <= b-a; c++ {
					for d := c; d <= b-a; d++ {
						twice := []byte("hello, world!")
						Expect(shrink.TryShrink(&twice, shrink.Span(a, b))).Should(Succeed())
						Expect(shrink.TryShrink(&twice, shrink.Span(c, d))).Should(Succeed())

						once := []byte("hello, world!")
						Expect(shrink.TryShrink(&once, shrink.Span(a+c, a+d))).Should(Succeed())

						Expect(twice).Should(Equal(once))
					}
				}
			}
		}
	})

	It("rejects an end past the length and leaves the slice untouched", func() {
		storage := slice
		err := shrink.TryShrink(&slice, shrink.To(len(slice)+1))
		Expect(err).Should(MatchBoundsError(
			OpIs("shrink.TryShrink"),
			RangeIs(shrink.To(14)),
			LenIs(13),
			ReasonIs(shrink.ReasonOutOfRange),
		))
		Expect(errors.Is(err, shrink.ErrBounds)).Should(BeTrue())

		Expect(string(slice)).Should(Equal("hello, world!"))
		Expect(slice).Should(HaveLen(13))
		Expect(&slice[0]).Should(BeIdenticalTo(&storage[0]))
	})

	It("rejects a start past the length", func() {
		Expect(shrink.TryShrink(&slice, shrink.From(14))).Should(MatchBoundsError(
			ReasonIs(shrink.ReasonOutOfRange),
		))
		Expect(string(slice)).Should(Equal("hello, world!"))
	})

	It("rejects negative offsets on inclusive ends and excluded starts", func() {
		Expect(shrink.TryShrink(&slice, shrink.ToInclusive(-1))).Should(MatchBoundsError(
			RangeIs(shrink.ToInclusive(-1)),
			ReasonIs(shrink.ReasonOutOfRange),
		))
		Expect(shrink.TryShrink(&slice, shrink.SpanInclusive(0, -1))).Should(MatchBoundsError(
			ReasonIs(shrink.ReasonOutOfRange),
		))
		Expect(shrink.TryShrink(&slice, shrink.Range{
			Start: shrink.Bound{Kind: shrink.Excluded, Offset: -1},
		})).Should(MatchBoundsError(
			ReasonIs(shrink.ReasonOutOfRange),
		))
		Expect(string(slice)).Should(Equal("hello, world!"))
	})

	It("rejects a reversed range", func() {
		Expect(shrink.TryShrink(&slice, shrink.Span(5, 2))).Should(MatchBoundsError(
			RangeIs(shrink.Span(5, 2)),
			ReasonIs(shrink.ReasonReversed),
		))
		Expect(string(slice)).Should(Equal("hello, world!"))
	})

	It("reports offsets relative to the current view", func() {
		Expect(shrink.TryShrink(&slice, shrink.From(10))).Should(Succeed())
		Expect(shrink.TryShrink(&slice, shrink.To(5))).Should(MatchBoundsError(
			RangeIs(shrink.To(5)),
			LenIs(3),
		))
		Expect(string(slice)).Should(Equal("ld!"))
	})

	It("allows shrinking a slice captured by a closure", func() {
		buffer := make([]byte, 100)
		s := buffer
		assignByte := func(b byte) {
			s[0] = b
			shrink.Shrink(&s, shrink.From(1))
		}

		for i := 0; i < len(buffer); i++ {
			assignByte(byte(i))
		}

		Expect(s).Should(BeEmpty())
		for i := range buffer {
			Expect(buffer[i]).Should(Equal(byte(i)))
		}
	})
})

var _ = Describe("Shrink", func() {
	It("narrows like TryShrink", func() {
		slice := []byte("hello, world!")
		shrink.Shrink(&slice, shrink.From(1))
		shrink.Shrink(&slice, shrink.To(len(slice)-1))
		Expect(string(slice)).Should(Equal("ello, world"))
	})

	It("panics when the range is out of bounds", func() {
		slice := []byte("hello, world!")
		Expect(func() {
			shrink.Shrink(&slice, shrink.To(len(slice)+1))
		}).Should(Panic())
		Expect(string(slice)).Should(Equal("hello, world!"))
	})

	It("panics with a descriptive message", func() {
		slice := make([]byte, 13)
		message := panicMessage(func() {
			shrink.Shrink(&slice, shrink.To(100))
		})
		Expect(message).Should(Equal(
			"cannot index slice by this range: shrink.Shrink: slice index out of bounds: " +
				"range ..100 on length 13 (offset out of range)"))
	})
})

var _ = Describe("TryShrinkString", func() {
	It("narrows text made of single-byte characters", func() {
		s := "Hello, world!"
		Expect(shrink.TryShrinkString(&s, shrink.Span(1, 12))).Should(Succeed())
		Expect(s).Should(Equal("ello, world"))
	})

	It("rejects an offset inside a multi-byte character", func() {
		s := "🦀"
		Expect(s).Should(HaveLen(4))
		Expect(shrink.TryShrinkString(&s, shrink.From(1))).Should(MatchBoundsError(
			OpIs("shrink.TryShrinkString"),
			LenIs(4),
			MisalignedAt(1),
		))
		Expect(s).Should(Equal("🦀"))
	})

	It("checks the end offset as well", func() {
		s := "aé"
		Expect(shrink.TryShrinkString(&s, shrink.To(2))).Should(MatchBoundsError(
			MisalignedAt(2),
		))
		Expect(shrink.TryShrinkString(&s, shrink.To(3))).Should(Succeed())
		Expect(s).Should(Equal("aé"))
		Expect(shrink.TryShrinkString(&s, shrink.From(1))).Should(Succeed())
		Expect(s).Should(Equal("é"))
	})

	It("accepts the boundaries around multi-byte characters", func() {
		s := "a🦀b"
		Expect(shrink.TryShrinkString(&s, shrink.Span(1, 5))).Should(Succeed())
		Expect(s).Should(Equal("🦀"))
		Expect(shrink.TryShrinkString(&s, shrink.Span(4, 4))).Should(Succeed())
		Expect(s).Should(BeEmpty())
	})

	It("reports out of range before misalignment", func() {
		s := "🦀"
		Expect(shrink.TryShrinkString(&s, shrink.Span(1, 5))).Should(MatchBoundsError(
			ReasonIs(shrink.ReasonOutOfRange),
		))
	})

	It("works on named string types", func() {
		type Name string
		n := Name("artemis")
		Expect(shrink.TryShrinkString(&n, shrink.To(3))).Should(Succeed())
		Expect(n).Should(Equal(Name("art")))
	})
})

var _ = Describe("ShrinkString", func() {
	It("panics when a range endpoint is not on a character boundary", func() {
		s := "🦀"
		Expect(func() {
			shrink.ShrinkString(&s, shrink.From(1))
		}).Should(Panic())
		Expect(s).Should(Equal("🦀"))
	})

	It("narrows like TryShrinkString", func() {
		s := "Hello, world!"
		shrink.ShrinkString(&s, shrink.SpanInclusive(7, 11))
		Expect(s).Should(Equal("world"))
	})
})

var _ = Describe("TryShrinkUTF8", func() {
	It("narrows text stored in bytes", func() {
		b := []byte("Hello, world!")
		Expect(shrink.TryShrinkUTF8(&b, shrink.Span(1, 12))).Should(Succeed())
		Expect(string(b)).Should(Equal("ello, world"))
	})

	It("rejects misaligned offsets and restores the original bytes", func() {
		storage := []byte("🦀")
		b := storage
		Expect(shrink.TryShrinkUTF8(&b, shrink.From(1))).Should(MatchBoundsError(
			OpIs("shrink.TryShrinkUTF8"),
			MisalignedAt(1),
		))
		Expect(b).Should(Equal(storage))
		Expect(&b[0]).Should(BeIdenticalTo(&storage[0]))
	})

	It("panics in the panicking form", func() {
		b := []byte("🦀")
		Expect(func() {
			shrink.ShrinkUTF8(&b, shrink.To(3))
		}).Should(Panic())
		Expect(func() {
			shrink.ShrinkUTF8(&b, shrink.To(4))
		}).ShouldNot(Panic())
	})
})
