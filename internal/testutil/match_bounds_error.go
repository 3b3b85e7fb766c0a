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

package testutil

import (
	"errors"

	"github.com/botobag/shrink"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// ErrorFieldsMatcher sets up fields to match.
type ErrorFieldsMatcher func(gstruct.Fields)

// OpIs matches the Op in a shrink.Error to be the same as the given one.
func OpIs(op shrink.Op) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Op"] = gomega.Equal(op)
	}
}

// RangeIs matches the requested range in a shrink.Error.
func RangeIs(r shrink.Range) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Range"] = gomega.Equal(r)
	}
}

// LenIs matches the length of the view reported in a shrink.Error.
func LenIs(n int) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Len"] = gomega.Equal(n)
	}
}

// ReasonIs matches the reason in a shrink.Error.
func ReasonIs(reason shrink.Reason) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Reason"] = gomega.Equal(reason)
	}
}

// MisalignedAt matches a shrink.Error rejecting a range because the given byte offset is not a
// character boundary.
func MisalignedAt(offset int) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Reason"] = gomega.Equal(shrink.ReasonNotCharBoundary)
		fields["Offset"] = gomega.Equal(offset)
	}
}

// MatchBoundsError matches a *shrink.Error with given fields.
//
// The following example matches an error rejecting range 0..14 on a 13-byte view.
//
//	Expect(err).Should(MatchBoundsError(
//		RangeIs(shrink.To(14)),
//		LenIs(13),
//		ReasonIs(shrink.ReasonOutOfRange),
//	))
func MatchBoundsError(matchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	fields := gstruct.Fields{}
	for _, matcher := range matchers {
		matcher(fields)
	}
	return gomega.SatisfyAll(
		gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, fields)),
		gomega.WithTransform(func(err error) bool {
			return errors.Is(err, shrink.ErrBounds)
		}, gomega.BeTrue()),
	)
}
