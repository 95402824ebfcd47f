// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package exhaustive

import (
	"github.com/Fantom-foundation/exhaust/go/cache"
	"github.com/Fantom-foundation/exhaust/go/index"
	"github.com/Fantom-foundation/exhaust/go/seq"
	"github.com/Fantom-foundation/exhaust/go/tuples"
)

// AsciiChars produces all ASCII characters: letters first, then digits,
// remaining printable characters, and control characters last.
func AsciiChars() seq.Producer[rune] {
	printable := seq.Filter(RangeInclusive[rune](' ', '~'), func(r rune) bool {
		return !isAsciiLetter(r) && !('0' <= r && r <= '9')
	})
	return seq.Chain(
		RangeInclusive('a', 'z'),
		RangeInclusive('A', 'Z'),
		RangeInclusive('0', '9'),
		printable,
		RangeInclusive[rune](0, 0x1f),
		seq.Single[rune](0x7f),
	)
}

func isAsciiLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Vecs produces all vectors of length n over the values of xs, in Z-order.
func Vecs[T any](xs seq.Producer[T], n int) seq.Producer[[]T] {
	return tuples.TuplesFromSingle(index.ZOrder, xs, n)
}

// Strings produces all strings over the given characters. Lengths and the
// positions of strings among those of equal length grow at the same rate.
// All lengths read the characters from one buffer.
func Strings(chars seq.Producer[rune]) seq.Producer[string] {
	shared := cache.New(chars)
	length := 0
	lengths := seq.Func[int](func() (int, bool) {
		// Without characters, the empty string is the only string.
		if length > 0 {
			if _, found := shared.Get(0); !found {
				return 0, false
			}
		}
		length++
		return length - 1, true
	})
	pairs := tuples.DependentPairs(index.ZOrder, lengths, func(n int) seq.Producer[[]rune] {
		return tuples.TuplesFromCache(index.ZOrder, shared, n)
	})
	return seq.Map(pairs, func(p tuples.Pair[int, []rune]) string {
		return string(p.Second)
	})
}
