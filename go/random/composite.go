// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package random

import (
	"github.com/Fantom-foundation/exhaust/go/seed"
	"github.com/Fantom-foundation/exhaust/go/seq"
	"github.com/Fantom-foundation/exhaust/go/tuples"
)

// Pairs produces pairs of independently generated values.
func Pairs[A, B any](s seed.Seed, xs Generator[A], ys Generator[B]) seq.Producer[tuples.Pair[A, B]] {
	first := xs(seed.Scramble(s, "xs"))
	second := ys(seed.Scramble(s, "ys"))
	return seq.Func[tuples.Pair[A, B]](func() (tuples.Pair[A, B], bool) {
		x, _ := first.Next()
		y, _ := second.Next()
		return tuples.Pair[A, B]{First: x, Second: y}, true
	})
}

// Vecs produces vectors with geometrically distributed lengths of the given
// mean, filled with elements of the given generator.
func Vecs[T any](s seed.Seed, elements Generator[T], meanLength float64) seq.Producer[[]T] {
	lengths := seed.Scramble(s, "lengths").Rand()
	values := elements(seed.Scramble(s, "elements"))
	return seq.Func[[]T](func() ([]T, bool) {
		res := make([]T, geometric(lengths, meanLength))
		for i := range res {
			res[i], _ = values.Next()
		}
		return res, true
	})
}

// AsciiChars produces printable ASCII characters, uniformly distributed.
func AsciiChars(s seed.Seed) seq.Producer[rune] {
	return Uniform[rune](s, ' ', '~')
}

// Strings produces strings of printable ASCII characters with lengths of
// the given mean.
func Strings(s seed.Seed, meanLength float64) seq.Producer[string] {
	return seq.Map(Vecs(s, AsciiChars, meanLength), func(chars []rune) string {
		return string(chars)
	})
}
