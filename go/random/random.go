// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package random provides infinite producers of pseudo-random values. Every
// producer is fully determined by the seed it is created with. Producers
// making several independent random decisions derive one stream per
// decision by scrambling their seed with a distinct role.
package random

import (
	"fmt"
	"math"

	"github.com/Fantom-foundation/exhaust/go/common"
	"github.com/Fantom-foundation/exhaust/go/seed"
	"github.com/Fantom-foundation/exhaust/go/seq"
	"golang.org/x/exp/constraints"
	"pgregory.net/rand"
)

// Generator creates a producer from a seed.
type Generator[T any] func(seed.Seed) seq.Producer[T]

func Bools(s seed.Seed) seq.Producer[bool] {
	rnd := s.Rand()
	return seq.Func[bool](func() (bool, bool) {
		return rnd.Uint64()&1 == 1, true
	})
}

// Uniform produces values uniformly distributed in [lo, hi]. It panics if
// lo > hi.
func Uniform[T constraints.Integer](s seed.Seed, lo, hi T) seq.Producer[T] {
	if lo > hi {
		panic(fmt.Errorf("%w, lower bound %d exceeds upper bound %d", common.ErrInvalidRange, lo, hi))
	}
	rnd := s.Rand()
	span := uint64(hi) - uint64(lo)
	return seq.Func[T](func() (T, bool) {
		if span == math.MaxUint64 {
			return T(rnd.Uint64()), true
		}
		return T(uint64(lo) + rnd.Uint64n(span+1)), true
	})
}

// Choose produces elements of the given slice, uniformly distributed. It
// panics if the slice is empty.
func Choose[T any](s seed.Seed, values []T) seq.Producer[T] {
	if len(values) == 0 {
		panic(fmt.Errorf("%w, no values to choose from", common.ErrEmptyDomain))
	}
	positions := Uniform(s, 0, len(values)-1)
	return seq.Map(positions, func(i int) T {
		return values[i]
	})
}

// geometric samples a geometric distribution on 0, 1, 2, ... with the given
// mean.
func geometric(rnd *rand.Rand, mean float64) int {
	if mean <= 0 {
		return 0
	}
	p := 1 / (mean + 1)
	k := 0
	for rnd.Float64() >= p {
		k++
	}
	return k
}
