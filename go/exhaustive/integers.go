// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package exhaustive provides producers enumerating every value of a domain
// in a fixed order, simple values first.
package exhaustive

import (
	"fmt"
	"math"
	"math/big"

	"github.com/Fantom-foundation/exhaust/go/common"
	"github.com/Fantom-foundation/exhaust/go/seq"
	"golang.org/x/exp/constraints"
)

func Bools() seq.Producer[bool] {
	return seq.FromSlice([]bool{false, true})
}

// Range produces lo, lo+1, ..., hi-1. It panics if lo > hi.
func Range[T constraints.Integer](lo, hi T) seq.Producer[T] {
	checkRange(lo, hi)
	return seq.Func[T](func() (T, bool) {
		if lo >= hi {
			return 0, false
		}
		lo++
		return lo - 1, true
	})
}

// RangeInclusive produces lo, lo+1, ..., hi. It panics if lo > hi.
func RangeInclusive[T constraints.Integer](lo, hi T) seq.Producer[T] {
	checkRange(lo, hi)
	done := false
	return seq.Func[T](func() (T, bool) {
		if done {
			return 0, false
		}
		if lo == hi {
			done = true
			return lo, true
		}
		lo++
		return lo - 1, true
	})
}

func checkRange[T constraints.Integer](lo, hi T) {
	if lo > hi {
		panic(fmt.Errorf("%w, lower bound %d exceeds upper bound %d", common.ErrInvalidRange, lo, hi))
	}
}

// Naturals produces all uint64 values in ascending order.
func Naturals() seq.Producer[uint64] {
	return RangeInclusive[uint64](0, math.MaxUint64)
}

// Integers produces all int64 values ordered by absolute value, positive
// values first: 0, 1, -1, 2, -2, ...
func Integers() seq.Producer[int64] {
	negatives := seq.Chain(
		seq.Map(RangeInclusive[int64](1, math.MaxInt64), func(x int64) int64 { return -x }),
		seq.Single[int64](math.MinInt64),
	)
	return seq.Chain(
		seq.Single[int64](0),
		seq.Interleave(RangeInclusive[int64](1, math.MaxInt64), negatives),
	)
}

// BigNaturals produces all non-negative integers in ascending order.
func BigNaturals() seq.Producer[*big.Int] {
	one := big.NewInt(1)
	return seq.Iterate(new(big.Int), func(x *big.Int) *big.Int {
		return new(big.Int).Add(x, one)
	})
}

// BigIntegers produces all integers ordered by absolute value, positive
// values first.
func BigIntegers() seq.Producer[*big.Int] {
	positives := seq.Iterate(big.NewInt(1), func(x *big.Int) *big.Int {
		return new(big.Int).Add(x, big.NewInt(1))
	})
	negatives := seq.Iterate(big.NewInt(-1), func(x *big.Int) *big.Int {
		return new(big.Int).Sub(x, big.NewInt(1))
	})
	return seq.Chain(seq.Single(new(big.Int)), seq.Interleave(positives, negatives))
}
