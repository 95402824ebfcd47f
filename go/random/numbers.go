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
	"math/big"

	. "github.com/Fantom-foundation/exhaust/go/common"
	"github.com/Fantom-foundation/exhaust/go/exhaustive"
	"github.com/Fantom-foundation/exhaust/go/seed"
	"github.com/Fantom-foundation/exhaust/go/seq"
)

// Naturals produces uint64 values whose bit lengths follow a geometric
// distribution with the given mean, capped at 64 bits. Small values are thus
// much more frequent than under a uniform distribution.
func Naturals(s seed.Seed, meanBits float64) seq.Producer[uint64] {
	return naturals(s, meanBits, 64)
}

func naturals(s seed.Seed, meanBits float64, maxBits int) seq.Producer[uint64] {
	lengths := seed.Scramble(s, "bits").Rand()
	magnitudes := seed.Scramble(s, "digits").Rand()
	return seq.Func[uint64](func() (uint64, bool) {
		n := min(geometric(lengths, meanBits), maxBits)
		if n == 0 {
			return 0, true
		}
		value := magnitudes.Uint64() >> (64 - n)
		return value | 1<<(n-1), true
	})
}

// Integers produces int64 values with geometrically distributed bit lengths
// of their absolute value and random signs.
func Integers(s seed.Seed, meanBits float64) seq.Producer[int64] {
	signs := Bools(seed.Scramble(s, "signs"))
	magnitudes := naturals(seed.Scramble(s, "magnitude"), meanBits, 63)
	return seq.Func[int64](func() (int64, bool) {
		negative, _ := signs.Next()
		magnitude, _ := magnitudes.Next()
		if negative {
			return -int64(magnitude), true
		}
		return int64(magnitude), true
	})
}

// BigNaturals produces non-negative integers of unbounded size whose bit
// lengths follow a geometric distribution with the given mean.
func BigNaturals(s seed.Seed, meanBits float64) seq.Producer[*big.Int] {
	lengths := seed.Scramble(s, "bits").Rand()
	limbs := seed.Scramble(s, "limbs").Rand()
	return seq.Func[*big.Int](func() (*big.Int, bool) {
		n := geometric(lengths, meanBits)
		res := new(big.Int)
		for i := 0; i < n; i += 64 {
			res.Lsh(res, 64)
			res.Or(res, new(big.Int).SetUint64(limbs.Uint64()))
		}
		// Truncate to n bits and fix the most significant one.
		if n > 0 {
			res.SetBit(res, n-1, 1)
			mask := new(big.Int).Lsh(big.NewInt(1), uint(n))
			res.Mod(res, mask)
		}
		return res, true
	})
}

// BigIntegers produces integers of unbounded size with random signs.
func BigIntegers(s seed.Seed, meanBits float64) seq.Producer[*big.Int] {
	signs := Bools(seed.Scramble(s, "signs"))
	magnitudes := BigNaturals(seed.Scramble(s, "magnitude"), meanBits)
	return seq.Func[*big.Int](func() (*big.Int, bool) {
		negative, _ := signs.Next()
		magnitude, _ := magnitudes.Next()
		if negative {
			magnitude.Neg(magnitude)
		}
		return magnitude, true
	})
}

// u256MeanBits is the mean bit length of the small values among U256s.
const u256MeanBits = 64

// U256s produces 256-bit values. A third of them is uniformly distributed, a
// third is drawn from the values at the edges of carries and overflows, and
// the rest has geometrically distributed bit lengths, as small values are
// the most common operands.
func U256s(s seed.Seed) seq.Producer[U256] {
	choices := Uniform(seed.Scramble(s, "choice"), 0, 2)
	specials := Choose(seed.Scramble(s, "specials"), seq.Collect(exhaustive.U256Specials()))
	words := seed.Scramble(s, "words").Rand()
	sizes := BigNaturals(seed.Scramble(s, "sizes"), u256MeanBits)
	modulus := new(big.Int).Add(MaxU256().ToBig(), big.NewInt(1))
	return seq.Func[U256](func() (U256, bool) {
		switch choice, _ := choices.Next(); choice {
		case 0:
			return specials.Next()
		case 1:
			return RandU256(words), true
		}
		value, _ := sizes.Next()
		return U256FromBig(value.Mod(value, modulus)), true
	})
}
