// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
	"pgregory.net/rand"
)

// U256 is a 256-bit unsigned integer used as test input for fixed-width
// arithmetic. Contrary to holiman/uint256.Int the API operates on values
// rather than pointers, so values produced by generators can be retained
// without aliasing.
type U256 struct {
	internal uint256.Int
}

// NewU256 creates a new U256 instance from up to 4 uint64 arguments. The
// arguments are given in the order from most significant to least significant
// by padding leading zeros as needed. No argument results in a value of zero.
func NewU256(args ...uint64) (result U256) {
	if len(args) > 4 {
		panic("too many arguments")
	}
	offset := 4 - len(args)
	for i := 0; i < len(args); i++ {
		result.internal[3-i-offset] = args[i]
	}
	return
}

// RandU256 draws all 256 bits uniformly from the given source.
func RandU256(rnd *rand.Rand) U256 {
	var value U256
	for i := range value.internal {
		value.internal[i] = rnd.Uint64()
	}
	return value
}

func MaxU256() (result U256) {
	result.internal.SetAllOne()
	return
}

// PowerOfTwo returns 2^n, wrapped modulo 2^256.
func PowerOfTwo(n uint) (result U256) {
	if n < 256 {
		result.internal.Lsh(uint256.NewInt(1), n)
	}
	return
}

func (i U256) IsZero() bool {
	return i.internal.IsZero()
}

func (i U256) IsUint64() bool {
	return i.internal.IsUint64()
}

func (i U256) Uint64() uint64 {
	return i.internal.Uint64()
}

func (a U256) Eq(b U256) bool {
	return a.internal.Eq(&b.internal)
}

func (a U256) Lt(b U256) bool {
	return a.internal.Lt(&b.internal)
}

// Add returns a+b, wrapped modulo 2^256.
func (a U256) Add(b U256) (z U256) {
	z.internal.Add(&a.internal, &b.internal)
	return
}

// Sub returns a-b, wrapped modulo 2^256.
func (a U256) Sub(b U256) (z U256) {
	z.internal.Sub(&a.internal, &b.internal)
	return
}

// String renders values fitting into 64 bits in decimal and larger values
// in hexadecimal.
func (i U256) String() string {
	if i.IsUint64() {
		return strconv.FormatUint(i.Uint64(), 10)
	}
	return i.internal.Hex()
}

// ToBig returns the value as a big.Int, e.g. to cross-check results against
// the arbitrary-precision implementation.
func (i U256) ToBig() *big.Int {
	return i.internal.ToBig()
}

// U256FromBig converts a non-negative big.Int of at most 256 bits.
func U256FromBig(b *big.Int) U256 {
	if b.Sign() < 0 {
		panic("negative value can not be converted to U256")
	}
	value, overflow := uint256.FromBig(b)
	if overflow {
		panic("big.Int has more than 256 bits")
	}
	return U256{internal: *value}
}
