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
	"slices"

	. "github.com/Fantom-foundation/exhaust/go/common"
	"github.com/Fantom-foundation/exhaust/go/seq"
)

// U256s produces all 256-bit values in ascending order.
func U256s() seq.Producer[U256] {
	return u256sFrom(NewU256())
}

// u256sFrom produces the values from start up to the maximum.
func u256sFrom(start U256) seq.Producer[U256] {
	next, done := start, false
	return seq.Func[U256](func() (U256, bool) {
		if done {
			return U256{}, false
		}
		res := next
		next = next.Add(NewU256(1))
		done = next.IsZero()
		return res, true
	})
}

// U256Specials produces the 256-bit values at the edges of carries and
// overflows in ascending order: zero, the maximum, and every power of two
// together with its neighbors. Every value is produced once.
func U256Specials() seq.Producer[U256] {
	res := []U256{NewU256(), MaxU256()}
	one := NewU256(1)
	for i := uint(0); i < 256; i++ {
		p := PowerOfTwo(i)
		res = append(res, p.Sub(one), p, p.Add(one))
	}
	slices.SortFunc(res, compareU256)
	return seq.FromSlice(slices.CompactFunc(res, U256.Eq))
}

func compareU256(a, b U256) int {
	switch {
	case a.Lt(b):
		return -1
	case b.Lt(a):
		return 1
	}
	return 0
}
