// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package index

// SqrtPair maps a counter to a pair (x, y). Incrementing flips the lowest
// available bit of y; a carry out of y hands control to x, which takes two
// bit flips before control returns to y. Thus y grows like the square root
// of x, and both grow without bounds.
type SqrtPair struct {
	interleaved
}

func NewSqrtPair() *SqrtPair {
	return &SqrtPair{newInterleaved(2, []int{1, 0, 0})}
}

func SqrtPairFromIndices(x, y int) *SqrtPair {
	res := NewSqrtPair()
	res.Set([]int{x, y})
	return res
}

// Indices returns the pair mapped to the current counter.
func (p *SqrtPair) Indices() (x, y int) {
	return toInt(p.bits[0]), toInt(p.bits[1])
}
