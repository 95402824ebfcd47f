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

import (
	"fmt"
	"math"

	"github.com/Fantom-foundation/exhaust/go/common"
	"github.com/bits-and-blooms/bitset"
)

// interleaved is a binary counter whose bits are distributed over a number
// of coordinates. The counter bit at position p, counted from the least
// significant bit, belongs to coordinate pattern[p % len(pattern)]; within a
// coordinate, bits are assigned in increasing order of significance.
//
// Since the bits of every coordinate keep their relative significance in
// the counter, the mapping is monotone: increasing any coordinate increases
// the counter.
type interleaved struct {
	pattern  []int
	perCycle []uint // < number of bits a coordinate receives per pattern cycle
	rank     []uint // < index of a pattern slot among the slots of its coordinate
	bits     []*bitset.BitSet
}

func newInterleaved(arity int, pattern []int) interleaved {
	res := interleaved{
		pattern:  pattern,
		perCycle: make([]uint, arity),
		rank:     make([]uint, len(pattern)),
		bits:     make([]*bitset.BitSet, arity),
	}
	for slot, coord := range pattern {
		res.rank[slot] = res.perCycle[coord]
		res.perCycle[coord]++
	}
	for i := range res.bits {
		res.bits[i] = bitset.New(0)
	}
	return res
}

// bitAt locates the counter bit at the given position.
func (s *interleaved) bitAt(pos uint) (coord int, bit uint) {
	cycle := pos / uint(len(s.pattern))
	slot := pos % uint(len(s.pattern))
	coord = s.pattern[slot]
	return coord, cycle*s.perCycle[coord] + s.rank[slot]
}

func (s *interleaved) Arity() int {
	return len(s.bits)
}

func (s *interleaved) Increment() {
	for pos := uint(0); ; pos++ {
		coord, bit := s.bitAt(pos)
		if !s.bits[coord].Test(bit) {
			s.bits[coord].Set(bit)
			return
		}
		s.bits[coord].Clear(bit)
	}
}

func (s *interleaved) Coordinates() []int {
	res := make([]int, len(s.bits))
	for i, b := range s.bits {
		res[i] = toInt(b)
	}
	return res
}

func (s *interleaved) Set(coords []int) {
	s.bits = toBitSets(coords)
}

func (s *interleaved) Cmp(coords []int) int {
	other := toBitSets(coords)

	// Find the number of pattern cycles covering all bits of both tuples.
	cycles := uint(0)
	for i := range s.bits {
		length := max(s.bits[i].Len(), other[i].Len())
		cycles = max(cycles, (length+s.perCycle[i]-1)/s.perCycle[i])
	}

	// The most significant differing counter bit decides.
	for pos := cycles * uint(len(s.pattern)); pos > 0; pos-- {
		coord, bit := s.bitAt(pos - 1)
		mine, theirs := s.bits[coord].Test(bit), other[coord].Test(bit)
		if mine != theirs {
			if mine {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Fits accepts any non-negative coordinates below math.MaxInt. The counter
// itself is unbounded and a successor raises at most one coordinate by one.
func (s *interleaved) Fits(coords []int) bool {
	if len(coords) != len(s.bits) {
		return false
	}
	for _, coord := range coords {
		if coord < 0 || coord == math.MaxInt {
			return false
		}
	}
	return true
}

func toInt(b *bitset.BitSet) int {
	words := b.Bytes()
	if len(words) == 0 {
		return 0
	}
	for _, word := range words[1:] {
		if word != 0 {
			panic(fmt.Errorf("%w, coordinate exceeds 64 bits", common.ErrIndexOverflow))
		}
	}
	if words[0] > math.MaxInt {
		panic(fmt.Errorf("%w, coordinate %d exceeds int range", common.ErrIndexOverflow, words[0]))
	}
	return int(words[0])
}

func toBitSets(coords []int) []*bitset.BitSet {
	res := make([]*bitset.BitSet, len(coords))
	for i, coord := range coords {
		if coord < 0 {
			panic(fmt.Errorf("%w, coordinates %v", common.ErrNegativeIndex, coords))
		}
		res[i] = bitset.From([]uint64{uint64(coord)})
	}
	return res
}
