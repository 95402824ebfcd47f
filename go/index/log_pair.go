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
	"cmp"
	"fmt"
	"math"
	"math/bits"

	"github.com/Fantom-foundation/exhaust/go/common"
)

// LogPair maps a counter n ≥ 1 to the pair (i, j) with n = (2i+1)·2^j. The
// second coordinate takes every value infinitely often, while the first one
// advances only every 2^(j+1) steps for a fixed j.
type LogPair struct {
	counter uint64
}

func NewLogPair() *LogPair {
	return &LogPair{counter: 1}
}

// LogPairFromIndices creates a scheme positioned at the pair (i, j). It
// panics if the pair does not fit into the counter.
func LogPairFromIndices(i, j int) *LogPair {
	return &LogPair{counter: encodeLogPair(i, j)}
}

func encodeLogPair(i, j int) uint64 {
	if i < 0 || j < 0 {
		panic(fmt.Errorf("%w, coordinates (%d,%d)", common.ErrNegativeIndex, i, j))
	}
	if bits.Len64(uint64(i))+j >= 64 {
		panic(fmt.Errorf("%w, pair (%d,%d) exceeds 64-bit counter", common.ErrIndexOverflow, i, j))
	}
	return ((uint64(i) << 1) | 1) << j
}

// Indices returns the pair mapped to the current counter.
func (p *LogPair) Indices() (i, j int) {
	z := bits.TrailingZeros64(p.counter)
	return int(p.counter >> (z + 1)), z
}

func (p *LogPair) Arity() int {
	return 2
}

func (p *LogPair) Coordinates() []int {
	i, j := p.Indices()
	return []int{i, j}
}

func (p *LogPair) Increment() {
	if p.counter == math.MaxUint64 {
		panic(fmt.Errorf("%w, log pair counter exhausted", common.ErrIndexOverflow))
	}
	p.counter++
}

func (p *LogPair) Set(coords []int) {
	p.counter = encodeLogPair(coords[0], coords[1])
}

func (p *LogPair) Fits(coords []int) bool {
	if len(coords) != 2 || coords[0] < 0 || coords[1] < 0 {
		return false
	}
	i, j := coords[0], coords[1]
	if bits.Len64(uint64(i))+j >= 64 {
		return false
	}
	return encodeLogPair(i, j) != math.MaxUint64
}

func (p *LogPair) Cmp(coords []int) int {
	return cmp.Compare(p.counter, encodeLogPair(coords[0], coords[1]))
}
