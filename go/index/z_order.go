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

	"github.com/Fantom-foundation/exhaust/go/common"
)

// ZOrderScheme is a Morton counter over a fixed number of coordinates. The
// counter bits are dealt to the coordinates round-robin, starting with the
// last coordinate, so all coordinates grow at the same rate. A product of k
// infinite sequences is therefore covered fairly, where a lexicographic
// order would never leave the first element of all but one of them.
type ZOrderScheme struct {
	interleaved
}

// NewZOrder creates a Z-order scheme over k ≥ 1 coordinates.
func NewZOrder(k int) *ZOrderScheme {
	if k < 1 {
		panic(fmt.Errorf("%w, z-order requires at least one coordinate, got %d", common.ErrUnsupportedArity, k))
	}
	pattern := make([]int, k)
	for i := range pattern {
		pattern[i] = k - 1 - i
	}
	return &ZOrderScheme{newInterleaved(k, pattern)}
}

func ZOrderFromIndices(coords ...int) *ZOrderScheme {
	res := NewZOrder(len(coords))
	res.Set(coords)
	return res
}

// Size returns the number of coordinates.
func (s *ZOrderScheme) Size() int {
	return s.Arity()
}
