// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tuples

import (
	"github.com/Fantom-foundation/exhaust/go/cache"
	"github.com/Fantom-foundation/exhaust/go/index"
	"github.com/Fantom-foundation/exhaust/go/seq"
)

// DependentPairs enumerates all pairs (x, y) where x is a value of xs and y
// is a value of the producer f(x). The first coordinate of the order indexes
// xs, the second one indexes the values derived from the selected x. The
// producer f(x) is created once per x, when x is first visited.
//
// The enumeration ends once xs and every derived producer turned out to be
// finite. If xs is infinite and no x has any derived value, no pair is ever
// produced and Next does not return.
func DependentPairs[A, B any](order index.Order, xs seq.Producer[A], f func(A) seq.Producer[B]) seq.Producer[Pair[A, B]] {
	return &dependentPairs[A, B]{
		order:  order,
		scheme: index.New(order, 2),
		xs:     cache.New(xs),
		derive: f,
	}
}

type dependentPairs[A, B any] struct {
	order  index.Order
	scheme index.Scheme
	xs     *cache.Cache[A]
	ys     []*cache.Cache[B] // < ys[i] caches derive(x_i)
	derive func(A) seq.Producer[B]

	// Progress of the size check: ys[:checked] are all known to be finite.
	checked     int
	bound       []int
	stopProbing bool
	done        bool
}

func (d *dependentPairs[A, B]) Next() (Pair[A, B], bool) {
	for !d.done {
		if d.bound != nil && d.scheme.Cmp(d.bound) >= 0 {
			d.done = true
			break
		}
		coords := d.scheme.Coordinates()
		pair, valid := d.fetch(coords[0], coords[1])
		d.probeSizes()
		if d.done {
			break
		}
		d.scheme.Increment()
		if valid {
			return pair, true
		}
	}
	return Pair[A, B]{}, false
}

func (d *dependentPairs[A, B]) fetch(i, j int) (Pair[A, B], bool) {
	x, found := d.xs.Get(i)
	if !found {
		return Pair[A, B]{}, false
	}
	for len(d.ys) <= i {
		next, _ := d.xs.Get(len(d.ys))
		d.ys = append(d.ys, cache.New(d.derive(next)))
	}
	y, found := d.ys[i].Get(j)
	if !found {
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{x, y}, true
}

func (d *dependentPairs[A, B]) probeSizes() {
	if d.stopProbing {
		return
	}
	numXs, known := d.xs.KnownSize()
	if !known {
		return
	}
	for ; d.checked < numXs; d.checked++ {
		if d.checked >= len(d.ys) {
			return
		}
		if _, known := d.ys[d.checked].KnownSize(); !known {
			return
		}
	}

	// All sizes are known, the last valid pair is the maximum over all xs.
	d.stopProbing = true
	bound := index.New(d.order, 2)
	var last []int
	for i := 0; i < numXs; i++ {
		size, _ := d.ys[i].KnownSize()
		if size == 0 {
			continue
		}
		candidate := []int{i, size - 1}
		if !bound.Fits(candidate) {
			// Pairs beyond the range of the counter are never reached, the
			// enumeration stays unbounded.
			return
		}
		if last == nil || index.Less(d.order, last, candidate) {
			last = candidate
		}
	}
	if last == nil {
		d.done = true
		return
	}
	bound.Set(last)
	bound.Increment()
	d.bound = bound.Coordinates()
}
