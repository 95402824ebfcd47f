// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package tuples enumerates products of sequences whose sizes are unknown or
// infinite. Coordinates are chosen by an index scheme and looked up in
// memoizing caches; combinations referring to positions beyond the end of a
// component are skipped. Once every component turned out to be finite, the
// position after the last valid combination is computed and used to end the
// enumeration.
package tuples

import (
	"github.com/Fantom-foundation/exhaust/go/cache"
	"github.com/Fantom-foundation/exhaust/go/index"
)

// component is the type-erased view of a component cache needed to decide
// which coordinate tuples are valid.
type component interface {
	has(index int) bool
	knownSize() (int, bool)
}

type cached[T any] struct {
	*cache.Cache[T]
}

func (c cached[T]) has(index int) bool {
	_, found := c.Get(index)
	return found
}

func (c cached[T]) knownSize() (int, bool) {
	return c.KnownSize()
}

// enumerator drives an index scheme over a list of components and reports
// the coordinates of valid tuples only.
type enumerator struct {
	order      index.Order
	scheme     index.Scheme
	components []component

	// bound is the coordinate tuple of the first counter value following all
	// valid tuples. It is nil as long as some component size is unknown.
	bound []int
	// stopProbing is set once component sizes no longer need to be checked.
	stopProbing bool
	done        bool
}

func newEnumerator(order index.Order, components []component) *enumerator {
	return &enumerator{
		order:      order,
		scheme:     index.New(order, len(components)),
		components: components,
	}
}

// next returns the coordinates of the next valid tuple, or false once all
// tuples have been enumerated. After that, it keeps returning false.
func (e *enumerator) next() ([]int, bool) {
	for !e.done {
		if e.bound != nil && e.scheme.Cmp(e.bound) >= 0 {
			e.done = true
			break
		}

		coords := e.scheme.Coordinates()
		valid := true
		for i, c := range coords {
			if !e.components[i].has(c) {
				valid = false
				break
			}
		}

		// Sizes may also become known by a failed lookup, in which case the
		// last valid tuple could already be behind the current position.
		e.probeSizes()
		if e.done {
			break
		}

		e.scheme.Increment()
		if valid {
			return coords, true
		}
	}
	return nil, false
}

func (e *enumerator) probeSizes() {
	if e.stopProbing {
		return
	}
	last := make([]int, len(e.components))
	allKnown := true
	for i, c := range e.components {
		size, known := c.knownSize()
		if !known {
			allKnown = false
			continue
		}
		if size == 0 {
			e.stopProbing = true
			e.done = true
			return
		}
		last[i] = size - 1
	}
	if !allKnown {
		return
	}
	e.stopProbing = true
	bound := index.New(e.order, len(last))
	if !bound.Fits(last) {
		// The last tuple lies beyond the range of the counter and is never
		// reached, so the enumeration stays unbounded.
		return
	}
	bound.Set(last)
	bound.Increment()
	e.bound = bound.Coordinates()
}
