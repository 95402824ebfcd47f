// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package cache provides random access to the values of one-pass producers.
package cache

import (
	"fmt"

	"github.com/Fantom-foundation/exhaust/go/common"
	"github.com/Fantom-foundation/exhaust/go/seq"
)

// Cache wraps a producer and memorizes every value it emitted, such that
// values can be looked up by position. The producer is only advanced as far
// as required by lookups; there is no look-ahead, so infinite producers can
// be wrapped safely.
//
// A Cache is stateful and must be owned by a single consumer. Consumers that
// read the same source several times have to share one Cache instance.
// Caches are not thread safe.
type Cache[T any] struct {
	source    seq.Producer[T]
	values    []T
	exhausted bool
}

func New[T any](source seq.Producer[T]) *Cache[T] {
	return &Cache[T]{source: source}
}

// Get returns the value at the given position, or false if the producer
// ended at or before this position.
func (c *Cache[T]) Get(index int) (T, bool) {
	if index < 0 {
		panic(fmt.Errorf("%w, position %d", common.ErrNegativeIndex, index))
	}
	for !c.exhausted && index >= len(c.values) {
		value, ok := c.source.Next()
		if !ok {
			c.exhausted = true
			break
		}
		c.values = append(c.values, value)
	}
	if index < len(c.values) {
		return c.values[index], true
	}
	var zero T
	return zero, false
}

// KnownSize returns the total number of values of the underlying producer
// once its end has been observed. Before that, the size is unknown and the
// producer must be assumed to be infinite.
func (c *Cache[T]) KnownSize() (int, bool) {
	if c.exhausted {
		return len(c.values), true
	}
	return 0, false
}

// Len returns the number of values retrieved from the producer so far.
func (c *Cache[T]) Len() int {
	return len(c.values)
}

// Cursor returns a producer reading the values of the cache from the first
// one on. Cursors share the buffer of the cache but keep their own position,
// so several consumers can read one source without deriving it twice.
func (c *Cache[T]) Cursor() seq.Producer[T] {
	pos := 0
	return seq.Func[T](func() (T, bool) {
		value, found := c.Get(pos)
		if found {
			pos++
		}
		return value, found
	})
}
