// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package seq

// FromSlice produces the elements of the given slice in order. The slice is
// not copied and must not be modified while the producer is in use.
func FromSlice[T any](values []T) Producer[T] {
	return &sliceProducer[T]{values: values}
}

type sliceProducer[T any] struct {
	values []T
	pos    int
}

func (p *sliceProducer[T]) Next() (T, bool) {
	if p.pos >= len(p.values) {
		var zero T
		return zero, false
	}
	p.pos++
	return p.values[p.pos-1], true
}

// Empty produces no values.
func Empty[T any]() Producer[T] {
	return Func[T](func() (T, bool) {
		var zero T
		return zero, false
	})
}

// Single produces exactly the given value.
func Single[T any](value T) Producer[T] {
	return FromSlice([]T{value})
}

// Repeat produces the given value forever.
func Repeat[T any](value T) Producer[T] {
	return Func[T](func() (T, bool) {
		return value, true
	})
}

// Iterate produces x, f(x), f(f(x)), ... forever.
func Iterate[T any](x T, f func(T) T) Producer[T] {
	started := false
	return Func[T](func() (T, bool) {
		if started {
			x = f(x)
		}
		started = true
		return x, true
	})
}
