// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package seq defines the one-pass, pull-based value sources all generators
// of this module are built from.
package seq

//go:generate mockgen -source producer.go -destination producer_mock.go -package seq

import "iter"

// Producer is a one-pass source of values. Each call to Next returns the
// next value and true, or the zero value and false if there are no more
// values. A producer that reported false once keeps doing so on every
// subsequent call. Producers may be infinite.
type Producer[T any] interface {
	Next() (T, bool)
}

// Func adapts a function to the Producer interface. The function has to
// honor the contract of Next, in particular keep reporting false once it
// did so.
type Func[T any] func() (T, bool)

func (f Func[T]) Next() (T, bool) {
	return f()
}

// All adapts a producer to a range-over-func iterator. Breaking out of the
// loop leaves the producer positioned after the last consumed value.
func All[T any](p Producer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := p.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Collect drains a producer into a slice. Must only be used on finite
// producers; combine it with Take for infinite ones.
func Collect[T any](p Producer[T]) []T {
	res := []T{}
	for value := range All(p) {
		res = append(res, value)
	}
	return res
}

// Count drains a finite producer and returns the number of produced values.
func Count[T any](p Producer[T]) int {
	count := 0
	for range All(p) {
		count++
	}
	return count
}
