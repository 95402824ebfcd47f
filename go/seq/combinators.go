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

// Map applies f to every value of p.
func Map[A, B any](p Producer[A], f func(A) B) Producer[B] {
	return Func[B](func() (B, bool) {
		value, ok := p.Next()
		if !ok {
			var zero B
			return zero, false
		}
		return f(value), true
	})
}

// Filter produces the values of p satisfying the predicate. Filtering an
// infinite producer with a predicate that never holds again blocks forever.
func Filter[T any](p Producer[T], predicate func(T) bool) Producer[T] {
	return Func[T](func() (T, bool) {
		for {
			value, ok := p.Next()
			if !ok || predicate(value) {
				return value, ok
			}
		}
	})
}

// Take produces at most the first n values of p. The underlying producer is
// not advanced past its n-th value.
func Take[T any](p Producer[T], n int) Producer[T] {
	return &takeProducer[T]{source: p, remaining: n}
}

type takeProducer[T any] struct {
	source    Producer[T]
	remaining int
}

func (p *takeProducer[T]) Next() (T, bool) {
	if p.remaining <= 0 {
		var zero T
		return zero, false
	}
	value, ok := p.source.Next()
	if !ok {
		p.remaining = 0
		return value, false
	}
	p.remaining--
	return value, true
}

// Chain produces all values of the first producer, then all of the second,
// and so on. Producers following an infinite one are never reached.
func Chain[T any](ps ...Producer[T]) Producer[T] {
	return Func[T](func() (T, bool) {
		for len(ps) > 0 {
			if value, ok := ps[0].Next(); ok {
				return value, true
			}
			ps = ps[1:]
		}
		var zero T
		return zero, false
	})
}

// Interleave produces values of the given producers in round-robin order,
// dropping producers once they are exhausted. Unlike Chain, every value of
// every producer is eventually produced even if some of them are infinite.
func Interleave[T any](ps ...Producer[T]) Producer[T] {
	active := append([]Producer[T]{}, ps...)
	next := 0
	return Func[T](func() (T, bool) {
		for len(active) > 0 {
			if next >= len(active) {
				next = 0
			}
			if value, ok := active[next].Next(); ok {
				next++
				return value, true
			}
			active = append(active[:next], active[next+1:]...)
		}
		var zero T
		return zero, false
	})
}

// Flatten produces the elements of the slices produced by p in order.
func Flatten[T any](p Producer[[]T]) Producer[T] {
	var current []T
	return Func[T](func() (T, bool) {
		for len(current) == 0 {
			values, ok := p.Next()
			if !ok {
				var zero T
				return zero, false
			}
			current = values
		}
		value := current[0]
		current = current[1:]
		return value, true
	})
}
