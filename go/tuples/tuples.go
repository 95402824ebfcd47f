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
	"fmt"

	"github.com/Fantom-foundation/exhaust/go/cache"
	"github.com/Fantom-foundation/exhaust/go/common"
	"github.com/Fantom-foundation/exhaust/go/index"
	"github.com/Fantom-foundation/exhaust/go/seq"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// Tuples enumerates the product of the given producers in the given order.
// Pair orders require exactly two producers. With no producers, the single
// empty tuple is produced; a single producer is passed through.
func Tuples[T any](order index.Order, ps ...seq.Producer[T]) seq.Producer[[]T] {
	caches := make([]*cache.Cache[T], len(ps))
	for i, p := range ps {
		caches[i] = cache.New(p)
	}
	return tuplesOf(order, caches)
}

// TuplesFromSingle enumerates all k-tuples of values of p. All coordinates
// are looked up in one shared cache, so p is consumed only once.
func TuplesFromSingle[T any](order index.Order, p seq.Producer[T], k int) seq.Producer[[]T] {
	return TuplesFromCache(order, cache.New(p), k)
}

// TuplesFromCache enumerates all k-tuples of values of the given cache. The
// cache may be shared with other readers; its buffer is not copied.
func TuplesFromCache[T any](order index.Order, shared *cache.Cache[T], k int) seq.Producer[[]T] {
	if k < 0 {
		panic(fmt.Errorf("%w, negative tuple size %d", common.ErrUnsupportedArity, k))
	}
	caches := make([]*cache.Cache[T], k)
	for i := range caches {
		caches[i] = shared
	}
	return tuplesOf(order, caches)
}

func tuplesOf[T any](order index.Order, caches []*cache.Cache[T]) seq.Producer[[]T] {
	switch len(caches) {
	case 0:
		return seq.Single([]T{})
	case 1:
		return seq.Map(caches[0].Cursor(), func(value T) []T {
			return []T{value}
		})
	}

	components := make([]component, len(caches))
	for i, c := range caches {
		components[i] = cached[T]{c}
	}
	e := newEnumerator(order, components)
	return seq.Func[[]T](func() ([]T, bool) {
		coords, found := e.next()
		if !found {
			return nil, false
		}
		res := make([]T, len(coords))
		for i, c := range coords {
			res[i], _ = caches[i].Get(c)
		}
		return res, true
	})
}

// Pairs enumerates the product of xs and ys in the given order.
func Pairs[A, B any](order index.Order, xs seq.Producer[A], ys seq.Producer[B]) seq.Producer[Pair[A, B]] {
	return pairsOf(order, cache.New(xs), cache.New(ys))
}

// PairsFromSingle enumerates all pairs of values of xs, reading xs once.
func PairsFromSingle[T any](order index.Order, xs seq.Producer[T]) seq.Producer[Pair[T, T]] {
	shared := cache.New(xs)
	return pairsOf(order, shared, shared)
}

func pairsOf[A, B any](order index.Order, xs *cache.Cache[A], ys *cache.Cache[B]) seq.Producer[Pair[A, B]] {
	e := newEnumerator(order, []component{cached[A]{xs}, cached[B]{ys}})
	return seq.Func[Pair[A, B]](func() (Pair[A, B], bool) {
		coords, found := e.next()
		if !found {
			return Pair[A, B]{}, false
		}
		x, _ := xs.Get(coords[0])
		y, _ := ys.Get(coords[1])
		return Pair[A, B]{x, y}, true
	})
}

// Triples enumerates the product of three producers in Z-order.
func Triples[A, B, C any](xs seq.Producer[A], ys seq.Producer[B], zs seq.Producer[C]) seq.Producer[Triple[A, B, C]] {
	xc, yc, zc := cache.New(xs), cache.New(ys), cache.New(zs)
	e := newEnumerator(index.ZOrder, []component{cached[A]{xc}, cached[B]{yc}, cached[C]{zc}})
	return seq.Func[Triple[A, B, C]](func() (Triple[A, B, C], bool) {
		coords, found := e.next()
		if !found {
			return Triple[A, B, C]{}, false
		}
		x, _ := xc.Get(coords[0])
		y, _ := yc.Get(coords[1])
		z, _ := zc.Get(coords[2])
		return Triple[A, B, C]{x, y, z}, true
	})
}
