// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cache

import (
	"errors"
	"slices"
	"testing"

	"github.com/Fantom-foundation/exhaust/go/common"
	"github.com/Fantom-foundation/exhaust/go/seq"
	"go.uber.org/mock/gomock"
)

func naturals() seq.Producer[int] {
	return seq.Iterate(0, func(x int) int { return x + 1 })
}

func TestCache_ReturnsProducedValuesInOrder(t *testing.T) {
	values := []string{"a", "b", "c"}
	cache := New(seq.FromSlice(values))
	for i, want := range values {
		got, ok := cache.Get(i)
		if !ok || got != want {
			t.Errorf("unexpected value at %d, want %s, got %s (%t)", i, want, got, ok)
		}
	}
}

func TestCache_AnyAccessOrderIsFaithful(t *testing.T) {
	cache := New(naturals())
	for _, i := range []int{5, 2, 9, 0, 9, 3, 100, 50} {
		got, ok := cache.Get(i)
		if !ok || got != i {
			t.Errorf("unexpected value at %d, got %d (%t)", i, got, ok)
		}
	}
	if want, got := 101, cache.Len(); want != got {
		t.Errorf("unexpected number of buffered values, want %d, got %d", want, got)
	}
}

func TestCache_DoesNotLookAhead(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := seq.NewMockProducer[int](ctrl)
	gomock.InOrder(
		producer.EXPECT().Next().Return(10, true),
		producer.EXPECT().Next().Return(11, true),
		producer.EXPECT().Next().Return(12, true),
	)

	cache := New[int](producer)
	if got, _ := cache.Get(0); got != 10 {
		t.Errorf("unexpected value, want 10, got %d", got)
	}
	if got, _ := cache.Get(2); got != 12 {
		t.Errorf("unexpected value, want 12, got %d", got)
	}
	// Already buffered values do not touch the producer.
	if got, _ := cache.Get(1); got != 11 {
		t.Errorf("unexpected value, want 11, got %d", got)
	}
	if _, known := cache.KnownSize(); known {
		t.Errorf("size must not be known before the end was observed")
	}
}

func TestCache_ProducerIsNotPolledAfterItsEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := seq.NewMockProducer[int](ctrl)
	gomock.InOrder(
		producer.EXPECT().Next().Return(1, true),
		producer.EXPECT().Next().Return(0, false),
	)

	cache := New[int](producer)
	for _, i := range []int{3, 1, 7, 2} {
		if _, ok := cache.Get(i); ok {
			t.Errorf("position %d should not exist", i)
		}
	}
	if got, ok := cache.Get(0); !ok || got != 1 {
		t.Errorf("unexpected value, want 1, got %d (%t)", got, ok)
	}
}

func TestCache_SizeIsKnownOnceEndIsObserved(t *testing.T) {
	tests := map[string]struct {
		values []int
	}{
		"empty":  {[]int{}},
		"single": {[]int{7}},
		"three":  {[]int{1, 2, 3}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cache := New(seq.FromSlice(test.values))
			for i := range test.values {
				cache.Get(i)
			}
			if _, known := cache.KnownSize(); known {
				t.Errorf("size must not be known before the end was observed")
			}
			if _, ok := cache.Get(len(test.values)); ok {
				t.Errorf("value beyond end must not exist")
			}
			size, known := cache.KnownSize()
			if !known || size != len(test.values) {
				t.Errorf("unexpected size, want %d, got %d (%t)", len(test.values), size, known)
			}
		})
	}
}

func TestCache_MissIsPermanent(t *testing.T) {
	cache := New(seq.FromSlice([]int{1, 2}))
	if _, ok := cache.Get(4); ok {
		t.Fatalf("position 4 should not exist")
	}
	for i := 2; i < 10; i++ {
		if _, ok := cache.Get(i); ok {
			t.Errorf("position %d should not exist", i)
		}
	}
}

func TestCache_NegativeIndexPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, common.ErrNegativeIndex) {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	New(naturals()).Get(-1)
}

func TestCache_CursorsShareBufferButNotPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := seq.NewMockProducer[int](ctrl)
	gomock.InOrder(
		producer.EXPECT().Next().Return(1, true),
		producer.EXPECT().Next().Return(2, true),
		producer.EXPECT().Next().Return(0, false),
	)

	cache := New[int](producer)
	a, b := cache.Cursor(), cache.Cursor()
	if got := seq.Collect(a); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("unexpected values of first cursor, got %v", got)
	}
	if got := seq.Collect(b); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("unexpected values of second cursor, got %v", got)
	}
	if _, ok := a.Next(); ok {
		t.Errorf("exhausted cursor should stay exhausted")
	}
}
