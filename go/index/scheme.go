// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package index provides bijections between a single growing counter and
// tuples of coordinates. Driving such a counter forward enumerates the
// coordinates of a product space fairly, even if the extent of the space is
// unknown or infinite in some dimensions.
package index

import (
	"fmt"

	"github.com/Fantom-foundation/exhaust/go/common"
)

// Scheme is a counter mapped to a tuple of non-negative coordinates.
type Scheme interface {
	// Arity returns the number of coordinates.
	Arity() int
	// Coordinates returns the coordinate tuple of the current counter value.
	// The result is a fresh slice owned by the caller.
	Coordinates() []int
	// Increment advances the counter by one.
	Increment()
	// Set positions the counter at the value mapped to the given coordinates.
	Set(coords []int)
	// Cmp compares the current counter value with the counter value mapped to
	// the given coordinates. The result is -1, 0, or +1.
	Cmp(coords []int) int
	// Fits reports whether the counter can represent the value mapped to the
	// given coordinates as well as its successor. Set and Cmp panic for
	// coordinates that do not fit.
	Fits(coords []int) bool
}

// Order selects the index scheme used to enumerate a product space.
type Order int

const (
	// LogOrder enumerates pairs where the first coordinate grows linearly
	// with the counter and the second one logarithmically. It suits products
	// of a large domain with a small one.
	LogOrder Order = iota
	// SqrtOrder enumerates pairs where the second coordinate grows like the
	// square root of the first one.
	SqrtOrder
	// ZOrder enumerates tuples of any arity with all coordinates growing at
	// the same rate.
	ZOrder
)

func (o Order) String() string {
	switch o {
	case LogOrder:
		return "log"
	case SqrtOrder:
		return "sqrt"
	case ZOrder:
		return "z"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(name string) (Order, error) {
	for _, order := range []Order{LogOrder, SqrtOrder, ZOrder} {
		if order.String() == name {
			return order, nil
		}
	}
	return 0, fmt.Errorf("%w %q, use one of log, sqrt, z", common.ErrUnknownOrder, name)
}

// New creates a scheme of the given order positioned at its first counter
// value, for which all coordinates are zero.
func New(order Order, arity int) Scheme {
	switch order {
	case LogOrder, SqrtOrder:
		if arity != 2 {
			panic(fmt.Errorf("%w, %v order supports pairs only, got arity %d", common.ErrUnsupportedArity, order, arity))
		}
		if order == LogOrder {
			return NewLogPair()
		}
		return NewSqrtPair()
	case ZOrder:
		return NewZOrder(arity)
	}
	panic(fmt.Errorf("%w %v", common.ErrUnknownOrder, order))
}

// Less reports whether the counter value of coordinates a precedes the one
// of coordinates b in the given order. Both must fit the scheme.
func Less(order Order, a, b []int) bool {
	scheme := New(order, len(a))
	scheme.Set(a)
	return scheme.Cmp(b) < 0
}
