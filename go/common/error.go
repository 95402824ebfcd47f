// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// ConstErr is an error type that can be used to define error constants.
type ConstErr string

func (e ConstErr) Error() string {
	return string(e)
}

// The errors below signal violated preconditions. They are raised through
// panics since they indicate programming errors, never runtime conditions.
// Panic values wrap these constants, so recovered values can be inspected
// using errors.Is.

// ErrInvalidRange is raised when a bounded sequence is constructed with a
// lower bound exceeding its upper bound.
const ErrInvalidRange = ConstErr("invalid range")

// ErrEmptyDomain is raised when a random generator is asked to draw values
// from a domain without elements.
const ErrEmptyDomain = ConstErr("empty domain")

// ErrIndexOverflow is raised when a coordinate tuple can not be encoded
// into the counter of an index scheme.
const ErrIndexOverflow = ConstErr("index overflow")

// ErrUnsupportedArity is raised when an index scheme is requested for a
// number of coordinates it can not handle.
const ErrUnsupportedArity = ConstErr("unsupported arity")

// ErrUnknownOrder is raised for an enumeration order without index scheme.
const ErrUnknownOrder = ConstErr("unknown order")

// ErrNegativeIndex is raised when a negative position is looked up.
const ErrNegativeIndex = ConstErr("negative index")
