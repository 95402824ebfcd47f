// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package exhaustive

import (
	"testing"

	. "github.com/Fantom-foundation/exhaust/go/common"
	"github.com/Fantom-foundation/exhaust/go/seq"
)

func TestU256s_Ascending(t *testing.T) {
	for i, value := range seq.Collect(seq.Take(U256s(), 20)) {
		if !value.Eq(NewU256(uint64(i))) {
			t.Errorf("unexpected value at %d, got %v", i, value)
		}
	}
}

func TestU256Specials_ContainsEdgesOnce(t *testing.T) {
	values := seq.Collect(U256Specials())
	seen := map[U256]bool{}
	for _, v := range values {
		if seen[v] {
			t.Errorf("value %v produced twice", v)
		}
		seen[v] = true
	}
	for _, want := range []U256{NewU256(), NewU256(1), NewU256(2), NewU256(1, 0), NewU256(1, 1), MaxU256()} {
		if !seen[want] {
			t.Errorf("missing value %v", want)
		}
	}
	// 256 powers of two with neighbors, where 0, 1, 2, 3 and the maximum overlap.
	if want, got := 3*256+2-4, len(values); want != got {
		t.Errorf("unexpected number of values, want %d, got %d", want, got)
	}
}

func TestU256Specials_Ascending(t *testing.T) {
	values := seq.Collect(U256Specials())
	for i := 1; i < len(values); i++ {
		if !values[i-1].Lt(values[i]) {
			t.Errorf("values not ascending at %d: %v, %v", i, values[i-1], values[i])
		}
	}
	if first, last := values[0], values[len(values)-1]; !first.IsZero() || !last.Eq(MaxU256()) {
		t.Errorf("unexpected bounds %v and %v", first, last)
	}
}

func TestU256s_EndsAfterMaximum(t *testing.T) {
	p := u256sFrom(MaxU256().Sub(NewU256(1)))
	got := seq.Collect(p)
	if len(got) != 2 || !got[1].Eq(MaxU256()) {
		t.Errorf("unexpected last values %v", got)
	}
	if _, ok := p.Next(); ok {
		t.Errorf("producer should stay exhausted")
	}
}
