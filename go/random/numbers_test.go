// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package random

import (
	"math/bits"
	"testing"

	"github.com/Fantom-foundation/exhaust/go/seed"
)

func TestNaturals_BitLengthsFollowMean(t *testing.T) {
	const n = 5000
	total := 0
	for _, v := range take(Naturals(seed.ExampleSeed, 10), n) {
		total += bits.Len64(v)
	}
	if mean := float64(total) / n; mean < 9 || mean > 11 {
		t.Errorf("unexpected mean bit length, want about 10, got %f", mean)
	}
}

func TestNaturals_ProduceZeroAndLargeValues(t *testing.T) {
	zeros, large := 0, 0
	for _, v := range take(Naturals(seed.ExampleSeed, 16), 5000) {
		if v == 0 {
			zeros++
		}
		if bits.Len64(v) > 40 {
			large++
		}
	}
	if zeros == 0 || large == 0 {
		t.Errorf("expected both zeros and large values, got %d zeros and %d large values", zeros, large)
	}
}

func TestIntegers_ProduceBothSigns(t *testing.T) {
	negative, positive := 0, 0
	for _, v := range take(Integers(seed.ExampleSeed, 8), 1000) {
		if v < 0 {
			negative++
		}
		if v > 0 {
			positive++
		}
	}
	if negative < 300 || positive < 300 {
		t.Errorf("unbalanced signs: %d negative, %d positive", negative, positive)
	}
}

func TestBigNaturals_ExceedWordSize(t *testing.T) {
	wide := 0
	for _, v := range take(BigNaturals(seed.ExampleSeed, 100), 500) {
		if v.Sign() < 0 {
			t.Fatalf("negative natural %v", v)
		}
		if v.BitLen() > 64 {
			wide++
		}
	}
	if wide == 0 {
		t.Errorf("expected values wider than 64 bits")
	}
}

func TestBigNaturals_BitLengthsFollowMean(t *testing.T) {
	const n = 3000
	total := 0
	for _, v := range take(BigNaturals(seed.ExampleSeed, 70), n) {
		total += v.BitLen()
	}
	if mean := float64(total) / n; mean < 63 || mean > 77 {
		t.Errorf("unexpected mean bit length, want about 70, got %f", mean)
	}
}

func TestBigIntegers_ProduceBothSigns(t *testing.T) {
	negative, positive := 0, 0
	for _, v := range take(BigIntegers(seed.ExampleSeed, 80), 1000) {
		switch v.Sign() {
		case -1:
			negative++
		case 1:
			positive++
		}
	}
	if negative < 300 || positive < 300 {
		t.Errorf("unbalanced signs: %d negative, %d positive", negative, positive)
	}
}

func TestU256s_MixesSpecialUniformAndSmallValues(t *testing.T) {
	small, wide := 0, 0
	for _, v := range take(U256s(seed.ExampleSeed), 1000) {
		if v.IsUint64() {
			small++
		} else {
			wide++
		}
	}
	// About a quarter of the specials and two thirds of the geometrically
	// sized values fit into 64 bits, uniform values practically never do.
	if small < 200 || wide < 550 {
		t.Errorf("unexpected mix: %d small and %d wide values", small, wide)
	}
}
