// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package seed

import (
	"math"
	"math/bits"
	"testing"
)

func TestScramble_IsDeterministic(t *testing.T) {
	for _, role := range []string{"", "a", "signs", "magnitude"} {
		if Scramble(ExampleSeed, role) != Scramble(ExampleSeed, role) {
			t.Errorf("scrambling with role %q is not deterministic", role)
		}
	}
}

func TestScramble_DistinctRolesGiveDistinctSeeds(t *testing.T) {
	roles := []string{"a", "b", "signs", "magnitude", "lengths", "xs", "ys"}
	seen := map[Seed]string{}
	for _, role := range roles {
		s := Scramble(ExampleSeed, role)
		if other, found := seen[s]; found {
			t.Errorf("roles %q and %q give the same seed", role, other)
		}
		seen[s] = role
	}
}

func TestScramble_IsXorWithRoleKey(t *testing.T) {
	// Scrambling is an involution: the role key cancels out.
	s := Scramble(Scramble(ExampleSeed, "a"), "a")
	if s != ExampleSeed {
		t.Errorf("double scrambling should restore seed, got %v", s)
	}
	// Scrambling zero reveals the key, which is independent of the seed.
	key := Scramble(Seed{}, "a")
	var want Seed
	for i := range want {
		want[i] = ExampleSeed[i] ^ key[i]
	}
	if got := Scramble(ExampleSeed, "a"); got != want {
		t.Errorf("unexpected scrambled seed, want %v, got %v", want, got)
	}
}

func TestScramble_ComposesToGrandchildren(t *testing.T) {
	child := Scramble(ExampleSeed, "child")
	grandchild := Scramble(child, "grandchild")
	if grandchild == child || grandchild == ExampleSeed {
		t.Errorf("grandchild seed should differ from its ancestors")
	}
	if grandchild != Scramble(Scramble(ExampleSeed, "child"), "grandchild") {
		t.Errorf("grandchild derivation is not reproducible")
	}
}

func TestScramble_FlipsAboutHalfOfTheBits(t *testing.T) {
	a := Scramble(ExampleSeed, "a")
	b := Scramble(ExampleSeed, "b")
	diff := 0
	for i := range a {
		diff += bits.OnesCount32(a[i] ^ b[i])
	}
	if diff < 64 || diff > 192 {
		t.Errorf("seeds of distinct roles differ in %d of 256 bits", diff)
	}
}

func TestRand_IsReproducible(t *testing.T) {
	a := ExampleSeed.Rand()
	b := ExampleSeed.Rand()
	for i := 0; i < 100; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("streams diverge at %d: %d vs %d", i, x, y)
		}
	}
}

func TestRand_StreamsOfDistinctRolesAreUncorrelated(t *testing.T) {
	const n = 20_000
	xs := Scramble(ExampleSeed, "a").Rand()
	ys := Scramble(ExampleSeed, "b").Rand()

	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := 0; i < n; i++ {
		x, y := xs.Float64(), ys.Float64()
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	cov := sumXY/n - (sumX/n)*(sumY/n)
	varX := sumXX/n - (sumX/n)*(sumX/n)
	varY := sumYY/n - (sumY/n)*(sumY/n)
	r := cov / math.Sqrt(varX*varY)

	// For independent streams, r·√n is approximately standard normal.
	if z := math.Abs(r) * math.Sqrt(n); z > 4 {
		t.Errorf("streams are correlated, r=%f, z=%f", r, z)
	}
}

func TestFromUint64_DistinctValuesGiveDistinctSeeds(t *testing.T) {
	seen := map[Seed]uint64{}
	for i := uint64(0); i < 1000; i++ {
		s := FromUint64(i)
		if other, found := seen[s]; found {
			t.Fatalf("values %d and %d give the same seed", i, other)
		}
		seen[s] = i
	}
	if FromUint64(42) != FromUint64(42) {
		t.Errorf("seed expansion is not deterministic")
	}
}

func TestSeed_String(t *testing.T) {
	s := Seed{1, 2, 3, 4, 5, 6, 7, 0xffffffff}
	want := "00000001" + "00000002" + "00000003" + "00000004" +
		"00000005" + "00000006" + "00000007" + "ffffffff"
	if got := s.String(); got != want {
		t.Errorf("unexpected print, want %s, got %s", want, got)
	}
}
