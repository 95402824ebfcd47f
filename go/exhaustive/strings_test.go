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
	"slices"
	"testing"

	"github.com/Fantom-foundation/exhaust/go/seq"
	"github.com/google/go-cmp/cmp"
)

func TestAsciiChars_AllCharactersOnce(t *testing.T) {
	chars := seq.Collect(AsciiChars())
	if want, got := 128, len(chars); want != got {
		t.Fatalf("unexpected number of characters, want %d, got %d", want, got)
	}
	sorted := slices.Clone(chars)
	slices.Sort(sorted)
	for i, c := range sorted {
		if c != rune(i) {
			t.Fatalf("character %d missing", i)
		}
	}
	if want, got := []rune("abc"), chars[:3]; !slices.Equal(want, got) {
		t.Errorf("letters should come first, got %q", string(got))
	}
	if want, got := rune(0x7f), chars[len(chars)-1]; want != got {
		t.Errorf("unexpected last character, want %q, got %q", want, got)
	}
}

func TestVecs_FixedLength(t *testing.T) {
	got := seq.Collect(Vecs(seq.FromSlice([]int{0, 1}), 2))
	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected vectors (-want +got):\n%s", diff)
	}
}

func TestStrings_FirstStrings(t *testing.T) {
	got := seq.Collect(seq.Take(Strings(seq.FromSlice([]rune("ab"))), 7))
	want := []string{"", "a", "b", "aa", "ab", "aaa", "aab"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected strings (-want +got):\n%s", diff)
	}
}

func TestStrings_CoversAllShortStrings(t *testing.T) {
	seen := map[string]bool{}
	for s := range seq.All(seq.Take(Strings(seq.FromSlice([]rune("xyz"))), 2000)) {
		if seen[s] {
			t.Fatalf("string %q produced twice", s)
		}
		seen[s] = true
	}
	for _, s := range []string{"", "x", "zz", "xyz", "zzy"} {
		if !seen[s] {
			t.Errorf("string %q not reached", s)
		}
	}
}

func TestStrings_NoCharactersGiveEmptyStringOnly(t *testing.T) {
	if diff := cmp.Diff([]string{""}, seq.Collect(Strings(seq.Empty[rune]()))); diff != "" {
		t.Errorf("unexpected strings (-want +got):\n%s", diff)
	}
}
