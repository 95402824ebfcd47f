// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package seed derives independent, reproducible random streams from a
// single master seed.
//
// Instead of sharing one mutable random number generator, every consumer of
// randomness derives its own seed by scrambling its input seed with a label
// naming the purpose of the stream:
//
//	signs := seed.Scramble(s, "signs").Rand()
//	magnitudes := seed.Scramble(s, "magnitude").Rand()
//
// Scrambled seeds can be scrambled again to derive further streams.
package seed

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
	"pgregory.net/rand"
)

// Seed is opaque entropy from which random streams are derived. It must not
// be interpreted as a counter or an identifier.
type Seed [8]uint32

// ExampleSeed is a fixed seed for tests and examples.
var ExampleSeed = Seed{
	0xbf18_11ce, 0x15ee_fd20, 0x6287_d8ca, 0x0b2b_61db,
	0x7e90_e3ae, 0x2a5c_0dbd, 0x5fa0_d7b8, 0x3c2e_6fb1,
}

// Scramble derives the seed of the stream with the given role. The SHA3-256
// digest of the role is combined word by word with the seed using
// exclusive-or. Equal inputs always give equal results; distinct roles give
// unrelated streams.
func Scramble(s Seed, role string) Seed {
	digest := sha3.Sum256([]byte(role))
	keys := make([]uint32, len(digest)/4)
	for i := range keys {
		keys[i] = binary.LittleEndian.Uint32(digest[4*i:])
	}
	var res Seed
	for i := range s {
		res[i] = s[i] ^ keys[i%len(keys)]
	}
	return res
}

// FromUint64 expands a small number, e.g. provided on a command line, into
// a seed.
func FromUint64(value uint64) Seed {
	var buffer [8]byte
	binary.LittleEndian.PutUint64(buffer[:], value)
	digest := sha3.Sum256(buffer[:])
	var res Seed
	for i := range res {
		res[i] = binary.LittleEndian.Uint32(digest[4*i:])
	}
	return res
}

// Rand creates a random number generator whose stream is fully determined
// by the seed.
func (s Seed) Rand() *rand.Rand {
	words := make([]uint64, len(s)/2)
	for i := range words {
		words[i] = uint64(s[2*i+1])<<32 | uint64(s[2*i])
	}
	return rand.New(words...)
}

func (s Seed) String() string {
	return fmt.Sprintf("%08x%08x%08x%08x%08x%08x%08x%08x", s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7])
}
