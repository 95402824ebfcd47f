// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"sort"
	"strings"

	cliUtils "github.com/Fantom-foundation/exhaust/go/driver/cli"
	"github.com/Fantom-foundation/exhaust/go/exhaustive"
	"github.com/Fantom-foundation/exhaust/go/index"
	"github.com/Fantom-foundation/exhaust/go/random"
	"github.com/Fantom-foundation/exhaust/go/seed"
	"github.com/Fantom-foundation/exhaust/go/seq"
	"github.com/Fantom-foundation/exhaust/go/tuples"
	"golang.org/x/exp/maps"
)

// params collects the knobs of a generator instance.
type params struct {
	order      index.Order
	seed       seed.Seed
	meanBits   float64
	meanLength float64
}

// generator describes a named domain. Either of the two modes may be
// missing.
type generator struct {
	description string
	exhaustive  func(params) seq.Producer[string]
	random      func(params) seq.Producer[string]
}

var generators = map[string]generator{
	"bools": {
		description: "false and true",
		exhaustive:  func(params) seq.Producer[string] { return format(exhaustive.Bools()) },
		random:      func(p params) seq.Producer[string] { return format(random.Bools(p.seed)) },
	},
	"naturals": {
		description: "unsigned 64-bit integers",
		exhaustive:  func(params) seq.Producer[string] { return format(exhaustive.Naturals()) },
		random: func(p params) seq.Producer[string] {
			return format(random.Naturals(p.seed, p.meanBits))
		},
	},
	"integers": {
		description: "signed 64-bit integers",
		exhaustive:  func(params) seq.Producer[string] { return format(exhaustive.Integers()) },
		random: func(p params) seq.Producer[string] {
			return format(random.Integers(p.seed, p.meanBits))
		},
	},
	"big-naturals": {
		description: "unbounded non-negative integers",
		exhaustive:  func(params) seq.Producer[string] { return format(exhaustive.BigNaturals()) },
		random: func(p params) seq.Producer[string] {
			return format(random.BigNaturals(p.seed, p.meanBits))
		},
	},
	"big-integers": {
		description: "unbounded integers",
		exhaustive:  func(params) seq.Producer[string] { return format(exhaustive.BigIntegers()) },
		random: func(p params) seq.Producer[string] {
			return format(random.BigIntegers(p.seed, p.meanBits))
		},
	},
	"u256": {
		description: "256-bit words",
		exhaustive:  func(params) seq.Producer[string] { return format(exhaustive.U256s()) },
		random:      func(p params) seq.Producer[string] { return format(random.U256s(p.seed)) },
	},
	"u256-specials": {
		description: "256-bit words at carry and overflow edges",
		exhaustive:  func(params) seq.Producer[string] { return format(exhaustive.U256Specials()) },
	},
	"strings": {
		description: "ASCII strings",
		exhaustive: func(params) seq.Producer[string] {
			return quote(exhaustive.Strings(exhaustive.AsciiChars()))
		},
		random: func(p params) seq.Producer[string] {
			return quote(random.Strings(p.seed, p.meanLength))
		},
	},
	"pairs": {
		description: "pairs of naturals and integers",
		exhaustive: func(p params) seq.Producer[string] {
			return format(tuples.Pairs(p.order, exhaustive.Naturals(), exhaustive.Integers()))
		},
		random: func(p params) seq.Producer[string] {
			naturals := func(s seed.Seed) seq.Producer[uint64] { return random.Naturals(s, p.meanBits) }
			integers := func(s seed.Seed) seq.Producer[int64] { return random.Integers(s, p.meanBits) }
			return format(random.Pairs(p.seed, naturals, integers))
		},
	},
	"triples": {
		description: "triples of bools, naturals and lower case letters",
		exhaustive: func(params) seq.Producer[string] {
			letters := seq.Map(exhaustive.RangeInclusive('a', 'z'), func(r rune) string { return string(r) })
			return format(tuples.Triples(exhaustive.Bools(), exhaustive.Naturals(), letters))
		},
	},
	"vecs": {
		description: "vectors of naturals, of length 3 when enumerated",
		exhaustive: func(params) seq.Producer[string] {
			return format(exhaustive.Vecs(exhaustive.Naturals(), 3))
		},
		random: func(p params) seq.Producer[string] {
			naturals := func(s seed.Seed) seq.Producer[uint64] { return random.Naturals(s, p.meanBits) }
			return format(random.Vecs(p.seed, naturals, p.meanLength))
		},
	},
	"prefixes": {
		description: "naturals paired with smaller naturals",
		exhaustive: func(p params) seq.Producer[string] {
			return format(tuples.DependentPairs(p.order, exhaustive.Naturals(), func(n uint64) seq.Producer[uint64] {
				return exhaustive.Range(0, n)
			}))
		},
	},
}

func format[T any](p seq.Producer[T]) seq.Producer[string] {
	return seq.Map(p, func(v T) string {
		return fmt.Sprint(v)
	})
}

func quote(p seq.Producer[string]) seq.Producer[string] {
	return seq.Map(p, func(s string) string {
		return fmt.Sprintf("%q", s)
	})
}

func generatorNames() []string {
	names := maps.Keys(generators)
	sort.Strings(names)
	return names
}

// lookupGenerator performs a case-insensitive lookup in the registry.
func lookupGenerator(name string) (generator, error) {
	gen, found := generators[strings.ToLower(name)]
	if !found {
		return generator{}, fmt.Errorf("unknown generator %q, use one of: %v", name, generatorNames())
	}
	return gen, nil
}

// producer instantiates the generator in the given mode.
func (g generator) producer(mode cliUtils.Mode, p params) (seq.Producer[string], error) {
	var create func(params) seq.Producer[string]
	switch mode {
	case cliUtils.Exhaustive:
		create = g.exhaustive
	case cliUtils.Random:
		create = g.random
	}
	if create == nil {
		return nil, fmt.Errorf("generator does not support %s mode", mode)
	}
	return create(p), nil
}
