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
	"time"

	cliUtils "github.com/Fantom-foundation/exhaust/go/driver/cli"
	"github.com/Fantom-foundation/exhaust/go/seed"
	"github.com/Fantom-foundation/exhaust/go/seq"
	"github.com/cespare/xxhash/v2"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var DigestCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doDigest,
	Name:      "digest",
	Usage:     "Fingerprints the first values of a domain to compare runs",
	ArgsUsage: "<generator>",
	Flags: []cli.Flag{
		cliUtils.ModeFlag,
		cliUtils.SeedFlag,
		cliUtils.OrderFlag,
		cliUtils.LimitFlag,
	},
})

func doDigest(context *cli.Context) error {
	env, err := newEnvironment(context)
	if err != nil {
		return err
	}
	defer syncLogger(env.logger)

	mode, err := cliUtils.ModeFlag.Fetch(context)
	if err != nil {
		return err
	}
	order, err := cliUtils.OrderFlag.Fetch(context, env.config)
	if err != nil {
		return err
	}
	limit, err := cliUtils.LimitFlag.Fetch(context, env.config)
	if err != nil {
		return err
	}
	if limit == 0 && mode == cliUtils.Random {
		return fmt.Errorf("random mode requires a positive limit")
	}

	producer, err := env.gen.producer(mode, params{
		order:      order,
		seed:       seed.FromUint64(cliUtils.SeedFlag.Fetch(context, env.config)),
		meanBits:   env.config.GetMeanBits(),
		meanLength: env.config.GetMeanLength(),
	})
	if err != nil {
		return err
	}

	start := time.Now()
	sum, count := digest(producer, limit)
	elapsed := time.Since(start)

	rate := 0.0
	if elapsed > 0 {
		rate = float64(count) / elapsed.Seconds()
	}
	fmt.Fprintf(context.App.Writer, "%s %v %016x %d\n", env.name, mode, sum, count)
	env.logger.Info("digest finished",
		zap.String("generator", env.name),
		zap.Stringer("mode", mode),
		zap.Int("values", count),
		zap.String("rate", unitconv.FormatPrefix(rate, unitconv.SI, 0)+"/s"),
	)
	return nil
}

// digest hashes up to limit values, each followed by a newline, so that the
// result equals the hash of the output of the other commands.
func digest(p seq.Producer[string], limit int) (uint64, int) {
	hash := xxhash.New()
	count := 0
	for limit == 0 || count < limit {
		value, ok := p.Next()
		if !ok {
			break
		}
		// Writes to a hash never fail.
		_, _ = hash.WriteString(value)
		_, _ = hash.WriteString("\n")
		count++
	}
	return hash.Sum64(), count
}
