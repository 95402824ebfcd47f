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
	"time"

	cliUtils "github.com/Fantom-foundation/exhaust/go/driver/cli"
	"github.com/Fantom-foundation/exhaust/go/seed"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var EnumerateCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doEnumerate,
	Name:      "enumerate",
	Usage:     "Prints the values of a domain in enumeration order",
	ArgsUsage: "<generator>",
	Flags: []cli.Flag{
		cliUtils.OrderFlag,
		cliUtils.LimitFlag,
	},
})

var SampleCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doSample,
	Name:      "sample",
	Usage:     "Prints random values of a domain",
	ArgsUsage: "<generator>",
	Flags: []cli.Flag{
		cliUtils.SeedFlag,
		cliUtils.LimitFlag,
	},
})

func doEnumerate(context *cli.Context) error {
	env, err := newEnvironment(context)
	if err != nil {
		return err
	}
	defer syncLogger(env.logger)

	order, err := cliUtils.OrderFlag.Fetch(context, env.config)
	if err != nil {
		return err
	}
	limit, err := cliUtils.LimitFlag.Fetch(context, env.config)
	if err != nil {
		return err
	}

	producer, err := env.gen.producer(cliUtils.Exhaustive, params{order: order})
	if err != nil {
		return err
	}
	env.logger.Debug("enumerating",
		zap.String("generator", env.name),
		zap.Stringer("order", order),
		zap.Int("limit", limit),
	)

	start := time.Now()
	count, exhausted, err := emit(context.App.Writer, producer, limit)
	if err != nil {
		return err
	}
	env.logger.Info("enumeration finished",
		zap.String("generator", env.name),
		zap.Int("values", count),
		zap.Bool("exhausted", exhausted),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func doSample(context *cli.Context) error {
	env, err := newEnvironment(context)
	if err != nil {
		return err
	}
	defer syncLogger(env.logger)

	seedValue := cliUtils.SeedFlag.Fetch(context, env.config)
	limit, err := cliUtils.LimitFlag.Fetch(context, env.config)
	if err != nil {
		return err
	}
	if limit == 0 {
		env.logger.Warn("sampling without limit, random domains never run out")
	}

	s := seed.FromUint64(seedValue)
	producer, err := env.gen.producer(cliUtils.Random, params{
		seed:       s,
		meanBits:   env.config.GetMeanBits(),
		meanLength: env.config.GetMeanLength(),
	})
	if err != nil {
		return err
	}
	env.logger.Debug("sampling",
		zap.String("generator", env.name),
		zap.Uint64("seed", seedValue),
		zap.Stringer("expanded_seed", s),
		zap.Int("limit", limit),
	)

	start := time.Now()
	count, _, err := emit(context.App.Writer, producer, limit)
	if err != nil {
		return err
	}
	env.logger.Info("sampling finished",
		zap.String("generator", env.name),
		zap.Int("values", count),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
