// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/Fantom-foundation/exhaust/go/index"
	"github.com/urfave/cli/v2"
)

// Flags with a configurable default take the value of an explicitly set
// flag first, then the value of the configuration file, and finally the
// built-in default.

type seedFlagType struct {
	cli.Uint64Flag
}

var SeedFlag = &seedFlagType{
	cli.Uint64Flag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "seed for the random generators",
	},
}

func (f *seedFlagType) Fetch(context *cli.Context, config *Config) uint64 {
	if !context.IsSet(f.Name) && config.Seed != nil {
		return *config.Seed
	}
	return context.Uint64(f.Name)
}

type limitFlagType struct {
	cli.IntFlag
}

var LimitFlag = &limitFlagType{
	cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "maximum number of values to produce, 0 for all of them",
		Value:   20,
	},
}

func (f *limitFlagType) Fetch(context *cli.Context, config *Config) (int, error) {
	limit := context.Int(f.Name)
	if !context.IsSet(f.Name) && config.Limit != nil {
		limit = *config.Limit
	}
	if limit < 0 {
		return 0, fmt.Errorf("invalid limit %d, must not be negative", limit)
	}
	return limit, nil
}

type orderFlagType struct {
	cli.StringFlag
}

var OrderFlag = &orderFlagType{
	cli.StringFlag{
		Name:    "order",
		Aliases: []string{"o"},
		Usage:   "index order of tuple enumerations, one of log, sqrt or z",
		Value:   index.ZOrder.String(),
	},
}

func (f *orderFlagType) Fetch(context *cli.Context, config *Config) (index.Order, error) {
	name := context.String(f.Name)
	if !context.IsSet(f.Name) && config.Order != "" {
		name = config.Order
	}
	return index.ParseOrder(name)
}

// Mode selects between exhaustive enumeration and random sampling.
type Mode int

const (
	Exhaustive Mode = iota
	Random
)

func (m Mode) String() string {
	switch m {
	case Exhaustive:
		return "exhaustive"
	case Random:
		return "random"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type modeFlagType struct {
	cli.StringFlag
}

var ModeFlag = &modeFlagType{
	cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "generation mode, exhaustive or random",
		Value:   Exhaustive.String(),
	},
}

func (f *modeFlagType) Fetch(context *cli.Context) (Mode, error) {
	switch name := context.String(f.Name); name {
	case Exhaustive.String():
		return Exhaustive, nil
	case Random.String():
		return Random, nil
	default:
		return 0, fmt.Errorf("unknown mode %q, use exhaustive or random", name)
	}
}

type configFlagType struct {
	cli.StringFlag
}

var ConfigFlag = &configFlagType{
	cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "TOML file providing default flag values",
		TakesFile: true,
	},
}

// Fetch loads the configuration file named by the flag. Without the flag
// an empty configuration is returned.
func (f *configFlagType) Fetch(context *cli.Context) (*Config, error) {
	path := context.String(f.Name)
	if path == "" {
		return &Config{}, nil
	}
	return LoadConfig(path)
}

type verboseFlagType struct {
	cli.BoolFlag
}

var VerboseFlag = &verboseFlagType{
	cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug logging",
	},
}

func (f *verboseFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

var commonFlags = []cli.Flag{
	cpuProfileFlag,
}

var cpuProfileFlag = &cli.StringFlag{
	Name:      "cpuprofile",
	Usage:     "store CPU profile in the provided filename",
	TakesFile: true,
}

func AddCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, commonFlags...)

	action := command.Action
	command.Action = func(ctx *cli.Context) (err error) {

		if cpuprofileFilename := ctx.String(cpuProfileFlag.Name); cpuprofileFilename != "" {
			f, err := os.Create(cpuprofileFilename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		return action(ctx)
	}
	return command
}
