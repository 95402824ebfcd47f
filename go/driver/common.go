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
	"io"

	cliUtils "github.com/Fantom-foundation/exhaust/go/driver/cli"
	"github.com/Fantom-foundation/exhaust/go/seq"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// environment bundles what every command needs besides its own flags.
type environment struct {
	config *cliUtils.Config
	logger *zap.Logger
	name   string
	gen    generator
}

func newEnvironment(context *cli.Context) (*environment, error) {
	config, err := cliUtils.ConfigFlag.Fetch(context)
	if err != nil {
		return nil, err
	}
	if context.Args().Len() != 1 {
		return nil, fmt.Errorf("expected exactly one generator name, use one of: %v", generatorNames())
	}
	name := context.Args().Get(0)
	gen, err := lookupGenerator(name)
	if err != nil {
		return nil, err
	}
	return &environment{
		config: config,
		logger: newLogger(cliUtils.VerboseFlag.Fetch(context)),
		name:   name,
		gen:    gen,
	}, nil
}

// emit writes up to limit values to the given writer, one per line. A limit
// of 0 writes all values. It reports the number of values written and
// whether the producer was exhausted.
func emit(out io.Writer, p seq.Producer[string], limit int) (int, bool, error) {
	count := 0
	for limit == 0 || count < limit {
		value, ok := p.Next()
		if !ok {
			return count, true, nil
		}
		if _, err := fmt.Fprintln(out, value); err != nil {
			return count, false, err
		}
		count++
	}
	return count, false, nil
}
