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
	"strings"

	"github.com/urfave/cli/v2"
)

var ListCmd = cli.Command{
	Action: doList,
	Name:   "list",
	Usage:  "Lists available generators",
}

func doList(context *cli.Context) error {
	for _, name := range generatorNames() {
		gen := generators[name]
		fmt.Fprintf(context.App.Writer, "%-14s %-18s %s\n", name, gen.modes(), gen.description)
	}
	return nil
}

func (g generator) modes() string {
	modes := []string{}
	if g.exhaustive != nil {
		modes = append(modes, "exhaustive")
	}
	if g.random != nil {
		modes = append(modes, "random")
	}
	return strings.Join(modes, ",")
}
