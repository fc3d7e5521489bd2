// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/gammaclt/cmd/gamma-clt/clt"
	"github.com/urfave/cli/v2"
)

var gammaCltApp = &cli.App{
	Action:    clt.RunAction,
	Name:      "Gamma sampling and central limit analysis",
	HelpName:  "gamma-clt",
	Usage:     "sample a Gamma population and compare sample statistics with their limit laws",
	Copyright: "(c) 2025 Sonic Labs",
	Flags:     clt.RunFlags,
	Commands: []*cli.Command{
		&clt.RunCommand,
		&clt.CurveCommand,
	},
}

func main() {
	if err := gammaCltApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
