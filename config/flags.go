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

package config

import (
	"github.com/urfave/cli/v2"
)

var (
	ShapeFlag = cli.Float64Flag{
		Name:  "shape",
		Usage: "shape parameter of the Gamma population",
		Value: 2.0,
	}
	ScaleFlag = cli.Float64Flag{
		Name:  "scale",
		Usage: "scale parameter of the Gamma population",
		Value: 1.0,
	}
	NumSamplesFlag = cli.IntFlag{
		Name:    "num-samples",
		Aliases: []string{"n"},
		Usage:   "number of samples drawn from the population",
		Value:   1000,
	}
	SampleSizeFlag = cli.IntFlag{
		Name:    "sample-size",
		Aliases: []string{"s"},
		Usage:   "number of observations in each sample",
		Value:   100,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "seed of the random generator",
		Value: 42,
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of workers generating samples",
		Value: 1,
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file of the histogram image",
		Value:   "output.png",
	}
	ImageWidthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "width of the histogram image in pixels",
		Value: 1200,
	}
	ImageHeightFlag = cli.IntFlag{
		Name:  "height",
		Usage: "height of the histogram image in pixels",
		Value: 800,
	}
	ReportFlag = cli.PathFlag{
		Name:  "report",
		Usage: "write an HTML report with the distributions of all statistics to this file",
	}
	FormatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "format of the console summary (text, table)",
		Value: TextFormat,
	}
)
