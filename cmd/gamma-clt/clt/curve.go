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

package clt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0xsoniclabs/gammaclt/config"
	"github.com/0xsoniclabs/gammaclt/logger"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/asymptotic"
	"github.com/0xsoniclabs/gammaclt/utils"
	"github.com/urfave/cli/v2"
)

// CurveCommand prints the normal limit of the sample mean.
var CurveCommand = cli.Command{
	Action: curveAction,
	Name:   "curve",
	Usage:  "print the normal density predicted for the sample mean",
	Flags: []cli.Flag{
		&config.ShapeFlag,
		&config.ScaleFlag,
		&config.SampleSizeFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The curve command prints the (x, density) pairs of the normal limit of the
sample mean on [0,3), one pair per line. No samples are drawn.`,
}

func curveAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "GammaCLTCurve")
	log.Debugf("Reference curve for Gamma(%v, %v) and sample size %v", cfg.Shape, cfg.Scale, cfg.SampleSize)
	return printCurve(cfg, os.Stdout)
}

func printCurve(cfg *config.Config, w io.Writer) error {
	curve, err := asymptotic.SampleMean(cfg.Shape, cfg.Scale, cfg.SampleSize, asymptotic.DefaultDomain)
	if err != nil {
		return err
	}
	printers := utils.NewPrinters().AddPrinterToWriter(w, func() string {
		var sb strings.Builder
		for x, y := range curve.All() {
			fmt.Fprintf(&sb, "%.2f\t%.6f\n", x, y)
		}
		return strings.TrimSuffix(sb.String(), "\n")
	})
	defer printers.Close()
	return printers.Print()
}
