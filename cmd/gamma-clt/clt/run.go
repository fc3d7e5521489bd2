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

	"github.com/0xsoniclabs/gammaclt/config"
	"github.com/0xsoniclabs/gammaclt/logger"
	"github.com/0xsoniclabs/gammaclt/stochastic"
	"github.com/0xsoniclabs/gammaclt/stochastic/visualizer"
	"github.com/0xsoniclabs/gammaclt/utils"
	"github.com/urfave/cli/v2"
)

// RunFlags are the flags of the analysis run.
var RunFlags = []cli.Flag{
	&config.ShapeFlag,
	&config.ScaleFlag,
	&config.NumSamplesFlag,
	&config.SampleSizeFlag,
	&config.RandomSeedFlag,
	&config.WorkersFlag,
	&config.OutputFlag,
	&config.ImageWidthFlag,
	&config.ImageHeightFlag,
	&config.ReportFlag,
	&config.FormatFlag,
	&logger.LogLevelFlag,
}

// RunCommand samples the population, writes the histogram image and prints the summary.
var RunCommand = cli.Command{
	Action:    RunAction,
	Name:      "run",
	Usage:     "plot the distribution of the sample mean against its normal limit",
	ArgsUsage: "",
	Flags:     RunFlags,
	Description: `
The run command draws num-samples samples of sample-size observations from a
Gamma(shape, scale) population. It writes a histogram of the sample means with
the normal density predicted by the central limit theorem to the output image
and prints mean, standard deviation and median of all per-sample statistics.`,
}

// RunAction is the cli action of the run command.
func RunAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 0 {
		return fmt.Errorf("run command requires exactly 0 arguments")
	}
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "GammaCLT")
	sink := visualizer.NewPNGSink(cfg.Output, cfg.ImageWidth, cfg.ImageHeight)
	return Run(cfg, log, sink, os.Stdout)
}

// Run analyses the configured population, hands the sample-mean chart to the
// sink and writes the summary to w. All statistics and charts are computed
// before anything is written, and a failed run leaves no output files behind.
func Run(cfg *config.Config, log logger.Logger, sink visualizer.Sink, w io.Writer) error {
	a, err := stochastic.Analyze(cfg, log)
	if err != nil {
		return err
	}
	chart, err := a.MeanChart()
	if err != nil {
		return err
	}
	stats := a.Statistics()

	if cfg.Report != "" {
		panels, lines, err := a.ReportCharts()
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Gamma(%v, %v): %v samples of size %v", cfg.Shape, cfg.Scale, cfg.NumSamples, cfg.SampleSize)
		if err := visualizer.WriteReportFile(cfg.Report, title, panels, lines); err != nil {
			return err
		}
	}

	if err := sink.Render(chart); err != nil {
		if cfg.Report != "" {
			if rerr := os.Remove(cfg.Report); rerr != nil {
				log.Warningf("Cannot remove report %v; %v", cfg.Report, rerr)
			}
		}
		return err
	}
	log.Noticef("Histogram of sample means written to %v", cfg.Output)
	if cfg.Report != "" {
		log.Noticef("Report written to %v", cfg.Report)
	}

	printers := utils.NewPrinters().AddPrinterToWriter(w, func() string {
		return formatSummary(cfg.Format, stats)
	})
	defer printers.Close()
	return printers.Print()
}

// formatSummary renders the summaries of the statistics in the given format.
func formatSummary(format string, stats []stochastic.Statistic) string {
	rows := make([]utils.SummaryRow, len(stats))
	for i, s := range stats {
		rows[i] = utils.SummaryRow{
			Name:   s.Name,
			Mean:   s.Summary.Mean,
			Std:    s.Summary.StdDev,
			Median: s.Summary.Median,
		}
	}
	if format == config.TableFormat {
		return utils.SummaryTable(rows)
	}
	return utils.SummaryText(rows)
}
