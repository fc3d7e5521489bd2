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

package stochastic

import (
	"math"
	"testing"

	"github.com/0xsoniclabs/gammaclt/config"
	"github.com/0xsoniclabs/gammaclt/logger"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/asymptotic"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/continuous"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.NumSamples = 200
	cfg.SampleSize = 20
	return cfg
}

func TestAnalysis_ReferenceScenario(t *testing.T) {
	log := logger.NewLogger("Warning", "TestAnalysis")
	cfg := config.DefaultConfig()

	a, err := Analyze(cfg, log)
	require.NoError(t, err)

	stats := a.Statistics()
	require.Len(t, stats, 5)
	mean := stats[0]
	assert.Equal(t, SampleMeanName, mean.Name)
	assert.Len(t, mean.Values, cfg.NumSamples)
	assert.InDelta(t, 2.0, mean.Summary.Mean, 0.05)
	assert.InDelta(t, 0.14, mean.Summary.StdDev, 0.02)
	assert.InDelta(t, 2.0, mean.Summary.Median, 0.05)
}

func TestAnalysis_StatisticNames(t *testing.T) {
	a, err := Analyze(smallConfig(), logger.NewLogger("Warning", "TestAnalysis"))
	require.NoError(t, err)

	names := []string{}
	for _, s := range a.Statistics() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{SampleMeanName, SampleVarianceName, SampleMedianName, SecondOrderName, MaximumName}, names)
}

func TestAnalysis_Invariants(t *testing.T) {
	cfg := smallConfig()
	a, err := Analyze(cfg, logger.NewLogger("Warning", "TestAnalysis"))
	require.NoError(t, err)

	n := float64(cfg.SampleSize)
	for i, s := range a.Stats {
		assert.GreaterOrEqual(t, s.Variance, 0.0, "row %d", i)
	}
	for i, p := range a.Transforms {
		assert.True(t, p.NFX2 >= 0 && p.NFX2 <= n, "row %d: %v", i, p.NFX2)
		assert.True(t, p.N1FXn >= 0 && p.N1FXn <= n, "row %d: %v", i, p.N1FXn)
	}
}

func TestAnalysis_IndependentOfWorkers(t *testing.T) {
	log := logger.NewLogger("Warning", "TestAnalysis")
	cfg := smallConfig()
	single, err := Analyze(cfg, log)
	require.NoError(t, err)

	cfg.Workers = 5
	parallel, err := Analyze(cfg, log)
	require.NoError(t, err)

	assert.True(t, single.Matrix.Equal(parallel.Matrix))
	assert.Equal(t, single.Stats, parallel.Stats)
	assert.Equal(t, single.Transforms, parallel.Transforms)
}

func TestAnalysis_SeedChangesSamples(t *testing.T) {
	log := logger.NewLogger("Warning", "TestAnalysis")
	cfg := smallConfig()
	a, err := Analyze(cfg, log)
	require.NoError(t, err)

	cfg.RandomSeed++
	b, err := Analyze(cfg, log)
	require.NoError(t, err)

	assert.False(t, a.Matrix.Equal(b.Matrix))
}

func TestAnalysis_InvalidParameters(t *testing.T) {
	log := logger.NewLogger("Warning", "TestAnalysis")

	cfg := smallConfig()
	cfg.Shape = 0
	_, err := Analyze(cfg, log)
	assert.True(t, errors.Is(err, statistics.ErrInvalidParameter))

	cfg = smallConfig()
	cfg.SampleSize = 1
	_, err = Analyze(cfg, log)
	assert.True(t, errors.Is(err, statistics.ErrInsufficientSampleSize))

	cfg = smallConfig()
	cfg.NumSamples = 0
	_, err = Analyze(cfg, log)
	assert.True(t, errors.Is(err, statistics.ErrInvalidParameter))
}

func TestAnalysis_MeanChart(t *testing.T) {
	cfg := smallConfig()
	a, err := Analyze(cfg, logger.NewLogger("Warning", "TestAnalysis"))
	require.NoError(t, err)

	chart, err := a.MeanChart()
	require.NoError(t, err)

	assert.Equal(t, SampleMeanName, chart.Title)
	assert.Len(t, chart.Histogram.Bins, 30)
	assert.Equal(t, cfg.NumSamples, chart.Histogram.Count+chart.Histogram.Outside)
	assert.Equal(t, 0.0, chart.XMin)
	assert.Equal(t, 3.0, chart.XMax)
	assert.Equal(t, 1.0, chart.YMax)

	require.Len(t, chart.Curve.Points, 100)
	assert.Equal(t, 0.0, chart.Curve.Points[0][0])
	assert.InDelta(t, 2.97, chart.Curve.Points[99][0], 1e-12)
	sigma := math.Sqrt(cfg.Shape * cfg.Scale * cfg.Scale / float64(cfg.SampleSize))
	assert.InEpsilon(t, 1/(sigma*math.Sqrt(2*math.Pi)), chart.Curve.Points[66][1]*math.Exp(0.5*math.Pow((1.98-2)/sigma, 2)), 1e-9)
}

func TestAnalysis_ReportCharts(t *testing.T) {
	a, err := Analyze(smallConfig(), logger.NewLogger("Warning", "TestAnalysis"))
	require.NoError(t, err)

	panels, lines, err := a.ReportCharts()
	require.NoError(t, err)

	require.Len(t, panels, 5)
	for _, p := range panels {
		assert.Len(t, p.Histogram.Bins, ReportBins, p.Title)
		assert.Len(t, p.Curve.Points, ReportBins, p.Title)
		assert.InDelta(t, 1.0, p.Histogram.Area(), 1e-9, p.Title)
		for i, c := range p.Histogram.Centers() {
			assert.InDelta(t, c, p.Curve.Points[i][0], 1e-9, p.Title)
		}
	}
	require.Len(t, lines, 2)
	for _, l := range lines {
		require.Len(t, l.Series, 3)
		assert.Len(t, l.Series[1].Points, LimitDomain.N)
		last := l.Series[0].Points[len(l.Series[0].Points)-1]
		assert.Equal(t, 1.0, last[1])

		require.Equal(t, deviationLabel, l.Series[2].Name)
		require.Len(t, l.Series[2].Points, LimitDomain.N)
		for i, p := range l.Series[2].Points {
			x := l.Series[1].Points[i][0]
			assert.Equal(t, x, p[0])
			want := math.Abs(continuous.CDF(l.Series[0].Points, x) - l.Series[1].Points[i][1])
			assert.InDelta(t, want, p[1], 1e-12)
			assert.GreaterOrEqual(t, p[1], 0.0)
			assert.LessOrEqual(t, p[1], 1.0)
		}
	}
}

func TestAnalysis_cdfPoints(t *testing.T) {
	points := cdfPoints(asymptotic.MaximumLaw.CDF, asymptotic.Span(0, 1, 4))

	require.Len(t, points, 4)
	assert.Equal(t, [2]float64{0, 0}, points[0])
	assert.InDelta(t, 1-math.Exp(-0.75), points[3][1], 1e-12)
}

func TestAnalysis_deviationPoints(t *testing.T) {
	// the ECDF of the uniform distribution on [0,1]
	ecdf := [][2]float64{{0, 0}, {1, 1}}
	points := deviationPoints(ecdf, asymptotic.MaximumLaw.CDF, asymptotic.Span(0, 2, 4))

	require.Len(t, points, 4)
	assert.Equal(t, [2]float64{0, 0}, points[0])
	assert.InDelta(t, math.Abs(0.5-(1-math.Exp(-0.5))), points[1][1], 1e-12)
	assert.InDelta(t, math.Exp(-1.5), points[3][1], 1e-12)
}
