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
	"time"

	"github.com/0xsoniclabs/gammaclt/config"
	"github.com/0xsoniclabs/gammaclt/logger"
	"github.com/0xsoniclabs/gammaclt/stochastic/sampler"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/asymptotic"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/continuous"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/gamma"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/order"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/summary"
	"golang.org/x/exp/rand"
)

// Names of the per-sample statistics in the order they are reported.
const (
	SampleMeanName     = "Sample Mean"
	SampleVarianceName = "Sample Variance"
	SampleMedianName   = "Sample Quantile (0.5)"
	SecondOrderName    = "nF(X_(2))"
	MaximumName        = "n(1-F(X_(n)))"
)

// Analysis holds the generated samples and all statistics derived from them.
type Analysis struct {
	Dist       *gamma.Gamma
	SampleSize int
	Matrix     *sampler.Matrix
	Stats      []summary.SampleStatistics
	Transforms []order.TransformPair
}

// Statistic is the column of a per-sample statistic with its summary.
type Statistic struct {
	Name    string
	Values  []float64
	Summary summary.Summary
}

// Analyze draws the samples configured in cfg and computes the per-sample
// statistics and order-statistic transforms. Nothing is rendered here.
func Analyze(cfg *config.Config, log logger.Logger) (*Analysis, error) {
	dist, err := gamma.New(cfg.Shape, cfg.Scale)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rg := rand.New(rand.NewSource(uint64(cfg.RandomSeed)))
	m, err := sampler.Generate(cfg.NumSamples, cfg.SampleSize, dist, rg, sampler.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	log.Infof("Generated %v samples of size %v from Gamma(shape=%v, scale=%v) with seed %v",
		cfg.NumSamples, cfg.SampleSize, cfg.Shape, cfg.Scale, cfg.RandomSeed)

	stats, err := summary.Reduce(m)
	if err != nil {
		return nil, err
	}
	pairs, err := order.Transform(m, dist)
	if err != nil {
		return nil, err
	}

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Debugf("Sampling and reduction took %vh %vm %vs", hours, minutes, seconds)

	a := &Analysis{
		Dist:       dist,
		SampleSize: cfg.SampleSize,
		Matrix:     m,
		Stats:      stats,
		Transforms: pairs,
	}
	a.logLimitDistances(log)
	return a, nil
}

// Statistics returns the five per-sample statistics with their summaries.
func (a *Analysis) Statistics() []Statistic {
	columns := []struct {
		name   string
		values []float64
	}{
		{SampleMeanName, summary.Means(a.Stats)},
		{SampleVarianceName, summary.Variances(a.Stats)},
		{SampleMedianName, summary.Medians(a.Stats)},
		{SecondOrderName, order.NFX2(a.Transforms)},
		{MaximumName, order.N1FXn(a.Transforms)},
	}
	res := make([]Statistic, 0, len(columns))
	for _, c := range columns {
		res = append(res, Statistic{Name: c.name, Values: c.values, Summary: summary.Summarize(c.values)})
	}
	return res
}

// logLimitDistances reports how far the boundary transforms are from their limit laws.
func (a *Analysis) logLimitDistances(log logger.Logger) {
	d2 := continuous.KolmogorovDistance(order.NFX2(a.Transforms), asymptotic.SecondOrderLaw.CDF)
	dn := continuous.KolmogorovDistance(order.N1FXn(a.Transforms), asymptotic.MaximumLaw.CDF)
	log.Infof("Kolmogorov distance of %v to Gamma(2,1): %.4f", SecondOrderName, d2)
	log.Infof("Kolmogorov distance of %v to Exp(1): %.4f", MaximumName, dn)
}
