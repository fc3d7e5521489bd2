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
	"fmt"
	"math"

	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/asymptotic"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/continuous"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/order"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/summary"
	"github.com/0xsoniclabs/gammaclt/stochastic/visualizer"
)

// Layout of the sample-mean image.
const (
	MeanRangeMin = 0.0
	MeanRangeMax = 3.0
	MeanBinWidth = 0.1

	// ReportBins is the number of histogram buckets of a report panel.
	ReportBins = 100

	empiricalLabel   = "Empirical"
	theoreticalLabel = "Theoretical"
	deviationLabel   = "Deviation"
)

// LimitDomain is the range on which the limit laws of the boundary transforms are drawn.
var LimitDomain = asymptotic.Span(0, 10, 100)

// MeanChart is the histogram of the sample means overlaid with the normal
// density predicted by the central limit theorem.
func (a *Analysis) MeanChart() (*visualizer.Chart, error) {
	h, err := visualizer.NewFixedHistogram(summary.Means(a.Stats), MeanRangeMin, MeanRangeMax, MeanBinWidth)
	if err != nil {
		return nil, err
	}
	curve, err := asymptotic.SampleMean(a.Dist.Shape(), a.Dist.Scale(), a.SampleSize, asymptotic.DefaultDomain)
	if err != nil {
		return nil, err
	}
	return &visualizer.Chart{
		Title:     SampleMeanName,
		Histogram: h,
		HistLabel: empiricalLabel,
		Curve:     visualizer.Series{Name: theoreticalLabel, Points: curve.Points()},
		XMin:      MeanRangeMin,
		XMax:      MeanRangeMax,
		YMin:      0,
		YMax:      1,
	}, nil
}

// ReportCharts returns the density panels of all five statistics and the
// empirical versus limit CDFs of the boundary transforms.
func (a *Analysis) ReportCharts() ([]*visualizer.Chart, []*visualizer.LineChart, error) {
	shape, scale, n := a.Dist.Shape(), a.Dist.Scale(), a.SampleSize
	references := map[string]func(asymptotic.Domain) (asymptotic.Curve, error){
		SampleMeanName: func(d asymptotic.Domain) (asymptotic.Curve, error) {
			return asymptotic.SampleMean(shape, scale, n, d)
		},
		SampleVarianceName: func(d asymptotic.Domain) (asymptotic.Curve, error) {
			return asymptotic.SampleVariance(shape, scale, n, d)
		},
		SampleMedianName: func(d asymptotic.Domain) (asymptotic.Curve, error) {
			return asymptotic.SampleMedian(shape, scale, n, d)
		},
		SecondOrderName: func(d asymptotic.Domain) (asymptotic.Curve, error) {
			return asymptotic.SecondOrderLimit(d), nil
		},
		MaximumName: func(d asymptotic.Domain) (asymptotic.Curve, error) {
			return asymptotic.MaximumLimit(d), nil
		},
	}

	var panels []*visualizer.Chart
	for _, s := range a.Statistics() {
		h, err := visualizer.NewDensityHistogram(s.Values, ReportBins)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot bucket %v; %v", s.Name, err)
		}
		// evaluate the reference at the bucket centers so bars and curve align
		domain := asymptotic.Domain{Min: h.Bins[0].Min + h.Width/2, Step: h.Width, N: len(h.Bins)}
		curve, err := references[s.Name](domain)
		if err != nil {
			return nil, nil, err
		}
		panels = append(panels, &visualizer.Chart{
			Title:     s.Name,
			Histogram: h,
			HistLabel: empiricalLabel,
			Curve:     visualizer.Series{Name: theoreticalLabel, Points: curve.Points()},
		})
	}

	second, err := a.limitCDFChart(SecondOrderName, order.NFX2(a.Transforms), asymptotic.SecondOrderLaw.CDF)
	if err != nil {
		return nil, nil, err
	}
	maximum, err := a.limitCDFChart(MaximumName, order.N1FXn(a.Transforms), asymptotic.MaximumLaw.CDF)
	if err != nil {
		return nil, nil, err
	}
	return panels, []*visualizer.LineChart{second, maximum}, nil
}

func (a *Analysis) limitCDFChart(name string, values []float64, cdf func(float64) float64) (*visualizer.LineChart, error) {
	ecdf, err := continuous.ECDF(values, continuous.NumECDFPoints)
	if err != nil {
		return nil, fmt.Errorf("cannot compute ECDF of %v; %v", name, err)
	}
	return &visualizer.LineChart{
		Title: name + " CDF",
		Series: []visualizer.Series{
			{Name: empiricalLabel, Points: ecdf},
			{Name: theoreticalLabel, Points: cdfPoints(cdf, LimitDomain)},
			{Name: deviationLabel, Points: deviationPoints(ecdf, cdf, LimitDomain)},
		},
	}, nil
}

// cdfPoints evaluates a CDF on a domain.
func cdfPoints(cdf func(float64) float64, d asymptotic.Domain) [][2]float64 {
	points := make([][2]float64, d.N)
	for i := range points {
		x := d.X(i)
		points[i] = [2]float64{x, cdf(x)}
	}
	return points
}

// deviationPoints evaluates |F_n(x) - F(x)| on a domain, where F_n is the
// compressed empirical CDF.
func deviationPoints(ecdf [][2]float64, cdf func(float64) float64, d asymptotic.Domain) [][2]float64 {
	points := make([][2]float64, d.N)
	for i := range points {
		x := d.X(i)
		points[i] = [2]float64{x, math.Abs(continuous.CDF(ecdf, x) - cdf(x))}
	}
	return points
}
