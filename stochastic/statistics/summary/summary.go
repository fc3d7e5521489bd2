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

package summary

import (
	"math"
	"sort"

	"github.com/0xsoniclabs/gammaclt/stochastic/sampler"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat"
)

// SampleStatistics are the exact statistics of a single sample.
type SampleStatistics struct {
	Mean     float64 // arithmetic mean
	Variance float64 // unbiased sample variance (divisor n-1)
	Median   float64 // sample quantile of order 0.5
}

// Summary describes a column of per-sample values, e.g., all sample means.
type Summary struct {
	Mean   float64
	StdDev float64 // population standard deviation (divisor n)
	Median float64
}

// Reduce computes the statistics of every row of the matrix. Rows are
// reduced independently; a row containing NaN or an infinity is reported
// as ErrNonFiniteObservation.
func Reduce(m *sampler.Matrix) ([]SampleStatistics, error) {
	out := make([]SampleStatistics, m.NumSamples())
	for i := range out {
		row := m.Row(i)
		if j, ok := firstNonFinite(row); ok {
			return nil, errors.Wrapf(statistics.ErrNonFiniteObservation, "sample %d, observation %d: %v", i, j, row[j])
		}
		out[i] = Compute(row)
	}
	return out, nil
}

// Compute returns the statistics of a single sample. The sample is not modified.
func Compute(xs []float64) SampleStatistics {
	mean, variance := stat.MeanVariance(xs, nil)
	if len(xs) < 2 {
		variance = 0
	}
	return SampleStatistics{
		Mean:     mean,
		Variance: math.Max(variance, 0),
		Median:   Median(xs),
	}
}

// Median returns the middle value of a sorted copy of xs, or the average of
// the two middle values if len(xs) is even. It returns NaN for an empty slice.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Summarize computes mean, population standard deviation and median of a column of values.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{Mean: math.NaN(), StdDev: math.NaN(), Median: math.NaN()}
	}
	mean, std := stat.PopMeanStdDev(xs, nil)
	return Summary{
		Mean:   mean,
		StdDev: std,
		Median: Median(xs),
	}
}

// Means extracts the column of sample means.
func Means(s []SampleStatistics) []float64 {
	return column(s, func(st SampleStatistics) float64 { return st.Mean })
}

// Variances extracts the column of sample variances.
func Variances(s []SampleStatistics) []float64 {
	return column(s, func(st SampleStatistics) float64 { return st.Variance })
}

// Medians extracts the column of sample medians.
func Medians(s []SampleStatistics) []float64 {
	return column(s, func(st SampleStatistics) float64 { return st.Median })
}

func column(s []SampleStatistics, f func(SampleStatistics) float64) []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = f(s[i])
	}
	return out
}

func firstNonFinite(xs []float64) (int, bool) {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i, true
		}
	}
	return 0, false
}
