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
	"testing"

	"github.com/0xsoniclabs/gammaclt/stochastic/sampler"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/gamma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// referenceMedian is an independent sort-and-index implementation.
func referenceMedian(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	n := len(s)
	if n%2 == 1 {
		return s[(n-1)/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

func TestSummary_ComputeKnownValues(t *testing.T) {
	st := Compute([]float64{4, 1, 3, 2})
	assert.InDelta(t, 2.5, st.Mean, 1e-12)
	assert.InDelta(t, 5.0/3.0, st.Variance, 1e-12)
	assert.InDelta(t, 2.5, st.Median, 1e-12)

	st = Compute([]float64{5, 1, 9})
	assert.InDelta(t, 5.0, st.Mean, 1e-12)
	assert.InDelta(t, 16.0, st.Variance, 1e-12)
	assert.Equal(t, 5.0, st.Median)
}

func TestSummary_ComputeSingleObservation(t *testing.T) {
	st := Compute([]float64{3})
	assert.Equal(t, SampleStatistics{Mean: 3, Variance: 0, Median: 3}, st)
}

func TestSummary_ComputeDoesNotModifyInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Compute(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestSummary_ConstantSampleHasZeroVariance(t *testing.T) {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = 0.1
	}
	st := Compute(xs)
	assert.Equal(t, 0.0, st.Variance)
	assert.InDelta(t, 0.1, st.Median, 1e-15)
}

func TestSummary_ReduceGammaSamples(t *testing.T) {
	g, err := gamma.New(2, 1)
	require.NoError(t, err)
	for _, size := range []int{2, 3, 10, 11, 100} {
		m, err := sampler.Generate(200, size, g, rand.New(rand.NewSource(uint64(size))))
		require.NoError(t, err)
		stats, err := Reduce(m)
		require.NoError(t, err)
		require.Len(t, stats, 200)
		for i, st := range stats {
			row := m.Row(i)
			if st.Variance < 0 {
				t.Fatalf("negative variance %v in row %d", st.Variance, i)
			}
			assert.Equal(t, referenceMedian(row), st.Median, "row %d size %d", i, size)
			sum := 0.0
			for _, x := range row {
				sum += x
			}
			assert.InDelta(t, sum/float64(size), st.Mean, 1e-12)
		}
	}
}

func TestSummary_ReduceReportsNonFiniteObservation(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m, err := sampler.NewMatrix([][]float64{{1, 2, 3}, {4, bad, 6}})
		require.NoError(t, err)
		_, err = Reduce(m)
		assert.ErrorIs(t, err, statistics.ErrNonFiniteObservation)
		assert.Contains(t, err.Error(), "sample 1, observation 1")
	}
}

func TestSummary_Columns(t *testing.T) {
	s := []SampleStatistics{{1, 2, 3}, {4, 5, 6}}
	assert.Equal(t, []float64{1, 4}, Means(s))
	assert.Equal(t, []float64{2, 5}, Variances(s))
	assert.Equal(t, []float64{3, 6}, Medians(s))
}

func TestSummary_Summarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), s.StdDev, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)

	empty := Summarize(nil)
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.StdDev))
	assert.True(t, math.IsNaN(empty.Median))
	assert.True(t, math.IsNaN(Median(nil)))
}

// TestSummary_MeansConvergeToCLT is a Monte Carlo check that mean and
// standard deviation of the sample means approach shape*scale and
// sqrt(shape*scale^2/n).
func TestSummary_MeansConvergeToCLT(t *testing.T) {
	if testing.Short() {
		t.Skip("monte carlo test")
	}
	const (
		shape      = 2.0
		scale      = 1.5
		nSamples   = 100000
		sampleSize = 25
	)
	g, err := gamma.New(shape, scale)
	require.NoError(t, err)
	m, err := sampler.Generate(nSamples, sampleSize, g, rand.New(rand.NewSource(2024)), sampler.WithWorkers(4))
	require.NoError(t, err)
	stats, err := Reduce(m)
	require.NoError(t, err)
	s := Summarize(Means(stats))

	sigma := math.Sqrt(shape * scale * scale / sampleSize)
	assert.InDelta(t, shape*scale, s.Mean, 0.01)
	assert.InDelta(t, sigma, s.StdDev, 0.01)
}
