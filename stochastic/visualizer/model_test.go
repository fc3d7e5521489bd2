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

package visualizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram_NewFixedHistogram(t *testing.T) {
	values := []float64{0.0, 0.05, 0.1, 0.95, 1.0, 1.5, -0.1}

	h, err := NewFixedHistogram(values, 0, 1, 0.5)
	require.NoError(t, err)

	require.Len(t, h.Bins, 2)
	assert.Equal(t, 0.5, h.Width)
	assert.Equal(t, 5, h.Count)
	assert.Equal(t, 2, h.Outside)
	assert.Equal(t, Bin{Min: 0, Max: 0.5, Weight: 3.0 / 7.0}, h.Bins[0])
	assert.Equal(t, Bin{Min: 0.5, Max: 1, Weight: 2.0 / 7.0}, h.Bins[1])
}

func TestHistogram_NewFixedHistogramUnitInterval(t *testing.T) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = 3 * float64(i) / float64(len(values))
	}

	h, err := NewFixedHistogram(values, 0, 3, 0.1)
	require.NoError(t, err)

	require.Len(t, h.Bins, 30)
	assert.Equal(t, len(values), h.Count)
	assert.Zero(t, h.Outside)
	sum := 0.0
	for _, b := range h.Bins {
		sum += b.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestHistogram_NewFixedHistogramEmpty(t *testing.T) {
	h, err := NewFixedHistogram(nil, 0, 3, 0.1)
	require.NoError(t, err)
	assert.Len(t, h.Bins, 30)
	assert.Zero(t, h.Count)
	for _, b := range h.Bins {
		assert.Zero(t, b.Weight)
	}
}

func TestHistogram_NewFixedHistogramInvalid(t *testing.T) {
	_, err := NewFixedHistogram([]float64{1}, 0, 3, 0)
	assert.Error(t, err)
	_, err = NewFixedHistogram([]float64{1}, 3, 3, 0.1)
	assert.Error(t, err)
	_, err = NewFixedHistogram([]float64{1}, 0, 3, math.NaN())
	assert.Error(t, err)
}

func TestHistogram_NewDensityHistogram(t *testing.T) {
	values := []float64{1, 2, 2, 3, 4, 4, 4, 5}

	h, err := NewDensityHistogram(values, 4)
	require.NoError(t, err)

	require.Len(t, h.Bins, 4)
	assert.Equal(t, 1.0, h.Bins[0].Min)
	assert.Equal(t, 5.0, h.Bins[3].Max)
	assert.Equal(t, len(values), h.Count)
	assert.Zero(t, h.Outside)
	assert.InDelta(t, 1.0, h.Area(), 1e-9)
}

func TestHistogram_NewDensityHistogramDegenerate(t *testing.T) {
	h, err := NewDensityHistogram([]float64{2, 2, 2}, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.5, h.Bins[0].Min)
	assert.InDelta(t, 2.5, h.Bins[9].Max, 1e-12)
	assert.Equal(t, 3, h.Count)
	assert.InDelta(t, 1.0, h.Area(), 1e-9)
}

func TestHistogram_NewDensityHistogramInvalid(t *testing.T) {
	_, err := NewDensityHistogram(nil, 10)
	assert.Error(t, err)
	_, err = NewDensityHistogram([]float64{1, 2}, 0)
	assert.Error(t, err)
	_, err = NewDensityHistogram([]float64{1, math.Inf(1)}, 10)
	assert.Error(t, err)
	_, err = NewDensityHistogram([]float64{1, math.NaN(), 2}, 10)
	assert.Error(t, err)
}

func TestHistogram_Centers(t *testing.T) {
	h, err := NewFixedHistogram(nil, 0, 1, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.125, 0.375, 0.625, 0.875}, h.Centers())
}
