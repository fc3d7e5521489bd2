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
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bin is a single histogram bucket [Min, Max) with its weight.
type Bin struct {
	Min, Max float64
	Weight   float64
}

// Histogram is a histogram with buckets of equal width.
type Histogram struct {
	Bins    []Bin
	Width   float64 // bucket width
	Count   int     // number of values inside the buckets
	Outside int     // number of values outside the covered range
}

// Series is a named sequence of (x,y) points.
type Series struct {
	Name   string
	Points [][2]float64
}

// Chart is a histogram overlaid with a reference curve.
type Chart struct {
	Title     string
	Histogram Histogram
	HistLabel string
	Curve     Series

	// Axis ranges; a range with Min == Max is derived from the data.
	XMin, XMax float64
	YMin, YMax float64
}

// LineChart is a set of line series sharing a value axis.
type LineChart struct {
	Title  string
	Series []Series
}

// NewFixedHistogram buckets values into buckets of the given width covering
// [min,max]. The last bucket is closed on the right. Weights are relative
// frequencies, i.e., bucket count divided by the total number of values.
func NewFixedHistogram(values []float64, min, max, width float64) (Histogram, error) {
	if !(width > 0) || !(max > min) {
		return Histogram{}, fmt.Errorf("histogram: invalid range [%v,%v] or bucket width %v", min, max, width)
	}
	n := int(math.Round((max - min) / width))
	if n < 1 {
		n = 1
	}
	h := Histogram{Bins: make([]Bin, n), Width: width}
	for i := range h.Bins {
		h.Bins[i] = Bin{Min: min + float64(i)*width, Max: min + float64(i+1)*width}
	}
	for _, v := range values {
		if !(v >= min && v <= max) {
			h.Outside++
			continue
		}
		idx := int((v - min) / width)
		if idx >= n {
			idx = n - 1
		}
		h.Bins[idx].Weight++
		h.Count++
	}
	if total := len(values); total > 0 {
		for i := range h.Bins {
			h.Bins[i].Weight /= float64(total)
		}
	}
	return h, nil
}

// NewDensityHistogram splits the range of the values into n buckets of equal
// width. Weights are normalised so that the area of the histogram is one.
func NewDensityHistogram(values []float64, n int) (Histogram, error) {
	if len(values) == 0 || n < 1 {
		return Histogram{}, fmt.Errorf("histogram: need values and at least one bucket")
	}
	min, max := floats.Min(values), floats.Max(values)
	if floats.HasNaN(values) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return Histogram{}, fmt.Errorf("histogram: values must be finite")
	}
	if max == min {
		// degenerate sample; widen to a unit interval around the value
		min, max = min-0.5, max+0.5
	}
	width := (max - min) / float64(n)
	h, err := NewFixedHistogram(values, min, max, width)
	if err != nil {
		return Histogram{}, err
	}
	for i := range h.Bins {
		h.Bins[i].Weight /= width
	}
	return h, nil
}

// Centers returns the midpoints of the buckets.
func (h Histogram) Centers() []float64 {
	c := make([]float64, len(h.Bins))
	for i, b := range h.Bins {
		c[i] = b.Min + (b.Max-b.Min)/2
	}
	return c
}

// Area is the sum of weight times width over all buckets.
func (h Histogram) Area() float64 {
	a := 0.0
	for _, b := range h.Bins {
		a += b.Weight * (b.Max - b.Min)
	}
	return a
}
