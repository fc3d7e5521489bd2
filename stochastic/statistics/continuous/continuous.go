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

package continuous

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// NumECDFPoints is the number of points kept when an empirical CDF is compressed.
const NumECDFPoints = 300

// ECDF computes the empirical cumulative distribution function of a sample as
// a piecewise linear function through the points (x_(i), i/n). The first point
// is (x_(1), 0) and the last point is (x_(n), 1). The function is compressed with
// the Visvalingam-Whyatt algorithm to at most numPoints points, see
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func ECDF(xs []float64, numPoints int) ([][2]float64, error) {
	n := len(xs)
	if n == 0 {
		return nil, fmt.Errorf("ECDF: empty sample")
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if math.IsNaN(sorted[0]) || math.IsInf(sorted[0], 0) || math.IsInf(sorted[n-1], 0) {
		return nil, fmt.Errorf("ECDF: sample contains non-finite values")
	}

	ls := orb.LineString{{sorted[0], 0.0}}
	for i := range n {
		// collapse ties into a single jump
		if i+1 < n && sorted[i+1] == sorted[i] {
			continue
		}
		ls = append(ls, orb.Point{sorted[i], float64(i+1) / float64(n)})
	}
	if numPoints < 2 {
		numPoints = 2
	}
	if len(ls) > numPoints {
		ls = simplify.VisvalingamKeep(numPoints).Simplify(ls).(orb.LineString)
	}
	ecdf := make([][2]float64, len(ls))
	for i := range ls {
		ecdf[i] = [2]float64(ls[i])
	}
	if err := Check(ecdf); err != nil {
		return nil, fmt.Errorf("ECDF: cannot create valid CDF from sample; %v", err)
	}
	return ecdf, nil
}

// CDF evaluates a piecewise linear CDF at x. Left of the first point the
// function is zero, right of the last point it is one.
func CDF(f [][2]float64, x float64) float64 {
	if len(f) == 0 || x < f[0][0] {
		return 0.0
	}
	for i := range len(f) - 1 {
		if f[i+1][0] >= x {
			if f[i+1][0] == f[i][0] {
				return f[i+1][1]
			}
			scale := (x - f[i][0]) / (f[i+1][0] - f[i][0])
			return f[i][1] + scale*(f[i+1][1]-f[i][1])
		}
	}
	return 1.0
}

// Check whether the piecewise linear function is valid as a CDF.
// The function must start at probability 0, end at probability 1 and
// its points must be monotonically non-decreasing in both coordinates.
func Check(f [][2]float64) error {
	if len(f) < 2 {
		return fmt.Errorf("CDF must have at least start and end point")
	}
	if f[0][1] != 0.0 {
		return fmt.Errorf("CDF must start with probability 0, but starts at (%v,%v)", f[0][0], f[0][1])
	}
	last := len(f) - 1
	if f[last][1] != 1.0 {
		return fmt.Errorf("CDF must end with probability 1, but ends at (%v,%v)", f[last][0], f[last][1])
	}
	for i := range len(f) - 1 {
		if f[i][0] > f[i+1][0] || f[i][1] > f[i+1][1] {
			return fmt.Errorf("CDF points must be monotonically increasing, but point %v (%v,%v) is larger than point %v (%v,%v)", i, f[i][0], f[i][1], i+1, f[i+1][0], f[i+1][1])
		}
	}
	return nil
}

// KolmogorovDistance computes sup_x |F_n(x) - F(x)| between the empirical
// CDF of the sample and the CDF F.
func KolmogorovDistance(xs []float64, cdf func(float64) float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	d := 0.0
	for i, x := range sorted {
		y := cdf(x)
		d = math.Max(d, math.Max(float64(i+1)/float64(n)-y, y-float64(i)/float64(n)))
	}
	return d
}
