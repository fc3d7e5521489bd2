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

// Package order computes boundary order-statistic transforms of samples.
//
// For n i.i.d. observations with continuous CDF F, n·F(X_(2)) converges to a
// Gamma(2,1) law and n·(1-F(X_(n))) to an Exp(1) law as n grows.
package order

import (
	"sort"

	"github.com/0xsoniclabs/gammaclt/stochastic/sampler"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics"
	"github.com/cockroachdb/errors"
)

// MinSampleSize is the smallest sample for which X_(2) exists.
const MinSampleSize = 2

// Distribution provides the CDF and its complement used by the transforms.
type Distribution interface {
	CDF(x float64) float64
	Survival(x float64) float64
}

// SortedSample is an ascending copy of a sample.
type SortedSample []float64

// TransformPair holds both boundary transforms of a sample.
type TransformPair struct {
	NFX2  float64 // n·F(X_(2)), X_(2) is the second smallest observation
	N1FXn float64 // n·(1-F(X_(n))), X_(n) is the largest observation
}

// Sort returns an ascending copy of xs; xs is left untouched.
func Sort(xs []float64) SortedSample {
	s := make(SortedSample, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	return s
}

// Second returns X_(2).
func (s SortedSample) Second() float64 {
	return s[1]
}

// Max returns X_(n).
func (s SortedSample) Max() float64 {
	return s[len(s)-1]
}

// Compute returns the transforms of a single sorted sample.
func Compute(s SortedSample, dist Distribution) (TransformPair, error) {
	n := len(s)
	if n < MinSampleSize {
		return TransformPair{}, errors.Wrapf(statistics.ErrInsufficientSampleSize, "order transforms need at least %d observations, got %d", MinSampleSize, n)
	}
	fn := float64(n)
	return TransformPair{
		NFX2:  clamp(fn*dist.CDF(s.Second()), fn),
		N1FXn: clamp(fn*dist.Survival(s.Max()), fn),
	}, nil
}

// Transform sorts a copy of every row of the matrix and computes its transforms.
// The matrix itself stays unsorted.
func Transform(m *sampler.Matrix, dist Distribution) ([]TransformPair, error) {
	if m.SampleSize() < MinSampleSize {
		return nil, errors.Wrapf(statistics.ErrInsufficientSampleSize, "order transforms need at least %d observations, got %d", MinSampleSize, m.SampleSize())
	}
	out := make([]TransformPair, m.NumSamples())
	for i := range out {
		pair, err := Compute(Sort(m.Row(i)), dist)
		if err != nil {
			return nil, err
		}
		out[i] = pair
	}
	return out, nil
}

// NFX2 extracts the column of n·F(X_(2)) values.
func NFX2(pairs []TransformPair) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p.NFX2
	}
	return out
}

// N1FXn extracts the column of n·(1-F(X_(n))) values.
func N1FXn(pairs []TransformPair) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p.N1FXn
	}
	return out
}

func clamp(v, n float64) float64 {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
