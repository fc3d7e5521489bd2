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

// Package asymptotic evaluates the limiting densities predicted for the
// statistics of Gamma samples on a finite grid.
package asymptotic

import (
	"iter"
	"math"

	"github.com/0xsoniclabs/gammaclt/stochastic/statistics"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics/gamma"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Domain is the half-open grid Min, Min+Step, ..., Min+(N-1)*Step.
type Domain struct {
	Min  float64
	Step float64
	N    int
}

// DefaultDomain is [0,3) sampled at 100 points 0.03 apart.
var DefaultDomain = Span(0, 3, 100)

// Span divides [min,max) into n points of equal distance.
func Span(min, max float64, n int) Domain {
	if n <= 0 {
		return Domain{Min: min}
	}
	return Domain{Min: min, Step: (max - min) / float64(n), N: n}
}

// X returns the i-th grid point.
func (d Domain) X(i int) float64 {
	return d.Min + float64(i)*d.Step
}

// Density is a probability density function.
type Density interface {
	Prob(x float64) float64
}

// Curve is a density evaluated lazily on a domain. The curve holds no
// evaluated state; every iteration recomputes the points.
type Curve struct {
	density Density
	domain  Domain
}

// NewCurve binds a density to a domain.
func NewCurve(density Density, domain Domain) Curve {
	return Curve{density: density, domain: domain}
}

// All yields the (x, density) pairs of the curve in ascending x.
func (c Curve) All() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := range c.domain.N {
			x := c.domain.X(i)
			if !yield(x, c.density.Prob(x)) {
				return
			}
		}
	}
}

// Points materialises the curve.
func (c Curve) Points() [][2]float64 {
	pts := make([][2]float64, 0, c.domain.N)
	for x, y := range c.All() {
		pts = append(pts, [2]float64{x, y})
	}
	return pts
}

// Len returns the number of points of the curve.
func (c Curve) Len() int {
	return c.domain.N
}

// SampleMeanNormal is the CLT limit of the mean of sampleSize Gamma(shape, scale)
// observations: N(shape·scale, shape·scale²/sampleSize).
func SampleMeanNormal(shape, scale float64, sampleSize int) (distuv.Normal, error) {
	if err := checkParams(shape, scale, sampleSize, 1); err != nil {
		return distuv.Normal{}, err
	}
	return distuv.Normal{
		Mu:    shape * scale,
		Sigma: math.Sqrt(shape * scale * scale / float64(sampleSize)),
	}, nil
}

// SampleMean is the density of SampleMeanNormal on the given domain.
func SampleMean(shape, scale float64, sampleSize int, domain Domain) (Curve, error) {
	n, err := SampleMeanNormal(shape, scale, sampleSize)
	if err != nil {
		return Curve{}, err
	}
	return NewCurve(n, domain), nil
}

// SampleVarianceNormal is the normal approximation of the unbiased sample
// variance. Its variance is (μ4 - σ⁴(n-3)/(n-1))/n with the central fourth
// moment μ4 = σ⁴(3 + 6/shape) of the Gamma distribution.
func SampleVarianceNormal(shape, scale float64, sampleSize int) (distuv.Normal, error) {
	if err := checkParams(shape, scale, sampleSize, 2); err != nil {
		return distuv.Normal{}, err
	}
	n := float64(sampleSize)
	sigma2 := shape * scale * scale
	mu4 := sigma2 * sigma2 * (3 + 6/shape)
	v := (mu4 - sigma2*sigma2*(n-3)/(n-1)) / n
	return distuv.Normal{Mu: sigma2, Sigma: math.Sqrt(v)}, nil
}

// SampleVariance is the density of SampleVarianceNormal on the given domain.
func SampleVariance(shape, scale float64, sampleSize int, domain Domain) (Curve, error) {
	n, err := SampleVarianceNormal(shape, scale, sampleSize)
	if err != nil {
		return Curve{}, err
	}
	return NewCurve(n, domain), nil
}

// SampleMedianNormal is the asymptotic law of the sample median,
// N(m, 1/(4·n·f(m)²)) where m is the population median and f the density.
func SampleMedianNormal(shape, scale float64, sampleSize int) (distuv.Normal, error) {
	if err := checkParams(shape, scale, sampleSize, 1); err != nil {
		return distuv.Normal{}, err
	}
	g, err := gamma.New(shape, scale)
	if err != nil {
		return distuv.Normal{}, err
	}
	m := g.Quantile(0.5)
	f := g.PDF(m)
	return distuv.Normal{Mu: m, Sigma: 1 / (2 * f * math.Sqrt(float64(sampleSize)))}, nil
}

// SampleMedian is the density of SampleMedianNormal on the given domain.
func SampleMedian(shape, scale float64, sampleSize int, domain Domain) (Curve, error) {
	n, err := SampleMedianNormal(shape, scale, sampleSize)
	if err != nil {
		return Curve{}, err
	}
	return NewCurve(n, domain), nil
}

// Limit laws of the boundary order-statistic transforms.
var (
	SecondOrderLaw = distuv.Gamma{Alpha: 2, Beta: 1} // law of n·F(X_(2)) as n grows
	MaximumLaw     = distuv.Exponential{Rate: 1}      // law of n·(1-F(X_(n))) as n grows
)

// SecondOrderLimit is the Gamma(2,1) density on the given domain.
func SecondOrderLimit(domain Domain) Curve {
	return NewCurve(SecondOrderLaw, domain)
}

// MaximumLimit is the Exp(1) density on the given domain.
func MaximumLimit(domain Domain) Curve {
	return NewCurve(MaximumLaw, domain)
}

func checkParams(shape, scale float64, sampleSize, minSize int) error {
	if !(shape > 0) || !(scale > 0) || math.IsInf(shape, 1) || math.IsInf(scale, 1) {
		return errors.Wrapf(statistics.ErrInvalidParameter, "shape %v and scale %v must be positive and finite", shape, scale)
	}
	if sampleSize < minSize {
		return errors.Wrapf(statistics.ErrInvalidParameter, "sample size must be at least %d, got %d", minSize, sampleSize)
	}
	return nil
}
