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

package gamma

import (
	"math"

	"github.com/0xsoniclabs/gammaclt/stochastic/statistics"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gamma is a Gamma distribution with a shape and a scale parameter.
// The density is x^(k-1) e^(-x/θ) / (Γ(k) θ^k) for shape k and scale θ.
type Gamma struct {
	shape float64
	scale float64
	dist  distuv.Gamma // gonum uses the rate parameterisation, i.e., Beta = 1/scale
}

// New creates a Gamma distribution. Both parameters must be finite and strictly positive.
func New(shape, scale float64) (*Gamma, error) {
	if !isPositive(shape) {
		return nil, errors.Wrapf(statistics.ErrInvalidParameter, "gamma shape must be positive and finite, got %v", shape)
	}
	if !isPositive(scale) {
		return nil, errors.Wrapf(statistics.ErrInvalidParameter, "gamma scale must be positive and finite, got %v", scale)
	}
	return &Gamma{
		shape: shape,
		scale: scale,
		dist:  distuv.Gamma{Alpha: shape, Beta: 1 / scale},
	}, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Shape returns the shape parameter k.
func (g *Gamma) Shape() float64 {
	return g.shape
}

// Scale returns the scale parameter θ.
func (g *Gamma) Scale() float64 {
	return g.scale
}

// Sample draws one observation and advances the state of rg.
func (g *Gamma) Sample(rg *rand.Rand) float64 {
	d := g.dist
	d.Src = rg
	return d.Rand()
}

// CDF is the cumulative distribution function; it is zero for x <= 0.
func (g *Gamma) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return clamp01(g.dist.CDF(x))
}

// Survival is the complementary CDF, i.e., 1-CDF(x), evaluated without cancellation.
func (g *Gamma) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return clamp01(g.dist.Survival(x))
}

// PDF is the probability density function.
func (g *Gamma) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return g.dist.Prob(x)
}

// Quantile is the inverse CDF for p in [0,1].
func (g *Gamma) Quantile(p float64) float64 {
	return g.dist.Quantile(p)
}

// Mean is shape*scale.
func (g *Gamma) Mean() float64 {
	return g.dist.Mean()
}

// Variance is shape*scale^2.
func (g *Gamma) Variance() float64 {
	return g.dist.Variance()
}

// ExKurtosis is the excess kurtosis 6/shape.
func (g *Gamma) ExKurtosis() float64 {
	return g.dist.ExKurtosis()
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
