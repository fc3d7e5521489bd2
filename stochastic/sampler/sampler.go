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

package sampler

import (
	"sync"

	"github.com/0xsoniclabs/gammaclt/stochastic/statistics"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Distribution is a univariate distribution that can be sampled with an explicit generator.
type Distribution interface {
	Sample(rg *rand.Rand) float64
}

// Matrix holds independent samples row by row, i.e., n samples times
// sample-size observations. A matrix is not modified after generation;
// all accessors hand out copies.
type Matrix struct {
	data *mat.Dense
}

// Option configures the generator.
type Option func(*generator)

type generator struct {
	workers int
}

// WithWorkers sets the number of goroutines drawing rows. The generated
// matrix does not depend on the number of workers.
func WithWorkers(n int) Option {
	return func(g *generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

// Generate draws nSamples independent samples of sampleSize observations each.
// Every row has its own generator seeded from rg in row order, so a matrix is
// reproducible from the seed of rg alone.
func Generate(nSamples, sampleSize int, dist Distribution, rg *rand.Rand, opts ...Option) (*Matrix, error) {
	if nSamples < 1 {
		return nil, errors.Wrapf(statistics.ErrInvalidParameter, "number of samples must be at least 1, got %d", nSamples)
	}
	if sampleSize < 1 {
		return nil, errors.Wrapf(statistics.ErrInvalidParameter, "sample size must be at least 1, got %d", sampleSize)
	}
	if dist == nil || rg == nil {
		return nil, errors.New("generate: distribution and random generator must not be nil")
	}
	g := generator{workers: 1}
	for _, opt := range opts {
		opt(&g)
	}

	seeds := make([]uint64, nSamples)
	for i := range seeds {
		seeds[i] = rg.Uint64()
	}

	data := mat.NewDense(nSamples, sampleSize, nil)
	fill := func(i int) {
		row := data.RawRowView(i)
		src := rand.New(rand.NewSource(seeds[i]))
		for j := range row {
			row[j] = dist.Sample(src)
		}
	}

	if g.workers == 1 || nSamples == 1 {
		for i := range nSamples {
			fill(i)
		}
		return &Matrix{data: data}, nil
	}

	// rows are disjoint slices of the backing array, no locking needed
	jobs := make(chan int, g.workers)
	var wg sync.WaitGroup
	for range g.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fill(i)
			}
		}()
	}
	for i := range nSamples {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return &Matrix{data: data}, nil
}

// NewMatrix wraps existing rows into a matrix. All rows must have the same length.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(statistics.ErrInvalidParameter, "matrix must have at least one row and one column")
	}
	n := len(rows[0])
	data := mat.NewDense(len(rows), n, nil)
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.Wrapf(statistics.ErrInvalidParameter, "row %d has %d observations, expected %d", i, len(row), n)
		}
		data.SetRow(i, row)
	}
	return &Matrix{data: data}, nil
}

// NumSamples returns the number of rows.
func (m *Matrix) NumSamples() int {
	r, _ := m.data.Dims()
	return r
}

// SampleSize returns the number of observations per row.
func (m *Matrix) SampleSize() int {
	_, c := m.data.Dims()
	return c
}

// Row returns a copy of the i-th sample.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.data)
}

// At returns the j-th observation of the i-th sample.
func (m *Matrix) At(i, j int) float64 {
	return m.data.At(i, j)
}

// Equal reports whether both matrices hold the same observations.
func (m *Matrix) Equal(o *Matrix) bool {
	return mat.Equal(m.data, o.data)
}
