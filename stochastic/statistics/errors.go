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

// Package statistics holds the error kinds shared by the sampling and
// reduction packages below it.
package statistics

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidParameter reports a distribution or sampling parameter outside its domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientSampleSize reports a sample too short for the requested order statistic.
	ErrInsufficientSampleSize = errors.New("insufficient sample size")

	// ErrNonFiniteObservation reports a NaN or infinite value inside a sample.
	ErrNonFiniteObservation = errors.New("non-finite observation")
)
