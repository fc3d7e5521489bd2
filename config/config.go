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

package config

import (
	"fmt"
	"math"

	"github.com/0xsoniclabs/gammaclt/logger"
	"github.com/0xsoniclabs/gammaclt/stochastic/statistics"
	"github.com/cockroachdb/errors"
)

// Output formats of the console summary.
const (
	TextFormat  = "text"
	TableFormat = "table"
)

// Config holds the parameters of an analysis run.
type Config struct {
	AppName     string
	CommandName string

	Shape      float64 // shape parameter of the Gamma population
	Scale      float64 // scale parameter of the Gamma population
	NumSamples int     // number of samples drawn
	SampleSize int     // number of observations per sample
	RandomSeed int64   // seed of the random generator
	Workers    int     // number of workers generating samples

	Output      string // path of the histogram image
	ImageWidth  int    // width of the histogram image in pixels
	ImageHeight int    // height of the histogram image in pixels
	Report      string // path of the optional HTML report
	Format      string // format of the console summary
	LogLevel    string
}

// DefaultConfig returns the configuration of the reference analysis.
func DefaultConfig() *Config {
	return &Config{
		Shape:       ShapeFlag.Value,
		Scale:       ScaleFlag.Value,
		NumSamples:  NumSamplesFlag.Value,
		SampleSize:  SampleSizeFlag.Value,
		RandomSeed:  RandomSeedFlag.Value,
		Workers:     WorkersFlag.Value,
		Output:      OutputFlag.Value,
		ImageWidth:  ImageWidthFlag.Value,
		ImageHeight: ImageHeightFlag.Value,
		Format:      FormatFlag.Value,
		LogLevel:    logger.LogLevelFlag.Value,
	}
}

// Validate checks the value ranges of the configuration.
func (cfg *Config) Validate() error {
	if !(cfg.Shape > 0) || math.IsInf(cfg.Shape, 1) {
		return errors.Wrapf(statistics.ErrInvalidParameter, "shape must be positive and finite, got %v", cfg.Shape)
	}
	if !(cfg.Scale > 0) || math.IsInf(cfg.Scale, 1) {
		return errors.Wrapf(statistics.ErrInvalidParameter, "scale must be positive and finite, got %v", cfg.Scale)
	}
	if cfg.NumSamples < 1 {
		return errors.Wrapf(statistics.ErrInvalidParameter, "number of samples must be at least 1, got %v", cfg.NumSamples)
	}
	if cfg.SampleSize < 2 {
		return errors.Wrapf(statistics.ErrInsufficientSampleSize, "sample size must be at least 2, got %v", cfg.SampleSize)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("number of workers must be at least 1, got %v", cfg.Workers)
	}
	if cfg.Output == "" {
		return fmt.Errorf("output file is not specified")
	}
	if cfg.ImageWidth < 1 || cfg.ImageHeight < 1 {
		return fmt.Errorf("invalid image size %vx%v", cfg.ImageWidth, cfg.ImageHeight)
	}
	if cfg.Format != TextFormat && cfg.Format != TableFormat {
		return fmt.Errorf("unknown format %q; expected %q or %q", cfg.Format, TextFormat, TableFormat)
	}
	return nil
}
