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
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	DefaultWidth  = 1200 // default image width in pixels
	DefaultHeight = 800  // default image height in pixels

	dpi = vgimg.DefaultDPI
)

// Sink consumes a chart, e.g., by rendering it into an image file.
//
//go:generate mockgen -source sink.go -destination sink_mock.go -package visualizer
type Sink interface {
	Render(chart *Chart) error
}

// PNGSink renders a chart into a PNG file.
type PNGSink struct {
	path   string
	width  int
	height int
}

// NewPNGSink creates a sink writing a width x height pixel image to path.
func NewPNGSink(path string, width, height int) *PNGSink {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &PNGSink{path: path, width: width, height: height}
}

// Render draws the chart and writes the file. The image is encoded in memory
// first so that a failed rendering leaves no partial file behind.
func (s *PNGSink) Render(chart *Chart) error {
	var buf bytes.Buffer
	if err := WritePNG(&buf, chart, s.width, s.height); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write image %v; %v", s.path, err)
	}
	return nil
}

// WritePNG draws the histogram of the chart overlaid with its curve and
// encodes it as a width x height pixel PNG image.
func WritePNG(w io.Writer, chart *Chart, width, height int) error {
	if chart == nil {
		return fmt.Errorf("WritePNG: chart is nil")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("WritePNG: invalid image size %vx%v", width, height)
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.Legend.Top = true

	if len(chart.Histogram.Bins) > 0 {
		hist := &plotter.Histogram{
			Bins:      make([]plotter.HistogramBin, len(chart.Histogram.Bins)),
			Width:     chart.Histogram.Width,
			FillColor: color.RGBA{R: 70, G: 130, B: 180, A: 255},
			LineStyle: plotter.DefaultLineStyle,
		}
		for i, b := range chart.Histogram.Bins {
			hist.Bins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: b.Weight}
		}
		p.Add(hist)
		p.Legend.Add(chart.HistLabel, hist)
	}

	if len(chart.Curve.Points) > 0 {
		xys := make(plotter.XYs, len(chart.Curve.Points))
		for i, pt := range chart.Curve.Points {
			xys[i].X, xys[i].Y = pt[0], pt[1]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("WritePNG: invalid curve; %v", err)
		}
		line.Color = color.RGBA{R: 220, A: 255}
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(chart.Curve.Name, line)
	}

	if chart.XMax > chart.XMin {
		p.X.Min, p.X.Max = chart.XMin, chart.XMax
	}
	if chart.YMax > chart.YMin {
		p.Y.Min, p.Y.Max = chart.YMin, chart.YMax
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Inch/dpi, vg.Length(height)*vg.Inch/dpi),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("WritePNG: cannot encode image; %v", err)
	}
	return nil
}
