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
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// globalOptions are shared by all charts of a report.
func globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: title,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// convertHistogramData produces the bar heights of a histogram.
func convertHistogramData(h Histogram) []opts.BarData {
	items := make([]opts.BarData, 0, len(h.Bins))
	for _, b := range h.Bins {
		items = append(items, opts.BarData{Value: b.Weight})
	}
	return items
}

// convertHistogramLabel produces the category labels of a histogram.
func convertHistogramLabel(h Histogram) []string {
	items := make([]string, 0, len(h.Bins))
	for _, c := range h.Centers() {
		items = append(items, fmt.Sprintf("%.3g", c))
	}
	return items
}

// convertLineData converts points to chart points.
func convertLineData(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// convertCurveValues converts the y values of points to chart points.
func convertCurveValues(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair[1]})
	}
	return items
}

// newHistogramChart creates a bar chart of the histogram overlaid with the
// reference curve. The curve must be evaluated at the bucket centers.
func newHistogramChart(c *Chart) (*charts.Bar, error) {
	if len(c.Curve.Points) != 0 && len(c.Curve.Points) != len(c.Histogram.Bins) {
		return nil, fmt.Errorf("newHistogramChart: %q has %d curve points for %d buckets", c.Title, len(c.Curve.Points), len(c.Histogram.Bins))
	}
	labels := convertHistogramLabel(c.Histogram)
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(c.Title, fmt.Sprintf("%d values, bucket width %.3g", c.Histogram.Count, c.Histogram.Width))...)
	bar.SetXAxis(labels).AddSeries(c.HistLabel, convertHistogramData(c.Histogram))
	if len(c.Curve.Points) > 0 {
		line := charts.NewLine()
		line.SetXAxis(labels).AddSeries(c.Curve.Name, convertCurveValues(c.Curve.Points))
		bar.Overlap(line)
	}
	return bar, nil
}

// newLineChart creates a line chart with a value x-axis.
func newLineChart(c *LineChart) *charts.Line {
	line := charts.NewLine()
	global := append(globalOptions(c.Title, ""), charts.WithXAxisOpts(opts.XAxis{Type: "value"}))
	line.SetGlobalOptions(global...)
	for _, s := range c.Series {
		line.AddSeries(s.Name, convertLineData(s.Points))
	}
	return line
}

// WriteReport renders histogram charts and line charts into a single HTML page.
func WriteReport(w io.Writer, title string, histograms []*Chart, lines []*LineChart) error {
	page := components.NewPage()
	page.PageTitle = title
	for _, h := range histograms {
		bar, err := newHistogramChart(h)
		if err != nil {
			return err
		}
		page.AddCharts(bar)
	}
	for _, l := range lines {
		page.AddCharts(newLineChart(l))
	}
	return page.Render(w)
}

// WriteReportFile renders the report into a file. The page is rendered in
// memory first so that a failed rendering leaves no partial file behind.
func WriteReportFile(path, title string, histograms []*Chart, lines []*LineChart) error {
	var buf bytes.Buffer
	if err := WriteReport(&buf, title, histograms, lines); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write report %v; %v", path, err)
	}
	return nil
}
