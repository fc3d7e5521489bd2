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

package utils

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SummaryRow holds the summary of one statistic.
type SummaryRow struct {
	Name   string
	Mean   float64
	Std    float64
	Median float64
}

// SummaryLine formats a row as "Name: Mean=m, Std=s, Median=d" with two decimals.
func SummaryLine(r SummaryRow) string {
	return fmt.Sprintf("%s: Mean=%.2f, Std=%.2f, Median=%.2f", r.Name, r.Mean, r.Std, r.Median)
}

// SummaryText formats rows one per line.
func SummaryText(rows []SummaryRow) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = SummaryLine(r)
	}
	return strings.Join(lines, "\n")
}

// SummaryTable renders rows as a table with two decimals.
func SummaryTable(rows []SummaryRow) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Statistic", "Mean", "Std", "Median"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Name,
			fmt.Sprintf("%.2f", r.Mean),
			fmt.Sprintf("%.2f", r.Std),
			fmt.Sprintf("%.2f", r.Median),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return t.Render()
}
