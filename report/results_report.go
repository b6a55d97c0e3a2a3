// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report renders ledger results as Markdown tables for the terminal.
package report

import (
	"fmt"
	"io"
	"slices"

	"github.com/danielhkuo/evote/ledger"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type ResultsReport struct {
	Results ledger.Results
}

func NewResultsReport(results ledger.Results) *ResultsReport {
	return &ResultsReport{Results: results}
}

func newMarkdownTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}

// PrintResultsTable writes one row per candidate in ballot order and a total row.
func (rr *ResultsReport) PrintResultsTable(w io.Writer) {
	table := newMarkdownTable(w, []string{"Candidate", "Votes", "Share"})

	for _, row := range rr.Results.Rows {
		table.Append([]string{
			row.Name,
			humanize.Comma(int64(row.Votes)),
			formatPercent(row.Percentage),
		})
	}
	table.Append([]string{"Total", humanize.Comma(int64(rr.Results.Total)), ""})

	table.Render()
}

// PrintStandings writes candidates ranked by votes. Tied candidates share a
// rank and keep ballot order.
func (rr *ResultsReport) PrintStandings(w io.Writer) {
	rows := Standings(rr.Results)
	table := newMarkdownTable(w, []string{"Rank", "Candidate", "Votes", "Share"})

	rank := 0
	for i, row := range rows {
		if i == 0 || row.Votes != rows[i-1].Votes {
			rank = i + 1
		}
		table.Append([]string{
			fmt.Sprint(rank),
			row.Name,
			humanize.Comma(int64(row.Votes)),
			formatPercent(row.Percentage),
		})
	}

	table.Render()
}

// Standings returns the result rows sorted by votes, highest first.
func Standings(results ledger.Results) []ledger.ResultRow {
	rows := slices.Clone(results.Rows)
	slices.SortStableFunc(rows, func(a, b ledger.ResultRow) int {
		switch {
		case a.Votes > b.Votes:
			return -1
		case a.Votes < b.Votes:
			return 1
		}
		return 0
	})
	return rows
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
