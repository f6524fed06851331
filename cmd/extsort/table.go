package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"extsort/internal/preflight"
	"extsort/internal/sorter"
)

func renderSummaryTable(summary sorter.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendRow(table.Row{"Files processed", summary.Files})
	tw.AppendRow(table.Row{"Errors", summary.Errors})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})
	return tw.Render()
}

func renderCheckTable(results []preflight.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Check", "Status", "Detail"})
	for _, result := range results {
		status := "FAIL"
		if result.Passed {
			status = "OK"
		}
		tw.AppendRow(table.Row{result.Name, status, result.Detail})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
