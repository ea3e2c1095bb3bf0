package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/domain"
)

// writeTable renders the top n groups as an aligned text table. There is no
// synthetic row-index column: rank is implied by order.
func writeTable(w io.Writer, rep domain.ImpactReport, n int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader(rep))
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, g := range domain.TopN(rep.Groups, n) {
		table.Append(tableRow(g))
	}
	table.Render()
}

func tableHeader(rep domain.ImpactReport) []string {
	header := make([]string, 0, len(rep.Metrics)+2)
	header = append(header, "Event Type")
	header = append(header, rep.Metrics...)
	return append(header, "Total")
}

func tableRow(g domain.ImpactGroup) []string {
	row := make([]string, 0, len(g.Sums)+2)
	row = append(row, g.EventType)
	for _, s := range g.Sums {
		row = append(row, formatValue(s))
	}
	return append(row, formatValue(g.Total))
}

// formatValue prints sums without scientific notation; casualty counts and
// dollar totals are both whole numbers in practice, fractions survive as-is.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
