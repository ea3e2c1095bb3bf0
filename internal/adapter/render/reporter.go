// Package render emits the analysis output: text tables on a writer, bar
// chart PNGs and a markdown summary in the report directory.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/domain"
)

// Reporter renders impact reports. Each Report call prints a top-N table and
// saves a top-N bar chart; WriteSummary then collects everything rendered so
// far into REPORT_DIR/report.md.
type Reporter struct {
	out       io.Writer
	dir       string
	tableRows int
	chartBars int
	logger    *slog.Logger

	sections []section
}

type section struct {
	report domain.ImpactReport
	chart  string // chart filename within dir
}

// NewReporter creates a Reporter writing tables to out and artifacts to dir.
func NewReporter(out io.Writer, dir string, tableRows, chartBars int, logger *slog.Logger) *Reporter {
	return &Reporter{
		out:       out,
		dir:       dir,
		tableRows: tableRows,
		chartBars: chartBars,
		logger:    logger,
	}
}

// Report renders one aggregated impact report.
func (r *Reporter) Report(ctx context.Context, rep domain.ImpactReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	fmt.Fprintf(r.out, "\n%s\n\n", rep.Title)
	writeTable(r.out, rep, r.tableRows)

	chart := rep.Slug + ".png"
	if err := renderChart(rep, r.chartBars, filepath.Join(r.dir, chart)); err != nil {
		return err
	}

	r.sections = append(r.sections, section{report: rep, chart: chart})
	r.logger.Info("report rendered",
		"title", rep.Title,
		"groups", len(rep.Groups),
		"chart", chart,
	)
	return nil
}

// WriteSummary writes the markdown summary covering every report rendered so
// far.
func (r *Reporter) WriteSummary(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("# NOAA Storm Database Analysis\n\n")
	fmt.Fprintf(&b, "Generated at %s.\n", clock.Now().UTC().Format(time.RFC3339))

	for _, s := range r.sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.report.Title)
		writeMarkdownTable(&b, s.report, r.tableRows)
		fmt.Fprintf(&b, "\n![%s](%s)\n", s.report.AxisLabel, s.chart)
	}

	path := filepath.Join(r.dir, "report.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	r.logger.Info("summary written", "path", path, "sections", len(r.sections))
	return nil
}

func writeMarkdownTable(b *strings.Builder, rep domain.ImpactReport, n int) {
	header := tableHeader(rep)
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString(strings.Repeat("| --- ", len(header)) + "|\n")
	for _, g := range domain.TopN(rep.Groups, n) {
		b.WriteString("| " + strings.Join(tableRow(g), " | ") + " |\n")
	}
}
