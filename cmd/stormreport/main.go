// Command stormreport runs the NOAA storm database analysis: it loads the
// compressed event CSV, normalizes the damage magnitudes, aggregates health
// and financial impact per event type, and writes top-N tables, bar charts,
// and a markdown summary.
//
// Configuration is via environment variables (see internal/config); the
// defaults read data/StormData.csv.bz2 and write to report/.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/adapter/csvfile"
	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/adapter/render"
	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/config"
	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/observability"
	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	loader := csvfile.NewReader(cfg.DataPath, logger)
	reporter := render.NewReporter(os.Stdout, cfg.ReportDir, cfg.TableTopN, cfg.ChartTopN, logger)

	p := pipeline.New(loader, reporter, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}
