package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all run settings, populated from environment variables.
// Every setting has a default so the report runs with a bare invocation.
type Config struct {
	DataPath  string // path to the compressed storm database CSV
	ReportDir string // directory for chart PNGs and the markdown summary

	TableTopN int // rows per printed table
	ChartTopN int // bars per chart

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	tableTopN, err := parsePositiveInt("TABLE_TOP_N", 5)
	if err != nil {
		return nil, err
	}
	chartTopN, err := parsePositiveInt("CHART_TOP_N", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:  envOrDefault("STORM_DATA_PATH", "data/StormData.csv.bz2"),
		ReportDir: envOrDefault("REPORT_DIR", "report"),
		TableTopN: tableTopN,
		ChartTopN: chartTopN,
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.DataPath == "" {
		return nil, fmt.Errorf("STORM_DATA_PATH is required")
	}
	if cfg.ReportDir == "" {
		return nil, fmt.Errorf("REPORT_DIR is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
