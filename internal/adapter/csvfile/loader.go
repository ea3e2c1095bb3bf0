// Package csvfile loads the compressed NOAA storm database CSV into memory.
package csvfile

import (
	"compress/bzip2"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/domain"
)

// Required header columns, by NOAA name.
const (
	colEventType      = "EVTYPE"
	colFatalities     = "FATALITIES"
	colInjuries       = "INJURIES"
	colPropDamage     = "PROPDMG"
	colPropDamageCode = "PROPDMGEXP"
	colCropDamage     = "CROPDMG"
	colCropDamageCode = "CROPDMGEXP"
)

var requiredColumns = []string{
	colEventType, colFatalities, colInjuries,
	colPropDamage, colPropDamageCode, colCropDamage, colCropDamageCode,
}

// Reader loads storm events from a delimited file, decompressing by
// extension: ".bz2" (the distributed artifact), ".gz", or plain text.
type Reader struct {
	path   string
	logger *slog.Logger
}

// NewReader creates a Reader for the file at path.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Read parses the whole file into memory. Columns are resolved by header
// name; columns beyond the required set are ignored. Any error is fatal to
// the load: there is no partial-result mode.
func (r *Reader) Read(ctx context.Context) ([]domain.StormEvent, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open storm data: %w", err)
	}
	defer f.Close()

	body, err := decompress(f, r.path)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(body)
	// The 1950-2011 archive has stray quotes inside remark fields.
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read storm data header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var events []domain.StormEvent
	for line := 2; ; line++ {
		if line%50000 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, asParseError(err, line)
		}

		event, err := parseRecord(record, idx, line)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	r.logger.Info("storm data loaded", "path", r.path, "rows", len(events))
	return events, nil
}

// decompress wraps f with the decoder matching the file extension.
func decompress(f *os.File, path string) (io.Reader, error) {
	switch filepath.Ext(path) {
	case ".bz2":
		return bzip2.NewReader(f), nil
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return zr, nil
	default:
		return f, nil
	}
}

// columnIndex maps the required column names to their header positions.
func columnIndex(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	idx := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		i, ok := pos[col]
		if !ok {
			return nil, &SchemaError{Column: col}
		}
		idx[col] = i
	}
	return idx, nil
}

func parseRecord(record []string, idx map[string]int, line int) (domain.StormEvent, error) {
	fatalities, err := parseNumber(record[idx[colFatalities]], colFatalities, line)
	if err != nil {
		return domain.StormEvent{}, err
	}
	injuries, err := parseNumber(record[idx[colInjuries]], colInjuries, line)
	if err != nil {
		return domain.StormEvent{}, err
	}
	propDamage, err := parseNumber(record[idx[colPropDamage]], colPropDamage, line)
	if err != nil {
		return domain.StormEvent{}, err
	}
	cropDamage, err := parseNumber(record[idx[colCropDamage]], colCropDamage, line)
	if err != nil {
		return domain.StormEvent{}, err
	}

	return domain.StormEvent{
		EventType:      strings.TrimSpace(record[idx[colEventType]]),
		Fatalities:     fatalities,
		Injuries:       injuries,
		PropDamage:     propDamage,
		PropDamageCode: strings.TrimSpace(record[idx[colPropDamageCode]]),
		CropDamage:     cropDamage,
		CropDamageCode: strings.TrimSpace(record[idx[colCropDamageCode]]),
	}, nil
}

// parseNumber parses a numeric CSV field. NOAA uses blank for unmeasured
// values, so an empty field is zero; anything else non-numeric is fatal.
func parseNumber(raw, column string, line int) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Column: column, Value: raw, Err: err}
	}
	return v, nil
}

// asParseError converts an encoding/csv row error (typically a wrong field
// count) into this package's taxonomy, preserving the reported line.
func asParseError(err error, line int) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Line: line, Err: err}
}
