package csvfile_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/adapter/csvfile"
	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/domain"
)

const sampleHeader = "STATE,EVTYPE,FATALITIES,INJURIES,PROPDMG,PROPDMGEXP,CROPDMG,CROPDMGEXP\n"

// writeCSV writes a plain CSV file into a temp dir and returns its path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeGzipCSV writes a gzip-compressed CSV file and returns its path.
func writeGzipCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storm.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReader_Read(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("plain CSV with extra columns", func(t *testing.T) {
		path := writeCSV(t, "storm.csv", sampleHeader+
			"TX,TORNADO,1,10,25.0,K,0,\n"+
			"OK,FLOOD,0,2,5,K,2,M\n")

		events, err := csvfile.NewReader(path, logger).Read(ctx)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, domain.StormEvent{
			EventType: "TORNADO", Fatalities: 1, Injuries: 10,
			PropDamage: 25, PropDamageCode: "K",
		}, events[0])
		assert.Equal(t, domain.StormEvent{
			EventType: "FLOOD", Injuries: 2,
			PropDamage: 5, PropDamageCode: "K",
			CropDamage: 2, CropDamageCode: "M",
		}, events[1])
	})

	t.Run("bzip2 archive fixture", func(t *testing.T) {
		events, err := csvfile.NewReader(filepath.Join("testdata", "storm_sample.csv.bz2"), logger).Read(ctx)

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, "TORNADO", events[0].EventType)
		assert.Equal(t, 10.0, events[0].Injuries)
		assert.Equal(t, "B", events[2].PropDamageCode)
		assert.Equal(t, "?", events[2].CropDamageCode)
		assert.Equal(t, "5", events[3].PropDamageCode)
	})

	t.Run("gzip archive", func(t *testing.T) {
		path := writeGzipCSV(t, sampleHeader+"KS,HAIL,0,0,100,5,10,0\n")

		events, err := csvfile.NewReader(path, logger).Read(ctx)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "HAIL", events[0].EventType)
		assert.Equal(t, 100.0, events[0].PropDamage)
	})

	t.Run("blank numeric fields parse as zero", func(t *testing.T) {
		path := writeCSV(t, "storm.csv", sampleHeader+"TX,DROUGHT,,,,,1,B\n")

		events, err := csvfile.NewReader(path, logger).Read(ctx)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Zero(t, events[0].Fatalities)
		assert.Zero(t, events[0].Injuries)
		assert.Zero(t, events[0].PropDamage)
		assert.Equal(t, 1.0, events[0].CropDamage)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := csvfile.NewReader(filepath.Join(t.TempDir(), "nope.csv"), logger).Read(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing required column", func(t *testing.T) {
		path := writeCSV(t, "storm.csv", "STATE,EVTYPE,FATALITIES,INJURIES,PROPDMG,PROPDMGEXP\nTX,TORNADO,1,10,25,K\n")

		_, err := csvfile.NewReader(path, logger).Read(ctx)

		var schemaErr *csvfile.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "CROPDMG", schemaErr.Column)
	})

	t.Run("non-numeric value in numeric column", func(t *testing.T) {
		path := writeCSV(t, "storm.csv", sampleHeader+"TX,TORNADO,one,10,25,K,0,\n")

		_, err := csvfile.NewReader(path, logger).Read(ctx)

		var parseErr *csvfile.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
		assert.Equal(t, "FATALITIES", parseErr.Column)
		assert.Equal(t, "one", parseErr.Value)
	})

	t.Run("wrong field count", func(t *testing.T) {
		path := writeCSV(t, "storm.csv", sampleHeader+"TX,TORNADO,1\n")

		_, err := csvfile.NewReader(path, logger).Read(ctx)

		var parseErr *csvfile.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
	})

	t.Run("corrupt gzip stream", func(t *testing.T) {
		path := writeCSV(t, "storm.csv.gz", "this is not gzip data")

		_, err := csvfile.NewReader(path, logger).Read(ctx)

		require.Error(t, err)
	})
}
