// Package loader reads force-time recordings and athlete datasets from CSV.
// It performs explicit schema mapping only: required columns are matched by
// exact name after header trimming, and shape is validated before handoff.
// All numeric interpretation beyond parsing belongs to the core.
package loader

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/schema"
)

// Required force CSV column names.
const (
	timeColumn  = "time_s"
	forceColumn = "force_n"
)

// LoadForceSeries reads a force-time CSV with exact columns time_s and
// force_n. Timestamps must be non-decreasing; both cells of every row must
// parse as floats.
func LoadForceSeries(path string, samplingRate int) (*schema.ForceSeries, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s looks empty or has no data rows. Make sure it is saved with a header row", path)
	}

	header := trimHeader(records[0])
	timeIdx := indexOf(header, timeColumn)
	forceIdx := indexOf(header, forceColumn)
	if timeIdx < 0 || forceIdx < 0 {
		return nil, fmt.Errorf("%s must have columns %s, %s. Found: %v", path, timeColumn, forceColumn, header)
	}

	samples := make([]schema.ForceSample, 0, len(records)-1)
	prevTime := math.Inf(-1)
	for i, row := range records[1:] {
		t, err := strconv.ParseFloat(strings.TrimSpace(cell(row, timeIdx)), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad %s value %q", path, i+2, timeColumn, cell(row, timeIdx))
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(cell(row, forceIdx)), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad %s value %q", path, i+2, forceColumn, cell(row, forceIdx))
		}
		if t < prevTime {
			return nil, fmt.Errorf("%s row %d: time went backwards (%g after %g)", path, i+2, t, prevTime)
		}
		prevTime = t
		samples = append(samples, schema.ForceSample{TimeS: t, ForceN: f})
	}

	return &schema.ForceSeries{Samples: samples, SamplingRate: samplingRate}, nil
}

// LoadAthleteDataset reads an athlete dataset CSV using the explicit column
// mapping. Level and ID columns are optional; missing or unparsable numeric
// cells become NaN so the outlier filter can drop them. Rows are kept as-is,
// deduplicated by row, never by athlete.
func LoadAthleteDataset(path string, cols contract.ColumnMapping) ([]schema.AthleteSample, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s looks empty or has no data rows. Make sure it is saved with a header row", path)
	}

	header := trimHeader(records[0])
	jumpIdx := indexOf(header, cols.JumpCol)
	batIdx := indexOf(header, cols.BatCol)
	if jumpIdx < 0 {
		return nil, fmt.Errorf("%s missing jump height column %q. Found: %v", path, cols.JumpCol, header)
	}
	if batIdx < 0 {
		return nil, fmt.Errorf("%s missing bat speed column %q. Found: %v", path, cols.BatCol, header)
	}

	// Optional columns resolve to -1 when absent.
	levelIdx := indexOf(header, cols.LevelCol)
	idIdx := indexOf(header, cols.IDCol)

	samples := make([]schema.AthleteSample, 0, len(records)-1)
	for _, row := range records[1:] {
		s := schema.AthleteSample{
			JumpHeightCM: parseFloatOrNaN(cell(row, jumpIdx)),
			BatSpeedMPH:  parseFloatOrNaN(cell(row, batIdx)),
		}
		if levelIdx >= 0 {
			s.Level = schema.PlayingLevel(strings.TrimSpace(cell(row, levelIdx)))
		}
		if idIdx >= 0 {
			s.AthleteID = strings.TrimSpace(cell(row, idIdx))
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// readCSV opens and parses a whole CSV file. Rows with uneven field counts
// are tolerated so trailing metadata columns don't break loading.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return records, nil
}

// trimHeader strips whitespace from every header cell.
func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// indexOf returns the index of name in header, or -1. Empty names never match.
func indexOf(header []string, name string) int {
	if name == "" {
		return -1
	}
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// cell returns row[idx], tolerating short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseFloatOrNaN parses a numeric cell, mapping anything unparsable to NaN.
func parseFloatOrNaN(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
