package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/internal/runstore"
	"github.com/pcorbett/jumplab/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultColumns() contract.ColumnMapping {
	return contract.ColumnMapping{
		JumpCol:  "jump_height_cm",
		BatCol:   "bat_speed_mph",
		LevelCol: "playing_level",
		IDCol:    "athlete_id",
	}
}

// writeDatasetCSV builds a dataset with enough rows per level to fit.
func writeDatasetCSV(t *testing.T, rowsPerLevel int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("athlete_id,playing_level,jump_height_cm,bat_speed_mph\n")
	for _, level := range schema.ReportLevels {
		for i := 0; i < rowsPerLevel; i++ {
			jump := 30.0 + float64(i)
			bat := 1.5*jump + 10 + float64(i%5)
			fmt.Fprintf(&sb, "%s-%d,%s,%g,%g\n", strings.ToLower(string(level[:1])), i, level, jump, bat)
		}
	}
	path := filepath.Join(t.TempDir(), "athletes.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func baseConfig(input string) *contract.Config {
	return &contract.Config{
		InputPath:    input,
		SamplingRate: 1000,
		Level:        schema.AllLevels,
		Policy:       schema.FilterPolicy{MinBatSpeed: 40, ZCutoff: 3},
		TopN:         5,
		Resamples:    200,
		Seed:         42,
		Workers:      2,
		Columns:      defaultColumns(),
		Precision:    2,
		Output:       schema.JSONOut,
	}
}

// TestExecuteJumpReport_EndToEnd runs the jump pipeline against a real file.
func TestExecuteJumpReport_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	forceCSV := filepath.Join(dir, "trial.csv")
	var sb strings.Builder
	sb.WriteString("time_s,force_n\n")
	for i := 0; i <= 300; i++ {
		fmt.Fprintf(&sb, "%g,%g\n", float64(i)*0.001, 750.0+float64(i))
	}
	require.NoError(t, os.WriteFile(forceCSV, []byte(sb.String()), 0o644))

	cfg := baseConfig(forceCSV)
	cfg.OutputFile = filepath.Join(dir, "metrics.json")

	require.NoError(t, ExecuteJumpReport(context.Background(), cfg))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Contains(t, out, "bw_n")
	assert.Contains(t, out, "rfd_0_50_n_per_s")
}

// TestGetTransferReportResult_PerLevel checks per-level fits and skip logic.
func TestGetTransferReportResult_PerLevel(t *testing.T) {
	cfg := baseConfig(writeDatasetCSV(t, 25))

	report, err := GetTransferReportResult(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, report.Levels, 3)

	for _, lr := range report.Levels {
		assert.False(t, lr.Skipped)
		assert.Equal(t, 25, lr.RowsRaw)
		assert.InDelta(t, 1.5, lr.Model.Slope, 0.2)
		assert.Len(t, lr.TopOver, 1)
		assert.Len(t, lr.TopUnder, 1)
	}
}

// TestGetTransferReportResult_SkipsThinLevels checks that a level with too
// few rows is skipped rather than failing the whole report.
func TestGetTransferReportResult_SkipsThinLevels(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("athlete_id,playing_level,jump_height_cm,bat_speed_mph\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "c-%d,College,%g,%g\n", i, 30.0+float64(i), 55.0+float64(i))
	}
	sb.WriteString("h-1,High School,40,60\n") // far below the fit minimum
	path := filepath.Join(t.TempDir(), "athletes.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))

	report, err := GetTransferReportResult(context.Background(), baseConfig(path), nil)
	require.NoError(t, err)

	byLevel := make(map[schema.PlayingLevel]schema.LevelReport)
	for _, lr := range report.Levels {
		byLevel[lr.Level] = lr
	}
	assert.True(t, byLevel[schema.HighSchoolLevel].Skipped)
	assert.True(t, byLevel[schema.ProLevel].Skipped)
	assert.False(t, byLevel[schema.CollegeLevel].Skipped)
}

// TestGetResidualReportResult checks ranking output and row accounting.
func TestGetResidualReportResult(t *testing.T) {
	cfg := baseConfig(writeDatasetCSV(t, 25))
	cfg.Level = schema.CollegeLevel
	cfg.TopN = 3

	report, err := GetResidualReportResult(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, schema.CollegeLevel, report.Level)
	assert.Equal(t, 25, report.RowsUsed)
	assert.Len(t, report.Records, 25)
	assert.Len(t, report.TopOver, 3)
	assert.Len(t, report.TopUnder, 3)
	assert.GreaterOrEqual(t, report.TopOver[0].ResidualMPH, report.TopUnder[0].ResidualMPH)
}

// TestGetPredictionResult checks the end-to-end bootstrap projection.
func TestGetPredictionResult(t *testing.T) {
	cfg := baseConfig(writeDatasetCSV(t, 25))
	cfg.JumpHeightCM = 45

	report, err := GetPredictionResult(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 75, report.RowsUsed) // pooled across levels
	assert.LessOrEqual(t, report.Interval.LowMPH, report.Interval.HighMPH)
	// The projection should land near the generating line 1.5*45+10+2.
	assert.InDelta(t, 79.5, report.Interval.MeanMPH, 5)
}

// TestGetPredictionResult_Reproducible checks that the command-level seed
// contract holds through the whole pipeline.
func TestGetPredictionResult_Reproducible(t *testing.T) {
	cfg := baseConfig(writeDatasetCSV(t, 25))
	cfg.JumpHeightCM = 45

	first, err := GetPredictionResult(context.Background(), cfg, nil)
	require.NoError(t, err)
	second, err := GetPredictionResult(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Interval, second.Interval)
}

// TestTrackingCalls verifies the run store receives begin/record/end calls
// and that a nil store disables tracking without affecting results.
func TestTrackingCalls(t *testing.T) {
	cfg := baseConfig(writeDatasetCSV(t, 25))

	store := &runstore.MockRunStore{}
	store.On("BeginRun", mock.Anything, "transfer", mock.Anything).Return(int64(7), nil)
	store.On("RecordModel", int64(7), mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("EndRun", int64(7), mock.Anything, mock.Anything).Return(nil)

	mgr := &runstore.MockRunManager{}
	mgr.On("GetRunStore").Return(store)

	_, err := GetTransferReportResult(context.Background(), cfg, mgr)
	require.NoError(t, err)

	store.AssertNumberOfCalls(t, "RecordModel", 3) // one per fitted level
	store.AssertCalled(t, "EndRun", int64(7), mock.Anything, mock.Anything)
}

// TestTrackingFailuresAreNonFatal verifies a broken store degrades to
// warnings instead of failing the analysis.
func TestTrackingFailuresAreNonFatal(t *testing.T) {
	cfg := baseConfig(writeDatasetCSV(t, 25))

	store := &runstore.MockRunStore{}
	store.On("BeginRun", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	mgr := &runstore.MockRunManager{}
	mgr.On("GetRunStore").Return(store)

	report, err := GetTransferReportResult(context.Background(), cfg, mgr)
	require.NoError(t, err)
	assert.Len(t, report.Levels, 3)
	store.AssertNotCalled(t, "RecordModel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
