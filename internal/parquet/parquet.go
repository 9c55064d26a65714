// Package parquet provides data structures and functions for exporting
// jumplab run-tracking data and residual reports to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/schema"
)

// ModelRun represents a single tracked jumplab run with metadata.
// This struct maps to the jumplab_runs database table.
type ModelRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// Command is the subcommand that produced this run
	Command string `parquet:"command,snappy"`

	// RowsProcessed is the number of dataset rows used across all levels
	RowsProcessed int32 `parquet:"rows_processed,snappy"`

	// ConfigParams contains the JSON-encoded invocation parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// LevelModel represents one fitted transfer model stored for a run.
// This struct maps to the jumplab_models database table.
type LevelModel struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// PlayingLevel is the population group the model was fit on
	PlayingLevel string `parquet:"playing_level,snappy"`

	// RowsUsed is the number of rows that survived filtering
	RowsUsed int32 `parquet:"rows_used,snappy"`

	// Slope of the least-squares line (mph per cm)
	Slope float64 `parquet:"slope,snappy"`

	// Intercept of the least-squares line (mph)
	Intercept float64 `parquet:"intercept,snappy"`

	// CorrelationR is the Pearson correlation of the fitted sample set
	CorrelationR float64 `parquet:"correlation_r,snappy"`

	// FitTime is when the model was stored
	FitTime time.Time `parquet:"fit_time,snappy"`
}

// Prediction represents one bootstrap prediction stored for a run.
// This struct maps to the jumplab_predictions database table.
type Prediction struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// PlayingLevel is the population group the prediction was made against
	PlayingLevel string `parquet:"playing_level,snappy"`

	// JumpHeightCM is the new athlete's jump height input
	JumpHeightCM float64 `parquet:"jump_height_cm,snappy"`

	// MeanMPH is the mean of the bootstrap prediction distribution
	MeanMPH float64 `parquet:"mean_mph,snappy"`

	// LowMPH is the 2.5th percentile of the prediction distribution
	LowMPH float64 `parquet:"low_mph,snappy"`

	// HighMPH is the 97.5th percentile of the prediction distribution
	HighMPH float64 `parquet:"high_mph,snappy"`

	// Resamples is the bootstrap iteration count
	Resamples int32 `parquet:"resamples,snappy"`

	// Seed is the RNG seed used for the resample draws
	Seed int64 `parquet:"seed,snappy"`

	// PredictTime is when the prediction was stored
	PredictTime time.Time `parquet:"predict_time,snappy"`
}

// ResidualRow represents one ranked residual in a report export.
type ResidualRow struct {
	// AthleteID may be empty when the dataset has no identifier column
	AthleteID string `parquet:"athlete_id,snappy"`

	// JumpHeightCM is the athlete's measured jump height
	JumpHeightCM float64 `parquet:"jump_height_cm,snappy"`

	// ActualMPH is the measured bat speed
	ActualMPH float64 `parquet:"actual_mph,snappy"`

	// PredictedMPH is the model-predicted bat speed
	PredictedMPH float64 `parquet:"predicted_mph,snappy"`

	// ResidualMPH is actual minus predicted; positive means overperformer
	ResidualMPH float64 `parquet:"residual_mph,snappy"`
}

// ConvertRunRecords maps store records into Parquet rows.
func ConvertRunRecords(records []contract.RunRecord) []ModelRun {
	out := make([]ModelRun, len(records))
	for i, r := range records {
		out[i] = ModelRun{
			RunID:         r.RunID,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			Command:       r.Command,
			RowsProcessed: int32(r.RowsProcessed),
			ConfigParams:  r.ConfigParams,
		}
	}
	return out
}

// ConvertModelRecords maps store records into Parquet rows.
func ConvertModelRecords(records []contract.ModelRecord) []LevelModel {
	out := make([]LevelModel, len(records))
	for i, r := range records {
		out[i] = LevelModel{
			RunID:        r.RunID,
			PlayingLevel: r.Level,
			RowsUsed:     int32(r.RowsUsed),
			Slope:        r.Slope,
			Intercept:    r.Intercept,
			CorrelationR: r.R,
			FitTime:      r.FitTime,
		}
	}
	return out
}

// ConvertPredictionRecords maps store records into Parquet rows.
func ConvertPredictionRecords(records []contract.PredictionRecord) []Prediction {
	out := make([]Prediction, len(records))
	for i, r := range records {
		out[i] = Prediction{
			RunID:        r.RunID,
			PlayingLevel: r.Level,
			JumpHeightCM: r.JumpHeightCM,
			MeanMPH:      r.MeanMPH,
			LowMPH:       r.LowMPH,
			HighMPH:      r.HighMPH,
			Resamples:    int32(r.Resamples),
			Seed:         r.Seed,
			PredictTime:  r.PredictTime,
		}
	}
	return out
}

// ConvertResidualRecords maps report records into Parquet rows.
func ConvertResidualRecords(records []schema.ResidualRecord) []ResidualRow {
	out := make([]ResidualRow, len(records))
	for i, r := range records {
		out[i] = ResidualRow{
			AthleteID:    r.AthleteID,
			JumpHeightCM: r.JumpHeightCM,
			ActualMPH:    r.ActualMPH,
			PredictedMPH: r.PredictedMPH,
			ResidualMPH:  r.ResidualMPH,
		}
	}
	return out
}

// WriteModelRunsParquet writes a slice of ModelRun structs to a Parquet file.
func WriteModelRunsParquet(data []ModelRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteLevelModelsParquet writes a slice of LevelModel structs to a Parquet file.
func WriteLevelModelsParquet(data []LevelModel, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WritePredictionsParquet writes a slice of Prediction structs to a Parquet file.
func WritePredictionsParquet(data []Prediction, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteResidualRowsParquet writes a slice of ResidualRow structs to a Parquet file.
func WriteResidualRowsParquet(data []ResidualRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any row type to a Parquet file using struct schema
// inference from the parquet tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
