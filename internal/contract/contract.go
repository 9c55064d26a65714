// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/pcorbett/jumplab/schema"
)

// RunManager defines the interface for accessing the run-tracking store.
// This allows the tracking layer to be mocked for testing.
type RunManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for tracking analysis runs and storing
// fitted models and predictions. Implementations must degrade gracefully:
// a tracking failure is a warning, never a reason to abort an analysis.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID.
	BeginRun(startTime time.Time, command string, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, rowsProcessed int) error

	// RecordModel stores a fitted transfer model for one playing level.
	RecordModel(runID int64, level schema.PlayingLevel, rowsUsed int, model schema.TransferModel) error

	// RecordPrediction stores a bootstrap prediction result.
	RecordPrediction(runID int64, level schema.PlayingLevel, jumpHeightCM float64, interval schema.PredictionInterval, resamples int, seed int64) error

	// GetAllRuns returns every recorded run, oldest first.
	GetAllRuns() ([]RunRecord, error)

	// GetAllModels returns every recorded model row, oldest first.
	GetAllModels() ([]ModelRecord, error)

	// GetAllPredictions returns every recorded prediction row, oldest first.
	GetAllPredictions() ([]PredictionRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (RunStoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// RunRecord is one tracked invocation of a modeling command.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	Command       string
	RowsProcessed int
	ConfigParams  *string // JSON-encoded parameters, nil when unavailable
}

// ModelRecord is one fitted transfer model stored for a run.
type ModelRecord struct {
	RunID     int64
	Level     string
	RowsUsed  int
	Slope     float64
	Intercept float64
	R         float64
	FitTime   time.Time
}

// PredictionRecord is one bootstrap prediction stored for a run.
type PredictionRecord struct {
	RunID        int64
	Level        string
	JumpHeightCM float64
	MeanMPH      float64
	LowMPH       float64
	HighMPH      float64
	Resamples    int
	Seed         int64
	PredictTime  time.Time
}

// RunStoreStatus summarizes the state of the run-tracking store.
type RunStoreStatus struct {
	Backend    schema.DatabaseBackend
	Connected  bool
	TotalRuns  int64
	TableSizes map[string]int64
	LastRun    *time.Time
}
