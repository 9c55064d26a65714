// Package schema has configs, models and constants for all parts of jumplab.
package schema

import "math"

// ForceSample is a single (time, force) reading from a force plate.
type ForceSample struct {
	TimeS  float64 // Seconds since recording start
	ForceN float64 // Vertical ground reaction force in Newtons
}

// ForceSeries is an ordered force-time recording for one jump trial.
// Timestamps are non-decreasing; the series is never mutated after loading.
type ForceSeries struct {
	Samples      []ForceSample
	SamplingRate int // Informational only; all windows are time-based
}

// Len returns the number of samples in the series.
func (s *ForceSeries) Len() int { return len(s.Samples) }

// JumpMetrics holds every derived CMJ metric for one trial. All values are
// computed from the same series and the same reference time (the first
// sample's timestamp). PeakForceXBW is NaN when the bodyweight estimate is
// exactly zero; every other metric in the result remains valid.
type JumpMetrics struct {
	BodyweightN      float64 // Mean force over the standing window
	PeakForceN       float64 // Maximum force in the whole series
	PeakForceXBW     float64 // PeakForceN / BodyweightN (NaN if bodyweight is zero)
	NetPeakForceN    float64 // PeakForceN - BodyweightN
	TimeToPeakMs     float64 // Time of the peak sample relative to t0, in ms
	RFD0To50NPerS    float64 // Rate of force development over 0-50 ms
	RFD0To100NPerS   float64 // Rate of force development over 0-100 ms
	RFD0To200NPerS   float64 // Rate of force development over 0-200 ms
	Impulse0To200Ns  float64 // Trapezoidal integral of force over 0-200 ms
	NetImpulse0To200 float64 // Same integral after subtracting bodyweight
}

// Values returns the metrics as ordered (key, value) pairs using the fixed
// metric-name vocabulary. Ordering matches the report layout.
func (m *JumpMetrics) Values() []MetricValue {
	return []MetricValue{
		{MetricBodyweight, m.BodyweightN},
		{MetricPeakForce, m.PeakForceN},
		{MetricPeakForceXBW, m.PeakForceXBW},
		{MetricNetPeakForce, m.NetPeakForceN},
		{MetricTimeToPeak, m.TimeToPeakMs},
		{MetricRFD0To50, m.RFD0To50NPerS},
		{MetricRFD0To100, m.RFD0To100NPerS},
		{MetricRFD0To200, m.RFD0To200NPerS},
		{MetricImpulse0To200, m.Impulse0To200Ns},
		{MetricNetImpulse0To200, m.NetImpulse0To200},
	}
}

// MetricValue pairs a metric name with its computed value.
type MetricValue struct {
	Name  MetricName
	Value float64
}

// AthleteSample is one dataset row pairing a jump-height measurement with a
// bat-speed measurement. Rows are deduplicated by row, not by athlete; the
// same athlete may appear multiple times.
type AthleteSample struct {
	AthleteID    string // May be empty when the dataset has no identifier column
	JumpHeightCM float64
	BatSpeedMPH  float64
	Level        PlayingLevel
}

// Usable reports whether both numeric fields are finite. Loader writes NaN
// for unparsable cells so the filter can drop them here.
func (a AthleteSample) Usable() bool {
	return !math.IsNaN(a.JumpHeightCM) && !math.IsInf(a.JumpHeightCM, 0) &&
		!math.IsNaN(a.BatSpeedMPH) && !math.IsInf(a.BatSpeedMPH, 0)
}

// FilterPolicy configures the per-level outlier filter.
type FilterPolicy struct {
	MinBatSpeed float64 // Rows below this bat speed are dropped
	ZCutoff     float64 // Rows with |z| above this on either axis are dropped
}

// TransferModel is a least-squares line relating jump height to bat speed
// over a fixed sample set. It is recomputed whenever inputs change and never
// mutated in place.
type TransferModel struct {
	Slope     float64
	Intercept float64
	R         float64 // Pearson correlation of the fitted sample set
}

// Predict evaluates the fitted line at the given jump height.
func (m TransferModel) Predict(jumpHeightCM float64) float64 {
	return m.Slope*jumpHeightCM + m.Intercept
}

// ResidualRecord is a read-only row of model error for one sample.
// Residual = Actual - Predicted; positive means overperformer.
type ResidualRecord struct {
	AthleteID    string
	JumpHeightCM float64
	ActualMPH    float64
	PredictedMPH float64
	ResidualMPH  float64
}

// PredictionInterval is a bootstrap-resampled prediction for one new jump
// height: the mean of all resample predictions plus a 95% interval.
// Produced fresh per call, never cached.
type PredictionInterval struct {
	MeanMPH float64
	LowMPH  float64 // 2.5th percentile of the prediction distribution
	HighMPH float64 // 97.5th percentile of the prediction distribution
}

// LevelReport is the per-playing-level result of the transfer pipeline.
type LevelReport struct {
	Level        PlayingLevel
	RowsRaw      int // Rows before filtering
	RowsFiltered int // Rows that survived the outlier filter
	Model        TransferModel
	TopOver      []ResidualRecord
	TopUnder     []ResidualRecord
	Skipped      bool // True when the level had too few rows to fit
}

// TransferReport aggregates every level's result for one dataset.
type TransferReport struct {
	Policy FilterPolicy
	Levels []LevelReport
}

// ResidualReport is the output of the residual-ranking pipeline for one
// level (or the whole dataset).
type ResidualReport struct {
	Level    PlayingLevel
	RowsUsed int
	Model    TransferModel
	Records  []ResidualRecord // Every ranked row, original order
	TopOver  []ResidualRecord
	TopUnder []ResidualRecord
}

// PredictionReport is the output of the bootstrap prediction pipeline.
type PredictionReport struct {
	Level        PlayingLevel
	RowsUsed     int
	JumpHeightCM float64
	Model        TransferModel
	Interval     PredictionInterval
	Resamples    int
	Seed         int64
}
