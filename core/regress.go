package core

import (
	"fmt"
	"sort"

	"github.com/pcorbett/jumplab/core/stats"
	"github.com/pcorbett/jumplab/schema"
)

// minRowsForFit is the smallest sample count accepted by the transfer fit.
const minRowsForFit = 20

// FitTransferModel fits a least-squares line and Pearson correlation over
// the given samples. Returns ErrInsufficientData below 20 rows; the caller
// decides whether to skip the group or abort.
func FitTransferModel(samples []schema.AthleteSample) (schema.TransferModel, error) {
	if len(samples) < minRowsForFit {
		return schema.TransferModel{}, fmt.Errorf("%w: transfer fit needs at least %d rows, got %d",
			ErrInsufficientData, minRowsForFit, len(samples))
	}

	x := make([]float64, len(samples))
	y := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = s.JumpHeightCM
		y[i] = s.BatSpeedMPH
	}

	slope, intercept, err := stats.FitLine(x, y)
	if err != nil {
		return schema.TransferModel{}, fmt.Errorf("transfer fit: %w", err)
	}

	return schema.TransferModel{
		Slope:     slope,
		Intercept: intercept,
		R:         stats.Pearson(x, y),
	}, nil
}

// RankResiduals computes residual = actual - predicted for every sample,
// preserving original row order.
func RankResiduals(samples []schema.AthleteSample, model schema.TransferModel) []schema.ResidualRecord {
	records := make([]schema.ResidualRecord, len(samples))
	for i, s := range samples {
		pred := model.Predict(s.JumpHeightCM)
		records[i] = schema.ResidualRecord{
			AthleteID:    s.AthleteID,
			JumpHeightCM: s.JumpHeightCM,
			ActualMPH:    s.BatSpeedMPH,
			PredictedMPH: pred,
			ResidualMPH:  s.BatSpeedMPH - pred,
		}
	}
	return records
}

// TopOverperformers returns the n records with the largest residuals,
// descending. Ties keep original row order (stable sort).
func TopOverperformers(records []schema.ResidualRecord, n int) []schema.ResidualRecord {
	ranked := make([]schema.ResidualRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ResidualMPH > ranked[j].ResidualMPH
	})
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}

// TopUnderperformers returns the n records with the smallest residuals,
// ascending. Ties keep original row order (stable sort).
func TopUnderperformers(records []schema.ResidualRecord, n int) []schema.ResidualRecord {
	ranked := make([]schema.ResidualRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ResidualMPH < ranked[j].ResidualMPH
	})
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}
