// Package core has core logic for metric extraction, filtering, model
// fitting and bootstrap prediction.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/internal/loader"
	"github.com/pcorbett/jumplab/internal/outwriter"
	"github.com/pcorbett/jumplab/schema"
)

// ExecuteJumpReport extracts CMJ metrics from a force-time CSV and writes
// the result. It serves as the main entry point for the 'jump' command.
func ExecuteJumpReport(ctx context.Context, cfg *contract.Config) error {
	metrics, err := GetJumpMetricsResult(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteJumpMetrics(metrics, cfg)
}

// GetJumpMetricsResult loads a force-time series and extracts CMJ metrics
// without writing any output. Exposed for the MCP server.
func GetJumpMetricsResult(_ context.Context, cfg *contract.Config) (*schema.JumpMetrics, error) {
	series, err := loader.LoadForceSeries(cfg.InputPath, cfg.SamplingRate)
	if err != nil {
		return nil, err
	}
	return ExtractJumpMetrics(series)
}

// ExecuteTransferReport runs the full per-level transfer pipeline: outlier
// filter, regression fit and top over/under performer per playing level.
// Levels without enough usable rows are reported as skipped, not failed.
func ExecuteTransferReport(ctx context.Context, cfg *contract.Config, mgr contract.RunManager) error {
	report, err := GetTransferReportResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTransferReport(report, cfg)
}

// GetTransferReportResult computes the per-level transfer report without
// writing any output. Exposed for the MCP server.
func GetTransferReportResult(_ context.Context, cfg *contract.Config, mgr contract.RunManager) (*schema.TransferReport, error) {
	samples, err := loader.LoadAthleteDataset(cfg.InputPath, cfg.Columns)
	if err != nil {
		return nil, err
	}

	runID, store := beginTracking(mgr, "transfer", map[string]any{
		"input":   cfg.InputPath,
		"min_bat": cfg.Policy.MinBatSpeed,
		"z_cut":   cfg.Policy.ZCutoff,
	})

	report := schema.TransferReport{Policy: cfg.Policy}
	totalRows := 0
	for _, level := range schema.ReportLevels {
		raw := samplesForLevel(samples, level)
		filtered := FilterSamples(raw, cfg.Policy)

		lr := schema.LevelReport{
			Level:        level,
			RowsRaw:      len(raw),
			RowsFiltered: len(filtered),
		}

		model, err := FitTransferModel(filtered)
		if errors.Is(err, ErrInsufficientData) {
			lr.Skipped = true
			report.Levels = append(report.Levels, lr)
			continue
		}
		if err != nil {
			return nil, err
		}

		records := RankResiduals(filtered, model)
		lr.Model = model
		lr.TopOver = TopOverperformers(records, 1)
		lr.TopUnder = TopUnderperformers(records, 1)
		report.Levels = append(report.Levels, lr)
		totalRows += len(filtered)

		if store != nil {
			if err := store.RecordModel(runID, level, len(filtered), model); err != nil {
				contract.LogWarn("Failed to record transfer model", err)
			}
		}
	}

	endTracking(store, runID, totalRows)
	return &report, nil
}

// ExecuteResidualReport fits one level (or the pooled dataset) on all usable
// rows and writes the ranked residual tables. It serves as the main entry
// point for the 'residuals' command.
func ExecuteResidualReport(ctx context.Context, cfg *contract.Config, mgr contract.RunManager) error {
	report, err := GetResidualReportResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteResidualReport(report, cfg)
}

// GetResidualReportResult computes the ranked residual report without
// writing any output. Exposed for the MCP server.
func GetResidualReportResult(_ context.Context, cfg *contract.Config, mgr contract.RunManager) (*schema.ResidualReport, error) {
	samples, err := loader.LoadAthleteDataset(cfg.InputPath, cfg.Columns)
	if err != nil {
		return nil, err
	}

	usable := usableSamples(samplesForLevel(samples, cfg.Level))
	model, err := FitTransferModel(usable)
	if err != nil {
		return nil, err
	}

	runID, store := beginTracking(mgr, "residuals", map[string]any{
		"input": cfg.InputPath,
		"level": string(cfg.Level),
		"top":   cfg.TopN,
	})
	if store != nil {
		if err := store.RecordModel(runID, cfg.Level, len(usable), model); err != nil {
			contract.LogWarn("Failed to record residual model", err)
		}
	}
	endTracking(store, runID, len(usable))

	records := RankResiduals(usable, model)
	report := schema.ResidualReport{
		Level:    cfg.Level,
		RowsUsed: len(usable),
		Model:    model,
		Records:  records,
		TopOver:  TopOverperformers(records, cfg.TopN),
		TopUnder: TopUnderperformers(records, cfg.TopN),
	}
	return &report, nil
}

// ExecutePredict fits the transfer model for the selected level and produces
// a bootstrap prediction interval for a new jump height. It serves as the
// main entry point for the 'predict' command.
func ExecutePredict(ctx context.Context, cfg *contract.Config, mgr contract.RunManager) error {
	report, err := GetPredictionResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WritePredictionReport(report, cfg)
}

// GetPredictionResult fits the model and runs the bootstrap without writing
// any output. Exposed for the MCP server.
func GetPredictionResult(_ context.Context, cfg *contract.Config, mgr contract.RunManager) (*schema.PredictionReport, error) {
	samples, err := loader.LoadAthleteDataset(cfg.InputPath, cfg.Columns)
	if err != nil {
		return nil, err
	}

	usable := usableSamples(samplesForLevel(samples, cfg.Level))
	model, err := FitTransferModel(usable)
	if err != nil {
		return nil, err
	}

	x := make([]float64, len(usable))
	y := make([]float64, len(usable))
	for i, s := range usable {
		x[i] = s.JumpHeightCM
		y[i] = s.BatSpeedMPH
	}
	interval, err := BootstrapPredict(x, y, cfg.JumpHeightCM, BootstrapOptions{
		Resamples: cfg.Resamples,
		Seed:      cfg.Seed,
		Workers:   cfg.Workers,
	})
	if err != nil {
		return nil, err
	}

	runID, store := beginTracking(mgr, "predict", map[string]any{
		"input":       cfg.InputPath,
		"level":       string(cfg.Level),
		"jump_height": cfg.JumpHeightCM,
		"boot":        cfg.Resamples,
		"seed":        cfg.Seed,
	})
	if store != nil {
		if err := store.RecordModel(runID, cfg.Level, len(usable), model); err != nil {
			contract.LogWarn("Failed to record prediction model", err)
		}
		if err := store.RecordPrediction(runID, cfg.Level, cfg.JumpHeightCM, interval, cfg.Resamples, cfg.Seed); err != nil {
			contract.LogWarn("Failed to record prediction", err)
		}
	}
	endTracking(store, runID, len(usable))

	report := schema.PredictionReport{
		Level:        cfg.Level,
		RowsUsed:     len(usable),
		JumpHeightCM: cfg.JumpHeightCM,
		Model:        model,
		Interval:     interval,
		Resamples:    cfg.Resamples,
		Seed:         cfg.Seed,
	}
	return &report, nil
}

// samplesForLevel returns the rows belonging to the given level, or every
// row when the level is All. Row order is preserved.
func samplesForLevel(samples []schema.AthleteSample, level schema.PlayingLevel) []schema.AthleteSample {
	if level == schema.AllLevels {
		return samples
	}
	out := make([]schema.AthleteSample, 0, len(samples))
	for _, s := range samples {
		if s.Level == level {
			out = append(out, s)
		}
	}
	return out
}

// usableSamples drops rows whose numeric fields did not parse.
func usableSamples(samples []schema.AthleteSample) []schema.AthleteSample {
	out := make([]schema.AthleteSample, 0, len(samples))
	for _, s := range samples {
		if s.Usable() {
			out = append(out, s)
		}
	}
	return out
}

// beginTracking opens a run record when tracking is configured. A nil store
// means tracking is disabled or unavailable.
func beginTracking(mgr contract.RunManager, command string, params map[string]any) (int64, contract.RunStore) {
	if mgr == nil {
		return 0, nil
	}
	store := mgr.GetRunStore()
	if store == nil {
		return 0, nil
	}
	runID, err := store.BeginRun(time.Now(), command, params)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return 0, nil
	}
	return runID, store
}

// endTracking finalizes a run record; failures downgrade to warnings.
func endTracking(store contract.RunStore, runID int64, rows int) {
	if store == nil {
		return
	}
	if err := store.EndRun(runID, time.Now(), rows); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}
