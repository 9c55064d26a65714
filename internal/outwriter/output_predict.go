package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/schema"
)

// WritePredictionReport outputs a bootstrap prediction, dispatching based
// on the output format configured.
func WritePredictionReport(report *schema.PredictionReport, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePredictionJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePredictionCSV(w, report, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is supported for residuals and 'runs export', not predictions")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePredictionText(w, report, cfg, fmtFloat)
		}, "Wrote report")
	}
}

// writePredictionText renders the projection summary.
func writePredictionText(w io.Writer, report *schema.PredictionReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "CMJ -> Bat Speed Projection (%s, n=%d)\n", report.Level, report.RowsUsed)
	fmt.Fprintf(w, "Model: bat_speed = %s * cmj + %s | r = %s (%s)\n",
		fmtFloat(report.Model.Slope), fmtFloat(report.Model.Intercept),
		fmtFloat(report.Model.R), transferLabel(report.Model.R, cfg))
	fmt.Fprintf(w, "\nAthlete CMJ:         %s cm\n", fmtFloat(report.JumpHeightCM))
	fmt.Fprintf(w, "Predicted Bat Speed: %s mph\n", fmtFloat(report.Interval.MeanMPH))
	fmt.Fprintf(w, "95%% CI:              %s - %s mph\n", fmtFloat(report.Interval.LowMPH), fmtFloat(report.Interval.HighMPH))
	fmt.Fprintf(w, "\nBootstrap: %d resamples, seed %d\n", report.Resamples, report.Seed)
	return nil
}

// writePredictionCSV emits the prediction as a single row.
func writePredictionCSV(w io.Writer, report *schema.PredictionReport, fmtFloat func(float64) string) error {
	header := []string{"playing_level", "rows_used", "jump_height_cm", "pred_mean_mph", "ci_low_mph", "ci_high_mph", "slope", "intercept", "correlation_r", "resamples", "seed"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			string(report.Level),
			fmt.Sprintf("%d", report.RowsUsed),
			fmtFloat(report.JumpHeightCM),
			fmtFloat(report.Interval.MeanMPH),
			fmtFloat(report.Interval.LowMPH),
			fmtFloat(report.Interval.HighMPH),
			fmtFloat(report.Model.Slope),
			fmtFloat(report.Model.Intercept),
			fmtFloat(report.Model.R),
			fmt.Sprintf("%d", report.Resamples),
			fmt.Sprintf("%d", report.Seed),
		})
	})
}

// writePredictionJSON emits the prediction as one JSON document.
func writePredictionJSON(w io.Writer, report *schema.PredictionReport) error {
	return writeJSON(w, map[string]any{
		"playing_level":  string(report.Level),
		"rows_used":      report.RowsUsed,
		"jump_height_cm": report.JumpHeightCM,
		"model": map[string]any{
			"slope":         jsonSafe(report.Model.Slope),
			"intercept":     jsonSafe(report.Model.Intercept),
			"correlation_r": jsonSafe(report.Model.R),
		},
		"prediction": map[string]any{
			"mean_mph":    jsonSafe(report.Interval.MeanMPH),
			"ci_low_mph":  jsonSafe(report.Interval.LowMPH),
			"ci_high_mph": jsonSafe(report.Interval.HighMPH),
		},
		"resamples": report.Resamples,
		"seed":      report.Seed,
	})
}
