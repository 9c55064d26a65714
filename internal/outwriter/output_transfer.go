package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTransferReport outputs the per-level transfer results, dispatching
// based on the output format configured.
func WriteTransferReport(report *schema.TransferReport, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTransferJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTransferCSV(w, report, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is supported for residuals and 'runs export', not transfer reports")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTransferText(w, report, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeTransferText renders the per-level summary table and then a section
// per fitted level with its model and top performers.
func writeTransferText(w io.Writer, report *schema.TransferReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "CMJ -> Bat Speed Transfer Report\n")
	fmt.Fprintf(w, "Filters: bat >= %s mph, outliers within +/-%s SD on both axes\n\n",
		fmtFloat(report.Policy.MinBatSpeed), fmtFloat(report.Policy.ZCutoff))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Level", "Raw", "Filtered", "Slope", "Intercept", "r", "Transfer"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, lr := range report.Levels {
		if lr.Skipped {
			data = append(data, []string{
				string(lr.Level),
				fmt.Sprintf("%d", lr.RowsRaw),
				fmt.Sprintf("%d", lr.RowsFiltered),
				"-", "-", "-", "insufficient data",
			})
			continue
		}
		data = append(data, []string{
			string(lr.Level),
			fmt.Sprintf("%d", lr.RowsRaw),
			fmt.Sprintf("%d", lr.RowsFiltered),
			fmtFloat(lr.Model.Slope),
			fmtFloat(lr.Model.Intercept),
			fmtFloat(lr.Model.R),
			transferLabel(lr.Model.R, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	maxID := getMaxIDWidth(cfg)
	for _, lr := range report.Levels {
		if lr.Skipped {
			fmt.Fprintf(w, "\n%s: not enough data after filtering.\n", lr.Level)
			continue
		}
		fmt.Fprintf(w, "\n%s: bat_speed = %s * cmj + %s (r=%s, n=%d)\n",
			lr.Level, fmtFloat(lr.Model.Slope), fmtFloat(lr.Model.Intercept),
			fmtFloat(lr.Model.R), lr.RowsFiltered)
		for _, rec := range lr.TopOver {
			fmt.Fprintf(w, "  Top overperformer:  %s | CMJ %s | Actual %s | Pred %s | +%s\n",
				truncateID(rec.AthleteID, maxID), fmtFloat(rec.JumpHeightCM),
				fmtFloat(rec.ActualMPH), fmtFloat(rec.PredictedMPH), fmtFloat(rec.ResidualMPH))
		}
		for _, rec := range lr.TopUnder {
			fmt.Fprintf(w, "  Top underperformer: %s | CMJ %s | Actual %s | Pred %s | %s\n",
				truncateID(rec.AthleteID, maxID), fmtFloat(rec.JumpHeightCM),
				fmtFloat(rec.ActualMPH), fmtFloat(rec.PredictedMPH), fmtFloat(rec.ResidualMPH))
		}
	}
	fmt.Fprintf(w, "\nResidual = Actual - Predicted. Positive = overperformer, negative = underperformer.\n")
	return nil
}

// transferLabel picks the colored or plain correlation label.
func transferLabel(r float64, cfg *contract.Config) string {
	if cfg.UseColor {
		return contract.GetColorLabel(r)
	}
	return contract.GetPlainLabel(r)
}

// writeTransferCSV emits one row per level.
func writeTransferCSV(w io.Writer, report *schema.TransferReport, fmtFloat func(float64) string) error {
	header := []string{"playing_level", "rows_raw", "rows_filtered", "slope", "intercept", "correlation_r", "transfer"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, lr := range report.Levels {
			if lr.Skipped {
				if err := cw.Write([]string{string(lr.Level), fmt.Sprintf("%d", lr.RowsRaw),
					fmt.Sprintf("%d", lr.RowsFiltered), "", "", "", "insufficient data"}); err != nil {
					return err
				}
				continue
			}
			row := []string{
				string(lr.Level),
				fmt.Sprintf("%d", lr.RowsRaw),
				fmt.Sprintf("%d", lr.RowsFiltered),
				fmtFloat(lr.Model.Slope),
				fmtFloat(lr.Model.Intercept),
				fmtFloat(lr.Model.R),
				contract.GetPlainLabel(lr.Model.R),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// transferLevelJSON is the JSON shape for one level's result.
type transferLevelJSON struct {
	Level        string                  `json:"playing_level"`
	RowsRaw      int                     `json:"rows_raw"`
	RowsFiltered int                     `json:"rows_filtered"`
	Skipped      bool                    `json:"skipped"`
	Slope        any                     `json:"slope,omitempty"`
	Intercept    any                     `json:"intercept,omitempty"`
	CorrelationR any                     `json:"correlation_r,omitempty"`
	TopOver      []residualRecordJSON    `json:"top_overperformers,omitempty"`
	TopUnder     []residualRecordJSON    `json:"top_underperformers,omitempty"`
}

// writeTransferJSON emits the whole report as one JSON document.
func writeTransferJSON(w io.Writer, report *schema.TransferReport) error {
	levels := make([]transferLevelJSON, 0, len(report.Levels))
	for _, lr := range report.Levels {
		lj := transferLevelJSON{
			Level:        string(lr.Level),
			RowsRaw:      lr.RowsRaw,
			RowsFiltered: lr.RowsFiltered,
			Skipped:      lr.Skipped,
		}
		if !lr.Skipped {
			lj.Slope = jsonSafe(lr.Model.Slope)
			lj.Intercept = jsonSafe(lr.Model.Intercept)
			lj.CorrelationR = jsonSafe(lr.Model.R)
			lj.TopOver = residualRecordsJSON(lr.TopOver)
			lj.TopUnder = residualRecordsJSON(lr.TopUnder)
		}
		levels = append(levels, lj)
	}
	return writeJSON(w, map[string]any{
		"min_bat_speed": report.Policy.MinBatSpeed,
		"z_cutoff":      report.Policy.ZCutoff,
		"levels":        levels,
	})
}
