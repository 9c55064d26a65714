package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/internal/parquet"
	"github.com/pcorbett/jumplab/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteResidualReport outputs the ranked residual report, dispatching based
// on the output format configured.
func WriteResidualReport(report *schema.ResidualReport, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResidualJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResidualCSV(w, report, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		rows := parquet.ConvertResidualRecords(report.Records)
		if err := parquet.WriteResidualRowsParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("Exported %d residual rows to: %s\n", len(rows), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResidualText(w, report, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeResidualText renders the model header plus both ranked tables.
func writeResidualText(w io.Writer, report *schema.ResidualReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "Residual Report: CMJ -> Bat Speed (%s)\n", report.Level)
	fmt.Fprintf(w, "Model: bat_speed = %s * cmj + %s | r = %s (%s) | rows = %d\n\n",
		fmtFloat(report.Model.Slope), fmtFloat(report.Model.Intercept),
		fmtFloat(report.Model.R), transferLabel(report.Model.R, cfg), report.RowsUsed)

	maxID := getMaxIDWidth(cfg)
	if err := writeResidualTable(w, "Top Overperformers (Actual > Predicted)", report.TopOver, maxID, fmtFloat); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := writeResidualTable(w, "Top Underperformers (Actual < Predicted)", report.TopUnder, maxID, fmtFloat); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nResidual = Actual - Predicted. Positive = overperformer, negative = underperformer.\n")
	return nil
}

// writeResidualTable renders one ranked table with a caption.
func writeResidualTable(w io.Writer, caption string, records []schema.ResidualRecord, maxID int, fmtFloat func(float64) string) error {
	fmt.Fprintln(w, caption)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Athlete", "CMJ (cm)", "Actual", "Predicted", "Residual"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, rec := range records {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			truncateID(rec.AthleteID, maxID),
			fmtFloat(rec.JumpHeightCM),
			fmtFloat(rec.ActualMPH),
			fmtFloat(rec.PredictedMPH),
			fmtFloat(rec.ResidualMPH),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeResidualCSV emits every ranked row in original dataset order.
func writeResidualCSV(w io.Writer, report *schema.ResidualReport, fmtFloat func(float64) string) error {
	header := []string{"athlete_id", "cmj_jump_height_cm", "actual_bat_speed_mph", "pred_bat_speed_mph", "residual_mph"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, rec := range report.Records {
			row := []string{
				rec.AthleteID,
				fmtFloat(rec.JumpHeightCM),
				fmtFloat(rec.ActualMPH),
				fmtFloat(rec.PredictedMPH),
				fmtFloat(rec.ResidualMPH),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// residualRecordJSON is the JSON shape for one residual row.
type residualRecordJSON struct {
	AthleteID    string  `json:"athlete_id"`
	JumpHeightCM float64 `json:"cmj_jump_height_cm"`
	ActualMPH    float64 `json:"actual_bat_speed_mph"`
	PredictedMPH float64 `json:"pred_bat_speed_mph"`
	ResidualMPH  float64 `json:"residual_mph"`
}

// residualRecordsJSON converts records for JSON encoding.
func residualRecordsJSON(records []schema.ResidualRecord) []residualRecordJSON {
	out := make([]residualRecordJSON, len(records))
	for i, rec := range records {
		out[i] = residualRecordJSON{
			AthleteID:    rec.AthleteID,
			JumpHeightCM: rec.JumpHeightCM,
			ActualMPH:    rec.ActualMPH,
			PredictedMPH: rec.PredictedMPH,
			ResidualMPH:  rec.ResidualMPH,
		}
	}
	return out
}

// writeResidualJSON emits the model plus both ranked lists.
func writeResidualJSON(w io.Writer, report *schema.ResidualReport) error {
	return writeJSON(w, map[string]any{
		"playing_level": string(report.Level),
		"rows_used":     report.RowsUsed,
		"model": map[string]any{
			"slope":         jsonSafe(report.Model.Slope),
			"intercept":     jsonSafe(report.Model.Intercept),
			"correlation_r": jsonSafe(report.Model.R),
		},
		"top_overperformers":  residualRecordsJSON(report.TopOver),
		"top_underperformers": residualRecordsJSON(report.TopUnder),
	})
}
