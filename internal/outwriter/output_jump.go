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

// WriteJumpMetrics outputs one trial's CMJ metrics, dispatching based on
// the output format configured.
func WriteJumpMetrics(metrics *schema.JumpMetrics, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJumpJSON(w, metrics)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJumpCSV(w, metrics, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is supported for residuals and 'runs export', not jump metrics")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJumpTable(w, metrics, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeJumpTable renders the human-readable metric table.
func writeJumpTable(w io.Writer, metrics *schema.JumpMetrics, cfg *contract.Config, fmtFloat func(float64) string) error {
	if cfg.Athlete != "" {
		fmt.Fprintf(w, "CMJ Report: %s (Fs: %d Hz)\n\n", cfg.Athlete, cfg.SamplingRate)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, mv := range metrics.Values() {
		data = append(data, []string{schema.MetricLabels[mv.Name], fmtFloat(mv.Value)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeJumpCSV emits one (metric, value) row per metric.
func writeJumpCSV(w io.Writer, metrics *schema.JumpMetrics, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"metric", "value"}, func(cw *csv.Writer) error {
		for _, mv := range metrics.Values() {
			if err := cw.Write([]string{string(mv.Name), fmtFloat(mv.Value)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJumpJSON emits the metric vocabulary as a flat JSON object.
func writeJumpJSON(w io.Writer, metrics *schema.JumpMetrics) error {
	obj := make(map[string]any, 10)
	for _, mv := range metrics.Values() {
		obj[string(mv.Name)] = jsonSafe(mv.Value)
	}
	return writeJSON(w, obj)
}
