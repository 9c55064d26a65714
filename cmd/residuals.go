package cmd

import (
	"github.com/pcorbett/jumplab/core"
	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/spf13/cobra"
)

// residualsCmd ranks athletes against the fitted transfer model.
var residualsCmd = &cobra.Command{
	Use:   "residuals <dataset-csv>",
	Short: "Rank athletes by residual from the fitted transfer model.",
	Long: `Find athletes whose bat speed deviates most from the model's expectation.

A transfer model is fitted on the selected playing level (or the pooled
dataset), then every athlete is ranked by residual: actual bat speed minus
the speed the model predicts from their jump height. Positive residuals
are over-performers, negative residuals under-performers.

Over-performers often indicate skill or technique that the jump alone
doesn't capture; under-performers may have untapped transfer potential.

Examples:
  # Top 15 over/under performers across all levels
  jumplab residuals athletes.csv

  # College-only ranking, top 5 each way
  jumplab residuals athletes.csv --level college --top 5

  # Full ranked table for spreadsheet work
  jumplab residuals athletes.csv --output csv --output-file residuals.csv

  # Columnar export for DuckDB or pandas
  jumplab residuals athletes.csv --output parquet --output-file residuals.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteResidualReport(rootCtx, cfg, runManager); err != nil {
			contract.LogFatal("Cannot run residual analysis", err)
		}
	},
}
