package cmd

import (
	"github.com/pcorbett/jumplab/core"
	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/spf13/cobra"
)

// transferCmd fits per-level transfer models over an athlete dataset.
var transferCmd = &cobra.Command{
	Use:   "transfer <dataset-csv>",
	Short: "Fit jump-to-bat-speed transfer models per playing level.",
	Long: `Model how vertical jump height transfers to bat speed at each playing level.

For every level (High School, College, Pro) the dataset is filtered for
implausible and outlier rows, a least-squares line is fitted, and the
strongest over- and under-performer against the fitted line is reported.
Levels without enough usable rows are marked as skipped.

The filter drops rows with missing values, rows below the minimum
plausible bat speed, and rows beyond the z-score cutoff on either axis.

Examples:
  # Full per-level report
  jumplab transfer athletes.csv

  # Looser outlier policy
  jumplab transfer athletes.csv --min-bat 35 --z-cut 4

  # Machine-readable summary for dashboards
  jumplab transfer athletes.csv --output json --output-file transfer.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTransferReport(rootCtx, cfg, runManager); err != nil {
			contract.LogFatal("Cannot run transfer analysis", err)
		}
	},
}
