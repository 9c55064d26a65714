package cmd

import (
	"github.com/pcorbett/jumplab/core"
	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/spf13/cobra"
)

// jumpCmd extracts CMJ metrics from a single force-plate recording.
var jumpCmd = &cobra.Command{
	Use:   "jump <force-csv>",
	Short: "Extract countermovement jump metrics from a force-time CSV.",
	Long: `Compute force-plate metrics from a single countermovement jump recording.

The input CSV must carry a time_s column (seconds) and a force_n column
(newtons, vertical ground reaction force), ordered by time.

Reported metrics:
- Bodyweight estimate from the quiet standing phase
- Peak force, normalized peak force and net peak force
- Time to peak force
- Rate of force development over 50, 100 and 200 ms
- Total and net impulse over the first 200 ms

Examples:
  # Print a metric table for one trial
  jumplab jump trial.csv

  # Non-default sampling rate, machine-readable output
  jumplab jump trial.csv --sampling-rate 500 --output json

  # Save metrics for later comparison
  jumplab jump trial.csv --output csv --output-file metrics.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteJumpReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot extract jump metrics", err)
		}
	},
}
