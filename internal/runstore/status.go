package runstore

import (
	"fmt"

	"github.com/pcorbett/jumplab/internal/contract"
)

// PrintRunStatus writes a human-readable status summary to stdout.
func PrintRunStatus(status contract.RunStoreStatus) {
	fmt.Printf("Run tracking status\n")
	fmt.Printf("  Backend:     %s\n", status.Backend)
	fmt.Printf("  Connected:   %t\n", status.Connected)
	fmt.Printf("  Total runs:  %d\n", status.TotalRuns)
	for table, size := range status.TableSizes {
		fmt.Printf("  %-28s %d rows\n", table+":", size)
	}
	if status.LastRun != nil {
		fmt.Printf("  Last run:    %s\n", status.LastRun.Format(contract.DateTimeFormat))
	}
}
