package outwriter

import (
	"os"

	"github.com/pcorbett/jumplab/internal/contract"
	"golang.org/x/term"
)

// getMaxIDWidth calculates the maximum width for athlete identifiers in
// table output based on terminal width and the fixed numeric columns.
func getMaxIDWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + the four numeric columns with borders/padding
	const baseWidth = 55

	maxWidth := termWidth - baseWidth
	if maxWidth < 12 {
		maxWidth = 12 // Always leave room for a readable identifier
	}
	return maxWidth
}

// truncateID shortens an athlete identifier to fit the table, keeping the
// trailing characters since dataset UIDs disambiguate at the end.
func truncateID(id string, maxWidth int) string {
	if len(id) <= maxWidth {
		return id
	}
	if maxWidth <= 3 {
		return id[len(id)-maxWidth:]
	}
	return "..." + id[len(id)-(maxWidth-3):]
}
