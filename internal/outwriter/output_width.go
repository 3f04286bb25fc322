package outwriter

import (
	"os"

	"github.com/huangsam/maturity/internal/contract"
	"golang.org/x/term"
)

// Bounds for the free-text column of a table.
const (
	minTextWidth = 15
	maxTextWidth = 70
)

// getMaxTableTextWidth calculates the maximum width of the free-text column
// (question or measure) based on terminal width and the width taken by the
// other columns.
func getMaxTableTextWidth(cfg *contract.Config, fixedWidth int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for table borders, separators, and padding
	available := termWidth - fixedWidth - 20
	if available < minTextWidth {
		return minTextWidth
	}
	if available > maxTextWidth {
		return maxTextWidth
	}
	return available
}
