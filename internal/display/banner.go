package display

import (
	"fmt"
	"os"

	"github.com/obskit/sg1submit/internal/term"
)

// PrintBanner prints the utility header; uses Cyan if colors are enabled.
func PrintBanner() {
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, term.Cyan+"===== TFOP SG1 Utility for Uploading Observations to ExoFOP ====="+term.NC)
}
