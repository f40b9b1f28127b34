package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// reIdentifier matches target identifiers of the form "12345678.01":
// a numeric catalog id followed by a two-digit planet index.
var reIdentifier = regexp.MustCompile(`^(\d+)\.(\d{2})$`)

// Target holds the parsed run target: the TIC identifier every filename must
// carry, plus the optional TOI designation used for display and upload labels.
type Target struct {
	TICNumber   string // Numeric TIC id, e.g. "12345678".
	PlanetIndex string // Two-digit planet index, e.g. "01".
	TOI         string // Full TOI identifier ("1234.01"), empty when none.
}

// ParseTarget validates tic ("12345678.01") and toi ("1234.01", or the "0"
// sentinel meaning no TOI identifier) and checks that both carry the same
// planet index.
func ParseTarget(tic, toi string) (Target, error) {
	tic = strings.TrimSpace(tic)
	toi = strings.TrimSpace(toi)

	mt := reIdentifier.FindStringSubmatch(tic)
	if mt == nil {
		return Target{}, fmt.Errorf(`tic must look like "12345678.01" (got %q)`, tic)
	}
	t := Target{TICNumber: mt[1], PlanetIndex: mt[2]}

	if toi == "0" {
		return t, nil
	}
	mo := reIdentifier.FindStringSubmatch(toi)
	if mo == nil {
		return Target{}, fmt.Errorf(`toi must look like "1234.01" or "0" (got %q)`, toi)
	}
	if mo[2] != t.PlanetIndex {
		return Target{}, fmt.Errorf("planet indices of tic and toi must match (%s vs %s)", t.PlanetIndex, mo[2])
	}
	t.TOI = toi
	return t, nil
}

// Prefix returns the filename prefix every recognized file must carry,
// e.g. "TIC12345678-01".
func (t Target) Prefix() string {
	return "TIC" + t.TICNumber + "-" + t.PlanetIndex
}

// Name returns the display name, e.g. "TIC 12345678.01".
func (t Target) Name() string {
	return "TIC " + t.TICNumber + "." + t.PlanetIndex
}

// Title returns the run header line for the target.
func (t Target) Title() string {
	if t.TOI == "" {
		return fmt.Sprintf("TIC %s.%s (no TOI identifier)", t.TICNumber, t.PlanetIndex)
	}
	return fmt.Sprintf("TIC %s.%s (TOI %s)", t.TICNumber, t.PlanetIndex, t.TOI)
}

// TOIDisplay returns the human-readable TOI label ("TOI 1234.01"), or empty.
func (t Target) TOIDisplay() string {
	if t.TOI == "" {
		return ""
	}
	return "TOI " + t.TOI
}

// PlanetLabel returns the planet field uploaded to ExoFOP ("TOI1234.01"), or
// empty when the target has no TOI designation.
func (t Target) PlanetLabel() string {
	if t.TOI == "" {
		return ""
	}
	return "TOI" + t.TOI
}
