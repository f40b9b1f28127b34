package submission

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/obskit/sg1submit/internal/config"
	"github.com/obskit/sg1submit/internal/naming"
	"github.com/obskit/sg1submit/internal/photometry"
	"github.com/obskit/sg1submit/internal/platesolve"
	"github.com/obskit/sg1submit/internal/prompt"
)

// varNote is the advisory appended to the notes when the photometric
// aperture radius changed over the observation.
const varNote = "aperture radius was variable in time"

// Builder derives one Entry per filter from the recognized file set and the
// run configuration. SingleFilter runs take PSF/DeltaMag from the supplied
// values; multi-filter runs prompt per filter through Prompter.
type Builder struct {
	Dir         string
	Target      naming.Target
	Username    string
	TelSize     string
	Camera      string
	Group       string
	Notes       string
	Coverage    config.Coverage
	Date        string // Shared 8-digit UT date of the run.
	Observatory string

	SingleFilter bool
	PSF          string // --psf value, used directly in single-filter runs.
	DeltaMag     string // --deltamag value; "0" leaves the field blank.

	Prompter prompt.Prompter
}

// ValidateSingleFilter checks that a single-filter run carries numeric PSF
// and delta-mag values up front, so the run never suspends on a prompt.
func (b *Builder) ValidateSingleFilter() error {
	if strings.TrimSpace(b.PSF) == "" {
		return fmt.Errorf("single-filter run: please supply --psf (e.g., '3.41')")
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(b.PSF), 64); err != nil {
		return fmt.Errorf("--psf must be numeric (got %q)", b.PSF)
	}
	if strings.TrimSpace(b.DeltaMag) == "" {
		return fmt.Errorf("single-filter run: please supply --deltamag (enter '0' to leave blank)")
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(b.DeltaMag), 64); err != nil {
		return fmt.Errorf("--deltamag must be numeric (got %q)", b.DeltaMag)
	}
	return nil
}

// Build derives the Entry and the ordered upload list for one filter.
// files maps each descriptor to the filter group's filenames; canonical is
// the selected measurement table ("" when selection found no candidates).
func (b *Builder) Build(filter string, files map[naming.Descriptor][]string, canonical string) (Entry, []UploadItem, error) {
	cands := files[naming.DescMeasurementTable]
	if len(cands) == 0 {
		return Entry{}, nil, fmt.Errorf("no measurement table found for filter %s", filter)
	}
	chosen := canonical
	if !contains(cands, chosen) {
		sorted := append([]string(nil), cands...)
		sort.Strings(sorted)
		chosen = sorted[0]
	}

	tbl, err := photometry.ReadTable(filepath.Join(b.Dir, chosen))
	if err != nil {
		return Entry{}, nil, fmt.Errorf("filter %s: %w", filter, err)
	}
	timing, err := photometry.DeriveTiming(tbl)
	if err != nil {
		return Entry{}, nil, fmt.Errorf("filter %s: %w", filter, err)
	}

	pixScale, _, err := platesolve.FirstValidScale(b.Dir, files[naming.DescPlateSolved])
	if err != nil {
		return Entry{}, nil, fmt.Errorf("filter %s: %w", filter, err)
	}

	aperture := ""
	notes := strings.TrimSpace(b.Notes)
	if stats := photometry.ApertureStatsOf(tbl); stats.Readable {
		aperture = strconv.FormatFloat(stats.Median, 'f', 1, 64)
		if stats.Variable {
			if notes != "" {
				notes += "; " + varNote
			} else {
				notes = varNote
			}
		}
	}

	psf, deltaMag, err := b.psfAndDeltaMag(filter)
	if err != nil {
		return Entry{}, nil, err
	}

	entry := Entry{
		Planet:         b.Target.PlanetLabel(),
		Telescope:      b.Observatory,
		TelSize:        b.TelSize,
		Camera:         b.Camera,
		Filter:         filter,
		PixScale:       pixScale,
		PSF:            psf,
		ApertureRadius: aperture,
		ObsDate:        ISODate(b.Date),
		ObsDuration:    strconv.Itoa(timing.DurationMin),
		ObsCount:       strconv.Itoa(timing.Samples),
		Coverage:       b.Coverage,
		DeltaMag:       deltaMag,
		Tag:            Tag(b.Date, b.Username, b.Target.TICNumber, b.Target.PlanetIndex),
		Group:          b.Group,
		Notes:          notes,
		TargetID:       b.Target.TICNumber,
	}
	return entry, OrderFiles(files, chosen), nil
}

// psfAndDeltaMag resolves the per-filter point-spread and delta-mag values:
// directly from config in single-filter runs, interactively otherwise.
func (b *Builder) psfAndDeltaMag(filter string) (string, string, error) {
	if b.SingleFilter {
		psf := strings.TrimSpace(b.PSF)
		dm := strings.TrimSpace(b.DeltaMag)
		if dm == "0" {
			dm = ""
		}
		return psf, dm, nil
	}

	psf, err := b.Prompter.AskFloat(
		fmt.Sprintf("Estimated PSF (arcsec) for filter %s (e.g., 3.41): ", filter))
	if err != nil {
		return "", "", err
	}
	dm, err := b.Prompter.AskOptionalFloat(
		fmt.Sprintf("Faintest Neighbor delta Mag for filter %s (blank to leave empty): ", filter))
	if err != nil {
		return "", "", err
	}
	return psf, dm, nil
}

func contains(list []string, s string) bool {
	if s == "" {
		return false
	}
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
