package naming

import "regexp"

// Descriptor is the role a recognized file plays in an observation set.
// The string values are the exact file descriptions ExoFOP expects.
type Descriptor string

const (
	DescNEBDepthPlots       Descriptor = "NEB Depth Plots"
	DescNEBTable            Descriptor = "NEB Table"
	DescDmagRMSPlot         Descriptor = "Dmag vs. RMS Plot"
	DescMeasurementTable    Descriptor = "AstroImageJ Photometry Measurement Table"
	DescPlotConfig          Descriptor = "AstroImageJ Plot Configuration File"
	DescApertureFile        Descriptor = "AstroImageJ Photometry Aperture File"
	DescLightCurve          Descriptor = "Light Curve Plot"
	DescCompstarLightCurves Descriptor = "Compstar Light Curve Plots"
	DescFieldImage          Descriptor = "Field Image with Apertures"
	DescZoomedFOV           Descriptor = "Zoomed-in FOV"
	DescSeeingProfile       Descriptor = "Seeing Profile"
	DescNotes               Descriptor = "Notes and Results Text"
	DescPlateSolved         Descriptor = "Plate-Solved Image"
	DescSubsetTable         Descriptor = "Photometry Table Subset for Joint Fitting"
)

// RoleRule pairs a compiled tail pattern with its descriptor. Rules are
// evaluated in order by [Classify]; first fullmatch wins. The zip/txt/png
// measurement variants precede the bare measurements.* patterns so the
// longer tails are never shadowed.
type RoleRule struct {
	Pattern    *regexp.Regexp
	Descriptor Descriptor
}

// RoleRules is the fixed tail-token rule table, in priority order.
var RoleRules = []RoleRule{
	{regexp.MustCompile(`^measurements_NEBcheck\.zip$`), DescNEBDepthPlots},
	{regexp.MustCompile(`^measurements_NEB-table\.txt$`), DescNEBTable},
	{regexp.MustCompile(`^measurements_dmagRMS-plot\.png$`), DescDmagRMSPlot},
	{regexp.MustCompile(`^measurements\.tbl$`), DescMeasurementTable},
	{regexp.MustCompile(`^measurements\.plotcfg$`), DescPlotConfig},
	{regexp.MustCompile(`^measurements\.radec$`), DescApertureFile},
	{regexp.MustCompile(`^lightcurve\.png$`), DescLightCurve},
	{regexp.MustCompile(`^compstar-lightcurves\.png$`), DescCompstarLightCurves},
	{regexp.MustCompile(`^field\.png$`), DescFieldImage},
	{regexp.MustCompile(`^field-zoom\.png$`), DescZoomedFOV},
	{regexp.MustCompile(`^seeing-profile\.png$`), DescSeeingProfile},
	{regexp.MustCompile(`^notes\.txt$`), DescNotes},
	{regexp.MustCompile(`^WCS\.fits$`), DescPlateSolved},
	{regexp.MustCompile(`^subset\.csv$`), DescSubsetTable},
}

// UploadOrder is the hand-specified presentation and upload ordering over
// descriptors. It governs both the on-screen recognized-file listing and the
// order files are pushed to ExoFOP. Explicit ranking, not container order.
var UploadOrder = []Descriptor{
	DescMeasurementTable,
	DescPlotConfig,
	DescApertureFile,
	DescLightCurve,
	DescCompstarLightCurves,
	DescFieldImage,
	DescZoomedFOV,
	DescSeeingProfile,
	DescNotes,
	DescPlateSolved,
	DescNEBTable,
	DescNEBDepthPlots,
	DescDmagRMSPlot,
	DescSubsetTable,
}

// RequiredPerFilter lists the descriptors every filter group must carry for a
// complete TFOP submission.
var RequiredPerFilter = []Descriptor{
	DescMeasurementTable,
	DescPlotConfig,
	DescApertureFile,
	DescCompstarLightCurves,
	DescFieldImage,
	DescZoomedFOV,
	DescPlateSolved,
	DescSeeingProfile,
}

// RequiredGlobal lists descriptors required exactly once per run, not per
// filter.
var RequiredGlobal = []Descriptor{DescNotes}

// OptionalDescriptors returns every enumerated descriptor that is neither
// per-filter required nor globally required, in upload order.
func OptionalDescriptors() []Descriptor {
	required := make(map[Descriptor]bool, len(RequiredPerFilter)+len(RequiredGlobal))
	for _, d := range RequiredPerFilter {
		required[d] = true
	}
	for _, d := range RequiredGlobal {
		required[d] = true
	}
	var out []Descriptor
	for _, d := range UploadOrder {
		if !required[d] {
			out = append(out, d)
		}
	}
	return out
}
