package submission

import (
	"fmt"
	"math"
	"strconv"

	"github.com/obskit/sg1submit/internal/config"
)

// ObsType is the fixed observation-type literal ExoFOP expects for SG1
// time-series observations.
const ObsType = "Continuous"

// Entry is the derived submission metadata for one filter. Immutable once
// built; consumed by the exofop client and the on-screen summary.
type Entry struct {
	Planet         string // Upload planet label ("TOI1234.01"), empty without a TOI.
	Telescope      string // Observatory token from the filenames.
	TelSize        string // Aperture in meters.
	Camera         string
	Filter         string
	PixScale       string // Arcsec/px, 2 significant figures.
	PSF            string // Estimated PSF in arcsec.
	ApertureRadius string // Median Source_Radius in pixels, 1 decimal; may be empty.
	ObsDate        string // ISO YYYY-MM-DD.
	ObsDuration    string // Minutes.
	ObsCount       string // Sample count.
	Coverage       config.Coverage
	DeltaMag       string // Empty leaves the field blank.
	Tag            string
	Group          string
	Notes          string
	TargetID       string // Numeric TIC id.
}

// FormValues returns the insert_tseries.php form fields. The field names are
// part of the ExoFOP wire protocol and must be preserved exactly.
func (e Entry) FormValues() map[string]string {
	return map[string]string{
		"planet":    e.Planet,
		"tel":       e.Telescope,
		"telsize":   e.TelSize,
		"camera":    e.Camera,
		"filter":    e.Filter,
		"pixscale":  e.PixScale,
		"psf":       e.PSF,
		"photaprad": e.ApertureRadius,
		"obsdate":   e.ObsDate,
		"obsdur":    e.ObsDuration,
		"obsnum":    e.ObsCount,
		"obstype":   ObsType,
		"transcov":  string(e.Coverage),
		"deltamag":  e.DeltaMag,
		"tag":       e.Tag,
		"groupname": e.Group,
		"notes":     e.Notes,
		"id":        e.TargetID,
	}
}

// ApertureRadiusDisplay returns the aperture radius rounded to a whole pixel
// for the on-screen summary, or empty when no radius was derived.
func (e Entry) ApertureRadiusDisplay() string {
	if e.ApertureRadius == "" {
		return ""
	}
	v, err := strconv.ParseFloat(e.ApertureRadius, 64)
	if err != nil {
		return e.ApertureRadius
	}
	return strconv.Itoa(int(math.Round(v)))
}

// Tag builds the deterministic grouping tag shared by the time-series record
// and every uploaded file of the run.
func Tag(date, username, ticNumber, planetIndex string) string {
	return fmt.Sprintf("%s_%s_tic%s_%s", date, username, ticNumber, planetIndex)
}

// ISODate renders an 8-digit UT date as YYYY-MM-DD.
func ISODate(yyyymmdd string) string {
	if len(yyyymmdd) != 8 {
		return yyyymmdd
	}
	return yyyymmdd[:4] + "-" + yyyymmdd[4:6] + "-" + yyyymmdd[6:]
}
