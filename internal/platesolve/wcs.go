// Package platesolve extracts the plate scale from plate-solved FITS images.
// Only the primary-HDU WCS keywords are consulted; per-file failures are
// reported as errors and the caller scans candidates until one validates.
package platesolve

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/astrogo/fitsio"
)

// ErrNoSolution is returned when none of the candidate plate-solved images
// yields a finite, strictly positive plate scale.
var ErrNoSolution = errors.New("no valid WCS solution found in Plate-Solved Image")

// PlateScales reads the WCS solution from the primary HDU of the FITS file
// at path and returns the per-axis plate scales in arcseconds per pixel.
// The CD matrix is preferred; CDELT (with an optional PC matrix) is the
// fallback.
func PlateScales(path string) ([2]float64, error) {
	var scales [2]float64

	r, err := os.Open(path)
	if err != nil {
		return scales, fmt.Errorf("open FITS: %w", err)
	}
	defer r.Close()

	f, err := fitsio.Open(r)
	if err != nil {
		return scales, fmt.Errorf("parse FITS %s: %w", path, err)
	}
	defer f.Close()

	hdu := f.HDU(0)
	if hdu == nil {
		return scales, fmt.Errorf("FITS %s has no primary HDU", path)
	}
	hdr := hdu.Header()

	cd11, ok11 := cardFloat(hdr, "CD1_1")
	cd12, ok12 := cardFloat(hdr, "CD1_2")
	cd21, ok21 := cardFloat(hdr, "CD2_1")
	cd22, ok22 := cardFloat(hdr, "CD2_2")
	if ok11 || ok12 || ok21 || ok22 {
		// Per-axis scale is the column norm of the CD matrix, in degrees.
		scales[0] = 3600 * math.Hypot(cd11, cd21)
		scales[1] = 3600 * math.Hypot(cd12, cd22)
		return scales, nil
	}

	cdelt1, okc1 := cardFloat(hdr, "CDELT1")
	cdelt2, okc2 := cardFloat(hdr, "CDELT2")
	if !okc1 || !okc2 {
		return scales, fmt.Errorf("FITS %s carries no CD matrix or CDELT keywords", path)
	}
	pc11 := cardFloatDefault(hdr, "PC1_1", 1)
	pc12 := cardFloatDefault(hdr, "PC1_2", 0)
	pc21 := cardFloatDefault(hdr, "PC2_1", 0)
	pc22 := cardFloatDefault(hdr, "PC2_2", 1)

	scales[0] = 3600 * math.Hypot(cdelt1*pc11, cdelt2*pc21)
	scales[1] = 3600 * math.Hypot(cdelt1*pc12, cdelt2*pc22)
	return scales, nil
}

// FirstValidScale scans the plate-solved candidates in listed order and
// returns the formatted mean plate scale (2 significant figures, arcsec) of
// the first file whose scales are all finite and strictly positive, along
// with that filename. ErrNoSolution when none validates.
func FirstValidScale(dir string, filenames []string) (scale, filename string, err error) {
	for _, fn := range filenames {
		scales, err := PlateScales(filepath.Join(dir, fn))
		if err != nil {
			continue
		}
		if !validScales(scales) {
			continue
		}
		mean := (scales[0] + scales[1]) / 2
		return formatScale(mean), fn, nil
	}
	return "", "", ErrNoSolution
}

func validScales(scales [2]float64) bool {
	for _, s := range scales {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return false
		}
	}
	return true
}

// formatScale rounds to 2 significant figures and renders without trailing
// zeros (e.g. "0.39", "1.2").
func formatScale(x float64) string {
	return strconv.FormatFloat(roundSigFigs(x, 2), 'g', -1, 64)
}

func roundSigFigs(x float64, sig int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	digits := math.Ceil(math.Log10(math.Abs(x)))
	mag := math.Pow(10, float64(sig)-digits)
	return math.Round(x*mag) / mag
}

func cardFloat(hdr *fitsio.Header, name string) (float64, bool) {
	c := hdr.Get(name)
	if c == nil {
		return 0, false
	}
	switch v := c.Value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func cardFloatDefault(hdr *fitsio.Header, name string, def float64) float64 {
	if v, ok := cardFloat(hdr, name); ok {
		return v
	}
	return def
}
