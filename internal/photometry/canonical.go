package photometry

import (
	"slices"
	"sort"
	"strconv"
)

// Candidate is one measurement-table file competing to be the canonical
// table of its filter group.
type Candidate struct {
	Filename  string
	PixelSize string // Declared pixel-size token from the filename, may be empty.
	Stats     ApertureStats
}

// SelectCanonical ranks candidates and returns the canonical filename.
// Preference order: largest readable median aperture radius, then
// non-variable aperture, then larger declared pixel-size token, then
// lexicographic filename. Deterministic for identical inputs. Returns false
// when there are no candidates.
func SelectCanonical(cands []Candidate) (string, bool) {
	if len(cands) == 0 {
		return "", false
	}
	ranked := slices.Clone(cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		return rankLess(ranked[i], ranked[j])
	})
	return ranked[0].Filename, true
}

// rankLess reports whether a outranks b. A readable median beats any
// non-readable one; two non-readable candidates tie on median and
// variability (both count as variable) and fall through to the later keys.
func rankLess(a, b Candidate) bool {
	switch {
	case a.Stats.Readable && !b.Stats.Readable:
		return true
	case !a.Stats.Readable && b.Stats.Readable:
		return false
	case a.Stats.Readable && b.Stats.Readable && a.Stats.Median != b.Stats.Median:
		return a.Stats.Median > b.Stats.Median
	}
	if a.Stats.Variable != b.Stats.Variable {
		return !a.Stats.Variable
	}
	if pa, pb := pixelSizeInt(a.PixelSize), pixelSizeInt(b.PixelSize); pa != pb {
		return pa > pb
	}
	return a.Filename < b.Filename
}

// pixelSizeInt converts the filename pixel-size token to an int, 0 when
// absent or malformed.
func pixelSizeInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
