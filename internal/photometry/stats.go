package photometry

import (
	"math"

	"github.com/montanaflynn/stats"
)

// ApertureColumn is the aperture-radius column consulted for ranking and for
// the reported photometric aperture radius.
const ApertureColumn = "Source_Radius"

// ApertureStats summarizes the aperture-radius column of one table.
// Readable is the explicit tri-state replacing a sentinel median: a table
// that cannot be read, lacks the column, or has no finite values is
// non-readable and counts as variable for ranking purposes.
type ApertureStats struct {
	Readable bool
	Median   float64
	Variable bool // Max-min span of the column is nonzero.
}

// ApertureStatsOf computes aperture statistics for t. A nil table (from a
// failed read) yields the non-readable result.
func ApertureStatsOf(t *Table) ApertureStats {
	unreadable := ApertureStats{Variable: true}
	if t == nil {
		return unreadable
	}
	vals, ok := t.FloatColumn(ApertureColumn)
	if !ok {
		return unreadable
	}
	finite := finiteValues(vals)
	if len(finite) == 0 {
		return unreadable
	}

	med, err := stats.Median(finite)
	if err != nil {
		return unreadable
	}
	max, _ := stats.Max(finite)
	min, _ := stats.Min(finite)
	return ApertureStats{
		Readable: true,
		Median:   med,
		Variable: max-min > 0,
	}
}

func finiteValues(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
