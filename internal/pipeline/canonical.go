package pipeline

import (
	"path/filepath"

	"github.com/obskit/sg1submit/internal/naming"
	"github.com/obskit/sg1submit/internal/photometry"
)

// SelectTables picks the canonical measurement table for each filter of the
// set. Tables that cannot be read still compete as unreadable candidates so
// selection stays total; filters without any measurement table simply have no
// entry in the result.
func SelectTables(dir string, set *ObservationSet) map[string]string {
	chosen := map[string]string{}
	for _, flt := range set.Filters {
		var cands []photometry.Candidate
		for _, r := range set.Records {
			if r.Filter != flt || r.Descriptor != naming.DescMeasurementTable {
				continue
			}
			c := photometry.Candidate{Filename: r.Filename, PixelSize: r.PixelSize}
			if tbl, err := photometry.ReadTable(filepath.Join(dir, r.Filename)); err == nil {
				c.Stats = photometry.ApertureStatsOf(tbl)
			} else {
				c.Stats = photometry.ApertureStatsOf(nil)
			}
			cands = append(cands, c)
		}
		if fn, ok := photometry.SelectCanonical(cands); ok {
			chosen[flt] = fn
		}
	}
	return chosen
}
