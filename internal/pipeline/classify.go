package pipeline

import (
	"fmt"
	"sort"

	"github.com/obskit/sg1submit/internal/naming"
)

// Classification splits a directory listing into recognized observation
// files and rejected names, preserving listing order in both.
type Classification struct {
	Recognized []naming.FileRecord
	Rejected   []naming.Rejection
}

// ClassifyAll runs every filename through the grammar for the target.
func ClassifyAll(files []string, target naming.Target) Classification {
	var cls Classification
	for _, fn := range files {
		rec, rej := naming.Classify(fn, target)
		if rec != nil {
			cls.Recognized = append(cls.Recognized, *rec)
		} else {
			cls.Rejected = append(cls.Rejected, *rej)
		}
	}
	return cls
}

// ObservationSet is a validated single-night observation: every recognized
// file shares one date and one observatory, and exactly one notes file
// matches them.
type ObservationSet struct {
	Date        string
	Observatory string
	Filters     []string // Sorted unique filter tokens.
	Records     []naming.FileRecord
	Rejected    []naming.Rejection
}

// ResolveSet validates the classification into an ObservationSet.
func ResolveSet(cls Classification) (*ObservationSet, error) {
	if len(cls.Recognized) == 0 {
		return nil, fmt.Errorf("no recognized files for given TIC/TOI")
	}

	dates := map[string]bool{}
	obs := map[string]bool{}
	filters := map[string]bool{}
	var notes []naming.FileRecord
	for _, r := range cls.Recognized {
		dates[r.Date] = true
		obs[r.Observatory] = true
		filters[r.Filter] = true
		if r.Descriptor == naming.DescNotes {
			notes = append(notes, r)
		}
	}
	if len(dates) > 1 || len(obs) > 1 {
		return nil, fmt.Errorf("multiple dates/observatories found: dates=%v, observatories=%v",
			sortedKeys(dates), sortedKeys(obs))
	}

	set := &ObservationSet{
		Date:        sortedKeys(dates)[0],
		Observatory: sortedKeys(obs)[0],
		Filters:     sortedKeys(filters),
		Records:     cls.Recognized,
		Rejected:    cls.Rejected,
	}

	if len(notes) != 1 {
		return nil, fmt.Errorf("exactly one notes.txt must be present")
	}
	if notes[0].Date != set.Date || notes[0].Observatory != set.Observatory {
		return nil, fmt.Errorf("notes.txt must match the date and observatory of the set")
	}
	return set, nil
}

// FilesByDescriptor groups the set's filenames for one filter by descriptor.
// Only records matching the set's date and observatory participate.
func (s *ObservationSet) FilesByDescriptor(filter string) map[naming.Descriptor][]string {
	out := map[naming.Descriptor][]string{}
	for _, r := range s.Records {
		if r.Filter == filter && r.Date == s.Date && r.Observatory == s.Observatory {
			out[r.Descriptor] = append(out[r.Descriptor], r.Filename)
		}
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
