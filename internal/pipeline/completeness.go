package pipeline

import "github.com/obskit/sg1submit/internal/naming"

// Completeness records which descriptors each filter group is missing,
// split into required and optional.
type Completeness struct {
	MissingRequired map[string][]naming.Descriptor
	MissingOptional map[string][]naming.Descriptor
}

// CheckCompleteness evaluates every filter group of the set against the
// per-filter required and optional descriptor lists.
func CheckCompleteness(set *ObservationSet) Completeness {
	c := Completeness{
		MissingRequired: map[string][]naming.Descriptor{},
		MissingOptional: map[string][]naming.Descriptor{},
	}
	for _, flt := range set.Filters {
		found := set.FilesByDescriptor(flt)
		for _, d := range naming.RequiredPerFilter {
			if len(found[d]) == 0 {
				c.MissingRequired[flt] = append(c.MissingRequired[flt], d)
			}
		}
		for _, d := range naming.OptionalDescriptors() {
			if len(found[d]) == 0 {
				c.MissingOptional[flt] = append(c.MissingOptional[flt], d)
			}
		}
	}
	return c
}

// AnyRequiredMissing reports whether any filter lacks a required descriptor.
func (c Completeness) AnyRequiredMissing() bool {
	for _, missing := range c.MissingRequired {
		if len(missing) > 0 {
			return true
		}
	}
	return false
}
