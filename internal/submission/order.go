package submission

import (
	"slices"
	"sort"

	"github.com/obskit/sg1submit/internal/naming"
)

// UploadItem is one (filename, descriptor) pair in final upload order.
type UploadItem struct {
	Filename   string
	Descriptor naming.Descriptor
}

// OrderFiles flattens a filter group into presentation/upload order:
// descriptors ranked by [naming.UploadOrder], filenames sorted within a
// descriptor, and the canonical measurement table always first within its
// descriptor.
func OrderFiles(files map[naming.Descriptor][]string, canonical string) []UploadItem {
	var out []UploadItem
	for _, d := range naming.UploadOrder {
		names := slices.Clone(files[d])
		sort.Strings(names)

		if d == naming.DescMeasurementTable && canonical != "" && slices.Contains(names, canonical) {
			out = append(out, UploadItem{Filename: canonical, Descriptor: d})
			for _, n := range names {
				if n != canonical {
					out = append(out, UploadItem{Filename: n, Descriptor: d})
				}
			}
			continue
		}
		for _, n := range names {
			out = append(out, UploadItem{Filename: n, Descriptor: d})
		}
	}
	return out
}
