package naming

import "regexp"

// FileRecord holds the structured result of classifying one filename.
type FileRecord struct {
	Filename    string
	Descriptor  Descriptor
	Date        string // 8-digit UT date, e.g. "20230115".
	Observatory string
	Filter      string
	PixelSize   string // Optional "<n>px" digits; empty when absent. Tie-break key only.
}

// Rejection records a filename that did not classify, with the reason.
type Rejection struct {
	Filename string
	Reason   string
}

// Rejection reasons, reported in aggregate after classification.
const (
	ReasonPatternMismatch = "Name does not match pattern"
	ReasonPrefixMismatch  = "TIC/planet mismatch"
	ReasonUnknownRole     = "Unrecognized filetype token"
)

// reFilename is the fixed filename grammar:
// TIC<num>-<pp>_<YYYYMMDD>_<observatory>_<filter>[_<n>px]_<tail>
var reFilename = regexp.MustCompile(
	`^(TIC\d+)-(\d{2})_(\d{8})_([A-Za-z0-9\-]+)_([A-Za-z0-9\-\+]+)(?:_(\d+)px)?_(.+)$`)

// Classify decomposes filename against the grammar for the given target.
// Exactly one of the results is non-nil: a FileRecord on success, or a
// Rejection naming why the file was not recognized. Pure function of the
// filename, the target prefix, and the fixed rule table.
func Classify(filename string, target Target) (*FileRecord, *Rejection) {
	m := reFilename.FindStringSubmatch(filename)
	if m == nil {
		return nil, &Rejection{Filename: filename, Reason: ReasonPatternMismatch}
	}
	if m[1]+"-"+m[2] != target.Prefix() {
		return nil, &Rejection{Filename: filename, Reason: ReasonPrefixMismatch}
	}

	tail := m[7]
	for _, rule := range RoleRules {
		if rule.Pattern.MatchString(tail) {
			return &FileRecord{
				Filename:    filename,
				Descriptor:  rule.Descriptor,
				Date:        m[3],
				Observatory: m[4],
				Filter:      m[5],
				PixelSize:   m[6],
			}, nil
		}
	}
	return nil, &Rejection{Filename: filename, Reason: ReasonUnknownRole}
}
