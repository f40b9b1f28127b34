package pipeline

// RunStats tracks aggregate counters across one submission run.
type RunStats struct {
	Recognized      int
	Rejected        int
	Filters         int
	SummariesPosted int
	FilesUploaded   int
}
