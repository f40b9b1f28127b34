package pipeline

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Discover lists the regular files directly inside dir, sorted
// lexicographically for deterministic processing order. Subdirectories are
// not walked; an observation set is always a flat directory.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// CheckDisallowed rejects directories containing artifacts that must never
// reach ExoFOP: animated seeing profiles and raw bjd-flux-err exports.
func CheckDisallowed(files []string) error {
	for _, f := range files {
		if strings.HasSuffix(f, "seeing-profile.gif") || strings.Contains(f, "bjd-flux-err") {
			return fmt.Errorf("disallowed file present: %s", f)
		}
	}
	return nil
}
