package display

import (
	"fmt"
	"io"
)

// Row is one key/value line of an aligned arrow block.
type Row struct {
	Key   string
	Value string
}

// ArrowBlock writes rows column-aligned as "Key  ->  Value", padding every
// key to the width of the longest one.
func ArrowBlock(w io.Writer, rows []Row) {
	width := 0
	for _, r := range rows {
		if len(r.Key) > width {
			width = len(r.Key)
		}
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  ->  %s\n", width, r.Key, r.Value)
	}
}

// ListFiles writes one line per (filename, note) pair with the given marker,
// filenames column-aligned: "  <mark> <filename>  ->  <note>".
func ListFiles(w io.Writer, mark string, items [][2]string) {
	width := 0
	for _, it := range items {
		if len(it[0]) > width {
			width = len(it[0])
		}
	}
	for _, it := range items {
		fmt.Fprintf(w, "  %s %-*s  ->  %s\n", mark, width, it[0], it[1])
	}
}
