package stats

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

const tableFormat = "%10s: %20s: %s\n"

// WriteJSON renders the report as indented JSON
func WriteJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteTable renders the report as an aligned, human-readable table with
// byte counts and totals humanized.
func WriteTable(w io.Writer, report Report) {
	fmt.Fprintln(w)
	writeTotals(w, "Present", report.Present, true)
	fmt.Fprintln(w)
	writeTotals(w, "Deleted", report.Deleted, false)
	fmt.Fprintln(w)
}

func writeTotals(w io.Writer, label string, t Totals, latest bool) {
	fmt.Fprintf(w, tableFormat, label, "num_files", humanize.Comma(t.NumFiles))
	fmt.Fprintf(w, tableFormat, label, "num_versions", humanize.Comma(t.NumVersions))
	fmt.Fprintf(w, tableFormat, label, "average_size", humanize.IBytes(uint64(t.AverageSize)))
	if latest {
		fmt.Fprintf(w, tableFormat, label, "latest_size", humanize.IBytes(uint64(t.LatestSize)))
	}
	fmt.Fprintf(w, tableFormat, label, "total_size", humanize.IBytes(uint64(t.TotalSize)))
	if latest {
		fmt.Fprintf(w, tableFormat, label, "pct_used_by_latest", fmt.Sprintf("%.2f%%", t.PctUsedByLatest))
	}
}
