// Package stats turns a bucket version listing into disk-usage statistics,
// with particular attention to space still held by deleted objects.
package stats

import (
	"math"
	"strings"
	"time"

	"s3stats/internal/s3list"
)

// Status describes whether an object's newest record is a live version or
// a delete marker
type Status string

const (
	StatusPresent Status = "present"
	StatusDeleted Status = "deleted"
)

// Object is the per-key rollup of every version and delete marker seen
type Object struct {
	Status       Status
	IsFolder     bool
	LastModified time.Time
	TotalSize    int64
	NumVersions  int64
	LatestSize   int64
}

// Totals aggregates objects sharing a status. LatestSize and
// PctUsedByLatest only mean something for present objects; they are
// omitted from the document when zero so deleted totals don't carry them.
type Totals struct {
	NumFiles        int64   `json:"num_files"`
	NumVersions     int64   `json:"num_versions"`
	TotalSize       int64   `json:"total_size"`
	AverageSize     float64 `json:"average_size"`
	LatestSize      int64   `json:"latest_size,omitempty"`
	PctUsedByLatest float64 `json:"pct_used_by_latest,omitempty"`
}

// Report is the final statistics document for one bucket
type Report struct {
	Bucket  string `json:"bucket"`
	Present Totals `json:"present"`
	Deleted Totals `json:"deleted"`
}

// IsFolder reports whether a key names a folder. Folder objects end in a
// slash; they are metadata and take up no disk space.
func IsFolder(key string) bool {
	return strings.HasSuffix(key, "/")
}

// summarizeDeleteMarkers distills the delete markers down to the most
// recent marker time per key.
func summarizeDeleteMarkers(markers []s3list.DeleteMarker) map[string]time.Time {
	deleted := make(map[string]time.Time)
	for _, m := range markers {
		if prev, ok := deleted[m.Key]; !ok || m.LastModified.After(prev) {
			deleted[m.Key] = m.LastModified
		}
	}
	return deleted
}

// summarizeVersions rolls the versions up per key: newest modification
// time, total and per-version sizes, and the size of the version that is
// currently showing.
func summarizeVersions(versions []s3list.ObjectVersion) map[string]*Object {
	objects := make(map[string]*Object)
	for _, v := range versions {
		obj, ok := objects[v.Key]
		if !ok {
			obj = &Object{LastModified: v.LastModified}
			objects[v.Key] = obj
		}

		obj.TotalSize += v.Size
		obj.NumVersions++
		if v.LastModified.After(obj.LastModified) {
			obj.LastModified = v.LastModified
		}

		// The IsLatest version is the one a plain GET would return.
		if v.IsLatest && !IsFolder(v.Key) {
			obj.LatestSize = v.Size
		}
	}
	return objects
}

// Combine merges the delete markers and versions of a listing into a
// unified per-key view. A key is deleted when its newest delete marker is
// more recent than its newest version, or when only a delete marker
// remains (the versions themselves aged out by policy or were removed by
// hand, which leaves size and version count at zero).
func Combine(listing *s3list.Listing) map[string]*Object {
	deleted := summarizeDeleteMarkers(listing.DeleteMarkers)
	objects := summarizeVersions(listing.Versions)

	for key, obj := range objects {
		obj.IsFolder = IsFolder(key)
		obj.Status = StatusPresent
		if when, ok := deleted[key]; ok && when.After(obj.LastModified) {
			obj.Status = StatusDeleted
			obj.LastModified = when
		}
	}

	for key, when := range deleted {
		if _, ok := objects[key]; ok {
			continue
		}
		objects[key] = &Object{
			Status:       StatusDeleted,
			IsFolder:     IsFolder(key),
			LastModified: when,
		}
	}

	return objects
}

// Aggregate sums the per-key rollups into present and deleted totals.
// Folders are skipped.
func Aggregate(bucket string, objects map[string]*Object) Report {
	report := Report{Bucket: bucket}

	for _, obj := range objects {
		if obj.IsFolder {
			continue
		}

		totals := &report.Present
		if obj.Status == StatusDeleted {
			totals = &report.Deleted
		}

		totals.NumFiles++
		totals.NumVersions += obj.NumVersions
		totals.TotalSize += obj.TotalSize
		totals.LatestSize += obj.LatestSize
	}

	finishTotals(&report.Present)
	finishTotals(&report.Deleted)
	return report
}

func finishTotals(t *Totals) {
	if t.NumVersions > 0 {
		t.AverageSize = float64(t.TotalSize) / float64(t.NumVersions)
	}
	if t.TotalSize > 0 {
		pct := float64(t.LatestSize) / float64(t.TotalSize) * 100
		t.PctUsedByLatest = math.Round(pct*100) / 100
	}
}

// Build combines and aggregates a listing in one step
func Build(bucket string, listing *s3list.Listing) Report {
	return Aggregate(bucket, Combine(listing))
}
