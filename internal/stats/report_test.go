package stats

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	return Report{
		Bucket: "mybucket",
		Present: Totals{
			NumFiles:        1234,
			NumVersions:     5678,
			TotalSize:       3 * 1024 * 1024,
			AverageSize:     1536,
			LatestSize:      2 * 1024 * 1024,
			PctUsedByLatest: 66.67,
		},
		Deleted: Totals{
			NumFiles:    2,
			NumVersions: 4,
			TotalSize:   2048,
			AverageSize: 512,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), decoded)

	assert.Contains(t, buf.String(), `"bucket": "mybucket"`)
	assert.Contains(t, buf.String(), `"pct_used_by_latest": 66.67`)
}

func TestWriteJSONOmitsLatestFieldsForDeleted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var doc struct {
		Present map[string]any `json:"present"`
		Deleted map[string]any `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Contains(t, doc.Present, "latest_size")
	assert.Contains(t, doc.Present, "pct_used_by_latest")

	// Deleted objects have nothing showing.
	assert.NotContains(t, doc.Deleted, "latest_size")
	assert.NotContains(t, doc.Deleted, "pct_used_by_latest")
	assert.Contains(t, doc.Deleted, "total_size")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "Present:            num_files: 1,234")
	assert.Contains(t, out, "Present:         num_versions: 5,678")
	assert.Contains(t, out, "Present:         average_size: 1.5 KiB")
	assert.Contains(t, out, "Present:          latest_size: 2.0 MiB")
	assert.Contains(t, out, "Present:           total_size: 3.0 MiB")
	assert.Contains(t, out, "Present:   pct_used_by_latest: 66.67%")

	assert.Contains(t, out, "Deleted:            num_files: 2")
	assert.Contains(t, out, "Deleted:           total_size: 2.0 KiB")

	// Deleted objects have nothing showing, so those rows are omitted.
	assert.False(t, strings.Contains(out, "Deleted:          latest_size"))
	assert.False(t, strings.Contains(out, "Deleted:   pct_used_by_latest"))
}
