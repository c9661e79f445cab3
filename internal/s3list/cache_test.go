package s3list

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"s3stats/internal/config"
	"s3stats/internal/errors"
)

func sampleListing() *Listing {
	return &Listing{
		Versions: []ObjectVersion{
			{
				Key:          "a.txt",
				VersionID:    "v1",
				IsLatest:     true,
				LastModified: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				Size:         42,
			},
		},
		DeleteMarkers: []DeleteMarker{
			{
				Key:          "b.txt",
				IsLatest:     true,
				LastModified: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mybucket.json")

	require.NoError(t, Write(sampleListing(), path))
	assert.True(t, Exists(path))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, sampleListing(), got)
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(sampleListing(), filepath.Join(dir, "out.json")))

	leftovers, err := filepath.Glob(filepath.Join(dir, config.TempFilePrefix+"*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestExistsMissingFile(t *testing.T) {
	assert.False(t, Exists(filepath.Join(t.TempDir(), "nope.json")))
}

func TestExistsDirectoryIsNotAHit(t *testing.T) {
	assert.False(t, Exists(t.TempDir()))
}

func TestReadBadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Read(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestListingCompatibleWithAwsCliOutput(t *testing.T) {
	// A trimmed `aws s3api list-object-versions` document must stay
	// readable, extra fields and all.
	doc := `{
	  "Versions": [
	    {
	      "ETag": "\"abc\"",
	      "Size": 1024,
	      "StorageClass": "STANDARD",
	      "Key": "report.pdf",
	      "VersionId": "xyz",
	      "IsLatest": true,
	      "LastModified": "2026-03-01T12:00:00+00:00"
	    }
	  ],
	  "DeleteMarkers": [
	    {
	      "Key": "old.pdf",
	      "VersionId": "m1",
	      "IsLatest": true,
	      "LastModified": "2026-03-02T12:00:00+00:00"
	    }
	  ]
	}`

	path := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	listing, err := Read(path)
	require.NoError(t, err)
	require.Len(t, listing.Versions, 1)
	require.Len(t, listing.DeleteMarkers, 1)
	assert.Equal(t, "report.pdf", listing.Versions[0].Key)
	assert.Equal(t, int64(1024), listing.Versions[0].Size)
	assert.True(t, listing.Versions[0].IsLatest)
}
