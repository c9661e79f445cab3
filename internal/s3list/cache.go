package s3list

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"s3stats/internal/config"
	"s3stats/internal/errors"
)

// Exists reports whether a cache artifact is already present. Any regular
// file counts as a hit; there is no freshness policy.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Write stores the listing at path. The document is written to a temp file
// in the same directory first and renamed into place, so a failed write
// never leaves a partial final file behind.
func Write(listing *Listing, path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, config.TempFilePrefix)
	if err != nil {
		return err
	}
	slog.Debug("created temp file", "path", tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listing); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	slog.Info("renaming temp file", "from", tmp.Name(), "to", path)
	return os.Rename(tmp.Name(), path)
}

// Read loads a listing document from path
func Read(path string) (*Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var listing Listing
	if err := json.NewDecoder(f).Decode(&listing); err != nil {
		return nil, errors.NewParseError(path, err)
	}
	return &listing, nil
}
