package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// DefaultOutputFile is where a bucket listing lands when no file is given.
	DefaultOutputFile = "output.json"

	// TempFilePrefix is the prefix used for in-progress listing downloads.
	TempFilePrefix = "tmp-output"

	// CacheSuffix is appended to a bucket name to derive its cache artifact.
	CacheSuffix = ".json"
)

// CachePath derives the cache filename for a bucket, relative to the
// working directory.
func CachePath(bucket string) string {
	return bucket + CacheSuffix
}

// Region resolves the AWS region from the environment. An empty string
// lets the SDK fall back to its shared-config resolution.
func Region() string {
	if region := os.Getenv("AWS_REGION"); region != "" {
		return region
	}
	return os.Getenv("AWS_DEFAULT_REGION")
}

// LoadEnv loads a local .env file if one exists. Missing files are fine;
// the environment simply stays as-is.
func LoadEnv() {
	_ = godotenv.Load()
}
