package s3list

import "time"

// Listing holds every object version and delete marker found in a bucket.
// Field names match the document produced by
// `aws s3api list-object-versions`, so listings captured with the aws CLI
// stay readable here and vice versa.
type Listing struct {
	Versions      []ObjectVersion `json:"Versions"`
	DeleteMarkers []DeleteMarker  `json:"DeleteMarkers,omitempty"`
}

// ObjectVersion represents one stored version of an object
type ObjectVersion struct {
	Key          string    `json:"Key"`
	VersionID    string    `json:"VersionId,omitempty"`
	IsLatest     bool      `json:"IsLatest"`
	LastModified time.Time `json:"LastModified"`
	Size         int64     `json:"Size"`
}

// DeleteMarker represents a delete marker left by a versioned delete
type DeleteMarker struct {
	Key          string    `json:"Key"`
	VersionID    string    `json:"VersionId,omitempty"`
	IsLatest     bool      `json:"IsLatest"`
	LastModified time.Time `json:"LastModified"`
}
