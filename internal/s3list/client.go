package s3list

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"s3stats/internal/errors"
)

// Client represents a client for listing object versions in S3 buckets
type Client struct {
	api s3.ListObjectVersionsAPIClient
}

// NewClient creates a new client from the ambient AWS configuration.
// An empty region defers to the SDK's own resolution (env, shared config).
func NewClient(ctx context.Context, region string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{api: s3.NewFromConfig(cfg)}, nil
}

// NewClientWithAPI creates a client around an existing API implementation
func NewClientWithAPI(api s3.ListObjectVersionsAPIClient) *Client {
	return &Client{api: api}
}

// ListBucket pages through every object version and delete marker in the
// bucket and returns them as a single listing document.
func (c *Client) ListBucket(ctx context.Context, bucket string) (*Listing, error) {
	if bucket == "" {
		return nil, errors.NewValidationError("bucket", "bucket name cannot be empty")
	}

	listing := &Listing{}
	pages := 0

	paginator := s3.NewListObjectVersionsPaginator(c.api, &s3.ListObjectVersionsInput{
		Bucket: aws.String(bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.NewListingError(bucket, err)
		}
		pages++

		for _, v := range page.Versions {
			listing.Versions = append(listing.Versions, ObjectVersion{
				Key:          aws.ToString(v.Key),
				VersionID:    aws.ToString(v.VersionId),
				IsLatest:     aws.ToBool(v.IsLatest),
				LastModified: aws.ToTime(v.LastModified),
				Size:         aws.ToInt64(v.Size),
			})
		}

		for _, m := range page.DeleteMarkers {
			listing.DeleteMarkers = append(listing.DeleteMarkers, DeleteMarker{
				Key:          aws.ToString(m.Key),
				VersionID:    aws.ToString(m.VersionId),
				IsLatest:     aws.ToBool(m.IsLatest),
				LastModified: aws.ToTime(m.LastModified),
			})
		}
	}

	slog.Debug("listed bucket",
		"bucket", bucket,
		"pages", pages,
		"versions", len(listing.Versions),
		"delete_markers", len(listing.DeleteMarkers))

	return listing, nil
}
