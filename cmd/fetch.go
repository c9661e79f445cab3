package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"s3stats/internal/config"
	"s3stats/internal/s3list"

	"github.com/spf13/cobra"
)

// fetchSubCmd represents the fetch command
var fetchSubCmd = &cobra.Command{
	Use:   "fetch <bucket> [file]",
	Short: "Download the full version listing of a bucket",
	Long: `Fetch lists every object version and delete marker in an S3 bucket and
writes the listing to a JSON file (default: output.json). The file is written
atomically: a temp file in the target directory is renamed into place once
the listing is complete.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runFetchCommand,
}

func runFetchCommand(cmd *cobra.Command, args []string) {
	bucket := args[0]
	output := config.DefaultOutputFile
	if len(args) > 1 {
		output = args[1]
	}

	resolvedRegion := region
	if resolvedRegion == "" {
		resolvedRegion = config.Region()
	}

	client, err := s3list.NewClient(cmd.Context(), resolvedRegion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading AWS configuration: %v\n", err)
		os.Exit(1)
	}

	slog.Info("listing object versions", "bucket", bucket)
	slog.Info("note that this may take a long time, perhaps a minute or more")

	listing, err := client.ListBucket(cmd.Context(), bucket)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing bucket: %v\n", err)
		os.Exit(1)
	}

	if err := s3list.Write(listing, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
		os.Exit(1)
	}

	slog.Info("listing written", "path", output,
		"versions", len(listing.Versions),
		"delete_markers", len(listing.DeleteMarkers))
}

func init() {
	rootCmd.AddCommand(fetchSubCmd)
}
