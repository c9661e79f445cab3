package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"s3stats/internal/config"
	"s3stats/internal/s3list"
	"s3stats/internal/stats"

	"github.com/spf13/cobra"
)

var humanizeOutput bool

// statsSubCmd represents the stats command
var statsSubCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Report disk usage statistics from a bucket listing",
	Long: `Stats reads a version listing JSON file (default: output.json), combines
the versions and delete markers, and prints disk usage statistics: file and
version counts, total and average sizes, and how much space deleted objects
still hold. Output is indented JSON unless --humanize is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStatsCommand,
}

func runStatsCommand(cmd *cobra.Command, args []string) {
	file := config.DefaultOutputFile
	if len(args) > 0 {
		file = args[0]
	}

	listing, err := s3list.Read(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading listing: %v\n", err)
		os.Exit(1)
	}

	// The bucket name is the filename stem, mirroring how the pipeline
	// derives <bucket>.json from the bucket.
	bucket := strings.TrimSuffix(file, filepath.Ext(file))

	report := stats.Build(bucket, listing)

	if humanizeOutput {
		stats.WriteTable(os.Stdout, report)
		return
	}
	if err := stats.WriteJSON(os.Stdout, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	statsSubCmd.Flags().BoolVar(&humanizeOutput, "humanize", false, "Humanize output")
	rootCmd.AddCommand(statsSubCmd)
}
