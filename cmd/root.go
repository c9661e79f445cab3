package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"s3stats/internal/config"
	"s3stats/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	region     string
	verbose    bool
	jsonOutput bool
	fetchCmd   string
	statsCmd   string
)

// rootCmd represents the base command. Called with a bucket name it runs
// the whole pipeline: fetch the version listing unless <bucket>.json is
// already present, then report statistics on it.
var rootCmd = &cobra.Command{
	Use:   "s3stats <bucket>",
	Short: "Report disk usage statistics for a versioned S3 bucket",
	Long: `S3stats reports disk usage statistics for an S3 bucket, including space
still held by deleted objects and old versions. The bucket listing is cached
as <bucket>.json in the working directory; delete that file to force a fresh
fetch.

A bucket whose name collides with a subcommand (fetch, stats) must be
separated with --, e.g. "s3stats -- fetch".`,
	// The bucket is a positional arg, not a subcommand name.
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
	RunE: runRootCommand,
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("bucket name is required")
	}

	// The last non-flag argument is the bucket.
	bucket := args[len(args)-1]

	opts := pipeline.Options{
		Bucket:    bucket,
		Humanize:  !jsonOutput,
		FetchArgv: commandArgv(fetchCmd, "fetch"),
		StatsArgv: commandArgv(statsCmd, "stats"),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}

	cmd.SilenceUsage = true
	return pipeline.Run(cmd.Context(), opts)
}

// commandArgv resolves a collaborator command: an override flag wins,
// otherwise the pipeline re-executes this binary's own subcommand.
func commandArgv(override, subcommand string) []string {
	if override != "" {
		return strings.Fields(override)
	}

	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	argv := []string{exe, subcommand}
	if verbose {
		argv = append(argv, "--verbose")
	}
	if region != "" && subcommand == "fetch" {
		argv = append(argv, "--region", region)
	}
	return argv
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Usage output is never a success: this tool is meant for scripting,
	// and a bare or --help invocation must not be mistaken for a run.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd.Long != "" {
			fmt.Fprintln(os.Stderr, cmd.Long)
			fmt.Fprintln(os.Stderr)
		}
		fmt.Fprint(os.Stderr, cmd.UsageString())
		os.Exit(1)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "AWS region (default: SDK resolution)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print raw JSON statistics instead of a humanized table")
	rootCmd.Flags().StringVar(&fetchCmd, "fetch-cmd", "", "Override the fetch command (default: this binary's fetch subcommand)")
	rootCmd.Flags().StringVar(&statsCmd, "stats-cmd", "", "Override the stats command (default: this binary's stats subcommand)")
}
