// Package pipeline drives the fetch-then-report flow for one bucket: check
// the cache artifact, fetch the listing if it is missing, then run the
// statistics step on it. Errors are fatal by propagation; there is no retry
// and concurrent runs against the same bucket are not coordinated.
package pipeline

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"s3stats/internal/config"
	"s3stats/internal/errors"
	"s3stats/internal/s3list"
)

// Options configures one orchestration run. FetchArgv and StatsArgv name
// the collaborating programs; the pipeline appends its own arguments
// (bucket and output path for fetch, output path and the humanize flag for
// stats) before executing them.
type Options struct {
	Bucket     string
	OutputPath string
	Humanize   bool
	FetchArgv  []string
	StatsArgv  []string
	Stdout     io.Writer
	Stderr     io.Writer
}

// CachePath derives the cache artifact name for a bucket
func CachePath(bucket string) string {
	return config.CachePath(bucket)
}

// Run executes the pipeline: a conditional fetch step followed by an
// unconditional stats step. The first failing step aborts the run.
func Run(ctx context.Context, opts Options) error {
	if opts.Bucket == "" {
		return errors.NewValidationError("bucket", "bucket name is required")
	}
	if len(opts.FetchArgv) == 0 || len(opts.StatsArgv) == 0 {
		return errors.NewValidationError("command", "fetch and stats commands are required")
	}

	output := opts.OutputPath
	if output == "" {
		output = CachePath(opts.Bucket)
	}

	if s3list.Exists(output) {
		slog.Info("using cached listing", "path", output)
	} else {
		fetch := append(append([]string{}, opts.FetchArgv...), opts.Bucket, output)
		if err := runCommand(ctx, fetch, opts); err != nil {
			return err
		}
	}

	statsArgs := append(append([]string{}, opts.StatsArgv...), output)
	if opts.Humanize {
		statsArgs = append(statsArgs, "--humanize")
	}
	return runCommand(ctx, statsArgs, opts)
}

func runCommand(ctx context.Context, argv []string, opts Options) error {
	name := strings.Join(argv, " ")
	slog.Info("executing command", "command", name)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return errors.NewCommandError(name, exitErr.ExitCode(), err)
		}
		return errors.NewCommandError(name, 0, err)
	}
	return nil
}
