// Package cli is the shared bootstrap behind every command: flags, logger,
// path resolution, diagnostics, signal handling, and exit codes.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/backmassage/webvid/internal/check"
	"github.com/backmassage/webvid/internal/config"
	"github.com/backmassage/webvid/internal/display"
	"github.com/backmassage/webvid/internal/logging"
)

// Tool describes one command.
type Tool struct {
	Name    string
	Version string
	Commit  string

	// OutputSubdir is the output directory under the project root, or ""
	// for commands that only read.
	OutputSubdir string

	// Execute runs the command body. Any error has already been reported
	// through log; it only selects the exit code.
	Execute func(ctx context.Context, cfg *config.Config, log *logging.Logger) error
}

// Run executes tool with the given command-line arguments and returns the
// process exit code: 0 on completion (per-file failures included), 1 on
// flag, configuration, or fatal run errors.
func Run(tool Tool, args []string) int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, tool.Name, tool.Version, args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", tool.Name, err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", tool.Name, err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", tool.Name, err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout, tool.Name, tool.Version)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	cfg.ResolveDirs(tool.OutputSubdir)

	log.Info("=== %s v%s (%s) run %s ===", tool.Name, tool.Version, tool.Commit, runID())
	log.Info("In:  %s", cfg.SourceDir)
	if cfg.OutputDir != "" {
		log.Info("Out: %s", cfg.OutputDir)
	}
	log.Info("")

	// Cancel on SIGINT/SIGTERM; the running ffmpeg is killed with the context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tool.Execute(ctx, &cfg, log); err != nil {
		return 1
	}
	return 0
}

// runID returns a short id that tells runs apart in a shared log file.
func runID() string {
	return uuid.NewString()[:8]
}
