package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/webvid/internal/config"
	"github.com/backmassage/webvid/internal/ffmpeg"
	"github.com/backmassage/webvid/internal/media"
)

// ErrInterrupted is returned by Run when ctx is cancelled mid-batch.
var ErrInterrupted = errors.New("run interrupted")

// Run is the batch entry point: scan cfg.SourceDir, create the job's output
// directory, process each file sequentially, and return the summary.
//
// Per-file failures are reported and counted; the batch continues. A missing
// source directory, a missing ffmpeg executable, or cancellation stops the
// run and is returned as an error after being reported.
func Run(ctx context.Context, cfg *config.Config, job Job, log Logger) (RunSummary, error) {
	var summary RunSummary
	rep := NewReporter(log, job.Kind(), cfg.Verbose)

	files, err := media.Scan(cfg.SourceDir)
	if err != nil {
		if errors.Is(err, media.ErrSourceMissing) {
			rep.SourceMissing(cfg.SourceDir)
		} else {
			rep.Fatal(err)
		}
		return summary, err
	}

	outDir := job.OutputDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		err = fmt.Errorf("create output directory %s: %w", outDir, err)
		rep.Fatal(err)
		return summary, err
	}
	rep.OutputReady(outDir)

	if len(files) == 0 {
		rep.NoFiles(cfg.SourceDir)
		return summary, nil
	}

	summary.Total = len(files)
	rep.Start(summary.Total)

	for i, f := range files {
		if ctx.Err() != nil {
			rep.Interrupted(&summary)
			return summary, ErrInterrupted
		}

		rep.FileStart(i+1, summary.Total, f)
		res := job.Process(ctx, f)

		if errors.Is(res.Err, ffmpeg.ErrToolNotFound) {
			rep.ToolMissing(res.Err)
			return summary, res.Err
		}
		if ctx.Err() != nil {
			rep.Interrupted(&summary)
			return summary, ErrInterrupted
		}

		summary.Add(res)
		rep.FileDone(res)
	}

	rep.Finish(&summary, outDir)
	return summary, nil
}
