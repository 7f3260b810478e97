// Command extract-thumbnails writes the first frame of every video under
// public/videos as a JPEG in public/thumbnails.
package main

import (
	"context"
	"os"

	"github.com/backmassage/webvid/internal/cli"
	"github.com/backmassage/webvid/internal/config"
	"github.com/backmassage/webvid/internal/ffmpeg"
	"github.com/backmassage/webvid/internal/logging"
	"github.com/backmassage/webvid/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(cli.Run(cli.Tool{
		Name:         "extract-thumbnails",
		Version:      version,
		Commit:       commit,
		OutputSubdir: config.ThumbnailSubdir,
		Execute: func(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
			tool := ffmpeg.NewExec(cfg.FFmpegBinary, cfg.Verbose)
			_, err := pipeline.Run(ctx, cfg, pipeline.NewThumbnailJob(cfg, tool), log)
			return err
		},
	}, os.Args[1:]))
}
