// Command check-video-sizes lists the videos under public/videos with their
// sizes, the total, and the average. It does not need ffmpeg.
package main

import (
	"context"
	"os"

	"github.com/backmassage/webvid/internal/cli"
	"github.com/backmassage/webvid/internal/config"
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
		Name:    "check-video-sizes",
		Version: version,
		Commit:  commit,
		Execute: func(_ context.Context, cfg *config.Config, log *logging.Logger) error {
			_, err := pipeline.ReportSizes(cfg, log)
			return err
		},
	}, os.Args[1:]))
}
