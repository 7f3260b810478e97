package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/webvid/internal/display"
	"github.com/backmassage/webvid/internal/ffmpeg"
	"github.com/backmassage/webvid/internal/media"
)

// Logger is the subset of logging.Logger the pipeline writes through.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// stderrTail is how many trailing lines of tool output a failure report shows.
const stderrTail = 20

// Reporter renders run progress for one job kind.
type Reporter struct {
	log     Logger
	kind    Kind
	verbose bool
}

// NewReporter returns a Reporter for kind. When verbose, the tool's output
// was already streamed live, so failure reports omit the captured tail.
func NewReporter(log Logger, kind Kind, verbose bool) *Reporter {
	return &Reporter{log: log, kind: kind, verbose: verbose}
}

// SourceMissing reports the fatal missing-source-directory condition.
func (r *Reporter) SourceMissing(dir string) {
	r.log.Error("Source directory not found: %s", dir)
}

// OutputReady reports the output directory after it has been created.
func (r *Reporter) OutputReady(dir string) {
	if r.kind == KindCompress {
		r.log.Info("Compressed videos directory: %s", dir)
	} else {
		r.log.Info("Thumbnails directory: %s", dir)
	}
}

// NoFiles reports an empty scan.
func (r *Reporter) NoFiles(dir string) {
	r.log.Warn("No video files found in %s", dir)
}

// Start prints the discovered file count.
func (r *Reporter) Start(total int) {
	r.log.Info("Found %d video file(s)", total)
	if r.kind == KindCompress {
		r.log.Info("Starting compression...")
	}
	r.log.Info("")
}

// FileStart prints the indexed progress line for file i of n (1-based).
func (r *Reporter) FileStart(i, n int, f media.VideoFile) {
	switch r.kind {
	case KindCompress:
		r.log.Info("[%d/%d] Compressing %s...", i, n, f.Name)
		r.log.Info("  Original size: %s", display.FormatMB(f.Size))
	case KindThumbnail:
		r.log.Info("[%d/%d] Extracting thumbnail from %s...", i, n, f.Name)
	}
}

// FileDone prints the outcome of one result.
func (r *Reporter) FileDone(res media.JobResult) {
	r.log.Debug(r.verbose, "ffmpeg %s", strings.Join(res.Command, " "))
	if !res.OK {
		r.fileFailed(res)
		return
	}
	switch r.kind {
	case KindCompress:
		pct, ok := res.Reduction()
		r.log.Success("  ✓ Compressed size: %s (%s reduction)",
			display.FormatMB(res.OutputSize), display.FormatPercent(pct, ok))
		r.log.Info("")
	case KindThumbnail:
		r.log.Success("✓ Created %s", filepath.Base(res.OutputPath))
	}
}

func (r *Reporter) fileFailed(res media.JobResult) {
	if r.kind == KindCompress {
		r.log.Error("✗ Error compressing %s: %v", res.File.Name, res.Err)
	} else {
		r.log.Error("✗ Error processing %s: %v", res.File.Name, res.Err)
	}
	if !r.verbose {
		r.logStderr(res.ToolOutput)
	}
	r.log.Error(ffmpeg.HintOnPath)
	r.log.Error(ffmpeg.HintInstall)
	r.log.Info("")
}

// ToolMissing reports the fatal missing-executable condition.
func (r *Reporter) ToolMissing(err error) {
	r.log.Error("✗ %v. Please install ffmpeg first.", err)
	r.log.Error(ffmpeg.HintInstall)
}

// Interrupted reports a run stopped by a signal.
func (r *Reporter) Interrupted(s *RunSummary) {
	r.log.Warn("Interrupted after %d of %d file(s)", s.Processed+s.Failed, s.Total)
}

// Fatal reports an unexpected error that stops the run.
func (r *Reporter) Fatal(err error) {
	r.log.Error("%v", err)
}

// Finish prints the completion notice and, for compression, the aggregate
// summary. With no successful file the totals are zero and the savings
// percentage renders as n/a.
func (r *Reporter) Finish(s *RunSummary, outDir string) {
	switch r.kind {
	case KindCompress:
		r.log.Success("✓ Video compression complete!")
		r.log.Info("Compressed videos saved to: %s", outDir)
	case KindThumbnail:
		r.log.Info("")
		r.log.Success("✓ Thumbnail extraction complete!")
		r.log.Info("Thumbnails saved to: %s", outDir)
	}
	if s.Failed > 0 {
		r.log.Warn("%d of %d file(s) failed", s.Failed, s.Total)
	}
	if r.kind != KindCompress {
		return
	}

	pct, ok := s.Reduction()
	r.log.Info("")
	r.log.Info("Summary:")
	r.log.Info("  Original total: %s", display.FormatMB(s.InputBytes))
	r.log.Info("  Compressed total: %s", display.FormatMB(s.OutputBytes))
	r.log.Info("  Total savings: %s (%s)", display.FormatPercent(pct, ok), display.FormatBytes(s.SpaceSaved()))
}

func (r *Reporter) logStderr(stderr string) {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return
	}
	r.log.Error("Last ffmpeg output:")
	lines := strings.Split(stderr, "\n")
	start := 0
	if len(lines) > stderrTail {
		start = len(lines) - stderrTail
	}
	for _, l := range lines[start:] {
		r.log.Error("  %s", l)
	}
}
