package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/webvid/internal/config"
	"github.com/backmassage/webvid/internal/ffmpeg"
	"github.com/backmassage/webvid/internal/media"
)

// ErrProcessing marks a file whose tool invocation ran but did not produce
// an output (non-zero exit or missing output file).
var ErrProcessing = errors.New("processing error")

// Kind identifies a job strategy for reporting.
type Kind int

const (
	KindCompress Kind = iota
	KindThumbnail
)

// Job processes one VideoFile into one output file. Process never panics
// on tool failure; every outcome is a JobResult.
type Job interface {
	Kind() Kind
	OutputDir() string
	Process(ctx context.Context, f media.VideoFile) media.JobResult
}

// CompressJob re-encodes videos to web-friendly MP4.
type CompressJob struct {
	cfg  *config.Config
	tool ffmpeg.Transcoder
}

// NewCompressJob returns a CompressJob writing into cfg.OutputDir.
func NewCompressJob(cfg *config.Config, tool ffmpeg.Transcoder) *CompressJob {
	return &CompressJob{cfg: cfg, tool: tool}
}

func (j *CompressJob) Kind() Kind        { return KindCompress }
func (j *CompressJob) OutputDir() string { return j.cfg.OutputDir }

// Process writes <stem>.mp4 into the output directory.
func (j *CompressJob) Process(ctx context.Context, f media.VideoFile) media.JobResult {
	out := filepath.Join(j.cfg.OutputDir, f.Stem+".mp4")
	return transcode(ctx, j.tool, f, out, ffmpeg.CompressArgs(j.cfg, f.Path, out))
}

// ThumbnailJob extracts the first frame of each video as a JPEG.
type ThumbnailJob struct {
	cfg  *config.Config
	tool ffmpeg.Transcoder
}

// NewThumbnailJob returns a ThumbnailJob writing into cfg.OutputDir.
func NewThumbnailJob(cfg *config.Config, tool ffmpeg.Transcoder) *ThumbnailJob {
	return &ThumbnailJob{cfg: cfg, tool: tool}
}

func (j *ThumbnailJob) Kind() Kind        { return KindThumbnail }
func (j *ThumbnailJob) OutputDir() string { return j.cfg.OutputDir }

// Process writes <stem>.jpg into the output directory.
func (j *ThumbnailJob) Process(ctx context.Context, f media.VideoFile) media.JobResult {
	out := filepath.Join(j.cfg.OutputDir, f.Stem+".jpg")
	return transcode(ctx, j.tool, f, out, ffmpeg.ThumbnailArgs(j.cfg, f.Path, out))
}

// transcode runs one invocation and converts its outcome into a JobResult.
// Partial output is removed whenever the run did not succeed.
func transcode(ctx context.Context, tool ffmpeg.Transcoder, f media.VideoFile, out string, args []string) media.JobResult {
	res := media.JobResult{File: f, OutputPath: out, Command: args}

	er, err := tool.Run(ctx, args)
	res.ToolOutput = er.Stderr
	if err != nil {
		if !errors.Is(err, ffmpeg.ErrToolNotFound) {
			os.Remove(out)
		}
		res.Err = err
		return res
	}
	if er.Status != ffmpeg.ExitOK {
		os.Remove(out)
		res.Err = fmt.Errorf("%w: exit status %d", ErrProcessing, er.Status)
		return res
	}

	info, err := os.Stat(out)
	if err != nil {
		res.Err = fmt.Errorf("%w: no output written: %v", ErrProcessing, err)
		return res
	}
	res.OK = true
	res.OutputSize = info.Size()
	return res
}

var (
	_ Job = (*CompressJob)(nil)
	_ Job = (*ThumbnailJob)(nil)
)
