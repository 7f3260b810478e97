package ffmpeg

import (
	"fmt"

	ffmpeggo "github.com/u2takey/ffmpeg-go"

	"github.com/backmassage/webvid/internal/config"
)

// inputArgs returns the input-side flags shared by both variants (no banner,
// no stdin so a batch never blocks on a prompt) merged with extra.
func inputArgs(extra ffmpeggo.KwArgs) ffmpeggo.KwArgs {
	args := ffmpeggo.KwArgs{"hide_banner": "", "nostdin": ""}
	for k, v := range extra {
		args[k] = v
	}
	return args
}

// CompressArgs returns the argument list that re-encodes in to a
// web-friendly H.264/AAC MP4 at out, overwriting any existing file.
func CompressArgs(cfg *config.Config, in, out string) []string {
	return ffmpeggo.Input(in, inputArgs(nil)).
		Output(out, ffmpeggo.KwArgs{
			"c:v":      cfg.VideoCodec,
			"crf":      cfg.CRF,
			"preset":   cfg.Preset,
			"vf":       ScaleFilter(cfg.MaxWidth),
			"c:a":      cfg.AudioCodec,
			"b:a":      cfg.AudioBitrate,
			"movflags": cfg.MovFlags,
			"pix_fmt":  cfg.PixFmt,
		}).
		OverWriteOutput().
		GetArgs()
}

// ThumbnailArgs returns the argument list that writes the frame at
// cfg.ThumbSeek seconds of in as a JPEG at out, overwriting any existing file.
func ThumbnailArgs(cfg *config.Config, in, out string) []string {
	return ffmpeggo.Input(in, inputArgs(ffmpeggo.KwArgs{"ss": cfg.ThumbSeek})).
		Output(out, ffmpeggo.KwArgs{
			"vframes": cfg.ThumbFrames,
			"q:v":     cfg.ThumbQuality,
		}).
		OverWriteOutput().
		GetArgs()
}

// ScaleFilter caps the width at maxWidth without upscaling; -2 keeps the
// aspect ratio with an even height.
func ScaleFilter(maxWidth int) string {
	return fmt.Sprintf("scale='min(%d,iw)':-2", maxWidth)
}
