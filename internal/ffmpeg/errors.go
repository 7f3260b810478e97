package ffmpeg

import "errors"

// ErrToolNotFound is returned by [Exec.Run] when the ffmpeg executable cannot
// be located. Callers treat it as fatal for the whole batch.
var ErrToolNotFound = errors.New("ffmpeg not found")

// Remediation hints printed alongside failures.
const (
	HintOnPath  = "Make sure ffmpeg is installed and available in your PATH"
	HintInstall = "Install ffmpeg: https://ffmpeg.org/download.html"
)
