// Package check provides system diagnostics (--check mode) and a pre-flight
// lookup of the ffmpeg executable and the encoders the drivers rely on.
package check

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/webvid/internal/config"
	"github.com/backmassage/webvid/internal/ffmpeg"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// requiredEncoders are the ffmpeg encoders used by the two drivers.
var requiredEncoders = []struct {
	name  string
	label string
}{
	{"libx264", "H.264 (compress)"},
	{"aac", "AAC audio (compress)"},
	{"mjpeg", "JPEG (thumbnails)"},
}

// RunCheck runs the --check flow: prints the ffmpeg version and whether each
// required encoder is available. Returns false if anything is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	path, err := lookup(cfg)
	if err != nil {
		log.Error("%v", err)
		log.Error(ffmpeg.HintInstall)
		return false
	}
	log.Success("ffmpeg: %s", version(cfg.FFmpegBinary))
	log.Debug(cfg.Verbose, "  path: %s", path)

	listing, err := encoderListing(cfg.FFmpegBinary)
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return false
	}
	ok := true
	for _, enc := range requiredEncoders {
		if hasEncoder(listing, enc.name) {
			log.Success("  %-8s %s", enc.name, enc.label)
		} else {
			log.Error("  %-8s %s: not available", enc.name, enc.label)
			ok = false
		}
	}
	return ok
}

// CheckDeps verifies that the ffmpeg binary can be located. Returns an error
// wrapping [ffmpeg.ErrToolNotFound] otherwise.
func CheckDeps(cfg *config.Config) error {
	_, err := lookup(cfg)
	return err
}

func lookup(cfg *config.Config) (string, error) {
	path, err := exec.LookPath(cfg.FFmpegBinary)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ffmpeg.ErrToolNotFound, cfg.FFmpegBinary)
	}
	return path, nil
}

// --- internal helpers ---

// version returns the first line of `ffmpeg -version`, or "unknown version".
func version(binary string) string {
	out, err := exec.Command(binary, "-version").Output()
	if err != nil {
		return "unknown version"
	}
	first := strings.TrimSpace(string(out))
	if idx := strings.Index(first, "\n"); idx > 0 {
		first = first[:idx]
	}
	return first
}

func encoderListing(binary string) (string, error) {
	out, err := exec.Command(binary, "-hide_banner", "-encoders").Output()
	if err != nil {
		return "", fmt.Errorf("list encoders: %w", err)
	}
	return string(out), nil
}

// hasEncoder reports whether the `ffmpeg -encoders` listing contains name as
// an encoder identifier. Lines look like " V....D libx264   libx264 H.264 ...".
func hasEncoder(listing, name string) bool {
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == name {
			return true
		}
	}
	return false
}
