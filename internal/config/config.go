// Package config holds runtime configuration: the fixed processing constants,
// directory conventions, ambient CLI flags, and validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Directory conventions, relative to the project root.
const (
	SourceSubdir     = "public/videos"
	CompressedSubdir = "public/videos-compressed"
	ThumbnailSubdir  = "public/thumbnails"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] and [Config.ResolveDirs] before being passed
// (by pointer) to packages that need it. Processing parameters are fixed:
// no flag reaches them.
type Config struct {
	// Paths. Root comes from --root; the others are derived by ResolveDirs.
	Root      string
	SourceDir string
	OutputDir string

	// External tool.
	FFmpegBinary string // Fixed: "ffmpeg" (resolved on PATH).

	// Compression (fixed).
	VideoCodec   string // Fixed: "libx264" (H.264).
	CRF          int    // Fixed: 28.
	Preset       string // Fixed: "slow".
	MaxWidth     int    // Fixed: 1280 px; never upscales, height kept even.
	PixFmt       string // Fixed: "yuv420p".
	MovFlags     string // Fixed: "+faststart".
	AudioCodec   string // Fixed: "aac".
	AudioBitrate string // Fixed: "96k".

	// Thumbnail extraction (fixed).
	ThumbSeek    int // Fixed: 0 s.
	ThumbFrames  int // Fixed: 1.
	ThumbQuality int // Fixed: 2 (JPEG qscale, 2 is near-lossless).

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with every fixed value set and the project
// root at the current directory.
func DefaultConfig() Config {
	return Config{
		Root:         ".",
		FFmpegBinary: "ffmpeg",
		VideoCodec:   "libx264",
		CRF:          28,
		Preset:       "slow",
		MaxWidth:     1280,
		PixFmt:       "yuv420p",
		MovFlags:     "+faststart",
		AudioCodec:   "aac",
		AudioBitrate: "96k",
		ThumbSeek:    0,
		ThumbFrames:  1,
		ThumbQuality: 2,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ResolveDirs derives SourceDir and OutputDir from Root. outputSubdir is one
// of [CompressedSubdir] or [ThumbnailSubdir]; an empty value leaves
// OutputDir unset (report-only tools).
func (c *Config) ResolveDirs(outputSubdir string) {
	c.SourceDir = filepath.Join(c.Root, filepath.FromSlash(SourceSubdir))
	c.OutputDir = ""
	if outputSubdir != "" {
		c.OutputDir = filepath.Join(c.Root, filepath.FromSlash(outputSubdir))
	}
}

// Validate checks the color mode and the root path.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.Root == "" {
		return errors.New("project root must not be empty")
	}
	return nil
}
