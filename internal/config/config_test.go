package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/srv/site", "/srv/site"},
		{"single trailing slash", "/srv/site/", "/srv/site"},
		{"multiple trailing slashes", "/srv/site///", "/srv/site"},
		{"root path", "/", "/"},
		{"relative path", "site", "site"},
		{"relative with slash", "site/", "site"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestDefaultConfig_FixedSettings(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "libx264", cfg.VideoCodec)
	assert.Equal(t, 28, cfg.CRF)
	assert.Equal(t, "slow", cfg.Preset)
	assert.Equal(t, 1280, cfg.MaxWidth)
	assert.Equal(t, "yuv420p", cfg.PixFmt)
	assert.Equal(t, "+faststart", cfg.MovFlags)
	assert.Equal(t, "aac", cfg.AudioCodec)
	assert.Equal(t, "96k", cfg.AudioBitrate)
	assert.Equal(t, 0, cfg.ThumbSeek)
	assert.Equal(t, 1, cfg.ThumbFrames)
	assert.Equal(t, 2, cfg.ThumbQuality)
	assert.Equal(t, "ffmpeg", cfg.FFmpegBinary)
}

func TestResolveDirs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Root = "/srv/site"

	cfg.ResolveDirs(CompressedSubdir)
	assert.Equal(t, filepath.Join("/srv/site", "public", "videos"), cfg.SourceDir)
	assert.Equal(t, filepath.Join("/srv/site", "public", "videos-compressed"), cfg.OutputDir)

	cfg.ResolveDirs(ThumbnailSubdir)
	assert.Equal(t, filepath.Join("/srv/site", "public", "thumbnails"), cfg.OutputDir)

	cfg.ResolveDirs("")
	assert.Empty(t, cfg.OutputDir)
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_EmptyRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Root = ""
	assert.Error(t, cfg.Validate())
}

func TestDirectoryConventions_OutputsOutsideSource(t *testing.T) {
	for _, out := range []string{CompressedSubdir, ThumbnailSubdir} {
		assert.NotEqual(t, SourceSubdir, out)
		assert.False(t, strings.HasPrefix(out+"/", SourceSubdir+"/"),
			"%s would be picked up by the next scan of %s", out, SourceSubdir)
	}
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, "compress-videos", "1.0.0", []string{"--root", "/srv/site/", "-v", "--no-color", "--log", "/tmp/run.log"})
	require.NoError(t, err)
	assert.Equal(t, "/srv/site", cfg.Root)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, "/tmp/run.log", cfg.LogFile)
	assert.Equal(t, 28, cfg.CRF, "processing settings are not reachable from flags")
}

func TestParseFlags_NoColorWinsOverColor(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, "extract-thumbnails", "1.0.0", []string{"--color", "--no-color"}))
	assert.Equal(t, ColorNever, cfg.ColorMode)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"positional argument", []string{"videos"}},
		{"unknown flag", []string{"--crf", "18"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			assert.Error(t, ParseFlags(&cfg, "compress-videos", "1.0.0", tt.args))
		})
	}
}
