package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.mp4", 10)
	writeFile(t, dir, "b.webm", 5)
	writeFile(t, dir, "c.mov", 1)
	writeFile(t, dir, "d.avi", 2)
	writeFile(t, dir, "notes.txt", 3)
	writeFile(t, dir, "poster.png", 4)
	writeFile(t, dir, "movie.mkv", 4)

	files, err := Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.mp4", "b.webm", "c.mov", "d.avi"}, names(files))
}

func TestScan_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "CLIP.MP4", 1)
	writeFile(t, dir, "Intro.MoV", 1)
	writeFile(t, dir, "README.TXT", 1)

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "CLIP", files[0].Stem)
	assert.Equal(t, ".MP4", files[0].Ext)
}

func TestScan_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mp4"), 0o755))
	writeFile(t, filepath.Join(dir, "nested.mp4"), "inner.mp4", 1)
	writeFile(t, dir, "top.mp4", 1)

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"top.mp4"}, names(files))
}

func TestScan_FollowsSymlinkedFile(t *testing.T) {
	dir := t.TempDir()
	store := t.TempDir()
	writeFile(t, store, "master.mp4", 1234)
	writeFile(t, dir, "real.mov", 10)
	require.NoError(t, os.Symlink(filepath.Join(store, "master.mp4"), filepath.Join(dir, "clip.mp4")))
	require.NoError(t, os.Symlink(store, filepath.Join(dir, "linkdir.mp4")))
	require.NoError(t, os.Symlink(filepath.Join(store, "gone.mp4"), filepath.Join(dir, "dangling.mp4")))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.ElementsMatch(t, []string{"clip.mp4", "real.mov"}, names(files))

	for _, f := range files {
		if f.Name == "clip.mp4" {
			assert.EqualValues(t, 1234, f.Size)
			assert.Equal(t, filepath.Join(dir, "clip.mp4"), f.Path)
		}
	}
}

func TestScan_RecordFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "reel.final.webm", 2048)

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.True(t, filepath.IsAbs(f.Path))
	assert.Equal(t, filepath.Join(dir, "reel.final.webm"), f.Path)
	assert.Equal(t, "reel.final.webm", f.Name)
	assert.Equal(t, "reel.final", f.Stem)
	assert.Equal(t, ".webm", f.Ext)
	assert.EqualValues(t, 2048, f.Size)
}

func TestScan_EmptyDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceMissing))
}

func TestIsVideo(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.mp4", true},
		{"a.MOV", true},
		{"a.webm", true},
		{"a.Avi", true},
		{"a.mkv", false},
		{"a.txt", false},
		{"mp4", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVideo(tt.name))
		})
	}
}

func writeFile(t *testing.T, dir, name string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644))
}

func names(files []VideoFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}
