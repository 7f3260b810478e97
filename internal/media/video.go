// Package media holds the records that flow through a batch run and the
// directory scanner that produces them.
package media

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrSourceMissing is returned by Scan when the source directory does not exist.
var ErrSourceMissing = errors.New("source directory not found")

// VideoExtensions lists the accepted input extensions (lowercase, with leading dot).
var VideoExtensions = []string{".mp4", ".mov", ".webm", ".avi"}

// VideoFile is one discovered input. It is never modified after Scan.
type VideoFile struct {
	Path string // Absolute path.
	Name string // Base name with extension.
	Stem string // Base name without extension.
	Ext  string // Extension as found on disk, with leading dot.
	Size int64  // Bytes.
}

// IsVideo reports whether name carries one of [VideoExtensions], ignoring case.
func IsVideo(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, v := range VideoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// Scan lists dir (non-recursively) and returns a VideoFile for every regular
// entry (or symlink to a regular file) whose extension matches [VideoExtensions], in directory listing
// order. Subdirectories and other files are skipped. An empty result is not
// an error.
func Scan(dir string) ([]VideoFile, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, abs)
		}
		return nil, fmt.Errorf("list %s: %w", abs, err)
	}

	files := make([]VideoFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsVideo(e.Name()) {
			continue
		}
		name := e.Name()
		info, err := entryInfo(abs, e)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		if info == nil || !info.Mode().IsRegular() {
			continue
		}
		ext := filepath.Ext(name)
		files = append(files, VideoFile{
			Path: filepath.Join(abs, name),
			Name: name,
			Stem: strings.TrimSuffix(name, ext),
			Ext:  ext,
			Size: info.Size(),
		})
	}
	return files, nil
}

// entryInfo returns the file info for e, following a symlink to its target.
// A dangling link yields nil info and no error.
func entryInfo(dir string, e fs.DirEntry) (fs.FileInfo, error) {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Info()
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return info, err
}
