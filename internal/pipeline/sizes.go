package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backmassage/webvid/internal/config"
	"github.com/backmassage/webvid/internal/display"
	"github.com/backmassage/webvid/internal/media"
)

// SizeTotals aggregates the size report.
type SizeTotals struct {
	Count int
	Bytes int64
}

// Average returns the mean file size in bytes, or 0 for an empty report.
func (t SizeTotals) Average() int64 {
	if t.Count == 0 {
		return 0
	}
	return t.Bytes / int64(t.Count)
}

// ReportSizes lists every video in cfg.SourceDir with its size, then the
// total, count, and average. It never writes to disk.
func ReportSizes(cfg *config.Config, log Logger) (SizeTotals, error) {
	var totals SizeTotals

	files, err := media.Scan(cfg.SourceDir)
	if err != nil {
		if errors.Is(err, media.ErrSourceMissing) {
			log.Error("Source directory not found: %s", cfg.SourceDir)
		} else {
			log.Error("%v", err)
		}
		return totals, err
	}
	if len(files) == 0 {
		log.Warn("No video files found in %s", cfg.SourceDir)
		return totals, nil
	}

	rule := strings.Repeat("─", 80)
	log.Info("Video File Sizes:")
	log.Info("%s", rule)
	for _, f := range files {
		totals.Count++
		totals.Bytes += f.Size
		log.Info("%s", sizeLine(f))
	}
	log.Info("%s", rule)
	log.Info("Total: %s (%s)", display.FormatMB(totals.Bytes), display.FormatGB(totals.Bytes))
	log.Info("Number of videos: %d", totals.Count)
	log.Info("Average size per video: %s", display.FormatMB(totals.Average()))
	return totals, nil
}

// sizeLine renders one row: name padded to 40 columns, MB right-aligned,
// and the raw byte count with thousands separators.
func sizeLine(f media.VideoFile) string {
	return fmt.Sprintf("%-40s %13s (%s bytes)", f.Name, display.FormatMB(f.Size), display.FormatCount(f.Size))
}
