package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const (
	mebibyte = 1024 * 1024
	gibibyte = 1024 * mebibyte
)

// FormatBytes returns a human-readable IEC size (B, KiB, MiB, GiB, ...).
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatMB renders bytes as mebibytes with two decimals, e.g. "10.00 MB".
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/mebibyte)
}

// FormatGB renders bytes as gibibytes with two decimals, e.g. "1.50 GB".
func FormatGB(bytes int64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/gibibyte)
}

// FormatCount renders an integer with thousands separators ("1,048,576").
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent renders a percentage with one decimal, or "n/a" when the
// value is undefined (ok == false).
func FormatPercent(pct float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", pct)
}
