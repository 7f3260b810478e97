// Package display renders the banner and the size and percentage strings
// shown in progress and summary lines.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/webvid/internal/term"
)

// PrintBanner writes a one-line tool banner framed by rules to w; uses
// Magenta if colors are enabled.
func PrintBanner(w io.Writer, prog, version string) {
	title := fmt.Sprintf(" webvid :: %s v%s ", prog, version)
	rule := strings.Repeat("=", len(title))
	fmt.Fprintf(w, "%s%s\n%s\n%s%s\n", term.Magenta, rule, title, rule, term.NC)
}
