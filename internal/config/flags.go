package config

// This file implements CLI flag parsing and help text.
// Only ambient flags exist (root, display, logging, diagnostics); the
// processing parameters are fixed in DefaultConfig.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses args into cfg. prog and version are used in help and
// --version output. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, unexpected positional args).
func ParseFlags(cfg *Config, prog, version string, args []string) error {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.Usage = func() { printUsage(prog, version) }

	var n negatedFlags

	definePathFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &n)
	defineUtilityFlags(fs, &n)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &n)

	if n.showHelp {
		printUsage(prog, version)
		os.Exit(0)
	}
	if n.showVersion {
		fmt.Fprintf(os.Stdout, "%s v%s\n", prog, version)
		os.Exit(0)
	}

	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q (directories are fixed under --root)", rest[0])
	}
	cfg.Root = NormalizeDirArg(cfg.Root)
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
// They either override a default (color) or trigger exit (help, version).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePathFlags registers --root.
func definePathFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Root, "root", cfg.Root, "Project root containing "+SourceSubdir)
	fs.StringVar(&cfg.Root, "r", cfg.Root, "Same as --root")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Forward ffmpeg output live")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run ffmpeg diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies color overrides into cfg. --no-color wins over --color.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(prog, version string) {
	const col1 = 24
	lines := []struct {
		flags string
		desc  string
	}{
		{"", prog + " v" + version},
		{"", ""},
		{"  " + prog + " [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -r, --root <dir>", "Project root (default: .); reads " + SourceSubdir},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Forward ffmpeg output live"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (ffmpeg, libx264, AAC, MJPEG)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", strings.TrimSpace(l.desc))
	}
}
