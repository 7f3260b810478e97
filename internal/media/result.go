package media

// JobResult is the outcome of processing one VideoFile.
type JobResult struct {
	File       VideoFile
	OutputPath string
	OK         bool
	OutputSize int64  // Bytes on disk after a successful run.
	Err        error  // Failure reason when !OK.
	ToolOutput string   // Captured tool stderr, kept for the failure report.
	Command    []string // Tool arguments, logged at DEBUG.
}

// Reduction returns the size reduction in percent, (1 - out/in) * 100.
// ok is false when the result failed or the input was empty, where the
// ratio is undefined.
func (r JobResult) Reduction() (pct float64, ok bool) {
	if !r.OK {
		return 0, false
	}
	return Reduction(r.File.Size, r.OutputSize)
}

// Reduction computes (1 - out/in) * 100; ok is false when in is zero.
func Reduction(in, out int64) (pct float64, ok bool) {
	if in <= 0 {
		return 0, false
	}
	return (1 - float64(out)/float64(in)) * 100, true
}
