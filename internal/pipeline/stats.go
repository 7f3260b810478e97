package pipeline

import "github.com/backmassage/webvid/internal/media"

// RunSummary tracks aggregate counters and byte totals across a batch run.
// Only successful results contribute to the byte totals.
type RunSummary struct {
	Total       int // Files discovered.
	Processed   int // Successful results.
	Failed      int
	InputBytes  int64
	OutputBytes int64
}

// Add folds one result into the summary.
func (s *RunSummary) Add(r media.JobResult) {
	if !r.OK {
		s.Failed++
		return
	}
	s.Processed++
	s.InputBytes += r.File.Size
	s.OutputBytes += r.OutputSize
}

// Reduction returns the aggregate size reduction in percent; ok is false
// when no input bytes were counted.
func (s *RunSummary) Reduction() (pct float64, ok bool) {
	return media.Reduction(s.InputBytes, s.OutputBytes)
}

// SpaceSaved returns the aggregate byte difference between inputs and outputs.
// Positive means outputs are smaller; negative means they grew.
func (s *RunSummary) SpaceSaved() int64 {
	return s.InputBytes - s.OutputBytes
}
