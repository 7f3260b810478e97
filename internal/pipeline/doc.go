// Package pipeline runs a batch: scan the source directory, hand each video
// to a [Job] strategy (compress or thumbnail), report per-file outcomes, and
// fold them into a [RunSummary].
package pipeline
