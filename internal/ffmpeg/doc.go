// Package ffmpeg builds the fixed ffmpeg argument lists for the compress and
// thumbnail variants and runs them behind the narrow [Transcoder] interface.
//
// Builders return arguments without the binary name; [Exec] prepends the
// configured binary and reports the exit status. A binary that cannot be
// located at all is reported as [ErrToolNotFound] rather than as a status.
package ffmpeg
