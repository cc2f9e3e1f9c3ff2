// Package ffprobe provides a typed wrapper around ffprobe JSON output, used
// to report what a conversion actually produced.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video stream properties
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns parsed Result
package ffprobe
