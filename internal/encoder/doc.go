// Package encoder wraps the external ffmpeg binary behind a narrow
// command-plus-arguments-plus-timeout interface.
//
// It owns the two fixed argument sets audio2mp4 needs: generating the 2x2
// black placeholder from a synthetic lavfi source, and muxing a looped still
// image with an audio track into an H.264/AAC MP4. Argument vectors are built
// with ffmpeg-go so the flag layout stays declarative; execution goes through
// an injectable CommandRunner so tests never need a real encoder.
package encoder
