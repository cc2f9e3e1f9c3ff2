// Package main hosts the audio2mp4 CLI entrypoint and command graph.
//
// The root command takes a single audio file and wraps it in a still-image
// MP4 that video-only ingestion tools accept. Subcommands report dependency
// state and scaffold configuration. Configuration resolution and logger setup
// live here; the conversion pipeline itself lives in internal/convert.
package main
