package convert

import (
	"path/filepath"
	"strings"
)

// OutputExtension is the container extension of every produced file.
const OutputExtension = ".mp4"

// OutputPath derives the MP4 path for input: the last extension is stripped
// and suffix plus ".mp4" appended, in the input's directory.
//
//	talk.mp3          -> talk_for_metanote.mp4
//	archive.tar.gz    -> archive.tar_for_metanote.mp4
//	notes/voice       -> notes/voice_for_metanote.mp4
//	./-take1.mp3      -> ./-take1_for_metanote.mp4
func OutputPath(input, suffix string) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dot-files such as ".memo" have no extension to strip.
		stem = base
	}
	out := filepath.Join(dir, stem+suffix+OutputExtension)
	if strings.HasPrefix(out, "-") {
		// A bare "-name" would be parsed by ffmpeg as an option.
		out = "." + string(filepath.Separator) + out
	}
	return out
}
