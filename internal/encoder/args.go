package encoder

import (
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"audio2mp4/internal/config"
)

// Recipe is the fixed encode configuration applied to every conversion.
type Recipe struct {
	VideoCodec   string
	Tune         string
	AudioCodec   string
	AudioBitrate string
	PixelFormat  string
	Width        int
	Height       int
}

// RecipeFromConfig extracts the encode recipe from configuration.
func RecipeFromConfig(cfg *config.Config) Recipe {
	return Recipe{
		VideoCodec:   cfg.Encoder.VideoCodec,
		Tune:         cfg.Encoder.Tune,
		AudioCodec:   cfg.Encoder.AudioCodec,
		AudioBitrate: cfg.Encoder.AudioBitrate,
		PixelFormat:  cfg.Encoder.PixelFormat,
		Width:        cfg.Encoder.Width,
		Height:       cfg.Encoder.Height,
	}
}

// PlaceholderSource is the lavfi expression for a solid black 2x2 frame.
const PlaceholderSource = "color=c=black:s=2x2"

// PlaceholderArgs returns the arguments that render a single black 2x2 frame to dest.
func PlaceholderArgs(dest string) []string {
	return ffmpeg.Input(PlaceholderSource, ffmpeg.KwArgs{"f": "lavfi"}).
		Output(dest, ffmpeg.KwArgs{"frames:v": 1}).
		GlobalArgs("-hide_banner", "-loglevel", "error").
		OverWriteOutput().
		GetArgs()
}

// StillImageArgs returns the arguments that loop image as video under the audio
// track and stop at the shorter stream, which is always the audio.
func StillImageArgs(r Recipe, image, audio, output string) []string {
	still := ffmpeg.Input(image, ffmpeg.KwArgs{"loop": 1}).Video()
	track := ffmpeg.Input(audio).Audio()

	kwargs := ffmpeg.KwArgs{
		"c:v":      r.VideoCodec,
		"c:a":      r.AudioCodec,
		"b:a":      r.AudioBitrate,
		"pix_fmt":  r.PixelFormat,
		"vf":       fmt.Sprintf("scale=%d:%d", r.Width, r.Height),
		"shortest": "",
	}
	if r.Tune != "" {
		kwargs["tune"] = r.Tune
	}

	return ffmpeg.Output([]*ffmpeg.Stream{still, track}, output, kwargs).
		GlobalArgs("-hide_banner", "-nostdin").
		OverWriteOutput().
		GetArgs()
}
