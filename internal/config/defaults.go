package config

const (
	defaultConfigPath   = "~/.config/audio2mp4/config.toml"
	projectConfigName   = "audio2mp4.toml"
	placeholderDirEnv   = "AUDIO2MP4_PLACEHOLDER_DIR"
	defaultFFmpeg       = "ffmpeg"
	defaultFFprobe      = "ffprobe"
	defaultVideoCodec   = "libx264"
	defaultTune         = "stillimage"
	defaultAudioCodec   = "aac"
	defaultAudioBitrate = "128k"
	defaultPixelFormat  = "yuv420p"
	defaultWidth        = 640
	defaultHeight       = 480
	defaultSuffix       = "_for_metanote"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"

	// PlaceholderFileName is the cached still image used as the video source.
	PlaceholderFileName = "placeholder_black.png"
)

// Default returns a Config populated with repository defaults. The placeholder
// directory is left empty and resolved during normalization.
func Default() Config {
	return Config{
		Encoder: Encoder{
			Binary:        defaultFFmpeg,
			FFprobeBinary: defaultFFprobe,
			VideoCodec:    defaultVideoCodec,
			Tune:          defaultTune,
			AudioCodec:    defaultAudioCodec,
			AudioBitrate:  defaultAudioBitrate,
			PixelFormat:   defaultPixelFormat,
			Width:         defaultWidth,
			Height:        defaultHeight,
			ProbeOutput:   true,
		},
		Output: Output{
			Suffix: defaultSuffix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
