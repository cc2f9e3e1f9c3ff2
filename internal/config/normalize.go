package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEncoder()
	c.Output.Suffix = strings.TrimSpace(c.Output.Suffix)
	if c.Output.Suffix == "" {
		c.Output.Suffix = defaultSuffix
	}
	c.normalizeLogging()
	return nil
}

// Normalize applies defaults and path expansion to a config built in code
// rather than loaded from disk.
func (c *Config) Normalize() error {
	return c.normalize()
}

func (c *Config) normalizePaths() error {
	dir := strings.TrimSpace(c.Paths.PlaceholderDir)
	if value, ok := os.LookupEnv(placeholderDirEnv); ok && strings.TrimSpace(value) != "" {
		dir = strings.TrimSpace(value)
	}
	if dir == "" {
		dir = defaultPlaceholderDir()
	}
	var err error
	if c.Paths.PlaceholderDir, err = expandPath(dir); err != nil {
		return fmt.Errorf("paths.placeholder_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEncoder() {
	e := &c.Encoder
	e.Binary = withDefault(e.Binary, defaultFFmpeg)
	e.FFprobeBinary = withDefault(e.FFprobeBinary, defaultFFprobe)
	e.VideoCodec = withDefault(e.VideoCodec, defaultVideoCodec)
	e.Tune = strings.TrimSpace(e.Tune)
	e.AudioCodec = withDefault(e.AudioCodec, defaultAudioCodec)
	e.AudioBitrate = withDefault(e.AudioBitrate, defaultAudioBitrate)
	e.PixelFormat = withDefault(e.PixelFormat, defaultPixelFormat)
	if e.Width == 0 {
		e.Width = defaultWidth
	}
	if e.Height == 0 {
		e.Height = defaultHeight
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(withDefault(c.Logging.Format, defaultLogFormat))
	c.Logging.Level = strings.ToLower(withDefault(c.Logging.Level, defaultLogLevel))
}

func withDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
