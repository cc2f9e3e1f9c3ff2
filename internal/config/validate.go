package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncoder(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEncoder() error {
	if c.Encoder.Width <= 0 || c.Encoder.Height <= 0 {
		return fmt.Errorf("encoder.width and encoder.height must be positive (got %dx%d)", c.Encoder.Width, c.Encoder.Height)
	}
	if c.Encoder.Width%2 != 0 || c.Encoder.Height%2 != 0 {
		return fmt.Errorf("encoder.width and encoder.height must be even for 4:2:0 output (got %dx%d)", c.Encoder.Width, c.Encoder.Height)
	}
	if c.Encoder.TimeoutSeconds < 0 {
		return errors.New("encoder.timeout_seconds must be zero or positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return fmt.Errorf("output.suffix must not contain path separators (got %q)", c.Output.Suffix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
