// Package config loads, normalizes, and validates audio2mp4 configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the AUDIO2MP4_PLACEHOLDER_DIR
// environment fallback. The Config type holds every knob the conversion
// pipeline needs: where the placeholder image is cached, which encoder binary
// to run, the fixed encode recipe, the output suffix, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
