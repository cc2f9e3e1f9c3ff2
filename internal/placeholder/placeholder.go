// Package placeholder maintains the cached 2x2 black still image used as the
// video source of every conversion.
//
// The image is generated lazily on first use and never deleted. Generation is
// serialised across processes with an advisory lock and published by renaming
// a uniquely named temp file, so concurrent first runs never observe a
// partially written image.
package placeholder

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"audio2mp4/internal/logging"
)

// Size is the edge length in pixels of the placeholder frame.
const Size = 2

// Generator renders the placeholder image to dest.
type Generator interface {
	GeneratePlaceholder(ctx context.Context, dest string) error
}

// Cache owns one placeholder image path.
type Cache struct {
	path      string
	generator Generator
	logger    *slog.Logger
}

// NewCache constructs a cache for the image stored at path.
func NewCache(path string, generator Generator, logger *slog.Logger) *Cache {
	return &Cache{
		path:      path,
		generator: generator,
		logger:    logging.NewComponentLogger(logger, "placeholder"),
	}
}

// Path returns the cached image location.
func (c *Cache) Path() string {
	return c.path
}

// Exists reports whether the cached image is present.
func (c *Cache) Exists() bool {
	info, err := os.Stat(c.path)
	return err == nil && info.Mode().IsRegular()
}

// Ensure makes sure the placeholder exists, generating it when absent. It
// reports whether this call created the image. An existing image is left
// untouched.
func (c *Cache) Ensure(ctx context.Context) (bool, error) {
	if c.Exists() {
		return false, nil
	}
	if c.generator == nil {
		return false, errors.New("placeholder generator not configured")
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create placeholder directory %q: %w", dir, err)
	}

	lock := flock.New(c.path + ".lock")
	if err := lock.Lock(); err != nil {
		return false, fmt.Errorf("acquire placeholder lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	// Another process may have finished while we waited on the lock.
	if c.Exists() {
		return false, nil
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s-%s", uuid.NewString(), filepath.Base(c.path)))
	defer func() {
		_ = os.Remove(tmp)
	}()

	c.logger.Info("generating placeholder image", logging.String("path", c.path))
	if err := c.generator.GeneratePlaceholder(ctx, tmp); err != nil {
		return false, fmt.Errorf("generate placeholder: %w", err)
	}
	if err := Verify(tmp); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return false, fmt.Errorf("publish placeholder: %w", err)
	}
	return true, nil
}

// Verify checks that path holds a decodable image of Size x Size pixels.
func Verify(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("placeholder %q was not written", path)
		}
		return fmt.Errorf("open placeholder: %w", err)
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return fmt.Errorf("decode placeholder: %w", err)
	}
	if cfg.Width != Size || cfg.Height != Size {
		return fmt.Errorf("placeholder is %dx%d %s, want %dx%d", cfg.Width, cfg.Height, format, Size, Size)
	}
	return nil
}
