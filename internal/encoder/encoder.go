package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"audio2mp4/internal/config"
	"audio2mp4/internal/logging"
)

// ErrTimeout reports that an encoder run exceeded the configured timeout.
var ErrTimeout = errors.New("encoder timed out")

// CommandRunner executes name with args and returns once the process exits.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// Encoder runs ffmpeg with the fixed audio2mp4 argument sets.
type Encoder struct {
	binary  string
	timeout time.Duration
	recipe  Recipe
	logger  *slog.Logger
	run     CommandRunner
}

// New constructs an encoder from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Encoder {
	return &Encoder{
		binary:  cfg.FFmpegBinary(),
		timeout: cfg.EncoderTimeout(),
		recipe:  RecipeFromConfig(cfg),
		logger:  logging.NewComponentLogger(logger, "encoder"),
		run:     defaultCommandRunner,
	}
}

// WithCommandRunner allows injecting a custom command runner for tests.
func (e *Encoder) WithCommandRunner(r CommandRunner) {
	if e != nil && r != nil {
		e.run = r
	}
}

// SetBinary replaces the encoder executable, typically with its resolved path.
func (e *Encoder) SetBinary(binary string) {
	if binary = strings.TrimSpace(binary); binary != "" {
		e.binary = binary
	}
}

// GeneratePlaceholder renders the 2x2 black still image to dest.
func (e *Encoder) GeneratePlaceholder(ctx context.Context, dest string) error {
	return e.exec(ctx, "placeholder", PlaceholderArgs(dest))
}

// StillImage muxes audio under a looped copy of image and writes output.
func (e *Encoder) StillImage(ctx context.Context, image, audio, output string) error {
	return e.exec(ctx, "convert", StillImageArgs(e.recipe, image, audio, output))
}

func (e *Encoder) exec(ctx context.Context, purpose string, args []string) error {
	if e == nil {
		return errors.New("encoder not initialized")
	}
	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.logger.Debug("executing encoder",
		logging.String("purpose", purpose),
		logging.String("binary", e.binary),
		logging.String("args", strings.Join(args, " ")),
	)

	start := time.Now()
	err := e.run(runCtx, e.binary, args...)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w after %s: %w", ErrTimeout, e.timeout, err)
		}
		return err
	}

	e.logger.Debug("encoder finished",
		logging.String("purpose", purpose),
		logging.Duration("elapsed", elapsed.Round(time.Millisecond)),
	)
	return nil
}

// stderrTailLines bounds how much encoder output is echoed back in errors.
const stderrTailLines = 8

func defaultCommandRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		tail := tailLines(stderr.String(), stderrTailLines)
		if tail == "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return fmt.Errorf("%s: %w: %s", name, err, tail)
	}
	return nil
}

func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
