package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"audio2mp4/internal/config"
	"audio2mp4/internal/deps"
	"audio2mp4/internal/encoder"
	"audio2mp4/internal/logging"
	"audio2mp4/internal/media/ffprobe"
	"audio2mp4/internal/placeholder"
)

// Result describes a finished conversion.
type Result struct {
	InputPath          string
	OutputPath         string
	SizeBytes          int64
	PlaceholderCreated bool
	Elapsed            time.Duration
	Probe              *ProbeSummary
}

// ProbeSummary is what ffprobe reported about the produced file.
type ProbeSummary struct {
	DurationSeconds float64
	Width           int
	Height          int
}

// Resolver looks an executable up and returns its path.
type Resolver func(binary string) (string, error)

// Prober inspects a media file.
type Prober func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Option customizes a Converter.
type Option func(*Converter)

// WithEncoder replaces the encoder, typically with one using a stub runner.
func WithEncoder(enc *encoder.Encoder) Option {
	return func(c *Converter) {
		if enc != nil {
			c.encoder = enc
		}
	}
}

// WithResolver replaces PATH lookup of the encoder.
func WithResolver(r Resolver) Option {
	return func(c *Converter) {
		if r != nil {
			c.resolve = r
		}
	}
}

// WithProber replaces the post-conversion probe. A nil prober disables it.
func WithProber(p Prober) Option {
	return func(c *Converter) {
		c.probe = p
	}
}

// Converter turns one audio file into a still-image MP4.
type Converter struct {
	cfg     *config.Config
	base    *slog.Logger
	logger  *slog.Logger
	encoder *encoder.Encoder
	resolve Resolver
	probe   Prober
}

// New constructs a converter from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Converter {
	c := &Converter{
		cfg:     cfg,
		base:    logger,
		logger:  logging.NewComponentLogger(logger, "convert"),
		encoder: encoder.New(cfg, logger),
		resolve: deps.ResolveEncoder,
	}
	if cfg.Encoder.ProbeOutput {
		c.probe = ffprobe.Inspect
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type run struct {
	args        []string
	input       string
	output      string
	placeholder string
	result      Result
}

type step struct {
	name string
	fn   func(context.Context, *run) error
}

func (c *Converter) steps() []step {
	return []step{
		{"validate-args", c.validateArgs},
		{"check-encoder", c.checkEncoder},
		{"ensure-placeholder", c.ensurePlaceholder},
		{"run-conversion", c.runConversion},
		{"check-result", c.checkResult},
	}
}

// Convert runs the pipeline for the command-line arguments args, which must
// hold exactly one audio file path.
func (c *Converter) Convert(ctx context.Context, args []string) (Result, error) {
	if c == nil || c.cfg == nil {
		return Result{}, errors.New("converter not initialized")
	}
	start := time.Now()
	r := &run{args: args}
	for _, s := range c.steps() {
		c.logger.Debug("pipeline step", logging.String(logging.FieldStep, s.name))
		if err := s.fn(ctx, r); err != nil {
			return Result{}, err
		}
	}
	r.result.Elapsed = time.Since(start)
	c.probeOutput(ctx, r)
	return r.result, nil
}

func (c *Converter) validateArgs(_ context.Context, r *run) error {
	switch {
	case len(r.args) == 0:
		return Wrap(ErrUsage, "validate-args", "an audio file path is required", nil)
	case len(r.args) > 1:
		return Wrap(ErrUsage, "validate-args", fmt.Sprintf("expected one audio file, got %d arguments", len(r.args)), nil)
	}
	// The path is used exactly as given; only an all-blank argument is rejected.
	input := r.args[0]
	if strings.TrimSpace(input) == "" {
		return Wrap(ErrUsage, "validate-args", "an audio file path is required", nil)
	}
	info, err := os.Stat(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Wrap(ErrUsage, "validate-args", fmt.Sprintf("audio file %q does not exist", input), nil)
		}
		return Wrap(ErrUsage, "validate-args", "inspect audio file", err)
	}
	if info.IsDir() {
		return Wrap(ErrUsage, "validate-args", fmt.Sprintf("%q is a directory, not an audio file", input), nil)
	}
	r.input = input
	r.output = OutputPath(input, c.cfg.Output.Suffix)
	r.result.InputPath = r.input
	r.result.OutputPath = r.output
	return nil
}

func (c *Converter) checkEncoder(_ context.Context, _ *run) error {
	resolved, err := c.resolve(c.cfg.FFmpegBinary())
	if err != nil {
		return Wrap(ErrDependencyMissing, "check-encoder", "", err)
	}
	c.encoder.SetBinary(resolved)
	c.logger.Debug("encoder resolved", logging.String("path", resolved))
	return nil
}

func (c *Converter) ensurePlaceholder(ctx context.Context, r *run) error {
	cache := placeholder.NewCache(c.cfg.PlaceholderPath(), c.encoder, c.base)
	created, err := cache.Ensure(ctx)
	if err != nil {
		return Wrap(ErrPlaceholder, "ensure-placeholder", cache.Path(), err)
	}
	r.placeholder = cache.Path()
	r.result.PlaceholderCreated = created
	return nil
}

func (c *Converter) runConversion(ctx context.Context, r *run) error {
	c.logger.Info("converting",
		logging.String("input", r.input),
		logging.String("output", r.output),
	)
	if err := c.encoder.StillImage(ctx, r.placeholder, r.input, r.output); err != nil {
		return Wrap(ErrConversion, "run-conversion", "check the encoder error output above", err)
	}
	return nil
}

func (c *Converter) checkResult(_ context.Context, r *run) error {
	info, err := os.Stat(r.output)
	if err != nil {
		return Wrap(ErrConversion, "check-result", fmt.Sprintf("encoder exited cleanly but %q was not created", r.output), nil)
	}
	if info.Size() == 0 {
		return Wrap(ErrConversion, "check-result", fmt.Sprintf("encoder exited cleanly but %q is empty", r.output), nil)
	}
	r.result.SizeBytes = info.Size()
	c.logger.Info("conversion complete",
		logging.String("output", r.output),
		logging.Int64("size_bytes", info.Size()),
		logging.Bool("placeholder_created", r.result.PlaceholderCreated),
	)
	return nil
}

func (c *Converter) probeOutput(ctx context.Context, r *run) {
	if c.probe == nil {
		return
	}
	probed, err := c.probe(ctx, c.cfg.FFprobeBinary(), r.output)
	if err != nil {
		logging.WarnWithContext(c.logger, "output probe skipped", "probe_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "install ffprobe or set encoder.probe_output = false"),
			logging.String(logging.FieldImpact, "duration and resolution are not reported"),
		)
		return
	}
	if v, a := probed.VideoStreamCount(), probed.AudioStreamCount(); v != 1 || a != 1 {
		logging.WarnWithContext(c.logger, "unexpected stream layout in output", "stream_layout",
			logging.Int("video_streams", v),
			logging.Int("audio_streams", a),
			logging.String(logging.FieldErrorHint, "play the file and check the encoder arguments with --log-level debug"),
			logging.String(logging.FieldImpact, "video-only ingestion may reject the file"),
		)
	}
	summary := &ProbeSummary{DurationSeconds: probed.AudioDurationSeconds()}
	if w, h, ok := probed.VideoSize(); ok {
		summary.Width, summary.Height = w, h
	}
	r.result.Probe = summary
	c.logger.Info("output probed",
		logging.Float64("duration_seconds", summary.DurationSeconds),
		logging.Int("width", summary.Width),
		logging.Int("height", summary.Height),
	)
}
