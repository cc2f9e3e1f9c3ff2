package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"audio2mp4/internal/config"
	"audio2mp4/internal/logging"
)

type commandContext struct {
	configFlag         *string
	logLevelFlag       *string
	placeholderDirFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, logLevelFlag, placeholderDirFlag *string) *commandContext {
	return &commandContext{
		configFlag:         configFlag,
		logLevelFlag:       logLevelFlag,
		placeholderDirFlag: placeholderDirFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlagOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// applyFlagOverrides layers command-line flags over file and environment
// values, then re-validates the result.
func (c *commandContext) applyFlagOverrides(cfg *config.Config) error {
	if dir := flagValue(c.placeholderDirFlag); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("resolve --placeholder-dir: %w", err)
		}
		cfg.Paths.PlaceholderDir = expanded
	}
	if level := flagValue(c.logLevelFlag); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return nil
}

// newLogger builds the per-invocation logger. Every line carries a fresh
// run_id so concurrent invocations can be told apart in shared logs.
func (c *commandContext) newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr(), uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func flagValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
