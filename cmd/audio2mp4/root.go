package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var placeholderDirFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &placeholderDirFlag)

	rootCmd := &cobra.Command{
		Use:   "audio2mp4 <audio-file>",
		Short: "Wrap an audio file in a still-image MP4",
		Long: "audio2mp4 pairs an audio file with a looped black frame and writes\n" +
			"<name>_for_metanote.mp4 next to it, so tools that only ingest video accept it.\n\n" +
			"A file literally named like a subcommand (check, config, help) must be given\n" +
			"with a directory prefix, e.g. audio2mp4 ./check",
		Example:       "  audio2mp4 recording.m4a",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	flags.StringVar(&placeholderDirFlag, "placeholder-dir", "", "Directory holding the cached placeholder image")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
