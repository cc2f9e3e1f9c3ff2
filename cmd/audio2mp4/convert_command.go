package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"audio2mp4/internal/convert"
)

func runConvert(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}

	converter := convert.New(cfg, logger)
	result, err := converter.Convert(cmd.Context(), args)
	if err != nil {
		if errors.Is(err, convert.ErrUsage) {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		}
		return err
	}

	stdout := cmd.OutOrStdout()
	writeConverted(stdout, result, shouldColorize(stdout))
	return nil
}

func writeConverted(w io.Writer, result convert.Result, colorize bool) {
	fmt.Fprintln(w, renderConvertedLine(result, colorize))
	if p := result.Probe; p != nil {
		fmt.Fprintf(w, "%s%s\n", statusIndent, renderProbeSummary(p))
	}
}
