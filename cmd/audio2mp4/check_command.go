package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"audio2mp4/internal/deps"
	"audio2mp4/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report encoder availability and placeholder cache state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			statuses := preflight.CheckSystemDeps(cfg)
			for _, line := range renderSectionHeader("Dependencies", colorize) {
				fmt.Fprintln(stdout, line)
			}
			fmt.Fprintln(stdout, renderTable(
				[]string{"Name", "Command", "Status", "Detail"},
				dependencyRows(statuses),
			))

			fmt.Fprintln(stdout)
			for _, line := range renderSectionHeader("Placeholder", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, result := range preflight.RunAll(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(stdout, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			missing := deps.MissingRequired(statuses)
			if len(missing) == 0 {
				return nil
			}
			names := make([]string, 0, len(missing))
			for _, s := range missing {
				names = append(names, s.Command)
			}
			return fmt.Errorf("required dependency missing: %s\n%s", strings.Join(names, ", "), deps.InstallHint(runtime.GOOS))
		},
	}
}

func dependencyRows(statuses []deps.Status) [][]string {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		state := "ok"
		detail := s.Path
		if !s.Available {
			state = "missing"
			if s.Optional {
				state = "missing (optional)"
			}
			detail = s.Detail
		}
		if detail == "" {
			detail = s.Description
		}
		rows = append(rows, []string{s.Name, s.Command, state, detail})
	}
	return rows
}
