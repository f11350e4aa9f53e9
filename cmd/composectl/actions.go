package main

import (
	"fmt"
	"strings"

	"composectl/internal/compose"

	"github.com/spf13/cobra"
)

// newActionCmd builds the subcommand running action.
func newActionCmd(a *app, action compose.Action) *cobra.Command {
	ops := make([]string, len(action.Operations))
	for i, op := range action.Operations {
		ops[i] = op.String()
	}

	return &cobra.Command{
		Use:   action.Name + " [FILE]",
		Short: fmt.Sprintf("Run docker-compose %s", strings.Join(ops, " then ")),
		Long: fmt.Sprintf(`Run docker-compose %s in the project folder.

FILE, relative to the project folder or absolute, overrides the configured
and discovered compose files.`, strings.Join(ops, " then ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var file string
			if len(args) > 0 {
				file = args[0]
			}

			term, closeTerm, err := a.terminal()
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeTerm(); err == nil {
					err = cerr
				}
			}()

			return compose.NewCommands(a.deps(term)).Run(cmd.Context(), action.Request(file))
		},
	}
}
