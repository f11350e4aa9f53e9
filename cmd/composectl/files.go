package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"composectl/internal/compose"
	"composectl/internal/terminal"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

// newFilesCmd lists the compose files discovery finds.
func newFilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List the docker-compose files found in the project folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds := compose.NewCommands(a.deps(terminal.NewRecorder(nil)))
			folder, files, err := cmds.Discover(cmd.Context())
			if err != nil {
				return err
			}

			a.printer.Header(folder.Path)
			if len(files) == 0 {
				a.printer.Info(compose.NoComposeFilesMessage)
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			for _, f := range files {
				size, modified := "-", "-"
				if info, err := os.Stat(compose.Location(folder.Path, f.Path)); err == nil {
					size = humanize.Bytes(uint64(info.Size()))
					modified = humanize.Time(info.ModTime())
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.printer.Highlight(f.Label), size, modified)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			a.printer.Success(english.Plural(len(files), "compose file", "") + " found")
			return nil
		},
	}
}
