package main

import (
	"io"
	"os"

	"composectl/cmd/composectl/cli"
	"composectl/internal/compose"
	"composectl/internal/config"
	"composectl/internal/log"
	"composectl/internal/terminal"
	"composectl/internal/tui"
	"composectl/internal/workspace"

	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgFile  string
	folder   string
	dryRun   bool
	debug    bool
	jsonLogs bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	store   *config.Store
	printer *cli.Printer
	chooser compose.Chooser
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "composectl",
		Short: "Run docker-compose lifecycle commands for a project",
		Long: `composectl composes docker-compose up, down, start, stop and restart
command lines for a project folder and runs them in a shell session.

Compose files come from the FILE argument, from the settings file
(docker.compose_file and docker.compose_additional_files), or are
discovered in the folder and picked from a list.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/composectl/config.yaml)")
	flags.StringVarP(&a.folder, "folder", "C", "", "project folder (default is the configured workspace folder or the current directory)")
	flags.BoolVarP(&a.dryRun, "dry-run", "n", false, "print the command lines instead of running them")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&a.jsonLogs, "json-logs", false, "write logs as JSON")

	for _, action := range compose.Actions() {
		rootCmd.AddCommand(newActionCmd(a, action))
	}
	rootCmd.AddCommand(newFilesCmd(a))
	rootCmd.AddCommand(newSessionCmd(a))

	return rootCmd
}

// setup loads settings and configures logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	store, err := config.OpenStore(path)
	if err != nil {
		return err
	}
	a.store = store
	cfg := store.Config()

	opts := []log.Option{log.WithOutput(a.errOut)}
	if a.jsonLogs || cfg.Logging.JSON {
		opts = append(opts, log.WithJSON())
	}
	if cfg.Logging.File != "" {
		opts = append(opts, log.WithFile(cfg.Logging.File))
	}
	log.Configure(opts...)
	log.SetDebug(a.debug || cfg.Logging.Debug)

	theme, ok := cli.LookupTheme(cfg.UI.Theme)
	if !ok {
		log.LogWithFields(log.F("theme", cfg.UI.Theme)).Warn("Unknown theme, using default")
		theme = cli.DefaultTheme
	}
	a.printer = cli.NewPrinter(a.out, theme)

	if a.chooser == nil {
		a.chooser = tui.NewChooser(a.in, a.out)
	}

	log.LogWithFields(log.F("config", path), log.F("dry_run", a.dryRun)).Debug("Settings loaded")
	return nil
}

// terminal returns the sink command lines are sent to and a function
// releasing it.
func (a *app) terminal() (compose.Terminal, func() error, error) {
	if a.dryRun {
		return terminal.NewRecorder(a.out), func() error { return nil }, nil
	}
	sh, err := terminal.NewShell(terminal.WithStdio(a.in, a.out, a.errOut))
	if err != nil {
		return nil, nil, err
	}
	return sh, sh.Close, nil
}

func (a *app) deps(term compose.Terminal) compose.Deps {
	return compose.Deps{
		Folders:  workspace.NewPicker(a.folder, a.store.Strings(config.KeyWorkspaceFolders), a.chooser),
		Finder:   workspace.NewFinder(),
		Chooser:  a.chooser,
		Settings: a.store,
		Terminal: term,
		Notifier: a.printer,
	}
}
