package main

import (
	"context"
	"strings"

	"composectl/internal/compose"
	"composectl/internal/errors"
	"composectl/internal/log"
	"composectl/internal/watch"

	"github.com/spf13/cobra"
)

// SessionPrompt heads the action menu of an interactive session.
const SessionPrompt = "Choose a Docker Compose action"

// syncer is implemented by terminals that run lines asynchronously.
type syncer interface {
	Sync(ctx context.Context) error
}

// newSessionCmd runs actions picked from a menu until the menu is
// dismissed, reloading settings whenever the settings file changes.
func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Pick and run docker-compose actions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			term, closeTerm, err := a.terminal()
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeTerm(); err == nil {
					err = cerr
				}
			}()

			if path := a.store.Path(); path != "" {
				stop, err := watch.Follow(path, a.store)
				if err != nil {
					log.LogWithError(err).Warn("Settings changes will not be picked up")
				} else {
					defer stop()
				}
			}

			cmds := compose.NewCommands(a.deps(term))
			return runSession(cmd.Context(), cmds, a.chooser, term, a.printer)
		},
	}
}

// actionItems describes each action for the menu.
func actionItems(actions []compose.Action) []compose.Item {
	items := make([]compose.Item, len(actions))
	for i, action := range actions {
		ops := make([]string, len(action.Operations))
		for j, op := range action.Operations {
			ops[j] = op.String()
		}
		items[i] = compose.Item{Label: action.Name, Description: "docker-compose " + strings.Join(ops, ", then ")}
	}
	return items
}

type errorPrinter interface {
	Error(message string)
}

func runSession(ctx context.Context, cmds *compose.Commands, chooser compose.Chooser, term compose.Terminal, p errorPrinter) error {
	actions := compose.Actions()
	items := actionItems(actions)

	for ctx.Err() == nil {
		idx, ok, err := chooser.Choose(ctx, SessionPrompt, items)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := cmds.Run(ctx, actions[idx].Request("")); err != nil {
			if errors.IsNoWorkspaceFolder(err) {
				return err
			}
			p.Error(err.Error())
		}

		if s, ok := term.(syncer); ok {
			if err := s.Sync(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
