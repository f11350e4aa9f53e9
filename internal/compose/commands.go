package compose

import (
	"context"

	"composectl/internal/errors"
	"composectl/internal/log"

	"github.com/google/uuid"
)

// User-facing messages.
const (
	NoFolderMessage       = "To run Docker compose you must first open a folder."
	NoComposeFilesMessage = "Couldn't find any docker-compose files in your workspace."
	NoSelectionMessage    = "No Docker Compose file selected."
)

// Commands are the public entry points, one per action.
type Commands struct {
	folders  FolderPicker
	resolver *Resolver
	composer *Composer
	notifier Notifier
}

// Deps groups the collaborators Commands needs.
type Deps struct {
	Folders  FolderPicker
	Finder   FileFinder
	Chooser  Chooser
	Settings Settings
	Terminal Terminal
	Notifier Notifier
}

// NewCommands wires a Resolver and a Composer from deps.
func NewCommands(deps Deps) *Commands {
	return &Commands{
		folders:  deps.Folders,
		resolver: NewResolver(deps.Settings, deps.Finder, deps.Chooser),
		composer: NewComposer(deps.Settings, deps.Terminal),
		notifier: deps.Notifier,
	}
}

func (c *Commands) Up(ctx context.Context, file string) error {
	return c.Run(ctx, UpAction.Request(file))
}

func (c *Commands) Down(ctx context.Context, file string) error {
	return c.Run(ctx, DownAction.Request(file))
}

func (c *Commands) Restart(ctx context.Context, file string) error {
	return c.Run(ctx, RestartAction.Request(file))
}

func (c *Commands) Start(ctx context.Context, file string) error {
	return c.Run(ctx, StartAction.Request(file))
}

func (c *Commands) Stop(ctx context.Context, file string) error {
	return c.Run(ctx, StopAction.Request(file))
}

// Run executes req: pick the folder, resolve files, compose and send.
// Having nothing to operate on, or a dismissed chooser, is reported through
// the Notifier and is not an error.
func (c *Commands) Run(ctx context.Context, req Request) error {
	logger := log.LogWithFields(
		log.F("invocation", uuid.NewString()),
		log.F("action", req.Action.Name),
	)

	folder, err := c.folders.PickFolder(ctx, NoFolderMessage)
	if err != nil {
		if errors.IsNoWorkspaceFolder(err) {
			return err
		}
		return errors.WrapKind(err, NoFolderMessage, errors.NoWorkspaceFolder)
	}
	logger = logger.With(log.F("folder", folder.Path))

	res, err := c.resolver.Resolve(ctx, folder, req)
	switch {
	case errors.Is(err, errors.ErrNoComposeFiles):
		logger.Debug("No compose files configured or found")
		c.notifier.Info(NoComposeFilesMessage)
		return nil
	case errors.Is(err, errors.ErrSelectionCancelled):
		logger.Debug("Compose file selection dismissed")
		c.notifier.Info(NoSelectionMessage)
		return nil
	case err != nil:
		return err
	}

	logger.With(log.F("source", res.Source.String()), log.F("files", len(res.Files))).Info("Running docker-compose")
	return c.composer.Run(ctx, folder, res.Files, req.Action.Operations)
}

// Discover runs file discovery only, returning every match in folder.
func (c *Commands) Discover(ctx context.Context) (Folder, []File, error) {
	folder, err := c.folders.PickFolder(ctx, NoFolderMessage)
	if err != nil {
		return Folder{}, nil, err
	}
	locations, err := c.resolver.finder.FindFiles(ctx, folder, ComposeFileGlob, MaxDiscoveredFiles)
	if err != nil {
		return folder, nil, err
	}
	files := make([]File, len(locations))
	for i, loc := range locations {
		files[i] = NewFile(folder.Path, loc)
	}
	return folder, files, nil
}
