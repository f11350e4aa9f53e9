package compose

import (
	"context"
	"strings"

	"composectl/internal/config"
	"composectl/internal/errors"
	"composectl/internal/log"
)

const (
	// ComposeFileGlob matches docker-compose.yml and its override variants
	// anywhere below the folder.
	ComposeFileGlob = "**/[dD]ocker-[cC]ompose*.{yml,yaml}"
	// MaxDiscoveredFiles caps discovery results.
	MaxDiscoveredFiles = 9999
)

// Source says where a resolved file set came from.
type Source int

const (
	SourceExplicit Source = iota + 1
	SourceSettings
	SourceDiscovery
)

func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceSettings:
		return "settings"
	case SourceDiscovery:
		return "discovery"
	}
	return "unknown"
}

// Resolution is a non-empty, ordered set of compose files.
type Resolution struct {
	Files  []File
	Source Source
}

// Resolver picks the files an operation applies to.
type Resolver struct {
	settings Settings
	finder   FileFinder
	chooser  Chooser
}

// NewResolver returns a Resolver using the given collaborators.
func NewResolver(settings Settings, finder FileFinder, chooser Chooser) *Resolver {
	return &Resolver{settings: settings, finder: finder, chooser: chooser}
}

// Resolve returns the files for req in folder. It returns an error of kind
// NoComposeFiles when nothing is configured or discoverable, and of kind
// SelectionCancelled when the user dismisses the chooser.
func (r *Resolver) Resolve(ctx context.Context, folder Folder, req Request) (Resolution, error) {
	if strings.TrimSpace(req.File) != "" {
		return Resolution{
			Files:  []File{FileFromRef(folder.Path, req.File)},
			Source: SourceExplicit,
		}, nil
	}

	if refs := r.configuredRefs(); len(refs) > 0 {
		files := make([]File, 0, len(refs))
		for _, ref := range refs {
			files = append(files, FileFromRef(folder.Path, ref))
		}
		return Resolution{Files: files, Source: SourceSettings}, nil
	}

	return r.discover(ctx, folder, req.Action)
}

// configuredRefs returns the base file followed by the additional files.
func (r *Resolver) configuredRefs() []string {
	var refs []string
	if base := strings.TrimSpace(r.settings.String(config.KeyComposeFile, "")); base != "" {
		refs = append(refs, base)
	}
	for _, ref := range r.settings.Strings(config.KeyComposeAdditionalFiles) {
		if ref = strings.TrimSpace(ref); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

func (r *Resolver) discover(ctx context.Context, folder Folder, action Action) (Resolution, error) {
	locations, err := r.finder.FindFiles(ctx, folder, ComposeFileGlob, MaxDiscoveredFiles)
	if err != nil {
		return Resolution{}, errors.Wrapf(err, "searching %s for compose files", folder.Path)
	}
	log.LogWithFields(log.F("folder", folder.Path), log.F("matches", len(locations))).Debug("Compose file discovery finished")
	if len(locations) == 0 {
		return Resolution{}, errors.ErrNoComposeFiles
	}

	files := make([]File, len(locations))
	items := make([]Item, len(locations))
	for i, loc := range locations {
		files[i] = NewFile(folder.Path, loc)
		items[i] = Item{Label: files[i].Label, Description: files[i].Dir}
	}

	idx, ok, err := r.chooser.Choose(ctx, action.Prompt(), items)
	if err != nil {
		return Resolution{}, errors.Wrap(err, "choosing compose file")
	}
	if !ok || idx < 0 || idx >= len(files) {
		return Resolution{}, errors.ErrSelectionCancelled
	}
	return Resolution{Files: []File{files[idx]}, Source: SourceDiscovery}, nil
}
