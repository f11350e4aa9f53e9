package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"composectl/internal/compose"
	"composectl/internal/errors"
	"composectl/internal/log"
)

// FolderPrompt is shown when several workspace folders are configured.
const FolderPrompt = "Select the folder to run Docker Compose in"

// Picker resolves the project folder. An explicit folder wins; otherwise
// the configured workspace folders are offered (asking when there are
// several); otherwise the current directory is used.
type Picker struct {
	folder  string
	folders []string
	chooser compose.Chooser
	getwd   func() (string, error)
}

// NewPicker returns a Picker. chooser may be nil when at most one folder
// is configured.
func NewPicker(folder string, folders []string, chooser compose.Chooser) *Picker {
	return &Picker{
		folder:  folder,
		folders: folders,
		chooser: chooser,
		getwd:   os.Getwd,
	}
}

// PickFolder implements compose.FolderPicker.
func (p *Picker) PickFolder(ctx context.Context, guidance string) (compose.Folder, error) {
	candidates := p.candidates()
	if len(candidates) == 0 {
		wd, err := p.getwd()
		if err != nil {
			return compose.Folder{}, errors.WrapKind(err, guidance, errors.NoWorkspaceFolder)
		}
		candidates = []string{wd}
	}

	if len(candidates) == 1 {
		return openFolder(candidates[0], guidance)
	}

	if p.chooser == nil {
		return compose.Folder{}, errors.NewKind(guidance, errors.NoWorkspaceFolder)
	}
	items := make([]compose.Item, len(candidates))
	for i, c := range candidates {
		items[i] = compose.Item{Label: filepath.Base(c), Description: c}
	}
	idx, ok, err := p.chooser.Choose(ctx, FolderPrompt, items)
	if err != nil {
		return compose.Folder{}, errors.WrapKind(err, guidance, errors.NoWorkspaceFolder)
	}
	if !ok || idx < 0 || idx >= len(candidates) {
		return compose.Folder{}, errors.NewKind(guidance, errors.NoWorkspaceFolder)
	}
	return openFolder(candidates[idx], guidance)
}

func (p *Picker) candidates() []string {
	if strings.TrimSpace(p.folder) != "" {
		return []string{p.folder}
	}
	var out []string
	for _, f := range p.folders {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func openFolder(dir, guidance string) (compose.Folder, error) {
	dir = expandHome(dir)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return compose.Folder{}, errors.WrapKind(err, guidance, errors.NoWorkspaceFolder)
	}
	if err := compose.CheckQuotable(abs); err != nil {
		return compose.Folder{}, errors.WrapKind(err, guidance, errors.NoWorkspaceFolder)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return compose.Folder{}, errors.WrapKind(err, guidance, errors.NoWorkspaceFolder)
	}
	if !info.IsDir() {
		return compose.Folder{}, errors.WrapKind(
			errors.NewFileError("not a directory", abs, errors.InvalidPath, nil),
			guidance, errors.NoWorkspaceFolder)
	}
	log.LogWithFields(log.F("folder", abs)).Debug("Workspace folder resolved")
	return compose.Folder{Name: filepath.Base(abs), Path: abs}, nil
}

func expandHome(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~"))
}
