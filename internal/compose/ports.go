package compose

import "context"

// Folder is a project folder. Path is absolute.
type Folder struct {
	Name string
	Path string
}

// FolderPicker resolves the folder an invocation runs in. It returns an
// error when there is none; guidance is the message to show the user in
// that case.
type FolderPicker interface {
	PickFolder(ctx context.Context, guidance string) (Folder, error)
}

// FileFinder returns absolute locations of files under folder matching
// pattern, at most limit of them.
type FileFinder interface {
	FindFiles(ctx context.Context, folder Folder, pattern string, limit int) ([]string, error)
}

// Item is one entry presented by a Chooser.
type Item struct {
	Label       string
	Description string
}

// Chooser asks the user to pick one item. ok is false when the user
// dismissed the prompt without choosing.
type Chooser interface {
	Choose(ctx context.Context, prompt string, items []Item) (index int, ok bool, err error)
}

// Settings is a typed key/value view of user configuration.
type Settings interface {
	String(key, def string) string
	Strings(key string) []string
	Bool(key string, def bool) bool
}

// Terminal accepts literal command lines. Exit statuses are not reported
// back; an error only means the line could not be delivered.
type Terminal interface {
	SendText(ctx context.Context, text string) error
	Show()
}

// Notifier shows passive messages to the user.
type Notifier interface {
	Info(msg string)
}
