package workspace

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"composectl/internal/compose"
	"composectl/internal/errors"

	"github.com/gobwas/glob"
)

// DefaultExcludes are directory names discovery never descends into.
var DefaultExcludes = []string{".git", "node_modules"}

// Finder discovers files below a folder by glob pattern.
type Finder struct {
	excludes map[string]bool
}

// NewFinder returns a Finder skipping the given directory names, or
// DefaultExcludes when none are given.
func NewFinder(excludes ...string) *Finder {
	if len(excludes) == 0 {
		excludes = DefaultExcludes
	}
	f := &Finder{excludes: make(map[string]bool, len(excludes))}
	for _, name := range excludes {
		f.excludes[name] = true
	}
	return f
}

// matcher matches slash-separated relative paths. A leading "**/" also
// matches at the folder root.
type matcher struct {
	full glob.Glob
	root glob.Glob
}

func compile(pattern string) (*matcher, error) {
	pattern = filepath.ToSlash(pattern)
	full, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	m := &matcher{full: full}
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if m.root, err = glob.Compile(rest, '/'); err != nil {
			return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
		}
	}
	return m, nil
}

func (m *matcher) Match(rel string) bool {
	if m.full.Match(rel) {
		return true
	}
	return m.root != nil && m.root.Match(rel)
}

// FindFiles walks folder and returns the absolute paths of regular files
// whose folder-relative path matches pattern, sorted, at most limit.
func (f *Finder) FindFiles(ctx context.Context, folder compose.Folder, pattern string, limit int) ([]string, error) {
	m, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	var matches []string
	err = filepath.WalkDir(folder.Path, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == folder.Path {
				return walkErr
			}
			// Best-effort: ignore unreadable entries.
			return nil
		}
		if d.IsDir() {
			if path != folder.Path && f.excludes[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(folder.Path, path)
		if err != nil {
			return nil
		}
		if m.Match(filepath.ToSlash(rel)) {
			matches = append(matches, path)
			if limit > 0 && len(matches) >= limit {
				return filepath.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewFileError("discovery failed", folder.Path, errors.InvalidPath, err)
	}

	sort.Strings(matches)
	return matches, nil
}
